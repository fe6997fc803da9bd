package mcptools

import (
	"context"
	"testing"

	"dentalbridge-service/internal/app/config"
	"dentalbridge-service/internal/app/contracts"
	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/dto/responses"
	"dentalbridge-service/internal/pkg/exceptions"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockPatientUsecase struct{ mock.Mock }

func (m *mockPatientUsecase) ListPatients(ctx context.Context) (*responses.PatientList, string, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).(*responses.PatientList)
	return list, args.String(1), args.Error(2)
}

type mockChartUsecase struct{ mock.Mock }

func (m *mockChartUsecase) GetPatientChart(ctx context.Context, patientName string) (*responses.PatientChart, string, error) {
	args := m.Called(ctx, patientName)
	chart, _ := args.Get(0).(*responses.PatientChart)
	return chart, args.String(1), args.Error(2)
}

type mockReportUsecase struct{ mock.Mock }

func (m *mockReportUsecase) GetPatientReport(ctx context.Context, patientName string) (*responses.PatientReport, string, error) {
	args := m.Called(ctx, patientName)
	report, _ := args.Get(0).(*responses.PatientReport)
	return report, args.String(1), args.Error(2)
}

type allowAllLimiter struct{}

func (allowAllLimiter) Evaluate(ctx context.Context, in *contracts.RateLimitInput) (*contracts.RateLimitOutput, error) {
	return &contracts.RateLimitOutput{Allowed: true}, nil
}

type denyAllLimiter struct{}

func (denyAllLimiter) Evaluate(ctx context.Context, in *contracts.RateLimitInput) (*contracts.RateLimitOutput, error) {
	return &contracts.RateLimitOutput{Allowed: false, RetryAfterSecs: 42}, nil
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App:       config.App{Name: "dentalbridge-service", Version: "test"},
		RateLimit: config.RateLimit{PerToolPerMinute: 60},
	}
}

func newTestRegistry(patients *mockPatientUsecase, charts *mockChartUsecase, reports *mockReportUsecase, limiter contracts.ToolRateLimiter) *Registry {
	return NewRegistry(zap.NewNop(), testConfig(), patients, charts, reports, limiter, nil)
}

func callTool(t *testing.T, r *Registry, tool string, arguments map[string]any) *mcp.CallToolResult {
	t.Helper()
	request := mcp.CallToolRequest{}
	request.Params.Name = tool
	request.Params.Arguments = arguments

	result, err := r.entries[tool].handler(context.Background(), request)
	assert.NoError(t, err)
	assert.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if assert.NotEmpty(t, result.Content) {
		if text, ok := result.Content[0].(mcp.TextContent); ok {
			return text.Text
		}
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return ""
}

func TestRegistry_GetPatients(t *testing.T) {
	t.Run("returns the structured payload with the summary text", func(t *testing.T) {
		patients := new(mockPatientUsecase)
		patients.On("ListPatients", mock.Anything).Return(&responses.PatientList{
			Patients:   []responses.Patient{{FirstName: "Jane", LastName: "Doe"}},
			TotalCount: 1,
		}, "Found 1 patient(s) in the practice management system", nil)

		r := newTestRegistry(patients, new(mockChartUsecase), new(mockReportUsecase), allowAllLimiter{})
		result := callTool(t, r, constvars.ToolGetPatients, nil)

		assert.False(t, result.IsError)
		assert.Equal(t, "Found 1 patient(s) in the practice management system", resultText(t, result))

		payload, ok := result.StructuredContent.(patientListPayload)
		assert.True(t, ok)
		assert.Equal(t, constvars.WidgetPatientList, payload.Widget.Name)
		assert.Equal(t, 1, payload.TotalCount)
		assert.Len(t, payload.InitialView.Rows, 1)
		assert.Equal(t, 1, payload.InitialView.Page)
		assert.Equal(t, 1, payload.InitialView.TotalPages)
	})

	t.Run("surfaces the no-data client message as a tool error", func(t *testing.T) {
		patients := new(mockPatientUsecase)
		patients.On("ListPatients", mock.Anything).Return(nil, "", exceptions.ErrNoPatientData())

		r := newTestRegistry(patients, new(mockChartUsecase), new(mockReportUsecase), allowAllLimiter{})
		result := callTool(t, r, constvars.ToolGetPatients, nil)

		assert.True(t, result.IsError)
		assert.Equal(t, constvars.ErrClientNoPatientData, resultText(t, result))
	})
}

func TestRegistry_GetPatientChart(t *testing.T) {
	t.Run("rejects a missing patient name without touching the usecase", func(t *testing.T) {
		charts := new(mockChartUsecase)

		r := newTestRegistry(new(mockPatientUsecase), charts, new(mockReportUsecase), allowAllLimiter{})
		result := callTool(t, r, constvars.ToolGetPatientChart, map[string]any{})

		assert.True(t, result.IsError)
		charts.AssertNotCalled(t, "GetPatientChart", mock.Anything, mock.Anything)
	})

	t.Run("rejects a whitespace-only patient name", func(t *testing.T) {
		r := newTestRegistry(new(mockPatientUsecase), new(mockChartUsecase), new(mockReportUsecase), allowAllLimiter{})
		result := callTool(t, r, constvars.ToolGetPatientChart, map[string]any{
			constvars.QueryParamPatientName: "   ",
		})

		assert.True(t, result.IsError)
	})

	t.Run("returns the chart payload with the arch renderings", func(t *testing.T) {
		charts := new(mockChartUsecase)
		charts.On("GetPatientChart", mock.Anything, "Jane Doe").Return(&responses.PatientChart{
			PatientInfo: responses.ChartPatientInfo{Name: "Jane Doe"},
			ToothChart: responses.ToothChart{
				Teeth: map[string]responses.ToothRecord{"3": {Condition: "cavity"}},
			},
		}, "Dental chart for Jane Doe", nil)

		r := newTestRegistry(new(mockPatientUsecase), charts, new(mockReportUsecase), allowAllLimiter{})
		result := callTool(t, r, constvars.ToolGetPatientChart, map[string]any{
			constvars.QueryParamPatientName: "Jane Doe",
		})

		assert.False(t, result.IsError)
		payload, ok := result.StructuredContent.(dentalChartPayload)
		assert.True(t, ok)
		assert.Equal(t, constvars.WidgetDentalChart, payload.Widget.Name)
		assert.Len(t, payload.UpperArch, 16)
		assert.Len(t, payload.LowerArch, 16)
		assert.Len(t, payload.Quadrants, 4)
	})
}

func TestRegistry_GetReports(t *testing.T) {
	reports := new(mockReportUsecase)
	reports.On("GetPatientReport", mock.Anything, "Jane Doe").Return(&responses.PatientReport{
		Demographics: responses.Demographics{Name: "Jane Doe"},
		Appointments: responses.AppointmentsSection{
			Scheduled: []responses.Appointment{{Date: "2025-09-01"}},
		},
	}, "Patient report for Jane Doe", nil)

	r := newTestRegistry(new(mockPatientUsecase), new(mockChartUsecase), reports, allowAllLimiter{})
	result := callTool(t, r, constvars.ToolGetReports, map[string]any{
		constvars.QueryParamPatientName: "Jane Doe",
	})

	assert.False(t, result.IsError)
	payload, ok := result.StructuredContent.(patientReportPayload)
	assert.True(t, ok)
	assert.Equal(t, constvars.WidgetPatientReport, payload.Widget.Name)
	assert.NotNil(t, payload.NextAppointment)
	assert.Equal(t, "2025-09-01", payload.NextAppointment.Date)
}

func TestRegistry_RateLimit(t *testing.T) {
	patients := new(mockPatientUsecase)

	r := newTestRegistry(patients, new(mockChartUsecase), new(mockReportUsecase), denyAllLimiter{})
	result := callTool(t, r, constvars.ToolGetPatients, nil)

	assert.True(t, result.IsError)
	assert.Equal(t, constvars.ErrClientTooManyRequests, resultText(t, result))
	patients.AssertNotCalled(t, "ListPatients", mock.Anything)
}

func TestRegistry_Dispatch(t *testing.T) {
	t.Run("routes a drill-down request to its tool", func(t *testing.T) {
		charts := new(mockChartUsecase)
		charts.On("GetPatientChart", mock.Anything, "Jane Doe").Return(&responses.PatientChart{
			PatientInfo: responses.ChartPatientInfo{Name: "Jane Doe"},
		}, "Dental chart for Jane Doe", nil)

		r := newTestRegistry(new(mockPatientUsecase), charts, new(mockReportUsecase), allowAllLimiter{})
		result, err := r.Dispatch(context.Background(), responses.ToolRequest{
			Tool:        constvars.ToolGetPatientChart,
			PatientName: "Jane Doe",
		})

		assert.NoError(t, err)
		assert.False(t, result.IsError)
		charts.AssertExpectations(t)
	})

	t.Run("rejects an unknown tool", func(t *testing.T) {
		r := newTestRegistry(new(mockPatientUsecase), new(mockChartUsecase), new(mockReportUsecase), allowAllLimiter{})
		result, err := r.Dispatch(context.Background(), responses.ToolRequest{Tool: "drop-tables"})

		assert.NoError(t, err)
		assert.True(t, result.IsError)
	})
}
