package reports

import (
	"context"
	"testing"

	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/dto/responses"
	"dentalbridge-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockOpenDentalClient struct {
	mock.Mock
}

func (m *mockOpenDentalClient) ListPatients(ctx context.Context) (*responses.PatientList, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).(*responses.PatientList)
	return list, args.Error(1)
}

func (m *mockOpenDentalClient) GetPatientChart(ctx context.Context, patientName string) (*responses.PatientChart, error) {
	args := m.Called(ctx, patientName)
	chart, _ := args.Get(0).(*responses.PatientChart)
	return chart, args.Error(1)
}

func (m *mockOpenDentalClient) GetPatientReport(ctx context.Context, patientName string) (*responses.PatientReport, error) {
	args := m.Called(ctx, patientName)
	report, _ := args.Get(0).(*responses.PatientReport)
	return report, args.Error(1)
}

func TestReportUsecase_GetPatientReport(t *testing.T) {
	t.Run("normalizes the report and builds the summary line", func(t *testing.T) {
		balance := 125.5
		client := new(mockOpenDentalClient)
		client.On("GetPatientReport", mock.Anything, "Jane Doe").Return(&responses.PatientReport{
			Demographics: responses.Demographics{Name: "Jane Doe"},
			Account: responses.AccountSection{
				Balance: responses.AccountBalance{Total: &balance},
			},
			Appointments: responses.AppointmentsSection{
				Scheduled: []responses.Appointment{{Date: "2025-09-01"}, {Date: "2025-12-15"}},
			},
		}, nil)

		usecase := NewReportUsecase(client, zap.NewNop())
		report, summary, err := usecase.GetPatientReport(context.Background(), "Jane Doe")

		assert.NoError(t, err)
		assert.NotNil(t, report)
		assert.NotNil(t, report.Family)
		assert.NotNil(t, report.Account.Transactions)
		assert.Equal(t, "Patient report for Jane Doe: 2 scheduled appointment(s), account balance $125.50", summary)
	})

	t.Run("renders the placeholder when the balance is absent", func(t *testing.T) {
		client := new(mockOpenDentalClient)
		client.On("GetPatientReport", mock.Anything, "Jane Doe").Return(&responses.PatientReport{
			Demographics: responses.Demographics{Name: "Jane Doe"},
		}, nil)

		usecase := NewReportUsecase(client, zap.NewNop())
		_, summary, err := usecase.GetPatientReport(context.Background(), "Jane Doe")

		assert.NoError(t, err)
		assert.Equal(t, "Patient report for Jane Doe: 0 scheduled appointment(s), account balance "+constvars.ValuePlaceholder, summary)
	})

	t.Run("drops insurance plans without a carrier during normalization", func(t *testing.T) {
		client := new(mockOpenDentalClient)
		client.On("GetPatientReport", mock.Anything, "Jane Doe").Return(&responses.PatientReport{
			Insurance: responses.InsuranceSection{
				Primary:   &responses.InsurancePlan{CarrierName: "Delta Dental"},
				Secondary: &responses.InsurancePlan{CarrierName: "   "},
			},
		}, nil)

		usecase := NewReportUsecase(client, zap.NewNop())
		report, _, err := usecase.GetPatientReport(context.Background(), "Jane Doe")

		assert.NoError(t, err)
		assert.NotNil(t, report.Insurance.Primary)
		assert.Nil(t, report.Insurance.Secondary)
	})

	t.Run("maps a missing report object to the no-data message", func(t *testing.T) {
		client := new(mockOpenDentalClient)
		client.On("GetPatientReport", mock.Anything, "Jane Doe").Return(nil, nil)

		usecase := NewReportUsecase(client, zap.NewNop())
		report, _, err := usecase.GetPatientReport(context.Background(), "Jane Doe")

		assert.Nil(t, report)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientNoReportData, customErr.ClientMessage)
	})
}
