package mcptools

import (
	"context"

	"dentalbridge-service/internal/app/widgets/dentalchart"
	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/dto/responses"
	"dentalbridge-service/internal/pkg/exceptions"
	"dentalbridge-service/internal/pkg/utils"

	"github.com/mark3labs/mcp-go/mcp"
)

type getPatientChartInput struct {
	PatientName string `validate:"required,patient_name"`
}

type dentalChartPayload struct {
	Widget           responses.WidgetHint          `json:"widget"`
	Chart            *responses.PatientChart       `json:"patient_chart"`
	UpperArch        []dentalchart.ToothCell       `json:"upper_arch"`
	LowerArch        []dentalchart.ToothCell       `json:"lower_arch"`
	Quadrants        []dentalchart.QuadrantCard    `json:"quadrants"`
	ClinicalSections []dentalchart.ClinicalSection `json:"clinical_sections"`
}

func (r *Registry) chartTool() mcp.Tool {
	return mcp.NewTool(constvars.ToolGetPatientChart,
		mcp.WithDescription("Get the dental chart for one patient: per-tooth conditions across all 32 teeth, quadrant summaries, procedure history and clinical explanations, rendered as an interactive tooth chart."),
		mcp.WithTitleAnnotation("Get Patient Chart"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString(constvars.QueryParamPatientName,
			mcp.Required(),
			mcp.Description("Full name of the patient, e.g. \"Jane Doe\"."),
		),
	)
}

func (r *Registry) handleGetPatientChart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	patientName, err := request.RequireString(constvars.QueryParamPatientName)
	if err != nil {
		return r.errorResult(ctx, constvars.ToolGetPatientChart, exceptions.ErrInputValidation(err)), nil
	}
	if err := utils.ValidateStruct(getPatientChartInput{PatientName: patientName}); err != nil {
		return r.errorResult(ctx, constvars.ToolGetPatientChart, exceptions.ErrInputValidation(err)), nil
	}

	chart, summary, err := r.charts.GetPatientChart(ctx, patientName)
	if err != nil {
		return r.errorResult(ctx, constvars.ToolGetPatientChart, err), nil
	}

	state := dentalchart.NewState(chart)
	payload := dentalChartPayload{
		Widget:           widgetHint(constvars.WidgetDentalChart, "Loading dental chart", "Showing dental chart"),
		Chart:            chart,
		UpperArch:        state.UpperArch(),
		LowerArch:        state.LowerArch(),
		Quadrants:        state.QuadrantCards(),
		ClinicalSections: state.ClinicalSections(),
	}
	return mcp.NewToolResultStructured(payload, summary), nil
}
