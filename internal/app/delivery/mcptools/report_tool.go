package mcptools

import (
	"context"

	"dentalbridge-service/internal/app/widgets/patientreport"
	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/dto/responses"
	"dentalbridge-service/internal/pkg/exceptions"
	"dentalbridge-service/internal/pkg/utils"

	"github.com/mark3labs/mcp-go/mcp"
)

type getReportsInput struct {
	PatientName string `validate:"required,patient_name"`
}

type patientReportPayload struct {
	Widget          responses.WidgetHint        `json:"widget"`
	Report          *responses.PatientReport    `json:"patient_report"`
	Account         patientreport.AccountView   `json:"account"`
	InsurancePlans  []*responses.InsurancePlan  `json:"insurance_plans"`
	NextAppointment *responses.Appointment      `json:"next_appointment,omitempty"`
}

func (r *Registry) reportsTool() mcp.Tool {
	return mcp.NewTool(constvars.ToolGetReports,
		mcp.WithDescription("Get the full report for one patient: demographics, family members, insurance plans, account ledger with claims and balance, treatment plan and appointment history, rendered as a tabbed report."),
		mcp.WithTitleAnnotation("Get Reports"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString(constvars.QueryParamPatientName,
			mcp.Required(),
			mcp.Description("Full name of the patient, e.g. \"Jane Doe\"."),
		),
	)
}

func (r *Registry) handleGetReports(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	patientName, err := request.RequireString(constvars.QueryParamPatientName)
	if err != nil {
		return r.errorResult(ctx, constvars.ToolGetReports, exceptions.ErrInputValidation(err)), nil
	}
	if err := utils.ValidateStruct(getReportsInput{PatientName: patientName}); err != nil {
		return r.errorResult(ctx, constvars.ToolGetReports, exceptions.ErrInputValidation(err)), nil
	}

	report, summary, err := r.reports.GetPatientReport(ctx, patientName)
	if err != nil {
		return r.errorResult(ctx, constvars.ToolGetReports, err), nil
	}

	state := patientreport.NewState(report)
	payload := patientReportPayload{
		Widget:          widgetHint(constvars.WidgetPatientReport, "Generating patient report", "Showing patient report"),
		Report:          report,
		Account:         state.Account(),
		InsurancePlans:  state.InsurancePlans(),
		NextAppointment: state.NextAppointment(),
	}
	return mcp.NewToolResultStructured(payload, summary), nil
}
