package mcptools

import (
	"context"

	"dentalbridge-service/internal/app/widgets/patientlist"
	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/dto/responses"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

type patientListPayload struct {
	Widget      responses.WidgetHint `json:"widget"`
	Patients    []responses.Patient  `json:"patients"`
	TotalCount  int                  `json:"total_count"`
	InitialView patientlist.View     `json:"initial_view"`
}

func (r *Registry) patientsTool() mcp.Tool {
	return mcp.NewTool(constvars.ToolGetPatients,
		mcp.WithDescription("List all patients in the dental practice management system. Returns patient demographics, contact details and status, rendered as a searchable, sortable patient list."),
		mcp.WithTitleAnnotation("Get Patients"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

func (r *Registry) handleGetPatients(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, summary, err := r.patients.ListPatients(ctx)
	if err != nil {
		return r.errorResult(ctx, constvars.ToolGetPatients, err), nil
	}

	state := patientlist.NewState(list.Patients)
	payload := patientListPayload{
		Widget:      widgetHint(constvars.WidgetPatientList, "Fetching patients", "Showing patient list"),
		Patients:    list.Patients,
		TotalCount:  list.TotalCount,
		InitialView: state.Visible(),
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.log.Info("patient list fetched",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, list.TotalCount),
	)
	return mcp.NewToolResultStructured(payload, summary), nil
}
