package mcptools

import (
	"context"
	"errors"
	"time"

	"dentalbridge-service/internal/app/config"
	"dentalbridge-service/internal/app/contracts"
	"dentalbridge-service/internal/app/models"
	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/dto/responses"
	"dentalbridge-service/internal/pkg/exceptions"
	"dentalbridge-service/internal/pkg/utils"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Registry declares the three read-only tools and dispatches their calls.
// Every handler is wrapped with request-id propagation, rate limiting and
// the optional invocation audit trail.
type Registry struct {
	log      *zap.Logger
	cfg      *config.InternalConfig
	patients contracts.PatientUsecase
	charts   contracts.ChartUsecase
	reports  contracts.ReportUsecase
	limiter  contracts.ToolRateLimiter
	audit    contracts.AuditRepository

	order   []string
	entries map[string]toolEntry
}

type toolEntry struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

func NewRegistry(
	log *zap.Logger,
	cfg *config.InternalConfig,
	patientUsecase contracts.PatientUsecase,
	chartUsecase contracts.ChartUsecase,
	reportUsecase contracts.ReportUsecase,
	limiter contracts.ToolRateLimiter,
	auditRepository contracts.AuditRepository,
) *Registry {
	r := &Registry{
		log:      log,
		cfg:      cfg,
		patients: patientUsecase,
		charts:   chartUsecase,
		reports:  reportUsecase,
		limiter:  limiter,
		audit:    auditRepository,
		entries:  make(map[string]toolEntry),
	}

	r.register(r.patientsTool(), r.handleGetPatients)
	r.register(r.chartTool(), r.handleGetPatientChart)
	r.register(r.reportsTool(), r.handleGetReports)
	return r
}

func (r *Registry) register(tool mcp.Tool, handler server.ToolHandlerFunc) {
	r.order = append(r.order, tool.Name)
	r.entries[tool.Name] = toolEntry{
		tool:    tool,
		handler: r.instrument(tool.Name, handler),
	}
}

// Attach registers all tools and the widget resources on the MCP server.
func (r *Registry) Attach(s *server.MCPServer) {
	for _, name := range r.order {
		entry := r.entries[name]
		s.AddTool(entry.tool, entry.handler)
	}
	r.registerWidgetResources(s)
}

// Dispatch is the typed re-entry point used by widget drill-down actions.
func (r *Registry) Dispatch(ctx context.Context, request responses.ToolRequest) (*mcp.CallToolResult, error) {
	entry, ok := r.entries[request.Tool]
	if !ok {
		return mcp.NewToolResultError("unknown tool: " + request.Tool), nil
	}

	callRequest := mcp.CallToolRequest{}
	callRequest.Params.Name = request.Tool
	arguments := map[string]any{}
	if request.PatientName != "" {
		arguments[constvars.QueryParamPatientName] = request.PatientName
	}
	callRequest.Params.Arguments = arguments

	return entry.handler(ctx, callRequest)
}

// instrument wraps a handler with request-id propagation, the per-tool rate
// limiter and the fire-and-forget audit insert.
func (r *Registry) instrument(toolName string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
			ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		}

		r.log.Info("tool invocation started",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingToolKey, toolName),
		)

		limit, err := r.limiter.Evaluate(ctx, &contracts.RateLimitInput{ToolName: toolName, Now: time.Now().UTC()})
		if err != nil {
			return r.errorResult(ctx, toolName, err), nil
		}
		if !limit.Allowed {
			return r.errorResult(ctx, toolName, exceptions.ErrTooManyRequests(limit.RetryAfterSecs)), nil
		}

		start := time.Now()
		result, err := handler(ctx, request)
		duration := time.Since(start)

		r.recordInvocation(requestID, toolName, request, result, err, duration)

		r.log.Info("tool invocation completed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingToolKey, toolName),
			zap.Duration(constvars.LoggingDurationKey, duration),
			zap.Bool(constvars.LoggingSuccessKey, err == nil && (result == nil || !result.IsError)),
		)
		return result, err
	}
}

func (r *Registry) recordInvocation(requestID, toolName string, request mcp.CallToolRequest, result *mcp.CallToolResult, err error, duration time.Duration) {
	if r.audit == nil {
		return
	}

	invocation := &models.ToolInvocation{
		RequestID:   requestID,
		Tool:        toolName,
		PatientName: request.GetString(constvars.QueryParamPatientName, ""),
		Success:     err == nil && (result == nil || !result.IsError),
		DurationMS:  duration.Milliseconds(),
		CreatedAt:   time.Now().UTC(),
	}
	if err != nil {
		invocation.ErrorMessage = err.Error()
	}

	go func() {
		insertCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if insertErr := r.audit.InsertInvocation(insertCtx, invocation); insertErr != nil {
			r.log.Warn("failed to record tool invocation",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingToolKey, toolName),
				zap.Error(insertErr),
			)
		}
	}()
}

// errorResult converts a usecase error into a tool error result. Custom
// errors expose their client message; the "no data" messages stay distinct
// from transport failures.
func (r *Registry) errorResult(ctx context.Context, toolName string, err error) *mcp.CallToolResult {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		r.log.Error("tool invocation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingToolKey, toolName),
			zap.String("dev_message", customErr.DevMessage),
		)
		return mcp.NewToolResultError(customErr.ClientMessage)
	}

	r.log.Error("tool invocation failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingToolKey, toolName),
		zap.Error(err),
	)
	return mcp.NewToolResultError("Error: " + err.Error())
}
