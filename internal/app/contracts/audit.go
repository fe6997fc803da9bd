package contracts

import (
	"context"

	"dentalbridge-service/internal/app/models"
)

// AuditRepository records tool invocations after dispatch. Inserts are
// fire-and-forget; a failed insert never fails the tool call.
type AuditRepository interface {
	InsertInvocation(ctx context.Context, invocation *models.ToolInvocation) error
	FindRecentByTool(ctx context.Context, tool string, limit int64) ([]models.ToolInvocation, error)
}
