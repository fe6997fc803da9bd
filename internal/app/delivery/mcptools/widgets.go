package mcptools

import (
	"context"

	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/dto/responses"
	"dentalbridge-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func widgetHint(name, invoking, invoked string) responses.WidgetHint {
	return responses.WidgetHint{
		Name:     name,
		Invoking: invoking,
		Invoked:  invoked,
	}
}

// widgetDescriptor is what a UI surface reads to know how to lay a widget
// out before any tool result arrives.
type widgetDescriptor struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tabs        []string `json:"tabs,omitempty"`
	Columns     []string `json:"columns,omitempty"`
	PageSize    int      `json:"page_size,omitempty"`
}

var widgetDescriptors = []widgetDescriptor{
	{
		Name:        constvars.WidgetPatientList,
		Description: "Searchable, sortable, paginated table of all patients with per-row chart and report drill-downs.",
		Columns:     []string{"name", "age", "gender", "city", "phone", "status"},
		PageSize:    constvars.PatientListPageSize,
	},
	{
		Name:        constvars.WidgetDentalChart,
		Description: "Interactive 32-tooth chart with per-tooth detail, quadrant summaries, a filterable procedure table and clinical notes.",
		Tabs:        []string{"teeth", "procedures", "clinical"},
	},
	{
		Name:        constvars.WidgetPatientReport,
		Description: "Tabbed patient report covering demographics, family, insurance, account ledger, treatment plan and appointments.",
		Tabs:        []string{"overview", "family", "insurance", "account", "treatment", "appointments"},
		PageSize:    constvars.AccountTransactionPageSize,
	},
}

// registerWidgetResources exposes one ui:// resource per widget so the
// agent runtime can discover the rendering surfaces alongside the tools.
func (r *Registry) registerWidgetResources(s *server.MCPServer) {
	for _, descriptor := range widgetDescriptors {
		descriptor := descriptor
		uri := "ui://widget/" + descriptor.Name

		resource := mcp.NewResource(uri, descriptor.Name,
			mcp.WithResourceDescription(descriptor.Description),
			mcp.WithMIMEType(constvars.MIMEApplicationJSON),
		)

		s.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			payload, err := json.Marshal(descriptor)
			if err != nil {
				return nil, exceptions.ErrCannotMarshalJSON(err)
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      uri,
					MIMEType: constvars.MIMEApplicationJSON,
					Text:     string(payload),
				},
			}, nil
		})
	}
}
