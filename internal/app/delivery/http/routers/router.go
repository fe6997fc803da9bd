package routers

import (
	"net/http"
	"strconv"
	"time"

	"dentalbridge-service/internal/app/config"
	"dentalbridge-service/internal/app/contracts"
	"dentalbridge-service/internal/app/delivery/http/middlewares"
	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
)

const defaultAuditLimit = 50

// SetupRoutes wires the MCP endpoint, the health probe and the audit
// endpoints onto the chi router.
func SetupRoutes(
	router *chi.Mux,
	cfg *config.InternalConfig,
	m *middlewares.Middlewares,
	mcpHandler http.Handler,
	auditRepository contracts.AuditRepository,
) {
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderContentType, constvars.HeaderAuthorization, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(httprate.LimitByIP(cfg.App.MaxRequests, 1*time.Second))
	router.Use(m.RequestIDMiddleware)
	router.Use(m.LoggingMiddleware)

	router.Get("/healthz", healthHandler(cfg))

	router.Group(func(r chi.Router) {
		r.Use(m.AuthMiddleware)
		r.Handle("/mcp", mcpHandler)
		r.Handle("/mcp/*", mcpHandler)

		if auditRepository != nil {
			r.Get("/audit/{tool}", auditHandler(auditRepository))
		}
	})
}

func healthHandler(cfg *config.InternalConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
		w.WriteHeader(constvars.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "ok",
			"name":    cfg.App.Name,
			"version": cfg.App.Version,
		})
	}
}

// auditHandler returns the most recent invocations of one tool, newest
// first. Limit is capped at 200 rows.
func auditHandler(auditRepository contracts.AuditRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tool := chi.URLParam(r, "tool")

		limit := int64(defaultAuditLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed < 1 {
				writeJSONError(w, exceptions.ErrInputValidation(err))
				return
			}
			if parsed > 200 {
				parsed = 200
			}
			limit = parsed
		}

		invocations, err := auditRepository.FindRecentByTool(r.Context(), tool, limit)
		if err != nil {
			writeJSONError(w, err)
			return
		}

		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
		w.WriteHeader(constvars.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"tool":        tool,
			"invocations": invocations,
		})
	}
}

func writeJSONError(w http.ResponseWriter, err error) {
	statusCode := constvars.StatusInternalServerError
	message := constvars.ErrClientSomethingWrongWithApplication
	if customErr, ok := err.(*exceptions.CustomError); ok {
		statusCode = customErr.StatusCode
		message = customErr.ClientMessage
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
