package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/exceptions"
	"dentalbridge-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

// AuthMiddleware enforces a service JWT when an auth secret is configured.
// With no secret set the endpoint group is open, which is the stdio and
// local-development default.
func (m *Middlewares) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.AuthSecret == "" {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			m.writeError(w, r, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(header, bearerPrefix)
		if _, err := utils.ParseServiceJWT(tokenString, m.AuthSecret); err != nil {
			m.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) writeError(w http.ResponseWriter, r *http.Request, err error) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	statusCode := constvars.StatusUnauthorized
	message := constvars.ErrClientNotAuthorized
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		statusCode = customErr.StatusCode
		message = customErr.ClientMessage
	}

	m.Log.Warn("request rejected",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, r.URL.Path),
		zap.Error(err),
	)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
