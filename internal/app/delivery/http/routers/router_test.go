package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"dentalbridge-service/internal/app/config"
	"dentalbridge-service/internal/app/contracts"
	"dentalbridge-service/internal/app/delivery/http/middlewares"
	"dentalbridge-service/internal/app/models"
	"dentalbridge-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockAuditRepository struct{ mock.Mock }

func (m *mockAuditRepository) InsertInvocation(ctx context.Context, invocation *models.ToolInvocation) error {
	args := m.Called(ctx, invocation)
	return args.Error(0)
}

func (m *mockAuditRepository) FindRecentByTool(ctx context.Context, tool string, limit int64) ([]models.ToolInvocation, error) {
	args := m.Called(ctx, tool, limit)
	invocations, _ := args.Get(0).([]models.ToolInvocation)
	return invocations, args.Error(1)
}

func routerConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{Name: "dentalbridge-service", Version: "test", MaxRequests: 100},
	}
}

func newTestRouter(audit contracts.AuditRepository) *chi.Mux {
	router := chi.NewRouter()
	m := middlewares.NewMiddlewares(zap.NewNop(), "")
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	SetupRoutes(router, routerConfig(), m, mcpHandler, audit)
	return router
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "dentalbridge-service")
	assert.NotEmpty(t, recorder.Header().Get(constvars.HeaderXRequestID))
}

func TestMCPEndpointMounted(t *testing.T) {
	router := newTestRouter(nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/mcp", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuditEndpoint(t *testing.T) {
	t.Run("returns the recent invocations of a tool", func(t *testing.T) {
		audit := new(mockAuditRepository)
		audit.On("FindRecentByTool", mock.Anything, constvars.ToolGetPatients, int64(50)).Return([]models.ToolInvocation{
			{Tool: constvars.ToolGetPatients, Success: true},
		}, nil)

		router := newTestRouter(audit)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/audit/get-patients", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), constvars.ToolGetPatients)
		audit.AssertExpectations(t)
	})

	t.Run("caps the limit at 200", func(t *testing.T) {
		audit := new(mockAuditRepository)
		audit.On("FindRecentByTool", mock.Anything, constvars.ToolGetPatients, int64(200)).Return(nil, nil)

		router := newTestRouter(audit)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/audit/get-patients?limit=9999", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		audit.AssertExpectations(t)
	})

	t.Run("rejects a non-numeric limit", func(t *testing.T) {
		router := newTestRouter(new(mockAuditRepository))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/audit/get-patients?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("absent repository leaves the endpoint unrouted", func(t *testing.T) {
		router := newTestRouter(nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/audit/get-patients", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
