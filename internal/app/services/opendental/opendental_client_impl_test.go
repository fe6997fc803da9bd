package opendental

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *openDentalClient {
	return &openDentalClient{
		BaseURL:        baseURL,
		HTTPClient:     &http.Client{},
		Log:            zap.NewNop(),
		DefaultTimeout: 2 * time.Second,
		ReportTimeout:  2 * time.Second,
	}
}

func TestOpenDentalClient_ListPatients(t *testing.T) {
	t.Run("decodes a plain payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.MethodPost, r.Method)
			assert.Equal(t, constvars.BackendPathPatients, r.URL.Path)
			w.Write([]byte(`{"patients":[{"first_name":"Jane","last_name":"Doe"}],"total_count":1}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		list, err := client.ListPatients(context.Background())

		assert.NoError(t, err)
		assert.NotNil(t, list)
		assert.Equal(t, 1, list.TotalCount)
		assert.Equal(t, "Jane Doe", list.Patients[0].FullName())
	})

	t.Run("unwraps an enveloped payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{"patients":[{"first_name":"John","last_name":"Smith"}],"total_count":1}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		list, err := client.ListPatients(context.Background())

		assert.NoError(t, err)
		assert.NotNil(t, list)
		assert.Len(t, list.Patients, 1)
		assert.Equal(t, "Smith", list.Patients[0].LastName)
	})

	t.Run("returns nil without error when the patients key is absent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"message":"nothing here"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		list, err := client.ListPatients(context.Background())

		assert.NoError(t, err)
		assert.Nil(t, list)
	})

	t.Run("surfaces the backend status code on non-2xx", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		list, err := client.ListPatients(context.Background())

		assert.Nil(t, list)
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Contains(t, customErr.ClientMessage, "502")
	})

	t.Run("fails on a malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"patients":"not-an-array"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		list, err := client.ListPatients(context.Background())

		assert.Nil(t, list)
		assert.Error(t, err)
	})
}

func TestOpenDentalClient_GetPatientChart(t *testing.T) {
	t.Run("sends the patient name as a query parameter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.BackendPathPatientChart, r.URL.Path)
			assert.Equal(t, "Jane Doe", r.URL.Query().Get(constvars.QueryParamPatientName))
			w.Write([]byte(`{"patient_chart":{"patient_info":{"name":"Jane Doe"}}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		chart, err := client.GetPatientChart(context.Background(), "Jane Doe")

		assert.NoError(t, err)
		assert.NotNil(t, chart)
		assert.Equal(t, "Jane Doe", chart.PatientInfo.Name)
	})

	t.Run("returns nil without error when the chart object is missing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"patient_chart":null}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		chart, err := client.GetPatientChart(context.Background(), "Jane Doe")

		assert.NoError(t, err)
		assert.Nil(t, chart)
	})
}

func TestOpenDentalClient_GetPatientReport(t *testing.T) {
	t.Run("returns nil without error when the report object is missing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		report, err := client.GetPatientReport(context.Background(), "Jane Doe")

		assert.NoError(t, err)
		assert.Nil(t, report)
	})

	t.Run("uses the long timeout class and maps its expiry", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
			w.Write([]byte(`{"patient_report":{}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		client.ReportTimeout = 50 * time.Millisecond

		report, err := client.GetPatientReport(context.Background(), "Jane Doe")

		assert.Nil(t, report)
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusGatewayTimeout, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientBackendLongRespond, customErr.ClientMessage)
	})
}

func TestUnwrapEnvelope(t *testing.T) {
	t.Run("passes a bare body through", func(t *testing.T) {
		body := []byte(`{"patients":[]}`)
		assert.Equal(t, body, []byte(unwrapEnvelope(body)))
	})

	t.Run("extracts the data field", func(t *testing.T) {
		body := []byte(`{"success":true,"data":{"total_count":3}}`)
		assert.JSONEq(t, `{"total_count":3}`, string(unwrapEnvelope(body)))
	})

	t.Run("ignores a null data field", func(t *testing.T) {
		body := []byte(`{"data":null,"patients":[]}`)
		assert.Equal(t, body, []byte(unwrapEnvelope(body)))
	})
}
