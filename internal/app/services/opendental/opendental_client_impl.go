package opendental

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"dentalbridge-service/internal/app/config"
	"dentalbridge-service/internal/app/contracts"
	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/dto/responses"
	"dentalbridge-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	openDentalClientInstance contracts.OpenDentalClient
	onceOpenDentalClient     sync.Once
)

type openDentalClient struct {
	BaseURL        string
	HTTPClient     *http.Client
	Log            *zap.Logger
	DefaultTimeout time.Duration
	ReportTimeout  time.Duration
}

func NewOpenDentalClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.OpenDentalClient {
	onceOpenDentalClient.Do(func() {
		client := &openDentalClient{
			BaseURL:        internalConfig.OpenDental.BaseURL,
			HTTPClient:     &http.Client{},
			Log:            logger,
			DefaultTimeout: time.Duration(internalConfig.OpenDental.TimeoutSeconds) * time.Second,
			ReportTimeout:  time.Duration(internalConfig.OpenDental.ReportTimeoutSeconds) * time.Second,
		}
		openDentalClientInstance = client
	})
	return openDentalClientInstance
}

func (c *openDentalClient) ListPatients(ctx context.Context) (*responses.PatientList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("openDentalClient.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	raw, err := c.doRequest(ctx, constvars.MethodPost, constvars.BackendPathPatients, nil, c.DefaultTimeout)
	if err != nil {
		return nil, err
	}

	var result struct {
		Patients   *[]responses.Patient `json:"patients"`
		TotalCount int                  `json:"total_count"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		c.Log.Error("openDentalClient.ListPatients error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeBackendResponse(err, "patients")
	}
	if result.Patients == nil {
		return nil, nil
	}

	c.Log.Info("openDentalClient.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(*result.Patients)),
	)
	return &responses.PatientList{Patients: *result.Patients, TotalCount: result.TotalCount}, nil
}

func (c *openDentalClient) GetPatientChart(ctx context.Context, patientName string) (*responses.PatientChart, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("openDentalClient.GetPatientChart called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientNameKey, patientName),
	)

	query := url.Values{}
	query.Set(constvars.QueryParamPatientName, patientName)

	raw, err := c.doRequest(ctx, constvars.MethodPost, constvars.BackendPathPatientChart, query, c.ReportTimeout)
	if err != nil {
		return nil, err
	}

	var result struct {
		PatientChart *responses.PatientChart `json:"patient_chart"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		c.Log.Error("openDentalClient.GetPatientChart error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeBackendResponse(err, "patient_chart")
	}

	if result.PatientChart == nil {
		c.Log.Info("openDentalClient.GetPatientChart backend returned no chart",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientNameKey, patientName),
		)
		return nil, nil
	}

	c.Log.Info("openDentalClient.GetPatientChart succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientNameKey, patientName),
	)
	return result.PatientChart, nil
}

func (c *openDentalClient) GetPatientReport(ctx context.Context, patientName string) (*responses.PatientReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("openDentalClient.GetPatientReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientNameKey, patientName),
	)

	query := url.Values{}
	query.Set(constvars.QueryParamPatientName, patientName)

	raw, err := c.doRequest(ctx, constvars.MethodPost, constvars.BackendPathReports, query, c.ReportTimeout)
	if err != nil {
		return nil, err
	}

	var result struct {
		PatientReport *responses.PatientReport `json:"patient_report"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		c.Log.Error("openDentalClient.GetPatientReport error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeBackendResponse(err, "patient_report")
	}

	if result.PatientReport == nil {
		c.Log.Info("openDentalClient.GetPatientReport backend returned no report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientNameKey, patientName),
		)
		return nil, nil
	}

	c.Log.Info("openDentalClient.GetPatientReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientNameKey, patientName),
	)
	return result.PatientReport, nil
}

// doRequest performs exactly one attempt against the backend. The timeout is
// enforced through context cancellation; there is no retry after failure.
func (c *openDentalClient) doRequest(ctx context.Context, method, path string, query url.Values, timeout time.Duration) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		c.Log.Error("openDentalClient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBackendPathKey, path),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.Log.Error("openDentalClient request deadline exceeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBackendPathKey, path),
				zap.Duration("timeout", timeout),
			)
			return nil, exceptions.ErrBackendDeadlineExceeded(err)
		}
		c.Log.Error("openDentalClient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBackendPathKey, path),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Log.Error("openDentalClient backend returned error status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBackendPathKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendStatus(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeBackendResponse(err, path)
	}

	return unwrapEnvelope(body), nil
}

// unwrapEnvelope returns the data field when the backend wraps its payload,
// else the raw body.
func unwrapEnvelope(body []byte) json.RawMessage {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		return envelope.Data
	}
	return body
}
