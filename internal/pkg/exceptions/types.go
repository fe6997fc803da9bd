package exceptions

import (
	"fmt"

	"dentalbridge-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevValidationFailed)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// HTTP towards the OpenDental backend
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}
	ErrBackendDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientBackendLongRespond, constvars.ErrDevBackendDeadline)
	}
	ErrBackendStatus = func(statusCode int, statusText string) *CustomError {
		msg := fmt.Sprintf(constvars.ErrDevBackendStatus, statusCode, statusText)
		return BuildNewCustomError(nil, constvars.StatusBadGateway, msg, msg)
	}
	ErrDecodeBackendResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevBackendDecodeResponse, resource))
	}

	// Missing promised sub-objects; client messages are the user-facing
	// "no data" texts and must stay distinct from transport failures.
	ErrNoPatientData = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientNoPatientData, fmt.Sprintf(constvars.ErrDevBackendNoData, "patients"))
	}
	ErrNoChartData = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientNoChartData, fmt.Sprintf(constvars.ErrDevBackendNoData, "patient_chart"))
	}
	ErrNoReportData = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientNoReportData, fmt.Sprintf(constvars.ErrDevBackendNoData, "patient_report"))
	}

	// Authentication
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenInvalid)
	}

	// Rate limiting
	ErrTooManyRequests = func(retryAfterSecs int) *CustomError {
		return WrapWithoutError(constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf("rate limited, retry after %ds", retryAfterSecs))
	}

	// Mongo DB
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateCursor)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrementValue)
	}
)
