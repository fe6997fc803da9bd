package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
}

// Error messages for clients.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientBackendLongRespond            = "the practice management system is taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientNoChartData                   = "No dental chart data found for this patient"
	ErrClientNoReportData                  = "No report data found for this patient"
	ErrClientNoPatientData                 = "No patient data was returned by the practice management system"
)

// Error messages for developers.
const (
	ErrDevValidationFailed      = "validation failed"
	ErrDevInvalidRequestPayload = "invalid request payload"
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevCannotMarshalJSON     = "cannot marshal JSON"
	ErrDevCreateHTTPRequest     = "failed to create HTTP request"
	ErrDevSendHTTPRequest       = "failed to send HTTP request"
	ErrDevBackendDeadline       = "backend request deadline exceeded"

	// OpenDental bridge messages
	ErrDevBackendStatus         = "backend responded with status %d %s"
	ErrDevBackendDecodeResponse = "failed to decode backend response for %s"
	ErrDevBackendNoData         = "backend returned no %s object"

	// Authentication messages
	ErrDevAuthSigningMethod     = "unexpected signing method"
	ErrDevAuthTokenMissing      = "token missing"
	ErrDevAuthTokenInvalid      = "invalid token"
	ErrDevAuthTokenExpired      = "token expired"

	// Mongo messages
	ErrDevDBFailedToInsertDocument = "failed to insert document"
	ErrDevDBFailedToFindDocument   = "failed to find document"
	ErrDevDBFailedToIterateCursor  = "failed to iterate documents"

	// Redis messages
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data to redis"
	ErrDevRedisIncrementValue = "failed to increment value in redis"
)
