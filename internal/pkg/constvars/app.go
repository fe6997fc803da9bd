package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "DNTL_BRDG_"
)

// Tool names exposed to the agent runtime.
const (
	ToolGetPatients     = "get-patients"
	ToolGetPatientChart = "get-patient-chart"
	ToolGetReports      = "get-reports"
)

// Widget template names rendered by the UI surface.
const (
	WidgetPatientList   = "patient-list"
	WidgetDentalChart   = "dental-chart"
	WidgetPatientReport = "patient-report"
)

// Backend paths on the OpenDental-fronting service.
const (
	BackendPathPatients     = "/api/patients"
	BackendPathPatientChart = "/api/patient_chart"
	BackendPathReports      = "/api/reports"
)

const (
	QueryParamPatientName = "patient_name"
)

// Fixed page sizes for the list widgets.
const (
	PatientListPageSize        = 10
	AccountTransactionPageSize = 15
)

const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

const (
	MongoCollectionToolInvocations = "tool_invocations"
)
