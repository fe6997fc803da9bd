package responses

// WidgetHint is the presentation hint attached to every tool payload: which
// widget template renders it and the captions shown while the tool runs.
type WidgetHint struct {
	Name     string `json:"name"`
	Invoking string `json:"invoking"`
	Invoked  string `json:"invoked"`
}

// ToolRequest is a typed drill-down request produced by a widget row action.
// It re-enters the tool dispatcher instead of a free-text follow-up message.
type ToolRequest struct {
	Tool        string `json:"tool"`
	PatientName string `json:"patient_name,omitempty"`
}
