package responses

import "strconv"

// PatientChart is the patient_chart sub-object of the backend envelope.
type PatientChart struct {
	PatientInfo         ChartPatientInfo  `json:"patient_info"`
	ToothChart          ToothChart        `json:"tooth_chart"`
	ProcedureSummary    ProcedureSummary  `json:"procedure_summary"`
	Procedures          []Procedure       `json:"procedures"`
	ClinicalExplanation map[string]string `json:"clinical_explanation"`
	Summary             ChartSummary      `json:"summary"`
}

type ChartPatientInfo struct {
	PatientID int64  `json:"patient_id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	LastVisit string `json:"last_visit,omitempty"`
}

// ToothChart keys teeth by their number rendered as a string ("1".."32"),
// plus one summary text per quadrant.
type ToothChart struct {
	Teeth     map[string]ToothRecord `json:"teeth"`
	Quadrants map[string]string      `json:"quadrants"`
}

type ToothRecord struct {
	Condition string `json:"condition"`
	Surface   string `json:"surface,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type ProcedureSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Planned   int `json:"planned"`
}

type Procedure struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	ToothNumber *int     `json:"tooth_number,omitempty"`
	Status      string   `json:"status"`
	Date        string   `json:"date,omitempty"`
	Fee         *float64 `json:"fee,omitempty"`
}

type ChartSummary struct {
	TotalTeethCharted int    `json:"total_teeth_charted"`
	ConditionsFound   int    `json:"conditions_found"`
	Text              string `json:"text,omitempty"`
}

// Normalize applies the boundary defaults and enforces the tooth-number
// invariant: entries keyed outside 1-32 are dropped.
func (c *PatientChart) Normalize() {
	if c.ToothChart.Teeth == nil {
		c.ToothChart.Teeth = map[string]ToothRecord{}
	}
	for key := range c.ToothChart.Teeth {
		number, err := strconv.Atoi(key)
		if err != nil || number < 1 || number > 32 {
			delete(c.ToothChart.Teeth, key)
		}
	}
	if c.ToothChart.Quadrants == nil {
		c.ToothChart.Quadrants = map[string]string{}
	}
	if c.Procedures == nil {
		c.Procedures = []Procedure{}
	}
	if c.ClinicalExplanation == nil {
		c.ClinicalExplanation = map[string]string{}
	}
	if c.Summary.TotalTeethCharted == 0 {
		c.Summary.TotalTeethCharted = len(c.ToothChart.Teeth)
	}
}
