package responses

import "strings"

// Patient is the pass-through representation of one row returned by the
// backend's /api/patients endpoint. All fields are optional on the wire;
// defaulting happens once in Normalize, never in rendering code.
type Patient struct {
	PatientID     int64  `json:"patient_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	PreferredName string `json:"preferred_name,omitempty"`
	Age           int    `json:"age"`
	WirelessPhone string `json:"wireless_phone,omitempty"`
	HomePhone     string `json:"home_phone,omitempty"`
	WorkPhone     string `json:"work_phone,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	ZipCode       string `json:"zip_code,omitempty"`
	Status        string `json:"status,omitempty"`
}

func (p Patient) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// PreferredPhone returns the first non-empty number, wireless first.
func (p Patient) PreferredPhone() string {
	for _, phone := range []string{p.WirelessPhone, p.HomePhone, p.WorkPhone} {
		if strings.TrimSpace(phone) != "" {
			return strings.TrimSpace(phone)
		}
	}
	return ""
}

// PatientList is the patients sub-object of the backend envelope.
type PatientList struct {
	Patients   []Patient `json:"patients"`
	TotalCount int       `json:"total_count"`
}

// Normalize applies the boundary defaults: collections never nil, the total
// count falls back to the collection length when the backend omits it.
func (pl *PatientList) Normalize() {
	if pl.Patients == nil {
		pl.Patients = []Patient{}
	}
	if pl.TotalCount == 0 {
		pl.TotalCount = len(pl.Patients)
	}
}
