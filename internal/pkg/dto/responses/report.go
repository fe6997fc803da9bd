package responses

import "strings"

// PatientReport is the patient_report sub-object of the backend envelope.
type PatientReport struct {
	Demographics Demographics        `json:"demographics"`
	Family       []FamilyMember      `json:"family_members"`
	Insurance    InsuranceSection    `json:"insurance"`
	Account      AccountSection      `json:"account"`
	Treatment    TreatmentSection    `json:"treatment"`
	Appointments AppointmentsSection `json:"appointments"`
}

type Demographics struct {
	PatientID int64  `json:"patient_id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date,omitempty"`
	Age       int    `json:"age"`
	Gender    string `json:"gender,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	ZipCode   string `json:"zip_code,omitempty"`
	Status    string `json:"status,omitempty"`
}

type FamilyMember struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
	Age          int    `json:"age"`
	Status       string `json:"status,omitempty"`
}

type InsuranceSection struct {
	Primary   *InsurancePlan `json:"primary,omitempty"`
	Secondary *InsurancePlan `json:"secondary,omitempty"`
}

type InsurancePlan struct {
	CarrierName         string             `json:"carrier_name"`
	GroupNumber         string             `json:"group_number,omitempty"`
	SubscriberName      string             `json:"subscriber_name,omitempty"`
	AnnualMax           *float64           `json:"annual_max,omitempty"`
	Deductible          *float64           `json:"deductible,omitempty"`
	BenefitsUsed        *float64           `json:"benefits_used,omitempty"`
	CoveragePercentages map[string]float64 `json:"coverage_percentages"`
}

// Renderable reports whether the plan carries enough data for the insurance
// tab; plans without a carrier name are skipped entirely.
func (p *InsurancePlan) Renderable() bool {
	return p != nil && strings.TrimSpace(p.CarrierName) != ""
}

type AccountSection struct {
	Transactions []Transaction  `json:"transactions"`
	Claims       []Claim        `json:"claims"`
	Balance      AccountBalance `json:"balance"`
}

type Transaction struct {
	Date        string   `json:"date,omitempty"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
}

type Claim struct {
	Date    string   `json:"date,omitempty"`
	Carrier string   `json:"carrier,omitempty"`
	Status  string   `json:"status,omitempty"`
	Billed  *float64 `json:"billed,omitempty"`
	Paid    *float64 `json:"paid,omitempty"`
}

type AccountBalance struct {
	Total             *float64 `json:"total,omitempty"`
	Aged0To30         *float64 `json:"aged_0_30,omitempty"`
	Aged31To60        *float64 `json:"aged_31_60,omitempty"`
	Aged61To90        *float64 `json:"aged_61_90,omitempty"`
	AgedOver90        *float64 `json:"aged_over_90,omitempty"`
	InsuranceEstimate *float64 `json:"insurance_estimate,omitempty"`
	PatientPortion    *float64 `json:"patient_portion,omitempty"`
}

type TreatmentSection struct {
	ActivePlans []TreatmentPlan `json:"active_plans"`
}

type TreatmentPlan struct {
	Name             string             `json:"name,omitempty"`
	Created          string             `json:"created,omitempty"`
	Procedures       []PlannedProcedure `json:"procedures"`
	TotalFee         *float64           `json:"total_fee,omitempty"`
	InsurancePortion *float64           `json:"insurance_portion,omitempty"`
	PatientPortion   *float64           `json:"patient_portion,omitempty"`
}

type PlannedProcedure struct {
	Code        string   `json:"code,omitempty"`
	Description string   `json:"description,omitempty"`
	ToothNumber *int     `json:"tooth_number,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	Fee         *float64 `json:"fee,omitempty"`
}

type AppointmentsSection struct {
	Past      []Appointment `json:"past"`
	Scheduled []Appointment `json:"scheduled"`
	Next      *Appointment  `json:"next,omitempty"`
}

type Appointment struct {
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Provider    string `json:"provider,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Normalize applies the boundary defaults so every tab renders from non-nil
// collections and plans without carriers disappear before rendering.
func (r *PatientReport) Normalize() {
	if r.Family == nil {
		r.Family = []FamilyMember{}
	}
	if !r.Insurance.Primary.Renderable() {
		r.Insurance.Primary = nil
	}
	if !r.Insurance.Secondary.Renderable() {
		r.Insurance.Secondary = nil
	}
	if r.Insurance.Primary != nil && r.Insurance.Primary.CoveragePercentages == nil {
		r.Insurance.Primary.CoveragePercentages = map[string]float64{}
	}
	if r.Insurance.Secondary != nil && r.Insurance.Secondary.CoveragePercentages == nil {
		r.Insurance.Secondary.CoveragePercentages = map[string]float64{}
	}
	if r.Account.Transactions == nil {
		r.Account.Transactions = []Transaction{}
	}
	if r.Account.Claims == nil {
		r.Account.Claims = []Claim{}
	}
	if r.Treatment.ActivePlans == nil {
		r.Treatment.ActivePlans = []TreatmentPlan{}
	}
	for i := range r.Treatment.ActivePlans {
		if r.Treatment.ActivePlans[i].Procedures == nil {
			r.Treatment.ActivePlans[i].Procedures = []PlannedProcedure{}
		}
	}
	if r.Appointments.Past == nil {
		r.Appointments.Past = []Appointment{}
	}
	if r.Appointments.Scheduled == nil {
		r.Appointments.Scheduled = []Appointment{}
	}
}
