package patientreport

import (
	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/dto/responses"
	"dentalbridge-service/internal/pkg/utils"
)

type Tab string

const (
	TabOverview     Tab = "overview"
	TabFamily       Tab = "family"
	TabInsurance    Tab = "insurance"
	TabAccount      Tab = "account"
	TabTreatment    Tab = "treatment"
	TabAppointments Tab = "appointments"
)

// State holds the UI state of one patient report instance. Tabs are pure
// renderings of their payload sub-object; only the account tab carries
// pagination state.
type State struct {
	report *responses.PatientReport

	ActiveTab   Tab
	AccountPage int
}

// AccountView is the derived page of the transactions table.
type AccountView struct {
	Rows       []responses.Transaction `json:"rows"`
	Page       int                     `json:"page"`
	TotalPages int                     `json:"total_pages"`
	TotalRows  int                     `json:"total_rows"`
}

func NewState(report *responses.PatientReport) *State {
	if report == nil {
		report = &responses.PatientReport{}
	}
	report.Normalize()
	return &State{
		report:      report,
		ActiveTab:   TabOverview,
		AccountPage: 1,
	}
}

func (s *State) SetTab(tab Tab) {
	switch tab {
	case TabOverview, TabFamily, TabInsurance, TabAccount, TabTreatment, TabAppointments:
		s.ActiveTab = tab
	}
}

func (s *State) SetAccountPage(page int) {
	s.AccountPage = utils.ClampPage(page, len(s.report.Account.Transactions), constvars.AccountTransactionPageSize)
}

// Account derives the current transactions page at 15 rows per page.
func (s *State) Account() AccountView {
	transactions := s.report.Account.Transactions
	total := len(transactions)
	page := utils.ClampPage(s.AccountPage, total, constvars.AccountTransactionPageSize)
	totalPages := utils.TotalPages(total, constvars.AccountTransactionPageSize)

	start := (page - 1) * constvars.AccountTransactionPageSize
	end := start + constvars.AccountTransactionPageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return AccountView{
		Rows:       transactions[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalRows:  total,
	}
}

// InsurancePlans returns only plans with a carrier name, primary first.
func (s *State) InsurancePlans() []*responses.InsurancePlan {
	plans := []*responses.InsurancePlan{}
	if s.report.Insurance.Primary.Renderable() {
		plans = append(plans, s.report.Insurance.Primary)
	}
	if s.report.Insurance.Secondary.Renderable() {
		plans = append(plans, s.report.Insurance.Secondary)
	}
	return plans
}

func (s *State) Demographics() responses.Demographics {
	return s.report.Demographics
}

func (s *State) Family() []responses.FamilyMember {
	return s.report.Family
}

func (s *State) Treatment() responses.TreatmentSection {
	return s.report.Treatment
}

func (s *State) Appointments() responses.AppointmentsSection {
	return s.report.Appointments
}

// NextAppointment prefers the payload's next pointer, falling back to the
// first scheduled entry.
func (s *State) NextAppointment() *responses.Appointment {
	if s.report.Appointments.Next != nil {
		return s.report.Appointments.Next
	}
	if len(s.report.Appointments.Scheduled) > 0 {
		return &s.report.Appointments.Scheduled[0]
	}
	return nil
}
