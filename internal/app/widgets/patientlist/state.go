package patientlist

import (
	"sort"
	"strings"

	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/dto/responses"
	"dentalbridge-service/internal/pkg/utils"
)

type SortKey string

const (
	SortByLastName  SortKey = "last_name"
	SortByFirstName SortKey = "first_name"
	SortByAge       SortKey = "age"
	SortByCity      SortKey = "city"
	SortByStatus    SortKey = "status"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// State holds the UI state of one patient list instance. Derivation is pure:
// filter, then sort, then paginate, recomputed on every access.
type State struct {
	patients []responses.Patient

	Search    string
	SortBy    SortKey
	Direction SortDirection
	Page      int
}

// View is the derived slice of the list the widget actually renders.
type View struct {
	Rows       []responses.Patient `json:"rows"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"total_pages"`
	TotalRows  int                 `json:"total_rows"`
	Search     string              `json:"search"`
	SortBy     SortKey             `json:"sort_by"`
	Direction  SortDirection       `json:"sort_direction"`
}

func NewState(patients []responses.Patient) *State {
	if patients == nil {
		patients = []responses.Patient{}
	}
	return &State{
		patients:  patients,
		SortBy:    SortByLastName,
		Direction: Ascending,
		Page:      1,
	}
}

// SetSearch updates the query and clamps the page against the shrunken
// result set.
func (s *State) SetSearch(query string) {
	s.Search = query
	s.Page = utils.ClampPage(s.Page, len(s.filtered()), constvars.PatientListPageSize)
}

// ToggleSort flips direction when the key is already active, otherwise
// switches key and resets to ascending.
func (s *State) ToggleSort(key SortKey) {
	if key == s.SortBy {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return
	}
	s.SortBy = key
	s.Direction = Ascending
}

func (s *State) SetPage(page int) {
	s.Page = utils.ClampPage(page, len(s.filtered()), constvars.PatientListPageSize)
}

// Visible derives the current page: filter, then stable sort, then slice.
func (s *State) Visible() View {
	rows := s.sorted(s.filtered())

	total := len(rows)
	page := utils.ClampPage(s.Page, total, constvars.PatientListPageSize)
	totalPages := utils.TotalPages(total, constvars.PatientListPageSize)

	start := (page - 1) * constvars.PatientListPageSize
	end := start + constvars.PatientListPageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return View{
		Rows:       rows[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalRows:  total,
		Search:     s.Search,
		SortBy:     s.SortBy,
		Direction:  s.Direction,
	}
}

// ChartRequest is the typed drill-down for a row's "show chart" action.
func (s *State) ChartRequest(patient responses.Patient) responses.ToolRequest {
	return responses.ToolRequest{
		Tool:        constvars.ToolGetPatientChart,
		PatientName: patient.FullName(),
	}
}

// ReportRequest is the typed drill-down for a row's "show report" action.
func (s *State) ReportRequest(patient responses.Patient) responses.ToolRequest {
	return responses.ToolRequest{
		Tool:        constvars.ToolGetReports,
		PatientName: patient.FullName(),
	}
}

func (s *State) filtered() []responses.Patient {
	query := strings.ToLower(strings.TrimSpace(s.Search))
	if query == "" {
		result := make([]responses.Patient, len(s.patients))
		copy(result, s.patients)
		return result
	}

	var result []responses.Patient
	for _, patient := range s.patients {
		if strings.Contains(strings.ToLower(patient.FullName()), query) ||
			strings.Contains(strings.ToLower(patient.City), query) ||
			strings.Contains(strings.ToLower(patient.PreferredPhone()), query) {
			result = append(result, patient)
		}
	}
	return result
}

func (s *State) sorted(rows []responses.Patient) []responses.Patient {
	less := s.lessFunc()
	sort.SliceStable(rows, func(i, j int) bool {
		if s.Direction == Descending {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
	return rows
}

func (s *State) lessFunc() func(a, b responses.Patient) bool {
	switch s.SortBy {
	case SortByFirstName:
		return func(a, b responses.Patient) bool {
			return strings.ToLower(a.FirstName) < strings.ToLower(b.FirstName)
		}
	case SortByAge:
		return func(a, b responses.Patient) bool {
			return a.Age < b.Age
		}
	case SortByCity:
		return func(a, b responses.Patient) bool {
			return strings.ToLower(a.City) < strings.ToLower(b.City)
		}
	case SortByStatus:
		return func(a, b responses.Patient) bool {
			return strings.ToLower(a.Status) < strings.ToLower(b.Status)
		}
	default:
		return func(a, b responses.Patient) bool {
			return strings.ToLower(a.LastName) < strings.ToLower(b.LastName)
		}
	}
}
