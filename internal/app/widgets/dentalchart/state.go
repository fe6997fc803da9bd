package dentalchart

import (
	"strconv"
	"strings"

	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/dto/responses"
	"dentalbridge-service/internal/pkg/utils"
)

type Tab string

const (
	TabTeeth      Tab = "teeth"
	TabProcedures Tab = "procedures"
	TabClinical   Tab = "clinical"
)

// State holds the UI state of one dental chart instance.
type State struct {
	chart *responses.PatientChart

	ActiveTab       Tab
	SelectedTooth   int // 0 means no detail panel
	ProcedureFilter string
}

type ToothCell struct {
	Number    int    `json:"number"`
	Condition string `json:"condition"`
	Color     string `json:"color"`
	Dashed    bool   `json:"dashed"`
	Selected  bool   `json:"selected"`
	HasRecord bool   `json:"has_record"`
}

type ToothDetail struct {
	Number    int    `json:"number"`
	Condition string `json:"condition"`
	Surface   string `json:"surface"`
	Notes     string `json:"notes"`
}

type QuadrantCard struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Summary string `json:"summary"`
}

type ClinicalSection struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

func NewState(chart *responses.PatientChart) *State {
	if chart == nil {
		chart = &responses.PatientChart{}
	}
	chart.Normalize()
	return &State{
		chart:           chart,
		ActiveTab:       TabTeeth,
		ProcedureFilter: constvars.ProcedureFilterAll,
	}
}

func (s *State) SetTab(tab Tab) {
	switch tab {
	case TabTeeth, TabProcedures, TabClinical:
		s.ActiveTab = tab
	}
}

// SelectTooth toggles the detail panel: selecting the selected tooth again
// closes it. Numbers outside 1-32 are ignored.
func (s *State) SelectTooth(number int) {
	if number < constvars.ToothNumberMin || number > constvars.ToothNumberMax {
		return
	}
	if s.SelectedTooth == number {
		s.SelectedTooth = 0
		return
	}
	s.SelectedTooth = number
}

// UpperArch renders teeth 1-16 left to right.
func (s *State) UpperArch() []ToothCell {
	cells := make([]ToothCell, 0, 16)
	for number := constvars.UpperArchFirst; number <= constvars.UpperArchLast; number++ {
		cells = append(cells, s.cell(number))
	}
	return cells
}

// LowerArch renders teeth 32 down to 17, mirroring the upper row.
func (s *State) LowerArch() []ToothCell {
	cells := make([]ToothCell, 0, 16)
	for number := constvars.LowerArchFirst; number >= constvars.LowerArchLast; number-- {
		cells = append(cells, s.cell(number))
	}
	return cells
}

func (s *State) cell(number int) ToothCell {
	record, ok := s.chart.ToothChart.Teeth[strconv.Itoa(number)]
	condition := record.Condition
	if !ok || strings.TrimSpace(condition) == "" {
		condition = "healthy"
	}
	return ToothCell{
		Number:    number,
		Condition: condition,
		Color:     ConditionColor(condition),
		Dashed:    IsMissing(condition),
		Selected:  s.SelectedTooth == number,
		HasRecord: ok,
	}
}

// SelectedDetail returns the detail panel content, nil when closed.
func (s *State) SelectedDetail() *ToothDetail {
	if s.SelectedTooth == 0 {
		return nil
	}
	record := s.chart.ToothChart.Teeth[strconv.Itoa(s.SelectedTooth)]
	condition := record.Condition
	if strings.TrimSpace(condition) == "" {
		condition = "healthy"
	}
	return &ToothDetail{
		Number:    s.SelectedTooth,
		Condition: condition,
		Surface:   utils.TextOrPlaceholder(record.Surface),
		Notes:     utils.TextOrPlaceholder(record.Notes),
	}
}

// QuadrantCards always returns the four fixed cards in reading order.
func (s *State) QuadrantCards() []QuadrantCard {
	quadrants := []struct {
		key   string
		label string
	}{
		{constvars.QuadrantUpperRight, "Upper Right"},
		{constvars.QuadrantUpperLeft, "Upper Left"},
		{constvars.QuadrantLowerLeft, "Lower Left"},
		{constvars.QuadrantLowerRight, "Lower Right"},
	}

	cards := make([]QuadrantCard, 0, len(quadrants))
	for _, quadrant := range quadrants {
		cards = append(cards, QuadrantCard{
			Key:     quadrant.key,
			Label:   quadrant.label,
			Summary: utils.TextOrPlaceholder(s.chart.ToothChart.Quadrants[quadrant.key]),
		})
	}
	return cards
}

func (s *State) SetProcedureFilter(filter string) {
	switch filter {
	case constvars.ProcedureFilterAll, constvars.ProcedureFilterCompleted, constvars.ProcedureFilterPlanned:
		s.ProcedureFilter = filter
	}
}

// VisibleProcedures applies the three-way status filter: "complet" marks
// completed rows, "plan" or "tp" marks planned ones.
func (s *State) VisibleProcedures() []responses.Procedure {
	if s.ProcedureFilter == constvars.ProcedureFilterAll {
		return s.chart.Procedures
	}

	result := []responses.Procedure{}
	for _, procedure := range s.chart.Procedures {
		status := strings.ToLower(procedure.Status)
		switch s.ProcedureFilter {
		case constvars.ProcedureFilterCompleted:
			if strings.Contains(status, "complet") {
				result = append(result, procedure)
			}
		case constvars.ProcedureFilterPlanned:
			if strings.Contains(status, "plan") || strings.Contains(status, "tp") {
				result = append(result, procedure)
			}
		}
	}
	return result
}

// SummaryCounters are read directly from the payload, never recomputed.
func (s *State) SummaryCounters() responses.ProcedureSummary {
	return s.chart.ProcedureSummary
}

// ClinicalSections returns only the non-empty sections, in the fixed order.
func (s *State) ClinicalSections() []ClinicalSection {
	sections := []ClinicalSection{}
	for _, key := range ClinicalSectionOrder {
		text := strings.TrimSpace(s.chart.ClinicalExplanation[key])
		if text == "" {
			continue
		}
		sections = append(sections, ClinicalSection{
			Key:   key,
			Title: sectionTitle(key),
			Text:  text,
		})
	}
	return sections
}

func sectionTitle(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
