package patientlist

import (
	"fmt"
	"testing"

	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
)

func makePatients(n int) []responses.Patient {
	patients := make([]responses.Patient, 0, n)
	for i := 0; i < n; i++ {
		patients = append(patients, responses.Patient{
			PatientID: int64(i + 1),
			FirstName: fmt.Sprintf("First%02d", i),
			LastName:  fmt.Sprintf("Last%02d", i),
			Age:       20 + i,
			City:      fmt.Sprintf("City%02d", i%3),
		})
	}
	return patients
}

func TestState_Visible(t *testing.T) {
	t.Run("paginates at ten rows per page", func(t *testing.T) {
		state := NewState(makePatients(25))

		view := state.Visible()
		assert.Len(t, view.Rows, 10)
		assert.Equal(t, 1, view.Page)
		assert.Equal(t, 3, view.TotalPages)
		assert.Equal(t, 25, view.TotalRows)

		state.SetPage(3)
		view = state.Visible()
		assert.Len(t, view.Rows, 5)
		assert.Equal(t, 3, view.Page)
	})

	t.Run("clamps out-of-range pages", func(t *testing.T) {
		state := NewState(makePatients(25))

		state.SetPage(99)
		assert.Equal(t, 3, state.Visible().Page)

		state.SetPage(-4)
		assert.Equal(t, 1, state.Visible().Page)
	})

	t.Run("an empty list still renders page one of one", func(t *testing.T) {
		state := NewState(nil)

		view := state.Visible()
		assert.Empty(t, view.Rows)
		assert.Equal(t, 1, view.Page)
		assert.Equal(t, 1, view.TotalPages)
	})
}

func TestState_Search(t *testing.T) {
	patients := []responses.Patient{
		{FirstName: "Jane", LastName: "Doe", City: "Springfield"},
		{FirstName: "John", LastName: "Smith", City: "Shelbyville", WirelessPhone: "555-0101"},
		{FirstName: "Mary", LastName: "Johnson", City: "Springfield"},
	}

	t.Run("matches name, city and phone case-insensitively", func(t *testing.T) {
		state := NewState(patients)

		state.SetSearch("jane")
		assert.Len(t, state.Visible().Rows, 1)

		state.SetSearch("SPRINGFIELD")
		assert.Len(t, state.Visible().Rows, 2)

		state.SetSearch("555-0101")
		rows := state.Visible().Rows
		assert.Len(t, rows, 1)
		assert.Equal(t, "Smith", rows[0].LastName)
	})

	t.Run("clamps the page when the result set shrinks", func(t *testing.T) {
		state := NewState(makePatients(25))
		state.SetPage(3)

		state.SetSearch("First00")
		view := state.Visible()
		assert.Equal(t, 1, view.Page)
		assert.Len(t, view.Rows, 1)
	})

	t.Run("search and sort compose on the visible set", func(t *testing.T) {
		state := NewState([]responses.Patient{
			{FirstName: "Jane", LastName: "Doe", City: "Springfield"},
			{FirstName: "Adam", LastName: "Archer", City: "Springfield"},
			{FirstName: "Mary", LastName: "Johnson", City: "Shelbyville"},
		})
		state.SetSearch("springfield")
		state.ToggleSort(SortByFirstName)

		rows := state.Visible().Rows
		assert.Len(t, rows, 2)
		assert.Equal(t, "Adam", rows[0].FirstName)
		assert.Equal(t, "Jane", rows[1].FirstName)
	})

	t.Run("does not mutate the source ordering", func(t *testing.T) {
		state := NewState(patients)
		state.ToggleSort(SortByFirstName)
		state.ToggleSort(SortByFirstName) // descending

		_ = state.Visible()
		assert.Equal(t, "Doe", patients[0].LastName)
	})
}

func TestState_ToggleSort(t *testing.T) {
	t.Run("flips direction on the active key", func(t *testing.T) {
		state := NewState(makePatients(5))
		assert.Equal(t, SortByLastName, state.SortBy)
		assert.Equal(t, Ascending, state.Direction)

		state.ToggleSort(SortByLastName)
		assert.Equal(t, Descending, state.Direction)

		state.ToggleSort(SortByLastName)
		assert.Equal(t, Ascending, state.Direction)
	})

	t.Run("resets to ascending on a new key", func(t *testing.T) {
		state := NewState(makePatients(5))
		state.ToggleSort(SortByLastName) // descending

		state.ToggleSort(SortByAge)
		assert.Equal(t, SortByAge, state.SortBy)
		assert.Equal(t, Ascending, state.Direction)
	})

	t.Run("orders rows by the selected key", func(t *testing.T) {
		state := NewState([]responses.Patient{
			{FirstName: "A", LastName: "Zimmer", Age: 30},
			{FirstName: "B", LastName: "Abbott", Age: 60},
			{FirstName: "C", LastName: "Miller", Age: 45},
		})

		rows := state.Visible().Rows
		assert.Equal(t, "Abbott", rows[0].LastName)

		state.ToggleSort(SortByAge)
		state.ToggleSort(SortByAge) // descending
		rows = state.Visible().Rows
		assert.Equal(t, 60, rows[0].Age)
	})

	t.Run("keeps ties stable", func(t *testing.T) {
		state := NewState([]responses.Patient{
			{PatientID: 1, FirstName: "A", LastName: "Same"},
			{PatientID: 2, FirstName: "B", LastName: "Same"},
			{PatientID: 3, FirstName: "C", LastName: "Same"},
		})

		rows := state.Visible().Rows
		assert.Equal(t, int64(1), rows[0].PatientID)
		assert.Equal(t, int64(2), rows[1].PatientID)
		assert.Equal(t, int64(3), rows[2].PatientID)
	})
}

func TestState_DrillDownRequests(t *testing.T) {
	state := NewState(nil)
	patient := responses.Patient{FirstName: "Jane", LastName: "Doe"}

	chartRequest := state.ChartRequest(patient)
	assert.Equal(t, constvars.ToolGetPatientChart, chartRequest.Tool)
	assert.Equal(t, "Jane Doe", chartRequest.PatientName)

	reportRequest := state.ReportRequest(patient)
	assert.Equal(t, constvars.ToolGetReports, reportRequest.Tool)
	assert.Equal(t, "Jane Doe", reportRequest.PatientName)
}
