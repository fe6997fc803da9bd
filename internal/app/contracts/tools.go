package contracts

import (
	"context"

	"dentalbridge-service/internal/pkg/dto/responses"
)

// Tool usecases return the normalized payload plus the one-line summary the
// agent runtime shows next to the widget.
type PatientUsecase interface {
	ListPatients(ctx context.Context) (*responses.PatientList, string, error)
}

type ChartUsecase interface {
	GetPatientChart(ctx context.Context, patientName string) (*responses.PatientChart, string, error)
}

type ReportUsecase interface {
	GetPatientReport(ctx context.Context, patientName string) (*responses.PatientReport, string, error)
}
