package contracts

import (
	"context"

	"dentalbridge-service/internal/pkg/dto/responses"
)

// OpenDentalClient is the backend caller. One HTTP attempt per call, no
// retries; the per-tool timeout is enforced inside the client. Chart and
// report lookups return (nil, nil) when the backend answered successfully
// but without the promised sub-object.
type OpenDentalClient interface {
	ListPatients(ctx context.Context) (*responses.PatientList, error)
	GetPatientChart(ctx context.Context, patientName string) (*responses.PatientChart, error)
	GetPatientReport(ctx context.Context, patientName string) (*responses.PatientReport, error)
}
