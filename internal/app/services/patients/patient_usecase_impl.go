package patients

import (
	"context"
	"fmt"

	"dentalbridge-service/internal/app/contracts"
	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/dto/responses"
	"dentalbridge-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type patientUsecase struct {
	OpenDentalClient contracts.OpenDentalClient
	Log              *zap.Logger
}

func NewPatientUsecase(openDentalClient contracts.OpenDentalClient, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		OpenDentalClient: openDentalClient,
		Log:              logger,
	}
}

func (uc *patientUsecase) ListPatients(ctx context.Context) (*responses.PatientList, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	list, err := uc.OpenDentalClient.ListPatients(ctx)
	if err != nil {
		return nil, "", err
	}
	if list == nil {
		uc.Log.Warn("patientUsecase.ListPatients backend returned no patients object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, "", exceptions.ErrNoPatientData()
	}

	list.Normalize()

	summary := fmt.Sprintf("Found %d patient(s) in the practice management system", list.TotalCount)
	return list, summary, nil
}
