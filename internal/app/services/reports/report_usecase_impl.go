package reports

import (
	"context"
	"fmt"

	"dentalbridge-service/internal/app/contracts"
	"dentalbridge-service/internal/pkg/constvars"
	"dentalbridge-service/internal/pkg/dto/responses"
	"dentalbridge-service/internal/pkg/exceptions"
	"dentalbridge-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type reportUsecase struct {
	OpenDentalClient contracts.OpenDentalClient
	Log              *zap.Logger
}

func NewReportUsecase(openDentalClient contracts.OpenDentalClient, logger *zap.Logger) contracts.ReportUsecase {
	return &reportUsecase{
		OpenDentalClient: openDentalClient,
		Log:              logger,
	}
}

func (uc *reportUsecase) GetPatientReport(ctx context.Context, patientName string) (*responses.PatientReport, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	report, err := uc.OpenDentalClient.GetPatientReport(ctx, patientName)
	if err != nil {
		return nil, "", err
	}
	if report == nil {
		uc.Log.Warn("reportUsecase.GetPatientReport backend returned no report object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientNameKey, patientName),
		)
		return nil, "", exceptions.ErrNoReportData()
	}

	report.Normalize()

	name := utils.TextOrPlaceholder(report.Demographics.Name)
	summary := fmt.Sprintf("Patient report for %s: %d scheduled appointment(s), account balance %s",
		name, len(report.Appointments.Scheduled), utils.FormatMoney(report.Account.Balance.Total))
	return report, summary, nil
}
