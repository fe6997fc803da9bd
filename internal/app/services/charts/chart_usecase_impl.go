package charts

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

type chartUsecase struct {
	OpenDentalClient contracts.OpenDentalClient
	Log              *zap.Logger
}

func NewChartUsecase(openDentalClient contracts.OpenDentalClient, logger *zap.Logger) contracts.ChartUsecase {
	return &chartUsecase{
		OpenDentalClient: openDentalClient,
		Log:              logger,
	}
}

func (uc *chartUsecase) GetPatientChart(ctx context.Context, patientName string) (*responses.PatientChart, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	chart, err := uc.OpenDentalClient.GetPatientChart(ctx, patientName)
	if err != nil {
		return nil, "", err
	}
	if chart == nil {
		uc.Log.Warn("chartUsecase.GetPatientChart backend returned no chart object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientNameKey, patientName),
		)
		return nil, "", exceptions.ErrNoChartData()
	}

	chart.Normalize()

	name := utils.TextOrPlaceholder(chart.PatientInfo.Name)
	summary := fmt.Sprintf("Dental chart for %s: %d teeth charted, %d condition(s) found, %d procedure(s) on record",
		name, chart.Summary.TotalTeethCharted, chart.Summary.ConditionsFound, chart.ProcedureSummary.Total)
	return chart, summary, nil
}
