package appointments

import (
	"careslot-service/internal/app/contracts"
	"careslot-service/internal/app/models"
	"careslot-service/internal/pkg/constvars"
	"careslot-service/internal/pkg/dto/responses"
	"careslot-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentFhirClient contracts.AppointmentFhirClient
	PatientFhirClient     contracts.PatientFhirClient
	SlotCatalog           *models.SlotCatalog
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentFhirClient contracts.AppointmentFhirClient,
	patientFhirClient contracts.PatientFhirClient,
	slotCatalog *models.SlotCatalog,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentFhirClient: appointmentFhirClient,
			PatientFhirClient:     patientFhirClient,
			SlotCatalog:           slotCatalog,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

// FindRecentSummaries fetches the most recent appointments with their
// patients and slots included, then flattens each into the admin summary.
// Missing included resources degrade to sentinels instead of failing the
// whole listing.
func (uc *appointmentUsecase) FindRecentSummaries(ctx context.Context) ([]responses.AppointmentSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindRecentSummaries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, resources, err := uc.AppointmentFhirClient.FindRecentWithIncludes(ctx, constvars.DefaultRecentAppointmentCount)
	if err != nil {
		return nil, err
	}

	summaries := make([]responses.AppointmentSummary, 0, len(appointments))
	for _, appointment := range appointments {
		summaries = append(summaries, utils.BuildAppointmentSummary(appointment, resources, uc.SlotCatalog))
	}

	uc.Log.Info("appointmentUsecase.FindRecentSummaries succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(summaries)),
	)
	return summaries, nil
}

func (uc *appointmentUsecase) FindPatientDirectory(ctx context.Context) ([]responses.PatientSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindPatientDirectory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bundle, err := uc.PatientFhirClient.FindAllPatients(ctx)
	if err != nil {
		return nil, err
	}

	directory := utils.MapPatientDirectory(bundle)

	uc.Log.Info("appointmentUsecase.FindPatientDirectory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(directory)),
	)
	return directory, nil
}
