package slots

import (
	"careslot-service/internal/app/contracts"
	"careslot-service/internal/app/models"
	"careslot-service/internal/pkg/constvars"
	"careslot-service/internal/pkg/dto/responses"
	"careslot-service/internal/pkg/fhir_dto"
	"careslot-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	slotUsecaseInstance contracts.SlotUsecase
	onceSlotUsecase     sync.Once
)

type slotUsecase struct {
	SlotFhirClient contracts.SlotFhirClient
	SlotCatalog    *models.SlotCatalog
	Log            *zap.Logger
}

func NewSlotUsecase(
	slotFhirClient contracts.SlotFhirClient,
	slotCatalog *models.SlotCatalog,
	logger *zap.Logger,
) contracts.SlotUsecase {
	onceSlotUsecase.Do(func() {
		slotUsecaseInstance = &slotUsecase{
			SlotFhirClient: slotFhirClient,
			SlotCatalog:    slotCatalog,
			Log:            logger,
		}
	})
	return slotUsecaseInstance
}

// FindSlots serves the configured catalog by default. When fromUpstream is
// set it queries the FHIR server for free slots instead, resolving each
// display through the catalog.
func (uc *slotUsecase) FindSlots(ctx context.Context, fromUpstream bool) ([]responses.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.FindSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("from_upstream", fromUpstream),
	)

	if !fromUpstream {
		return utils.MapCatalogSlots(uc.SlotCatalog), nil
	}

	fhirSlots, err := uc.SlotFhirClient.FindSlotsByStatus(ctx, fhir_dto.SlotStatusFree)
	if err != nil {
		return nil, err
	}

	slots := utils.MapFhirSlots(fhirSlots, uc.SlotCatalog)
	uc.Log.Info("slotUsecase.FindSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(slots)),
	)
	return slots, nil
}
