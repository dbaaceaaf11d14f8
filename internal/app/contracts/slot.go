package contracts

import (
	"careslot-service/internal/pkg/fhir_dto"
	"context"
)

type SlotFhirClient interface {
	FindSlotByID(ctx context.Context, slotID string) (*fhir_dto.Slot, error)
	FindSlotsByStatus(ctx context.Context, status fhir_dto.SlotStatus) ([]fhir_dto.Slot, error)
	UpdateSlot(ctx context.Context, slot *fhir_dto.Slot) (*fhir_dto.Slot, error)
}
