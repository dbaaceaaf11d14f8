package contracts

import (
	"careslot-service/internal/pkg/dto/responses"
	"context"
)

type SlotUsecase interface {
	// FindSlots returns the configured catalog, or the upstream free slots
	// when fromUpstream is set.
	FindSlots(ctx context.Context, fromUpstream bool) ([]responses.Slot, error)
}
