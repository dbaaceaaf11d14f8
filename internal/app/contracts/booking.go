package contracts

import (
	"careslot-service/internal/pkg/dto/requests"
	"careslot-service/internal/pkg/dto/responses"
	"context"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.Booking, error)
}
