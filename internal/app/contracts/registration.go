package contracts

import (
	"careslot-service/internal/pkg/dto/requests"
	"careslot-service/internal/pkg/dto/responses"
	"context"
)

type RegistrationUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Registration, error)
}
