package contracts

import (
	"careslot-service/internal/pkg/fhir_dto"
	"context"
)

type PersonFhirClient interface {
	FindPersonByIdentifier(ctx context.Context, email string) ([]fhir_dto.Person, error)
	FindPersonByEmail(ctx context.Context, email string) ([]fhir_dto.Person, error)
	CreatePerson(ctx context.Context, person *fhir_dto.Person) (*fhir_dto.Person, error)
}
