package contracts

import (
	"careslot-service/internal/pkg/fhir_dto"
	"context"
)

type PatientFhirClient interface {
	FindAllPatients(ctx context.Context) (fhir_dto.Bundle, error)
	FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error)
	CreatePatient(ctx context.Context, patient *fhir_dto.Patient) (*fhir_dto.Patient, error)
}
