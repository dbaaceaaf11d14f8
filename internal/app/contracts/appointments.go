package contracts

import (
	"careslot-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentUsecase interface {
	FindRecentSummaries(ctx context.Context) ([]responses.AppointmentSummary, error)
	FindPatientDirectory(ctx context.Context) ([]responses.PatientSummary, error)
}
