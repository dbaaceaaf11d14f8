package contracts

import (
	"careslot-service/internal/pkg/fhir_dto"
	"context"
	"encoding/json"
)

// RawUpstreamResponse carries an upstream FHIR reply verbatim for the
// passthrough endpoint.
type RawUpstreamResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type AppointmentFhirClient interface {
	CreateAppointment(ctx context.Context, appointment *fhir_dto.Appointment) (*fhir_dto.Appointment, error)
	CreateAppointmentRaw(ctx context.Context, body []byte) (*RawUpstreamResponse, error)
	// FindRecentWithIncludes fetches the most recent appointments together
	// with their _include'd Patient and Slot resources. The map is keyed
	// "<ResourceType>/<id>".
	FindRecentWithIncludes(ctx context.Context, count int) ([]fhir_dto.Appointment, map[string]json.RawMessage, error)
}
