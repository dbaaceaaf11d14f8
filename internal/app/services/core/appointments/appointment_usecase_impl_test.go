package appointments

import (
	"careslot-service/internal/app/contracts"
	"careslot-service/internal/app/models"
	"careslot-service/internal/pkg/constvars"
	"careslot-service/internal/pkg/exceptions"
	"careslot-service/internal/pkg/fhir_dto"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentFhirClient struct {
	mock.Mock
}

func (m *MockAppointmentFhirClient) CreateAppointment(ctx context.Context, appointment *fhir_dto.Appointment) (*fhir_dto.Appointment, error) {
	args := m.Called(ctx, appointment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fhir_dto.Appointment), args.Error(1)
}

func (m *MockAppointmentFhirClient) CreateAppointmentRaw(ctx context.Context, body []byte) (*contracts.RawUpstreamResponse, error) {
	args := m.Called(ctx, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.RawUpstreamResponse), args.Error(1)
}

func (m *MockAppointmentFhirClient) FindRecentWithIncludes(ctx context.Context, count int) ([]fhir_dto.Appointment, map[string]json.RawMessage, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]fhir_dto.Appointment), args.Get(1).(map[string]json.RawMessage), args.Error(2)
}

type MockPatientFhirClient struct {
	mock.Mock
}

func (m *MockPatientFhirClient) FindAllPatients(ctx context.Context) (fhir_dto.Bundle, error) {
	args := m.Called(ctx)
	return args.Get(0).(fhir_dto.Bundle), args.Error(1)
}

func (m *MockPatientFhirClient) FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fhir_dto.Patient), args.Error(1)
}

func (m *MockPatientFhirClient) CreatePatient(ctx context.Context, patient *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fhir_dto.Patient), args.Error(1)
}

func newAppointmentUsecaseForTest(appointmentClient *MockAppointmentFhirClient, patientClient *MockPatientFhirClient) *appointmentUsecase {
	return &appointmentUsecase{
		AppointmentFhirClient: appointmentClient,
		PatientFhirClient:     patientClient,
		SlotCatalog:           models.DefaultSlotCatalog(),
		Log:                   zap.NewNop(),
	}
}

func TestAppointmentUsecase_FindRecentSummaries(t *testing.T) {
	t.Run("Joins appointments with included patients", func(t *testing.T) {
		appointmentClient := new(MockAppointmentFhirClient)
		patientClient := new(MockPatientFhirClient)
		uc := newAppointmentUsecaseForTest(appointmentClient, patientClient)

		patientRaw, _ := json.Marshal(fhir_dto.Patient{
			ResourceType: constvars.ResourcePatient,
			ID:           "p1",
			Name:         []fhir_dto.HumanName{{Text: "Chen Wei"}},
		})
		appointmentClient.On("FindRecentWithIncludes", mock.Anything, constvars.DefaultRecentAppointmentCount).
			Return([]fhir_dto.Appointment{
				{
					ResourceType: constvars.ResourceAppointment,
					ID:           "appt-1",
					Status:       constvars.FhirAppointmentStatusBooked,
					Slot:         []fhir_dto.Reference{{Reference: "Slot/52229"}},
					Participant: []fhir_dto.AppointmentParticipant{
						{Actor: fhir_dto.Reference{Reference: "Patient/p1"}},
					},
				},
			}, map[string]json.RawMessage{"Patient/p1": patientRaw}, nil)

		summaries, err := uc.FindRecentSummaries(context.Background())

		assert.NoError(t, err)
		assert.Len(t, summaries, 1)
		assert.Equal(t, "appt-1", summaries[0].AppointmentID)
		assert.Equal(t, "Chen Wei", summaries[0].PatientName)
		assert.Equal(t, "上午 10:00 - 12:00", summaries[0].SlotDisplay)
	})

	t.Run("Upstream failure surfaces to the caller", func(t *testing.T) {
		appointmentClient := new(MockAppointmentFhirClient)
		patientClient := new(MockPatientFhirClient)
		uc := newAppointmentUsecaseForTest(appointmentClient, patientClient)

		appointmentClient.On("FindRecentWithIncludes", mock.Anything, mock.Anything).
			Return(nil, nil, exceptions.ErrGetFHIRResource(errors.New("upstream down"), constvars.ResourceAppointment))

		summaries, err := uc.FindRecentSummaries(context.Background())

		assert.Error(t, err)
		assert.Nil(t, summaries)
	})
}

func TestAppointmentUsecase_FindPatientDirectory(t *testing.T) {
	t.Run("Maps the patient bundle", func(t *testing.T) {
		appointmentClient := new(MockAppointmentFhirClient)
		patientClient := new(MockPatientFhirClient)
		uc := newAppointmentUsecaseForTest(appointmentClient, patientClient)

		patientRaw, _ := json.Marshal(fhir_dto.Patient{
			ResourceType: constvars.ResourcePatient,
			ID:           "p1",
			Name:         []fhir_dto.HumanName{{Text: "Chen Wei"}},
		})
		patientClient.On("FindAllPatients", mock.Anything).
			Return(fhir_dto.Bundle{
				ResourceType: constvars.ResourceBundle,
				Entry:        []fhir_dto.BundleEntry{{Resource: patientRaw}},
			}, nil)

		directory, err := uc.FindPatientDirectory(context.Background())

		assert.NoError(t, err)
		assert.Len(t, directory, 1)
		assert.Equal(t, "p1", directory[0].ID)
		assert.Equal(t, "Chen Wei", directory[0].Name)
	})

	t.Run("Upstream failure surfaces to the caller", func(t *testing.T) {
		appointmentClient := new(MockAppointmentFhirClient)
		patientClient := new(MockPatientFhirClient)
		uc := newAppointmentUsecaseForTest(appointmentClient, patientClient)

		patientClient.On("FindAllPatients", mock.Anything).
			Return(fhir_dto.Bundle{}, exceptions.ErrGetFHIRResource(errors.New("upstream down"), constvars.ResourcePatient))

		directory, err := uc.FindPatientDirectory(context.Background())

		assert.Error(t, err)
		assert.Nil(t, directory)
	})
}
