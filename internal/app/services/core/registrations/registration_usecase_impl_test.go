package registrations

import (
	"careslot-service/internal/pkg/constvars"
	"careslot-service/internal/pkg/dto/requests"
	"careslot-service/internal/pkg/exceptions"
	"careslot-service/internal/pkg/fhir_dto"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPersonFhirClient struct {
	mock.Mock
}

func (m *MockPersonFhirClient) FindPersonByIdentifier(ctx context.Context, email string) ([]fhir_dto.Person, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fhir_dto.Person), args.Error(1)
}

func (m *MockPersonFhirClient) FindPersonByEmail(ctx context.Context, email string) ([]fhir_dto.Person, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fhir_dto.Person), args.Error(1)
}

func (m *MockPersonFhirClient) CreatePerson(ctx context.Context, person *fhir_dto.Person) (*fhir_dto.Person, error) {
	args := m.Called(ctx, person)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fhir_dto.Person), args.Error(1)
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

func newRegistrationUsecaseForTest(personClient *MockPersonFhirClient, patientClient *MockPatientFhirClient) *registrationUsecase {
	return &registrationUsecase{
		PersonFhirClient:  personClient,
		PatientFhirClient: patientClient,
		Log:               zap.NewNop(),
	}
}

func TestRegistrationUsecase_RegisterPatient(t *testing.T) {
	request := &requests.RegisterPatient{
		Name:      "Lin Mei",
		Email:     "Lin.Mei@Example.com",
		Gender:    "female",
		BirthDate: "1990-04-12",
		Phone:     "+886912345678",
	}

	t.Run("Creates patient then linked person", func(t *testing.T) {
		personClient := new(MockPersonFhirClient)
		patientClient := new(MockPatientFhirClient)
		uc := newRegistrationUsecaseForTest(personClient, patientClient)

		personClient.On("FindPersonByIdentifier", mock.Anything, "lin.mei@example.com").
			Return([]fhir_dto.Person{}, nil)
		patientClient.On("CreatePatient", mock.Anything, mock.AnythingOfType("*fhir_dto.Patient")).
			Return(&fhir_dto.Patient{ID: "patient-7"}, nil)
		personClient.On("CreatePerson", mock.Anything, mock.AnythingOfType("*fhir_dto.Person")).
			Return(&fhir_dto.Person{ID: "person-7"}, nil)

		response, err := uc.RegisterPatient(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "patient-7", response.PatientID)
		assert.Equal(t, "person-7", response.PersonID)

		personClient.AssertCalled(t, "CreatePerson", mock.Anything, mock.MatchedBy(func(person *fhir_dto.Person) bool {
			return person.LinkedPatientID() == "patient-7" &&
				len(person.Identifier) == 1 &&
				person.Identifier[0].System == constvars.FhirIdentifierEmailSystem &&
				person.Identifier[0].Value == "lin.mei@example.com"
		}))
	})

	t.Run("Rejects duplicate email with conflict", func(t *testing.T) {
		personClient := new(MockPersonFhirClient)
		patientClient := new(MockPatientFhirClient)
		uc := newRegistrationUsecaseForTest(personClient, patientClient)

		personClient.On("FindPersonByIdentifier", mock.Anything, "lin.mei@example.com").
			Return([]fhir_dto.Person{{ID: "person-existing"}}, nil)

		response, err := uc.RegisterPatient(context.Background(), request)

		assert.Error(t, err)
		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		patientClient.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate check failure aborts before any write", func(t *testing.T) {
		personClient := new(MockPersonFhirClient)
		patientClient := new(MockPatientFhirClient)
		uc := newRegistrationUsecaseForTest(personClient, patientClient)

		personClient.On("FindPersonByIdentifier", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrGetFHIRResource(errors.New("upstream down"), constvars.ResourcePerson))

		response, err := uc.RegisterPatient(context.Background(), request)

		assert.Error(t, err)
		assert.Nil(t, response)
		patientClient.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything)
		personClient.AssertNotCalled(t, "CreatePerson", mock.Anything, mock.Anything)
	})

	t.Run("Person creation failure surfaces after patient exists", func(t *testing.T) {
		personClient := new(MockPersonFhirClient)
		patientClient := new(MockPatientFhirClient)
		uc := newRegistrationUsecaseForTest(personClient, patientClient)

		personClient.On("FindPersonByIdentifier", mock.Anything, mock.Anything).
			Return([]fhir_dto.Person{}, nil)
		patientClient.On("CreatePatient", mock.Anything, mock.Anything).
			Return(&fhir_dto.Patient{ID: "patient-8"}, nil)
		personClient.On("CreatePerson", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrCreateFHIRResource(errors.New("rejected"), constvars.ResourcePerson))

		response, err := uc.RegisterPatient(context.Background(), request)

		assert.Error(t, err)
		assert.Nil(t, response)
	})
}

func TestRegistrationUsecase_BuildPatient(t *testing.T) {
	uc := newRegistrationUsecaseForTest(new(MockPersonFhirClient), new(MockPatientFhirClient))

	t.Run("Defaults gender to unknown", func(t *testing.T) {
		patient := uc.buildPatient(&requests.RegisterPatient{Name: "A", Email: "a@example.com"}, "a@example.com")

		assert.Equal(t, constvars.FhirGenderUnknown, patient.Gender)
		assert.True(t, patient.Active)
		assert.Equal(t, "a@example.com", patient.Email())
	})

	t.Run("Appends phone telecom when provided", func(t *testing.T) {
		patient := uc.buildPatient(&requests.RegisterPatient{Name: "A", Email: "a@example.com", Phone: "0912"}, "a@example.com")

		assert.Len(t, patient.Telecom, 2)
		assert.Equal(t, constvars.FhirTelecomSystemPhone, patient.Telecom[1].System)
	})
}
