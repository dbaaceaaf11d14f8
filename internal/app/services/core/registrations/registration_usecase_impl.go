package registrations

import (
	"careslot-service/internal/app/contracts"
	"careslot-service/internal/pkg/constvars"
	"careslot-service/internal/pkg/dto/requests"
	"careslot-service/internal/pkg/dto/responses"
	"careslot-service/internal/pkg/exceptions"
	"careslot-service/internal/pkg/fhir_dto"
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	registrationUsecaseInstance contracts.RegistrationUsecase
	onceRegistrationUsecase     sync.Once
)

type registrationUsecase struct {
	PersonFhirClient  contracts.PersonFhirClient
	PatientFhirClient contracts.PatientFhirClient
	Log               *zap.Logger
}

func NewRegistrationUsecase(
	personFhirClient contracts.PersonFhirClient,
	patientFhirClient contracts.PatientFhirClient,
	logger *zap.Logger,
) contracts.RegistrationUsecase {
	onceRegistrationUsecase.Do(func() {
		registrationUsecaseInstance = &registrationUsecase{
			PersonFhirClient:  personFhirClient,
			PatientFhirClient: patientFhirClient,
			Log:               logger,
		}
	})
	return registrationUsecaseInstance
}

// RegisterPatient creates a Patient then a Person carrying the email
// identifier and a link back to the Patient. Registration is rejected with a
// conflict when a Person already claims the email, so the duplicate check
// runs before anything is written upstream.
func (uc *registrationUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Registration, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	email := strings.ToLower(strings.TrimSpace(request.Email))
	uc.Log.Info("registrationUsecase.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	existing, err := uc.PersonFhirClient.FindPersonByIdentifier(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		uc.Log.Warn("registrationUsecase.RegisterPatient email already registered",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, email),
		)
		return nil, exceptions.ErrEmailAlreadyRegistered(errors.New("person with identifier already exists"))
	}

	patient := uc.buildPatient(request, email)
	createdPatient, err := uc.PatientFhirClient.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	person := uc.buildPerson(request, email, createdPatient.ID)
	createdPerson, err := uc.PersonFhirClient.CreatePerson(ctx, person)
	if err != nil {
		// The Patient already exists upstream at this point. There is no
		// transaction to roll back against a plain REST server, so the
		// orphaned Patient is logged and left for manual cleanup.
		uc.Log.Error("registrationUsecase.RegisterPatient person creation failed after patient creation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, createdPatient.ID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("registrationUsecase.RegisterPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, createdPatient.ID),
		zap.String(constvars.LoggingPersonIDKey, createdPerson.ID),
	)
	return &responses.Registration{
		PatientID: createdPatient.ID,
		PersonID:  createdPerson.ID,
	}, nil
}

func (uc *registrationUsecase) buildPatient(request *requests.RegisterPatient, email string) *fhir_dto.Patient {
	gender := request.Gender
	if gender == "" {
		gender = constvars.FhirGenderUnknown
	}

	telecom := []fhir_dto.ContactPoint{
		{System: constvars.FhirTelecomSystemEmail, Value: email, Use: constvars.FhirTelecomUseHome},
	}
	if request.Phone != "" {
		telecom = append(telecom, fhir_dto.ContactPoint{
			System: constvars.FhirTelecomSystemPhone,
			Value:  request.Phone,
			Use:    constvars.FhirTelecomUseMobile,
		})
	}

	return &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		Active:       true,
		Name: []fhir_dto.HumanName{
			{Use: "official", Text: request.Name},
		},
		Gender:    gender,
		BirthDate: request.BirthDate,
		Telecom:   telecom,
	}
}

func (uc *registrationUsecase) buildPerson(request *requests.RegisterPatient, email, patientID string) *fhir_dto.Person {
	return &fhir_dto.Person{
		ResourceType: constvars.ResourcePerson,
		Active:       true,
		Name: []fhir_dto.HumanName{
			{Use: "official", Text: request.Name},
		},
		Identifier: []fhir_dto.Identifier{
			{System: constvars.FhirIdentifierEmailSystem, Value: email},
		},
		Telecom: []fhir_dto.ContactPoint{
			{System: constvars.FhirTelecomSystemEmail, Value: email, Use: constvars.FhirTelecomUseHome},
		},
		Link: []fhir_dto.PersonLink{
			{Target: fhir_dto.Reference{
				Reference: constvars.ResourcePatient + "/" + patientID,
				Type:      constvars.ResourcePatient,
			}},
		},
	}
}
