package bookings

import (
	"careslot-service/internal/app/contracts"
	"careslot-service/internal/app/models"
	"careslot-service/internal/pkg/constvars"
	"careslot-service/internal/pkg/dto/requests"
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

type MockSlotFhirClient struct {
	mock.Mock
}

func (m *MockSlotFhirClient) FindSlotByID(ctx context.Context, slotID string) (*fhir_dto.Slot, error) {
	args := m.Called(ctx, slotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fhir_dto.Slot), args.Error(1)
}

func (m *MockSlotFhirClient) FindSlotsByStatus(ctx context.Context, status fhir_dto.SlotStatus) ([]fhir_dto.Slot, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fhir_dto.Slot), args.Error(1)
}

func (m *MockSlotFhirClient) UpdateSlot(ctx context.Context, slot *fhir_dto.Slot) (*fhir_dto.Slot, error) {
	args := m.Called(ctx, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fhir_dto.Slot), args.Error(1)
}

func newBookingUsecaseForTest(appointmentClient contracts.AppointmentFhirClient, slotClient contracts.SlotFhirClient) *bookingUsecase {
	return &bookingUsecase{
		AppointmentFhirClient: appointmentClient,
		SlotFhirClient:        slotClient,
		SlotCatalog:           models.DefaultSlotCatalog(),
		Log:                   zap.NewNop(),
	}
}

func TestBookingUsecase_CreateBooking(t *testing.T) {
	request := &requests.CreateBooking{
		PatientID: "patient-1",
		SlotID:    "52229",
		Diet:      "vegetarian",
		Mode:      "onsite",
	}

	t.Run("Successful booking locks the slot", func(t *testing.T) {
		appointmentClient := new(MockAppointmentFhirClient)
		slotClient := new(MockSlotFhirClient)
		uc := newBookingUsecaseForTest(appointmentClient, slotClient)

		appointmentClient.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*fhir_dto.Appointment")).
			Return(&fhir_dto.Appointment{ID: "appt-1", Status: constvars.FhirAppointmentStatusBooked}, nil)
		slotClient.On("FindSlotByID", mock.Anything, "52229").
			Return(&fhir_dto.Slot{ID: "52229", Status: fhir_dto.SlotStatusFree}, nil)
		slotClient.On("UpdateSlot", mock.Anything, mock.AnythingOfType("*fhir_dto.Slot")).
			Return(&fhir_dto.Slot{ID: "52229", Status: fhir_dto.SlotStatusBusy}, nil)

		response, err := uc.CreateBooking(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "appt-1", response.AppointmentID)
		slotClient.AssertCalled(t, "UpdateSlot", mock.Anything, mock.MatchedBy(func(slot *fhir_dto.Slot) bool {
			return slot.Status == fhir_dto.SlotStatusBusy
		}))
	})

	t.Run("Slot lock failure does not fail the booking", func(t *testing.T) {
		appointmentClient := new(MockAppointmentFhirClient)
		slotClient := new(MockSlotFhirClient)
		uc := newBookingUsecaseForTest(appointmentClient, slotClient)

		appointmentClient.On("CreateAppointment", mock.Anything, mock.Anything).
			Return(&fhir_dto.Appointment{ID: "appt-2"}, nil)
		slotClient.On("FindSlotByID", mock.Anything, "52229").
			Return(nil, exceptions.ErrGetFHIRResource(errors.New("upstream down"), constvars.ResourceSlot))

		response, err := uc.CreateBooking(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "appt-2", response.AppointmentID)
		slotClient.AssertNotCalled(t, "UpdateSlot", mock.Anything, mock.Anything)
	})

	t.Run("Already busy slot is still written idempotently", func(t *testing.T) {
		appointmentClient := new(MockAppointmentFhirClient)
		slotClient := new(MockSlotFhirClient)
		uc := newBookingUsecaseForTest(appointmentClient, slotClient)

		appointmentClient.On("CreateAppointment", mock.Anything, mock.Anything).
			Return(&fhir_dto.Appointment{ID: "appt-3"}, nil)
		slotClient.On("FindSlotByID", mock.Anything, "52229").
			Return(&fhir_dto.Slot{ID: "52229", Status: fhir_dto.SlotStatusBusy}, nil)
		slotClient.On("UpdateSlot", mock.Anything, mock.AnythingOfType("*fhir_dto.Slot")).
			Return(&fhir_dto.Slot{ID: "52229", Status: fhir_dto.SlotStatusBusy}, nil)

		response, err := uc.CreateBooking(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "appt-3", response.AppointmentID)
		slotClient.AssertNumberOfCalls(t, "UpdateSlot", 1)
	})

	t.Run("Slot update failure does not fail the booking", func(t *testing.T) {
		appointmentClient := new(MockAppointmentFhirClient)
		slotClient := new(MockSlotFhirClient)
		uc := newBookingUsecaseForTest(appointmentClient, slotClient)

		appointmentClient.On("CreateAppointment", mock.Anything, mock.Anything).
			Return(&fhir_dto.Appointment{ID: "appt-4"}, nil)
		slotClient.On("FindSlotByID", mock.Anything, "52229").
			Return(&fhir_dto.Slot{ID: "52229", Status: fhir_dto.SlotStatusFree}, nil)
		slotClient.On("UpdateSlot", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrUpdateFHIRResource(errors.New("conflict"), constvars.ResourceSlot))

		response, err := uc.CreateBooking(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "appt-4", response.AppointmentID)
	})

	t.Run("Appointment creation failure fails the booking", func(t *testing.T) {
		appointmentClient := new(MockAppointmentFhirClient)
		slotClient := new(MockSlotFhirClient)
		uc := newBookingUsecaseForTest(appointmentClient, slotClient)

		appointmentClient.On("CreateAppointment", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrCreateFHIRResource(errors.New("rejected"), constvars.ResourceAppointment))

		response, err := uc.CreateBooking(context.Background(), request)

		assert.Error(t, err)
		assert.Nil(t, response)
		slotClient.AssertNotCalled(t, "FindSlotByID", mock.Anything, mock.Anything)
	})
}

func TestBookingUsecase_BuildAppointment(t *testing.T) {
	uc := newBookingUsecaseForTest(new(MockAppointmentFhirClient), new(MockSlotFhirClient))

	t.Run("Carries slot, participant and extensions", func(t *testing.T) {
		appointment := uc.buildAppointment(&requests.CreateBooking{
			PatientID: "patient-9",
			SlotID:    "52223",
			Diet:      "vegan",
			Mode:      "online",
		})

		assert.Equal(t, constvars.ResourceAppointment, appointment.ResourceType)
		assert.Equal(t, constvars.FhirAppointmentStatusBooked, appointment.Status)
		assert.Equal(t, "Slot/52223", appointment.SlotReference())
		assert.Equal(t, "下午 02:00 - 04:00", appointment.Slot[0].Display)
		assert.Equal(t, "Patient/patient-9", appointment.PatientReference())
		assert.Equal(t, "vegan", appointment.ExtensionValue("diet"))
		assert.Equal(t, "online", appointment.ExtensionValue("mode"))
	})

	t.Run("Omits extensions when diet and mode are empty", func(t *testing.T) {
		appointment := uc.buildAppointment(&requests.CreateBooking{
			PatientID: "patient-9",
			SlotID:    "52229",
		})

		assert.Empty(t, appointment.Extension)
	})
}
