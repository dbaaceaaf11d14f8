package bookings

import (
	"careslot-service/internal/app/contracts"
	"careslot-service/internal/app/models"
	"careslot-service/internal/pkg/constvars"
	"careslot-service/internal/pkg/dto/requests"
	"careslot-service/internal/pkg/dto/responses"
	"careslot-service/internal/pkg/fhir_dto"
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

type bookingUsecase struct {
	AppointmentFhirClient contracts.AppointmentFhirClient
	SlotFhirClient        contracts.SlotFhirClient
	SlotCatalog           *models.SlotCatalog
	Log                   *zap.Logger
}

func NewBookingUsecase(
	appointmentFhirClient contracts.AppointmentFhirClient,
	slotFhirClient contracts.SlotFhirClient,
	slotCatalog *models.SlotCatalog,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			AppointmentFhirClient: appointmentFhirClient,
			SlotFhirClient:        slotFhirClient,
			SlotCatalog:           slotCatalog,
			Log:                   logger,
		}
	})
	return bookingUsecaseInstance
}

// CreateBooking books the appointment first, then tries to flip the slot to
// busy. The slot update is advisory only: the appointment is the source of
// truth, and a slot that cannot be locked never fails a booking that already
// exists upstream.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
	)

	appointment := uc.buildAppointment(request)
	createdAppointment, err := uc.AppointmentFhirClient.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.lockSlot(ctx, requestID, request.SlotID)

	uc.Log.Info("bookingUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, createdAppointment.ID),
	)
	return &responses.Booking{
		AppointmentID: createdAppointment.ID,
	}, nil
}

func (uc *bookingUsecase) buildAppointment(request *requests.CreateBooking) *fhir_dto.Appointment {
	appointment := &fhir_dto.Appointment{
		ResourceType: constvars.ResourceAppointment,
		Status:       constvars.FhirAppointmentStatusBooked,
		Slot: []fhir_dto.Reference{
			{
				Reference: constvars.ResourceSlot + "/" + request.SlotID,
				Display:   uc.SlotCatalog.DisplayFor(request.SlotID),
			},
		},
		Participant: []fhir_dto.AppointmentParticipant{
			{
				Actor: fhir_dto.Reference{
					Reference: constvars.ResourcePatient + "/" + request.PatientID,
				},
				Status: constvars.FhirParticipantStatusAccepted,
			},
		},
	}

	if request.Diet != "" {
		appointment.Extension = append(appointment.Extension, fhir_dto.Extension{
			Url:         constvars.FhirExtensionDietUrl,
			ValueString: request.Diet,
		})
	}
	if request.Mode != "" {
		appointment.Extension = append(appointment.Extension, fhir_dto.Extension{
			Url:         constvars.FhirExtensionModeUrl,
			ValueString: request.Mode,
		})
	}

	return appointment
}

// lockSlot fetches the slot and PUTs it back with status busy. Any failure
// is logged at warn level and swallowed: double bookings on a contended slot
// are resolved by the event staff, not by this service.
func (uc *bookingUsecase) lockSlot(ctx context.Context, requestID, slotID string) {
	slot, err := uc.SlotFhirClient.FindSlotByID(ctx, slotID)
	if err != nil {
		uc.Log.Warn("bookingUsecase.lockSlot could not fetch slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, slotID),
			zap.Error(err),
		)
		return
	}

	if slot.Status == fhir_dto.SlotStatusBusy {
		// Contended slot; the busy PUT below is idempotent and still runs.
		uc.Log.Warn("bookingUsecase.lockSlot slot already busy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, slotID),
		)
	}

	slot.Status = fhir_dto.SlotStatusBusy
	if _, err := uc.SlotFhirClient.UpdateSlot(ctx, slot); err != nil {
		uc.Log.Warn("bookingUsecase.lockSlot could not update slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, slotID),
			zap.Error(err),
		)
		return
	}

	uc.Log.Info("bookingUsecase.lockSlot slot marked busy",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)
}
