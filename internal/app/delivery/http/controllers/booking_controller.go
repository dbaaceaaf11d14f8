package controllers

import (
	"careslot-service/internal/app/contracts"
	"careslot-service/internal/pkg/constvars"
	"careslot-service/internal/pkg/dto/requests"
	"careslot-service/internal/pkg/exceptions"
	"careslot-service/internal/pkg/utils"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type BookingController struct {
	Log                   *zap.Logger
	BookingUsecase        contracts.BookingUsecase
	AppointmentFhirClient contracts.AppointmentFhirClient
}

var (
	bookingControllerInstance *BookingController
	onceBookingController     sync.Once
)

func NewBookingController(
	logger *zap.Logger,
	bookingUsecase contracts.BookingUsecase,
	appointmentFhirClient contracts.AppointmentFhirClient,
) *BookingController {
	onceBookingController.Do(func() {
		bookingControllerInstance = &BookingController{
			Log:                   logger,
			BookingUsecase:        bookingUsecase,
			AppointmentFhirClient: appointmentFhirClient,
		}
	})
	return bookingControllerInstance
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.CreateBooking)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("Request validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.CreateBooking(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to create booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, request.SlotID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Booking created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.AppointmentID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBookingSuccessMessage, response)
}

// CreateAppointmentRaw forwards the request body to the FHIR server as-is
// and relays whatever comes back, so clients that speak FHIR directly keep
// full control over the Appointment resource they create.
func (ctrl *BookingController) CreateAppointmentRaw(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		ctrl.Log.Error("Failed to read request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	upstream, err := ctrl.AppointmentFhirClient.CreateAppointmentRaw(ctx, body)
	if err != nil {
		ctrl.Log.Error("Failed to relay appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.RelayUpstreamResponse(w, upstream.StatusCode, upstream.ContentType, upstream.Body)
}
