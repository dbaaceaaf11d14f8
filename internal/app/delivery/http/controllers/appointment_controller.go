package controllers

import (
	"careslot-service/internal/app/contracts"
	"careslot-service/internal/pkg/constvars"
	"careslot-service/internal/pkg/exceptions"
	"careslot-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

var (
	appointmentControllerInstance *AppointmentController
	onceAppointmentController     sync.Once
)

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	onceAppointmentController.Do(func() {
		appointmentControllerInstance = &AppointmentController{
			Log:                logger,
			AppointmentUsecase: appointmentUsecase,
		}
	})
	return appointmentControllerInstance
}

// FindRecentSummaries serves the admin appointment overview. The admin check
// runs in middleware before this handler is reached.
func (ctrl *AppointmentController) FindRecentSummaries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summaries, err := ctrl.AppointmentUsecase.FindRecentSummaries(ctx)
	if err != nil {
		ctrl.Log.Error("Failed to fetch appointment summaries",
			zap.String(constvars.LoggingRequestIDKey, requestID),
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

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSummariesSuccessMessage, summaries)
}

func (ctrl *AppointmentController) FindPatientDirectory(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	directory, err := ctrl.AppointmentUsecase.FindPatientDirectory(ctx)
	if err != nil {
		ctrl.Log.Error("Failed to fetch patient directory",
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

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientDirectorySuccessMessage, directory)
}
