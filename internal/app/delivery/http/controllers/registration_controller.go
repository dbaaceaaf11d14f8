package controllers

import (
	"careslot-service/internal/app/contracts"
	"careslot-service/internal/pkg/constvars"
	"careslot-service/internal/pkg/dto/requests"
	"careslot-service/internal/pkg/exceptions"
	"careslot-service/internal/pkg/utils"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type RegistrationController struct {
	Log                 *zap.Logger
	RegistrationUsecase contracts.RegistrationUsecase
}

var (
	registrationControllerInstance *RegistrationController
	onceRegistrationController     sync.Once
)

func NewRegistrationController(logger *zap.Logger, registrationUsecase contracts.RegistrationUsecase) *RegistrationController {
	onceRegistrationController.Do(func() {
		registrationControllerInstance = &RegistrationController{
			Log:                 logger,
			RegistrationUsecase: registrationUsecase,
		}
	})
	return registrationControllerInstance
}

func (ctrl *RegistrationController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
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

	request := new(requests.RegisterPatient)
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

	response, err := ctrl.RegistrationUsecase.RegisterPatient(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to register patient",
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

	ctrl.Log.Info("Patient registered",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, response.PatientID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterPatientSuccessMessage, response)
}
