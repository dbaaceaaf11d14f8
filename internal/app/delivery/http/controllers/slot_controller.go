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

type SlotController struct {
	Log         *zap.Logger
	SlotUsecase contracts.SlotUsecase
}

var (
	slotControllerInstance *SlotController
	onceSlotController     sync.Once
)

func NewSlotController(logger *zap.Logger, slotUsecase contracts.SlotUsecase) *SlotController {
	onceSlotController.Do(func() {
		slotControllerInstance = &SlotController{
			Log:         logger,
			SlotUsecase: slotUsecase,
		}
	})
	return slotControllerInstance
}

func (ctrl *SlotController) FindSlots(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	fromUpstream := r.URL.Query().Get(constvars.QueryParamSlotSource) == constvars.SlotSourceFhir

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	slots, err := ctrl.SlotUsecase.FindSlots(ctx, fromUpstream)
	if err != nil {
		ctrl.Log.Error("Failed to fetch slots",
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

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSlotsSuccessMessage, slots)
}
