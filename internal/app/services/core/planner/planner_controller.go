package planner

import (
	"context"
	"net/http"
	"time"

	"citaplan-service/internal/pkg/constvars"
	"citaplan-service/internal/pkg/dto/requests"
	"citaplan-service/internal/pkg/exceptions"
	"citaplan-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PlannerController struct {
	Log            *zap.Logger
	PlannerUsecase PlannerUsecase
}

func NewPlannerController(logger *zap.Logger, plannerUsecase PlannerUsecase) *PlannerController {
	return &PlannerController{
		Log:            logger,
		PlannerUsecase: plannerUsecase,
	}
}

func (ctrl *PlannerController) PlanFreeWindows(w http.ResponseWriter, r *http.Request) {
	request := &requests.PlanFreeWindows{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PlannerUsecase.PlanFreeWindows(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PlanFreeWindowsSuccess, result)
}

func (ctrl *PlannerController) FitCheck(w http.ResponseWriter, r *http.Request) {
	request := &requests.FitCheck{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PlannerUsecase.FitCheck(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FitCheckSuccess, result)
}
