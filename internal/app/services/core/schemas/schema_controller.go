package schemas

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"citaplan-service/internal/app/contracts"
	"citaplan-service/internal/pkg/constvars"
	"citaplan-service/internal/pkg/dto/requests"
	"citaplan-service/internal/pkg/exceptions"
	"citaplan-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SchemaController struct {
	Log           *zap.Logger
	SchemaUsecase SchemaUsecase
}

func NewSchemaController(logger *zap.Logger, schemaUsecase SchemaUsecase) *SchemaController {
	return &SchemaController{
		Log:           logger,
		SchemaUsecase: schemaUsecase,
	}
}

func (ctrl *SchemaController) Validate(w http.ResponseWriter, r *http.Request) {
	request := &requests.ValidateSchemas{}
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

	result, err := ctrl.SchemaUsecase.Validate(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.SchemaValidationClean
	if len(result.InternalOverlaps) > 0 || len(result.Conflicts) > 0 {
		message = constvars.SchemaValidationFound
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *SchemaController) Create(w http.ResponseWriter, r *http.Request) {
	request := &requests.CreateSchemas{}
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

	result, err := ctrl.SchemaUsecase.Create(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SchemaCreatedSuccess, result)
}

func (ctrl *SchemaController) FindAll(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPage))
	if err != nil || page <= 0 {
		page = 1
	}
	pageSize, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPageSize))
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}
	filter := contracts.SchemaFilter{
		RoomID:      r.URL.Query().Get(constvars.URLQueryParamRoomID),
		PhysicianID: r.URL.Query().Get(constvars.URLQueryParamPhysicianID),
		CenterID:    r.URL.Query().Get(constvars.URLQueryParamCenterID),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, pagination, err := ctrl.SchemaUsecase.FindAll(ctx, filter, page, pageSize)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.SchemaListSuccess, pagination, result)
}

func (ctrl *SchemaController) Delete(w http.ResponseWriter, r *http.Request) {
	schemaID := chi.URLParam(r, constvars.URLParamSchemaID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.SchemaUsecase.Delete(ctx, schemaID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SchemaDeletedSuccess, nil)
}
