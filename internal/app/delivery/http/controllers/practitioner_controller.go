package controllers

import (
	"ehr-portal-service/internal/app/contracts"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PractitionerController struct {
	Log                 *zap.Logger
	PractitionerUsecase contracts.PractitionerUsecase
}

func NewPractitionerController(logger *zap.Logger, practitionerUsecase contracts.PractitionerUsecase) *PractitionerController {
	return &PractitionerController{
		Log:                 logger,
		PractitionerUsecase: practitionerUsecase,
	}
}

func (ctrl *PractitionerController) GetPractitioner(w http.ResponseWriter, r *http.Request) {
	practitionerID := chi.URLParam(r, constvars.URLParamID)
	if err := utils.ValidateUrlParamID(practitionerID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}

	ctx := r.Context()

	practitioner, err := ctrl.PractitionerUsecase.GetPractitioner(ctx, practitionerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPractitionerSuccessMessage, practitioner)
}
