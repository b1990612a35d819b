package controllers

import (
	"ehr-portal-service/internal/app/contracts"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type BillingController struct {
	Log            *zap.Logger
	BillingUsecase contracts.BillingUsecase
}

func NewBillingController(logger *zap.Logger, billingUsecase contracts.BillingUsecase) *BillingController {
	return &BillingController{
		Log:            logger,
		BillingUsecase: billingUsecase,
	}
}

func (ctrl *BillingController) GetAccount(w http.ResponseWriter, r *http.Request) {
	patientID := strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamPatient))
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPatientIDRequired(nil))
		return
	}

	ctx := r.Context()

	account, err := ctrl.BillingUsecase.GetAccount(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAccountSuccessMessage, account)
}

func (ctrl *BillingController) ListCoverage(w http.ResponseWriter, r *http.Request) {
	patientID := strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamPatient))
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPatientIDRequired(nil))
		return
	}

	ctx := r.Context()

	coverage, err := ctrl.BillingUsecase.ListCoverage(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCoverageSuccessMessage, coverage)
}
