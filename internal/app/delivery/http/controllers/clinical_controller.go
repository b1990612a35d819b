package controllers

import (
	"context"
	"ehr-portal-service/internal/app/contracts"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/fhirmapper"
	"ehr-portal-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type ClinicalController struct {
	Log             *zap.Logger
	ClinicalUsecase contracts.ClinicalUsecase
}

func NewClinicalController(logger *zap.Logger, clinicalUsecase contracts.ClinicalUsecase) *ClinicalController {
	return &ClinicalController{
		Log:             logger,
		ClinicalUsecase: clinicalUsecase,
	}
}

// ListRecords returns the handler listing one kind of record for the
// patient named by the patientId query parameter.
func (ctrl *ClinicalController) ListRecords(kind fhirmapper.ClinicalKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patientID := strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamPatientID))
		if patientID == "" {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPatientIDRequired(nil))
			return
		}

		ctx := r.Context()

		var (
			records any
			err     error
		)
		switch kind {
		case fhirmapper.ClinicalAllergies:
			records, err = ctrl.ClinicalUsecase.ListAllergies(ctx, patientID)
		case fhirmapper.ClinicalConditions:
			records, err = ctrl.ClinicalUsecase.ListConditions(ctx, patientID)
		case fhirmapper.ClinicalDiagnosticReports:
			records, err = ctrl.ClinicalUsecase.ListDiagnosticReports(ctx, patientID)
		case fhirmapper.ClinicalMedications:
			records, err = ctrl.ClinicalUsecase.ListMedicationStatements(ctx, patientID)
		}
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
			return
		}

		utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetClinicalRecordsSuccessMessage, kind.Label()), records)
	}
}

// CreateRecord returns the handler creating one kind of record.
func (ctrl *ClinicalController) CreateRecord(kind fhirmapper.ClinicalKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch kind {
		case fhirmapper.ClinicalAllergies:
			createRecord(ctrl, w, r, kind, ctrl.ClinicalUsecase.CreateAllergy)
		case fhirmapper.ClinicalConditions:
			createRecord(ctrl, w, r, kind, ctrl.ClinicalUsecase.CreateCondition)
		case fhirmapper.ClinicalDiagnosticReports:
			createRecord(ctrl, w, r, kind, ctrl.ClinicalUsecase.CreateDiagnosticReport)
		case fhirmapper.ClinicalMedications:
			createRecord(ctrl, w, r, kind, ctrl.ClinicalUsecase.CreateMedicationStatement)
		}
	}
}

func createRecord[Req any, Res any](
	ctrl *ClinicalController,
	w http.ResponseWriter,
	r *http.Request,
	kind fhirmapper.ClinicalKind,
	create func(context.Context, *Req) (Res, error),
) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())

	request := new(Req)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx := r.Context()

	record, err := create(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to create clinical record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceTypeKey, kind.ResourceType()),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "clinical_record_created", requestID,
		zap.String(constvars.LoggingResourceTypeKey, kind.ResourceType()),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.CreateClinicalRecordSuccessMessage, kind.Singular()), record)
}

func (ctrl *ClinicalController) GetPatientDetails(w http.ResponseWriter, r *http.Request) {
	patientID := strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamPatientID))
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPatientIDRequired(nil))
		return
	}

	ctx := r.Context()

	details, err := ctrl.ClinicalUsecase.GetPatientDetails(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientDetailsSuccessMessage, details)
}

