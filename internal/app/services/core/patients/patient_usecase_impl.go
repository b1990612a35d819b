package patients

import (
	"context"
	"ehr-portal-service/internal/app/contracts"
	"ehr-portal-service/internal/app/models"
	"ehr-portal-service/internal/app/services/shared/audit"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/fhirjson"
	"ehr-portal-service/internal/pkg/fhirmapper"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientUsecase struct {
	FhirVendorClient contracts.FhirVendorClient
	AuditPublisher   contracts.AuditPublisher
	Log              *zap.Logger
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	fhirVendorClient contracts.FhirVendorClient,
	auditPublisher contracts.AuditPublisher,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		instance := &patientUsecase{
			FhirVendorClient: fhirVendorClient,
			AuditPublisher:   auditPublisher,
			Log:              logger,
		}
		patientUsecaseInstance = instance
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) ListPatients(ctx context.Context, query *requests.PageQuery) (*responses.PatientPage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("page", query.Page),
		zap.Int("count", query.Count),
	)

	params := url.Values{}
	params.Set(constvars.VendorQueryCount, strconv.Itoa(query.Count))
	params.Set(constvars.VendorQueryPage, strconv.Itoa(query.Page))

	bundle, err := uc.FhirVendorClient.Search(ctx, constvars.ResourcePatient, params)
	if err != nil {
		if exceptions.IsVendorNotFound(err) {
			return &responses.PatientPage{
				Data:       []responses.Patient{},
				Pagination: responses.Pagination{Page: query.Page, Count: query.Count, HasPrev: query.Page > 1},
			}, nil
		}
		uc.Log.Error("patientUsecase.ListPatients error searching patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.FromVendorError(err, "Patients", fmt.Sprintf(constvars.ErrClientFailedToFetch, "patients"))
	}

	page := &responses.PatientPage{
		Data:       fhirmapper.MapBundle(bundle, fhirmapper.PatientFromFHIR),
		Pagination: fhirmapper.BuildPagination(bundle, query.Page, query.Count),
	}

	uc.Log.Info("patientUsecase.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingEntryCountKey, len(page.Data)),
	)
	return page, nil
}

func (uc *patientUsecase) GetPatient(ctx context.Context, patientID string) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	raw, err := uc.FhirVendorClient.Read(ctx, constvars.ResourcePatient, patientID)
	if err != nil {
		return nil, exceptions.FromVendorError(err, constvars.ResourcePatient, fmt.Sprintf(constvars.ErrClientFailedToFetch, "patient"))
	}

	patient := fhirmapper.PatientFromFHIR(fhirjson.Parse(raw))
	return &patient, nil
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	raw, err := uc.FhirVendorClient.Create(ctx, constvars.ResourcePatient, fhirmapper.PatientToFHIR(request))
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient error creating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.FromVendorError(err, constvars.ResourcePatient, fmt.Sprintf(constvars.ErrClientFailedToCreate, "patient"))
	}

	patient := fhirmapper.PatientFromFHIR(fhirjson.Parse(raw))
	audit.Record(ctx, uc.AuditPublisher, uc.Log, models.AuditEvent{
		Event:        models.AuditPatientCreated,
		ResourceType: constvars.ResourcePatient,
		ResourceID:   patient.ID,
		PatientID:    patient.ID,
	})

	uc.Log.Info("patientUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return &patient, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	raw, err := uc.FhirVendorClient.Read(ctx, constvars.ResourcePatient, patientID)
	if err != nil {
		return nil, exceptions.FromVendorError(err, constvars.ResourcePatient, fmt.Sprintf(constvars.ErrClientFailedToUpdate, "patient"))
	}

	var current map[string]any
	if err := json.Unmarshal(raw, &current); err != nil {
		return nil, exceptions.ErrDecodeVendorResponse(err, constvars.ResourcePatient)
	}

	merged, err := fhirmapper.MergePatient(current, patientID, request)
	if err != nil {
		return nil, err
	}

	updated, err := uc.FhirVendorClient.Update(ctx, constvars.ResourcePatient, patientID, merged)
	if err != nil {
		uc.Log.Error("patientUsecase.UpdatePatient error updating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.FromVendorError(err, constvars.ResourcePatient, fmt.Sprintf(constvars.ErrClientFailedToUpdate, "patient"))
	}

	patient := fhirmapper.PatientFromFHIR(fhirjson.Parse(updated))
	if patient.ID == "" {
		patient.ID = patientID
	}
	audit.Record(ctx, uc.AuditPublisher, uc.Log, models.AuditEvent{
		Event:        models.AuditPatientUpdated,
		ResourceType: constvars.ResourcePatient,
		ResourceID:   patientID,
		PatientID:    patientID,
	})
	return &patient, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	err := uc.FhirVendorClient.Delete(ctx, constvars.ResourcePatient, patientID)
	if err != nil {
		return exceptions.FromVendorError(err, constvars.ResourcePatient, fmt.Sprintf(constvars.ErrClientFailedToDelete, "patient"))
	}

	audit.Record(ctx, uc.AuditPublisher, uc.Log, models.AuditEvent{
		Event:        models.AuditPatientDeleted,
		ResourceType: constvars.ResourcePatient,
		ResourceID:   patientID,
		PatientID:    patientID,
	})
	return nil
}
