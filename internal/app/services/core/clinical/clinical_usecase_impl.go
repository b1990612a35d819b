package clinical

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
	"sync"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type clinicalUsecase struct {
	FhirVendorClient contracts.FhirVendorClient
	AuditPublisher   contracts.AuditPublisher
	Log              *zap.Logger
}

var (
	clinicalUsecaseInstance contracts.ClinicalUsecase
	onceClinicalUsecase     sync.Once
)

func NewClinicalUsecase(
	fhirVendorClient contracts.FhirVendorClient,
	auditPublisher contracts.AuditPublisher,
	logger *zap.Logger,
) contracts.ClinicalUsecase {
	onceClinicalUsecase.Do(func() {
		instance := &clinicalUsecase{
			FhirVendorClient: fhirVendorClient,
			AuditPublisher:   auditPublisher,
			Log:              logger,
		}
		clinicalUsecaseInstance = instance
	})
	return clinicalUsecaseInstance
}

func (uc *clinicalUsecase) ListAllergies(ctx context.Context, patientID string) ([]responses.Allergy, error) {
	return listClinical(ctx, uc, fhirmapper.ClinicalAllergies, patientID, fhirmapper.AllergyFromFHIR)
}

func (uc *clinicalUsecase) ListConditions(ctx context.Context, patientID string) ([]responses.Condition, error) {
	return listClinical(ctx, uc, fhirmapper.ClinicalConditions, patientID, fhirmapper.ConditionFromFHIR)
}

func (uc *clinicalUsecase) ListDiagnosticReports(ctx context.Context, patientID string) ([]responses.DiagnosticReport, error) {
	return listClinical(ctx, uc, fhirmapper.ClinicalDiagnosticReports, patientID, fhirmapper.DiagnosticReportFromFHIR)
}

func (uc *clinicalUsecase) ListMedicationStatements(ctx context.Context, patientID string) ([]responses.MedicationStatement, error) {
	return listClinical(ctx, uc, fhirmapper.ClinicalMedications, patientID, fhirmapper.MedicationStatementFromFHIR)
}

func (uc *clinicalUsecase) CreateAllergy(ctx context.Context, request *requests.CreateAllergy) (*responses.Allergy, error) {
	return createClinical(ctx, uc, fhirmapper.ClinicalAllergies, request.PatientID, fhirmapper.AllergyToFHIR(request), fhirmapper.AllergyFromFHIR)
}

func (uc *clinicalUsecase) CreateCondition(ctx context.Context, request *requests.CreateCondition) (*responses.Condition, error) {
	return createClinical(ctx, uc, fhirmapper.ClinicalConditions, request.PatientID, fhirmapper.ConditionToFHIR(request), fhirmapper.ConditionFromFHIR)
}

func (uc *clinicalUsecase) CreateDiagnosticReport(ctx context.Context, request *requests.CreateDiagnosticReport) (*responses.DiagnosticReport, error) {
	return createClinical(ctx, uc, fhirmapper.ClinicalDiagnosticReports, request.PatientID, fhirmapper.DiagnosticReportToFHIR(request), fhirmapper.DiagnosticReportFromFHIR)
}

func (uc *clinicalUsecase) CreateMedicationStatement(ctx context.Context, request *requests.CreateMedicationStatement) (*responses.MedicationStatement, error) {
	return createClinical(ctx, uc, fhirmapper.ClinicalMedications, request.PatientID, fhirmapper.MedicationStatementToFHIR(request), fhirmapper.MedicationStatementFromFHIR)
}

// GetPatientDetails reads the four clinical lists concurrently and fails
// on the first error.
func (uc *clinicalUsecase) GetPatientDetails(ctx context.Context, patientID string) (*responses.PatientDetails, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicalUsecase.GetPatientDetails called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	details := &responses.PatientDetails{}
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		details.Allergies, err = uc.ListAllergies(groupCtx, patientID)
		return err
	})
	group.Go(func() (err error) {
		details.Conditions, err = uc.ListConditions(groupCtx, patientID)
		return err
	})
	group.Go(func() (err error) {
		details.DiagnosticReports, err = uc.ListDiagnosticReports(groupCtx, patientID)
		return err
	})
	group.Go(func() (err error) {
		details.Medications, err = uc.ListMedicationStatements(groupCtx, patientID)
		return err
	})
	if err := group.Wait(); err != nil {
		uc.Log.Error("clinicalUsecase.GetPatientDetails failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("clinicalUsecase.GetPatientDetails succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return details, nil
}

func listClinical[T any](
	ctx context.Context,
	uc *clinicalUsecase,
	kind fhirmapper.ClinicalKind,
	patientID string,
	mapFn func(gjson.Result) T,
) ([]T, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	resourceType := kind.ResourceType()
	uc.Log.Info("clinicalUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingClinicalRecordKind, string(kind)),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	params := url.Values{}
	params.Set(constvars.VendorQueryPatient, patientID)

	bundle, err := uc.FhirVendorClient.Search(ctx, resourceType, params)
	if err != nil {
		if exceptions.IsVendorNotFound(err) {
			return []T{}, nil
		}
		uc.Log.Error("clinicalUsecase.List error searching vendor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceTypeKey, resourceType),
			zap.Error(err),
		)
		return nil, exceptions.FromVendorError(err, resourceType, fmt.Sprintf(constvars.ErrClientFailedToFetch, kind.Label()))
	}

	records := fhirmapper.MapBundle(bundle, mapFn)
	uc.Log.Info("clinicalUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.Int(constvars.LoggingEntryCountKey, len(records)),
	)
	return records, nil
}

func createClinical[T any](
	ctx context.Context,
	uc *clinicalUsecase,
	kind fhirmapper.ClinicalKind,
	patientID string,
	resource any,
	mapFn func(gjson.Result) T,
) (*T, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	resourceType := kind.ResourceType()
	uc.Log.Info("clinicalUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingClinicalRecordKind, string(kind)),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	raw, err := uc.FhirVendorClient.Create(ctx, resourceType, resource)
	if err != nil {
		uc.Log.Error("clinicalUsecase.Create error creating vendor resource",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceTypeKey, resourceType),
			zap.Error(err),
		)
		return nil, exceptions.FromVendorError(err, resourceType, fmt.Sprintf(constvars.ErrClientFailedToCreate, kind.Singular()))
	}

	created := fhirjson.Parse(raw)
	record := mapFn(created)
	resourceID := fhirjson.String(created, "id")
	audit.Record(ctx, uc.AuditPublisher, uc.Log, models.AuditEvent{
		Event:        fmt.Sprintf(models.AuditClinicalCreated, kind),
		ResourceType: resourceType,
		ResourceID:   resourceID,
		PatientID:    patientID,
	})

	uc.Log.Info("clinicalUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingResourceIDKey, resourceID),
	)
	return &record, nil
}
