package billing

import (
	"context"
	"ehr-portal-service/internal/app/contracts"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/fhirjson"
	"ehr-portal-service/internal/pkg/fhirmapper"
	"fmt"
	"net/url"
	"sync"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type billingUsecase struct {
	FhirVendorClient contracts.FhirVendorClient
	Log              *zap.Logger
}

var (
	billingUsecaseInstance contracts.BillingUsecase
	onceBillingUsecase     sync.Once
)

func NewBillingUsecase(
	fhirVendorClient contracts.FhirVendorClient,
	logger *zap.Logger,
) contracts.BillingUsecase {
	onceBillingUsecase.Do(func() {
		instance := &billingUsecase{
			FhirVendorClient: fhirVendorClient,
			Log:              logger,
		}
		billingUsecaseInstance = instance
	})
	return billingUsecaseInstance
}

// GetAccount returns the first account of the patient. The patient name is
// looked up afterwards and a failed lookup keeps the placeholder.
func (uc *billingUsecase) GetAccount(ctx context.Context, patientID string) (*responses.AccountInfo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billingUsecase.GetAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	params := url.Values{}
	params.Set(constvars.VendorQueryPatient, patientID)

	bundle, err := uc.FhirVendorClient.Search(ctx, constvars.ResourceAccount, params)
	if err != nil {
		uc.Log.Error("billingUsecase.GetAccount error searching accounts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.FromVendorError(err, constvars.ResourceAccount, fmt.Sprintf(constvars.ErrClientFailedToFetch, "account information"))
	}

	entries := fhirmapper.Entries(bundle)
	if len(entries) == 0 {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ResourceAccount)
	}
	account := fhirmapper.AccountFromFHIR(entries[0], patientID)

	raw, err := uc.FhirVendorClient.Read(ctx, constvars.ResourcePatient, account.PatientID)
	if err != nil {
		uc.Log.Warn("billingUsecase.GetAccount patient name lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, account.PatientID),
			zap.Error(err),
		)
	} else if name := fhirmapper.PatientDisplayName(fhirjson.Parse(raw)); name != "" {
		account.PatientName = name
	}

	uc.Log.Info("billingUsecase.GetAccount succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, account.ID),
	)
	return &account, nil
}

func (uc *billingUsecase) ListCoverage(ctx context.Context, patientID string) ([]responses.CoverageInfo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billingUsecase.ListCoverage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	params := url.Values{}
	params.Set(constvars.VendorQueryPatient, patientID)

	bundle, err := uc.FhirVendorClient.Search(ctx, constvars.ResourceCoverage, params)
	if err != nil {
		if exceptions.IsVendorNotFound(err) {
			return []responses.CoverageInfo{}, nil
		}
		uc.Log.Error("billingUsecase.ListCoverage error searching coverage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.FromVendorError(err, constvars.ResourceCoverage, fmt.Sprintf(constvars.ErrClientFailedToFetch, "coverage information"))
	}

	coverage := fhirmapper.MapBundle(bundle, func(resource gjson.Result) responses.CoverageInfo {
		return fhirmapper.CoverageFromFHIR(resource, patientID)
	})
	uc.Log.Info("billingUsecase.ListCoverage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingEntryCountKey, len(coverage)),
	)
	return coverage, nil
}
