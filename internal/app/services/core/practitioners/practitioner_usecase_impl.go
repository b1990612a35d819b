package practitioners

import (
	"context"
	"ehr-portal-service/internal/app/contracts"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/fhirjson"
	"ehr-portal-service/internal/pkg/fhirmapper"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type practitionerUsecase struct {
	FhirVendorClient contracts.FhirVendorClient
	Log              *zap.Logger
}

var (
	practitionerUsecaseInstance contracts.PractitionerUsecase
	oncePractitionerUsecase     sync.Once
)

func NewPractitionerUsecase(
	fhirVendorClient contracts.FhirVendorClient,
	logger *zap.Logger,
) contracts.PractitionerUsecase {
	oncePractitionerUsecase.Do(func() {
		instance := &practitionerUsecase{
			FhirVendorClient: fhirVendorClient,
			Log:              logger,
		}
		practitionerUsecaseInstance = instance
	})
	return practitionerUsecaseInstance
}

func (uc *practitionerUsecase) GetPractitioner(ctx context.Context, practitionerID string) (*responses.Practitioner, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("practitionerUsecase.GetPractitioner called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
	)

	raw, err := uc.FhirVendorClient.Read(ctx, constvars.ResourcePractitioner, practitionerID)
	if err != nil {
		uc.Log.Error("practitionerUsecase.GetPractitioner error reading practitioner",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.FromVendorError(err, constvars.ResourcePractitioner, fmt.Sprintf(constvars.ErrClientFailedToFetch, "practitioner"))
	}

	practitioner := fhirmapper.PractitionerFromFHIR(fhirjson.Parse(raw))
	if practitioner.ID == "" {
		practitioner.ID = practitionerID
	}

	uc.Log.Info("practitionerUsecase.GetPractitioner succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitioner.ID),
	)
	return &practitioner, nil
}
