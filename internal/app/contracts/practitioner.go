package contracts

import (
	"context"
	"ehr-portal-service/internal/pkg/dto/responses"
)

type PractitionerUsecase interface {
	GetPractitioner(ctx context.Context, practitionerID string) (*responses.Practitioner, error)
}
