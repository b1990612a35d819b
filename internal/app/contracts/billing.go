package contracts

import (
	"context"
	"ehr-portal-service/internal/pkg/dto/responses"
)

type BillingUsecase interface {
	GetAccount(ctx context.Context, patientID string) (*responses.AccountInfo, error)
	ListCoverage(ctx context.Context, patientID string) ([]responses.CoverageInfo, error)
}
