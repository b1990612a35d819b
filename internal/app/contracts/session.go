package contracts

import (
	"context"
	"ehr-portal-service/internal/app/models"
)

type SessionService interface {
	Issue(ctx context.Context, userID, email, name string) (string, *models.Session, error)
	Verify(ctx context.Context, token string) (*models.Session, error)
	Revoke(ctx context.Context, session *models.Session) error
}
