package contracts

import (
	"context"
	"ehr-portal-service/internal/app/models"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Session, error)
	Signup(ctx context.Context, request *requests.Signup) (*responses.Session, error)
	GetSession(ctx context.Context, session *models.Session) (*responses.Session, error)
	Logout(ctx context.Context, session *models.Session) error
}
