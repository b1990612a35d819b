package mocks

import (
	"context"
	"ehr-portal-service/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Issue(ctx context.Context, userID, email, name string) (string, *models.Session, error) {
	args := m.Called(ctx, userID, email, name)
	session, _ := args.Get(1).(*models.Session)
	return args.String(0), session, args.Error(2)
}

func (m *MockSessionService) Verify(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) Revoke(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
