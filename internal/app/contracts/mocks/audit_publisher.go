package mocks

import (
	"context"
	"ehr-portal-service/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type MockAuditPublisher struct {
	mock.Mock
}

func (m *MockAuditPublisher) Publish(ctx context.Context, event *models.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAuditPublisher) Close() error {
	return m.Called().Error(0)
}
