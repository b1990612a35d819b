package audit

import (
	"context"
	"ehr-portal-service/internal/app/contracts/mocks"
	"ehr-portal-service/internal/app/models"
	"ehr-portal-service/internal/pkg/constvars"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecordStampsEvent(t *testing.T) {
	publisher := new(mocks.MockAuditPublisher)
	var published *models.AuditEvent
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("*models.AuditEvent")).
		Run(func(args mock.Arguments) { published = args.Get(1).(*models.AuditEvent) }).
		Return(nil)

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
	ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, &models.Session{UserID: "admin"})

	Record(ctx, publisher, zap.NewNop(), models.AuditEvent{
		Event:        models.AuditPatientCreated,
		ResourceType: "Patient",
		ResourceID:   "12",
		PatientID:    "12",
	})

	require.NotNil(t, published)
	assert.Equal(t, "req-1", published.RequestID)
	assert.Equal(t, "admin", published.Actor)
	assert.False(t, published.OccurredAt.IsZero())
	publisher.AssertExpectations(t)
}

func TestRecordSwallowsPublishFailure(t *testing.T) {
	publisher := new(mocks.MockAuditPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	assert.NotPanics(t, func() {
		Record(context.Background(), publisher, zap.NewNop(), models.AuditEvent{Event: models.AuditPatientDeleted})
	})
	publisher.AssertExpectations(t)
}

func TestNopPublisher(t *testing.T) {
	publisher, err := NewAuditPublisher(nil, "ehr_audit", zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, publisher.Publish(context.Background(), &models.AuditEvent{}))
	assert.NoError(t, publisher.Close())
}
