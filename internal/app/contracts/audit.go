package contracts

import (
	"context"
	"ehr-portal-service/internal/app/models"
)

type AuditPublisher interface {
	Publish(ctx context.Context, event *models.AuditEvent) error
	Close() error
}
