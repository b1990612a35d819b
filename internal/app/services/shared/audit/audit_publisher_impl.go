package audit

import (
	"context"
	"ehr-portal-service/internal/app/contracts"
	"ehr-portal-service/internal/app/models"
	"ehr-portal-service/internal/pkg/constvars"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitPublisher struct {
	ch    *amqp.Channel
	queue string
	log   *zap.Logger
	mu    sync.Mutex
}

// NewAuditPublisher declares a durable queue on conn and publishes write
// events to it. A nil connection yields a publisher that drops events.
func NewAuditPublisher(conn *amqp.Connection, queue string, logger *zap.Logger) (contracts.AuditPublisher, error) {
	if conn == nil || queue == "" {
		logger.Info("audit publisher disabled")
		return NewNopPublisher(), nil
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}

	return &rabbitPublisher{ch: ch, queue: queue, log: logger}, nil
}

func (p *rabbitPublisher) Publish(ctx context.Context, event *models.AuditEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    event.OccurredAt,
		Type:         event.Event,
		Body:         body,
	}
	return p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg)
}

func (p *rabbitPublisher) Close() error {
	return p.ch.Close()
}

type nopPublisher struct{}

func NewNopPublisher() contracts.AuditPublisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, *models.AuditEvent) error { return nil }

func (nopPublisher) Close() error { return nil }

// Record stamps the event with the request id, the acting user and the
// current time, then publishes it. Failures are logged and swallowed.
func Record(ctx context.Context, publisher contracts.AuditPublisher, logger *zap.Logger, event models.AuditEvent) {
	if publisher == nil {
		return
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	event.RequestID = requestID
	if session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session); ok && session != nil {
		event.Actor = session.UserID
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := publisher.Publish(ctx, &event); err != nil {
		logger.Error(constvars.ErrDevAuditPublish,
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAuditEventKey, event.Event),
			zap.Error(err),
		)
	}
}
