package config

import (
	"context"
	"ehr-portal-service/internal/app/contracts"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	AuditPublisher contracts.AuditPublisher
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

// Shutdown closes the optional drivers in reverse dependency order.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.AuditPublisher != nil {
		if err := b.AuditPublisher.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing audit publisher")
	}

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	// Sync on stdout returns an error on some platforms; it is not fatal.
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
