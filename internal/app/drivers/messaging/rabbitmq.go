package messaging

import (
	"ehr-portal-service/internal/app/config"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ dials the audit broker. It returns a nil connection when no
// host is configured.
func NewRabbitMQ(driverConfig *config.DriverConfig) (*amqp091.Connection, error) {
	if driverConfig.RabbitMQ.Host == "" {
		return nil, nil
	}

	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	return conn, nil
}
