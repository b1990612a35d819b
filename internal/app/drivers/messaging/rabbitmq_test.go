package messaging

import (
	"ehr-portal-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRabbitMQWithoutHost(t *testing.T) {
	conn, err := NewRabbitMQ(&config.DriverConfig{})

	assert.NoError(t, err)
	assert.Nil(t, conn)
}
