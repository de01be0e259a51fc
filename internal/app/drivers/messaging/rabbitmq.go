package messaging

import (
	"fmt"
	"shrm-web/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NewRabbitMQ dials the broker used for form submission events. A disabled
// or unreachable broker yields nil; submissions still reach the backend API.
func NewRabbitMQ(driverConfig *config.DriverConfig, log *zap.Logger) *amqp091.Connection {
	if !driverConfig.RabbitMQ.Enabled {
		return nil
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
		log.Error("Failed to connect to rabbitMQ, submission events disabled", zap.Error(err))
		return nil
	}
	log.Info("Successfully connected to rabbitMQ")
	return conn
}
