package messaging

import (
	"cfs-service/internal/app/config"
	"net"
	"net/url"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NewRabbitMQ dials the broker that receives assessment events.
func NewRabbitMQ(driverConfig *config.DriverConfig, log *zap.Logger) *amqp091.Connection {
	rabbitConfig := driverConfig.RabbitMQ
	amqpURL := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(rabbitConfig.Username, rabbitConfig.Password),
		Host:   net.JoinHostPort(rabbitConfig.Host, rabbitConfig.Port),
		Path:   "/",
	}

	conn, err := amqp091.DialConfig(amqpURL.String(), amqp091.Config{
		Vhost:      rabbitConfig.VHost,
		Properties: amqp091.Table{"connection_name": "cfs-service"},
	})
	if err != nil {
		log.Fatal("Failed to connect to rabbitMQ", zap.String("host", rabbitConfig.Host), zap.Error(err))
	}

	log.Info("Successfully connected to rabbitMQ",
		zap.String("host", rabbitConfig.Host),
		zap.String("vhost", rabbitConfig.VHost),
	)
	return conn
}
