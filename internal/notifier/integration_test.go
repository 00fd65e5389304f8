//go:build integration

package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestConnection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	ch, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(ch)

	err = ch.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestSendDeliversAlert() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-send",
		RoutingKey: "test-routing-key-send",
		QueueName:  "test-queue-send",
	}

	ch, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer ch.Close()

	err = ch.Send(s.ctx, "ops", "price discrepancy for SKU-1: platform 19.99 vs supplier 25.00")
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	var received AlertMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("ops", received.Target)
	s.Contains(received.Message, "SKU-1")
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(cfg.URL)
	s.Require().NoError(err)
	defer conn.Close()

	channel, err := conn.Channel()
	s.Require().NoError(err)
	defer channel.Close()

	deliveries, err := channel.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-deliveries:
		return &msg
	case <-time.After(5 * time.Second):
		return nil
	}
}
