//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"news_curator/internal/domain"
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

func (s *RabbitMQIntegrationSuite) config(name string) Config {
	return Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-" + name,
		RoutingKey: "test-routing-key-" + name,
		QueueName:  "test-queue-" + name,
	}
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	pub, err := NewRabbitMQ(s.config("conn"), s.logger)
	s.NoError(err)
	s.NotNil(pub)

	s.NoError(pub.Close())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishFeedback() {
	cfg := s.config("feedback")
	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	at := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	err = pub.PublishFeedback(s.ctx, "https://example.com/a", domain.Feedback{
		IsHelpful: true,
		Reason:    "deep dive",
		CreatedAt: at,
	})
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal("application/json", msg.ContentType)
	s.Equal(ActionFeedback, msg.Type)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received Message
	s.Require().NoError(json.Unmarshal(msg.Body, &received))
	s.Equal(ActionFeedback, received.Action)
	s.Equal(msg.MessageId, received.ID)
	_, err = uuid.Parse(received.ID)
	s.NoError(err)
	s.Nil(received.Refresh)
	s.Require().NotNil(received.Feedback)
	s.Equal("https://example.com/a", received.Feedback.ArticleID)
	s.True(received.Feedback.IsHelpful)
	s.Equal("deep dive", received.Feedback.Reason)
	s.True(at.Equal(received.Feedback.CreatedAt))
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishRefresh() {
	cfg := s.config("refresh")
	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	stats := &domain.RefreshStats{Feeds: 3, FeedsFailed: 1, Fetched: 40, New: 7, Duration: time.Second}
	s.NoError(pub.PublishRefresh(s.ctx, stats))

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	var received Message
	s.Require().NoError(json.Unmarshal(msg.Body, &received))
	s.Equal(ActionRefresh, received.Action)
	s.Nil(received.Feedback)
	s.Equal(stats, received.Refresh)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_UniqueMessageIDs() {
	cfg := s.config("ids")
	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	s.NoError(pub.PublishRefresh(s.ctx, &domain.RefreshStats{}))
	s.NoError(pub.PublishRefresh(s.ctx, &domain.RefreshStats{}))

	first := s.consumeMessage(cfg)
	second := s.consumeMessage(cfg)
	s.Require().NotNil(first)
	s.Require().NotNil(second)
	s.NotEqual(first.MessageId, second.MessageId)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msg, ok, err := ch.Get(cfg.QueueName, true)
	deadline := time.Now().Add(5 * time.Second)
	for err == nil && !ok && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
		msg, ok, err = ch.Get(cfg.QueueName, true)
	}
	s.Require().NoError(err)
	if !ok {
		s.Fail("Timeout waiting for message")
		return nil
	}
	return &msg
}
