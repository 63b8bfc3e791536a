// Package publisher emits feedback and refresh events to RabbitMQ.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"news_curator/internal/domain"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger = logger.With("component", "publisher")
	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

const (
	ActionFeedback = "feedback"
	ActionRefresh  = "refresh"
)

// Message is the envelope of every event. Exactly one payload is set,
// matching Action.
type Message struct {
	ID        string               `json:"id"`
	Action    string               `json:"action"`
	Feedback  *FeedbackPayload     `json:"feedback,omitempty"`
	Refresh   *domain.RefreshStats `json:"refresh,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
}

type FeedbackPayload struct {
	ArticleID string    `json:"article_id"`
	IsHelpful bool      `json:"is_helpful"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *RabbitMQ) PublishFeedback(ctx context.Context, articleID string, feedback domain.Feedback) error {
	return r.publish(ctx, Message{
		Action: ActionFeedback,
		Feedback: &FeedbackPayload{
			ArticleID: articleID,
			IsHelpful: feedback.IsHelpful,
			Reason:    feedback.Reason,
			CreatedAt: feedback.CreatedAt,
		},
	})
}

func (r *RabbitMQ) PublishRefresh(ctx context.Context, stats *domain.RefreshStats) error {
	return r.publish(ctx, Message{
		Action:  ActionRefresh,
		Refresh: stats,
	})
}

func (r *RabbitMQ) publish(ctx context.Context, msg Message) error {
	msg.ID = uuid.NewString()
	msg.Timestamp = time.Now().UTC()

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    msg.ID,
			Type:         msg.Action,
			Body:         body,
			Timestamp:    msg.Timestamp,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s message: %w", msg.Action, err)
	}

	r.logger.Debug("published event",
		"id", msg.ID,
		"action", msg.Action,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
