// Package events publishes order lifecycle events to RabbitMQ so downstream
// consumers (fulfilment, analytics) can react without coupling to the API.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eonerhime/easy-shoppers-hub/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const orderPlacedQueue = "orders.placed"

// Publisher emits order-placed events. Best-effort: callers log failures
// and move on.
type Publisher interface {
	OrderPlaced(ctx context.Context, order *models.Order) error
	Close() error
}

// AMQPPublisher publishes to a durable RabbitMQ queue.
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := channel.QueueDeclare(orderPlacedQueue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	return &AMQPPublisher{conn: conn, channel: channel}, nil
}

func (p *AMQPPublisher) OrderPlaced(ctx context.Context, order *models.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return p.channel.PublishWithContext(ctx, "", orderPlacedQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	return p.conn.Close()
}

// NoopPublisher is used when AMQP_URL is not configured.
type NoopPublisher struct{}

func (NoopPublisher) OrderPlaced(context.Context, *models.Order) error { return nil }
func (NoopPublisher) Close() error                                     { return nil }
