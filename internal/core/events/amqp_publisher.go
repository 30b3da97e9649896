package events

import (
	"context"
	"encoding/json"
	"fmt"

	"marketplace-settlement/internal/core/logger"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// AMQPPublisher implements Publisher over a RabbitMQ topic exchange.
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// envelope is the wire format consumed by downstream dashboard services.
type envelope struct {
	Pattern string `json:"pattern"`
	Data    any    `json:"data"`
}

// NewAMQPPublisher connects to the broker and declares the topic exchange.
func NewAMQPPublisher(amqpURL, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &AMQPPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Publish sends the data as a JSON envelope under the given routing key.
func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	body, err := json.Marshal(envelope{Pattern: routingKey, Data: data})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	logger.Get().Debug("Publishing event",
		zap.String("routing_key", routingKey),
		zap.String("exchange", p.exchange),
	)

	err = p.channel.Publish(
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Close closes the channel and connection.
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

var _ Publisher = (*AMQPPublisher)(nil)
