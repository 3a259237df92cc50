package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"career-guide/internal/usecase"

	"github.com/streadway/amqp"
)

type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher forwards student events to a topic exchange with routing key
// student.<id>. A channel is opened per publish, since amqp channels are not
// safe for concurrent use.
type AMQPPublisher struct {
	conn     *amqp.Connection
	open     func() (channel, error)
	exchange string
	logger   *log.Logger
}

func NewAMQPPublisher(url, exchange string, logger *log.Logger) (*AMQPPublisher, error) {
	if logger == nil {
		logger = log.Default()
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("empty rabbitmq url")
	}
	if strings.TrimSpace(exchange) == "" {
		return nil, errors.New("empty rabbitmq exchange")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	logger.Printf("events status=connected broker=rabbitmq exchange=%s", exchange)
	return &AMQPPublisher{
		conn: conn,
		open: func() (channel, error) {
			return conn.Channel()
		},
		exchange: exchange,
		logger:   logger,
	}, nil
}

func RoutingKey(studentID string) string {
	return "student." + studentID
}

func (p *AMQPPublisher) Publish(ctx context.Context, evt usecase.Event) error {
	if p == nil || p.open == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	ch, err := p.open()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel: %w", err)
	}
	defer ch.Close()

	return ch.Publish(
		p.exchange,
		RoutingKey(evt.StudentID),
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now().UTC(),
			Type:        evt.Type,
			Body:        body,
		},
	)
}

func (p *AMQPPublisher) Close() error {
	if p == nil || p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
