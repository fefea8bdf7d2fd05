package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Message формат сообщения в очереди; property_id строкой, как ждут потребители индекса поиска
type Message struct {
	Action     string    `json:"action"`
	PropertyID string    `json:"property_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewMessage конвертирует доменное событие в сообщение очереди
func NewMessage(evt domain.PropertyEvent) Message {
	return Message{
		Action:     string(evt.Action),
		PropertyID: strconv.FormatInt(evt.PropertyID, 10),
		OccurredAt: evt.OccurredAt.UTC(),
	}
}

// Publisher публикует события каталога в durable очередь RabbitMQ
// amqp.Channel не потокобезопасен, публикация идет под мьютексом
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	mu      sync.Mutex
	logger  Logger
}

// NewPublisher подключается к RabbitMQ и объявляет очередь
func NewPublisher(url, queue string, logger Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%w: declare queue %s: %v", ErrConnect, queue, err)
	}

	logger.Info("Events: connected to RabbitMQ, queue=%s", queue)

	return &Publisher{
		conn:    conn,
		channel: ch,
		queue:   queue,
		logger:  logger,
	}, nil
}

// PublishPropertyEvent отправляет persistent сообщение в очередь
func (p *Publisher) PublishPropertyEvent(ctx context.Context, evt domain.PropertyEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(NewMessage(evt))
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPublish, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.Publish(
		"",      // exchange по умолчанию
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    evt.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("%w: action=%s property_id=%d: %v", ErrPublish, evt.Action, evt.PropertyID, err)
	}

	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// NopPublisher используется, когда события отключены
type NopPublisher struct{}

func (NopPublisher) PublishPropertyEvent(ctx context.Context, evt domain.PropertyEvent) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
