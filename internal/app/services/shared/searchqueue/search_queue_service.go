package searchqueue

import (
	"availability-service/internal/pkg/constvars"
	"availability-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	SearchQueueName     = "availability_search_queue"
	DeadLetterQueueName = "availability_search_dlq"

	KindNextSlot = "next_slot"
	KindSlots    = "slots"
)

// SearchQueueMessage is the payload stored in RabbitMQ. Body carries the
// same JSON shape the HTTP endpoints accept for the given kind.
type SearchQueueMessage struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Body        json.RawMessage `json:"body"`
	FailedCount int             `json:"failed_count"`
}

// Service manages the durable search queue and its dead-letter queue.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	prefetch int
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService declares both durable queues, enables publisher confirms and
// sets QoS on a dedicated channel.
func NewService(conn *amqp.Connection, log *zap.Logger, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	for _, queue := range []string{SearchQueueName, DeadLetterQueueName} {
		_, err = ch.QueueDeclare(
			queue, // name
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,   // args
		)
		if err != nil {
			return nil, err
		}
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:       ch,
		log:      log,
		prefetch: prefetch,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

// Enqueue publishes a message to the search queue with persistence and waits
// for the broker confirm.
func (s *Service) Enqueue(ctx context.Context, message SearchQueueMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publish(ctx, SearchQueueName, amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
}

// Reenqueue puts a message, typically with an incremented FailedCount, back
// at the tail of the search queue.
func (s *Service) Reenqueue(ctx context.Context, message SearchQueueMessage) error {
	return s.Enqueue(ctx, message)
}

// EnqueueToDeadQueue moves an unprocessable message to the DLQ.
func (s *Service) EnqueueToDeadQueue(ctx context.Context, message SearchQueueMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publish(ctx, DeadLetterQueueName, amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
}

// PublishRaw moves a raw body to the DLQ, used for poison messages that do
// not even decode.
func (s *Service) PublishRaw(ctx context.Context, queue string, body []byte) error {
	return s.publish(ctx, queue, amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
}

// Reply publishes a result to the requester's reply queue, tagged with the
// original correlation id. Replies are fire-and-forget, not persistent.
func (s *Service) Reply(ctx context.Context, replyTo, correlationID string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publish(ctx, replyTo, amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		CorrelationId: correlationID,
	})
}

// Consume opens the delivery stream for the search queue without auto-ack.
func (s *Service) Consume() (<-chan amqp.Delivery, error) {
	return s.ch.Consume(
		SearchQueueName, // queue
		"",              // consumer tag
		false,           // autoAck
		false,           // exclusive
		false,           // noLocal
		false,           // noWait
		nil,             // args
	)
}

func (s *Service) Close() error {
	return s.ch.Close()
}

func (s *Service) publish(ctx context.Context, queue string, msg amqp.Publishing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
	}
	return nil
}
