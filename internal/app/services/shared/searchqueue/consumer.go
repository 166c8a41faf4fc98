package searchqueue

import (
	"availability-service/internal/app/config"
	"availability-service/internal/app/contracts"
	"availability-service/internal/pkg/constvars"
	"availability-service/internal/pkg/dto/requests"
	"context"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Consumer drains the search queue with at-least-once semantics: successful
// searches are replied to the requester's ReplyTo queue, failures are
// retried up to the configured limit and then dead-lettered.
type Consumer struct {
	queue        *Service
	availability contracts.AvailabilityUsecase
	cfg          *config.InternalConfig
	log          *zap.Logger
	limiter      *rate.Limiter
	stop         chan struct{}
}

func NewConsumer(queue *Service, availability contracts.AvailabilityUsecase, cfg *config.InternalConfig, log *zap.Logger) *Consumer {
	perSecond := cfg.Queue.ConsumeRatePerSecond
	if perSecond <= 0 {
		perSecond = 1
	}
	return &Consumer{
		queue:        queue,
		availability: availability,
		cfg:          cfg,
		log:          log,
		limiter:      rate.NewLimiter(rate.Limit(perSecond), perSecond),
		stop:         make(chan struct{}),
	}
}

// Start opens the delivery stream and processes it until the returned stop
// function is called or the context ends.
func (c *Consumer) Start(ctx context.Context) (stop func(), err error) {
	deliveries, err := c.queue.Consume()
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-c.stop:
				return
			case d, ok := <-deliveries:
				if !ok {
					c.log.Warn("search queue delivery stream closed")
					return
				}
				if err := c.limiter.Wait(ctx); err != nil {
					return
				}
				c.handleDelivery(ctx, d)
			}
		}
	}()

	return func() { close(c.stop) }, nil
}

func (c *Consumer) handleDelivery(ctx context.Context, d amqp.Delivery) {
	var msg SearchQueueMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		// Poison message: park it in the DLQ instead of looping forever.
		c.log.Error("search queue message does not decode", zap.Error(err))
		_ = c.queue.PublishRaw(ctx, DeadLetterQueueName, d.Body)
		_ = d.Ack(false)
		return
	}

	log := c.log.With(
		zap.String(constvars.LoggingMessageIDKey, msg.ID),
		zap.String(constvars.LoggingKindKey, msg.Kind),
	)

	result, err := c.dispatch(ctx, msg)
	if err != nil {
		msg.FailedCount++
		log.Warn("search queue message failed",
			zap.Int("failed_count", msg.FailedCount),
			zap.Error(err))
		if msg.FailedCount >= c.cfg.Queue.MaxRetry {
			_ = c.queue.EnqueueToDeadQueue(ctx, msg)
		} else {
			_ = c.queue.Reenqueue(ctx, msg)
		}
		_ = d.Ack(false)
		return
	}

	if d.ReplyTo != "" {
		if err := c.queue.Reply(ctx, d.ReplyTo, d.CorrelationId, result); err != nil {
			log.Error("search queue reply failed",
				zap.String(constvars.LoggingQueueKey, d.ReplyTo),
				zap.Error(err))
		}
	}

	log.Info("search queue message processed")
	_ = d.Ack(false)
}

func (c *Consumer) dispatch(ctx context.Context, msg SearchQueueMessage) (interface{}, error) {
	switch msg.Kind {
	case KindNextSlot:
		var request requests.NextSlot
		if err := json.Unmarshal(msg.Body, &request); err != nil {
			return nil, err
		}
		return c.availability.FindNextSlot(ctx, &request)
	case KindSlots:
		var request requests.ListSlots
		if err := json.Unmarshal(msg.Body, &request); err != nil {
			return nil, err
		}
		return c.availability.ListAvailableSlots(ctx, &request)
	default:
		return nil, errUnknownKind(msg.Kind)
	}
}

type unknownKindError struct{ kind string }

func (e unknownKindError) Error() string {
	return constvars.ErrDevSearchQueueUnknownKind + ": " + e.kind
}

func errUnknownKind(kind string) error { return unknownKindError{kind: kind} }
