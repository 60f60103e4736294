package triggers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/diwise/alarmer/internal/pkg/application"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/logging"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/tracing"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("alarmer/triggers")

// TriggerFunc is called for every trigger message received
type TriggerFunc func(ctx context.Context, alarmID string, level int) error

// Message is published by the controller's rule runner when a rule fires
type Message struct {
	AlarmID string `json:"alarm_id"`
	Level   int    `json:"level"`
}

type Consumer interface {
	Start(ctx context.Context) error
	Stop()
}

type consumer struct {
	url     string
	queue   string
	handler func(context.Context, amqp.Delivery)

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	done    chan struct{}
}

func NewConsumer(url, queue string, trigger TriggerFunc) Consumer {
	return &consumer{
		url:     url,
		queue:   queue,
		handler: NewTriggerHandler(trigger),
	}
}

func (c *consumer) Start(ctx context.Context) error {
	log := logging.GetLoggerFromContext(ctx).With().Str("queue", c.queue).Logger()

	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("failed to connect to message broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(c.queue, true, false, false, false, nil)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to declare queue %s: %w", c.queue, err)
	}

	if err = channel.Qos(1, 0, false); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set prefetch count: %w", err)
	}

	deliveries, err := channel.Consume(c.queue, "alarmer", false, false, false, false, nil)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to consume from %s: %w", c.queue, err)
	}

	c.mu.Lock()
	c.conn, c.channel = conn, channel
	c.done = make(chan struct{})
	c.mu.Unlock()

	go func(done chan struct{}) {
		defer close(done)

		ctx := logging.NewContextWithLogger(context.Background(), log)
		for d := range deliveries {
			c.handler(ctx, d)
		}

		log.Info().Msg("delivery channel closed")
	}(c.done)

	log.Info().Msg("consuming trigger messages")

	return nil
}

func (c *consumer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return
	}

	c.channel.Close()
	c.conn.Close()
	<-c.done

	c.conn, c.channel = nil, nil
}

// NewTriggerHandler returns a delivery handler that acknowledges a message
// once the trigger has been dispatched. Messages that fail are dropped
// without requeueing since the audit log already holds the trigger.
func NewTriggerHandler(trigger TriggerFunc) func(context.Context, amqp.Delivery) {
	return func(ctx context.Context, d amqp.Delivery) {
		var err error
		ctx, span := tracer.Start(ctx, "receive-trigger")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		log := logging.GetLoggerFromContext(ctx)

		msg := Message{}
		if err = json.Unmarshal(d.Body, &msg); err != nil {
			log.Error().Err(err).Msg("failed to unmarshal trigger message")
			reject(log, d)
			return
		}

		span.SetAttributes(attribute.String("alarm.id", msg.AlarmID))
		log = log.With().Str("alarm_id", msg.AlarmID).Int("level", msg.Level).Logger()

		err = trigger(logging.NewContextWithLogger(ctx, log), msg.AlarmID, msg.Level)
		if err != nil {
			if errors.Is(err, application.ErrInvalidArgument) || errors.Is(err, application.ErrNotFound) {
				log.Warn().Err(err).Msg("discarding trigger")
				reject(log, d)
				return
			}

			log.Error().Err(err).Msg("trigger failed")
			if nackErr := d.Nack(false, false); nackErr != nil {
				log.Error().Err(nackErr).Msg("failed to nack message")
			}
			return
		}

		if ackErr := d.Ack(false); ackErr != nil {
			log.Error().Err(ackErr).Msg("failed to ack message")
		}
	}
}

func reject(log zerolog.Logger, d amqp.Delivery) {
	if err := d.Reject(false); err != nil {
		log.Error().Err(err).Msg("failed to reject message")
	}
}
