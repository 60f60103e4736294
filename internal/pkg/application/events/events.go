package events

import (
	"context"
	"errors"
	"fmt"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/alarmer/internal/pkg/application"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/logging"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"golang.org/x/sys/unix"
)

//go:generate moq -rm -out events_mock.go . Publisher

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// TopicPublisher is satisfied by messaging.MsgContext
type TopicPublisher interface {
	PublishOnTopic(ctx context.Context, message messaging.TopicMessage) error
}

type topicPublisher struct {
	messenger TopicPublisher
}

func NewTopicPublisher(messenger TopicPublisher) Publisher {
	return &topicPublisher{messenger: messenger}
}

func (t *topicPublisher) Publish(ctx context.Context, event Event) error {
	return t.messenger.PublishOnTopic(ctx, event)
}

type webhookPublisher struct {
	source      string
	subscribers map[string][]application.SubscriberConfig
	client      cloudevents.Client
}

// NewWebhookPublisher sends events as cloudevents to the subscribers
// configured for each event type
func NewWebhookPublisher(source string, cfg application.EventsConfig) (Publisher, error) {
	w := &webhookPublisher{
		source:      source,
		subscribers: map[string][]application.SubscriberConfig{},
	}

	for _, n := range cfg.Notifications {
		w.subscribers[n.Type] = append(w.subscribers[n.Type], n.Subscribers...)
	}

	if len(w.subscribers) == 0 {
		return w, nil
	}

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return nil, err
	}
	w.client = c

	return w, nil
}

func (w *webhookPublisher) Publish(ctx context.Context, e Event) error {
	subscribers, ok := w.subscribers[e.TopicName()]
	if !ok || len(subscribers) == 0 || w.client == nil {
		return nil
	}

	event := cloudevents.NewEvent()
	event.SetID(e.EventID())
	event.SetTime(e.EventTime())
	event.SetSource(w.source)
	event.SetType(e.TopicName())

	err := event.SetData(cloudevents.ApplicationJSON, e)
	if err != nil {
		return err
	}

	logger := logging.GetLoggerFromContext(ctx)

	for _, s := range subscribers {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, s.Endpoint)

		result := w.client.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error().Err(result).Msgf("failed to send event to %s", s.Endpoint)
			err = fmt.Errorf("%w", result)
		}
	}

	return err
}

type multi []Publisher

func NewMulti(publishers ...Publisher) Publisher {
	return multi(publishers)
}

func (m multi) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type nop struct{}

func NewNop() Publisher {
	return nop{}
}

func (nop) Publish(context.Context, Event) error {
	return nil
}
