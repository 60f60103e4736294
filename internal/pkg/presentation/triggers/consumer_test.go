package triggers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/diwise/alarmer/internal/pkg/application"
	"github.com/matryer/is"
	amqp "github.com/rabbitmq/amqp091-go"
)

func TestTriggerMessageIsAcked(t *testing.T) {
	is := is.New(t)

	var alarmID string
	var level int

	handler := NewTriggerHandler(func(ctx context.Context, id string, l int) error {
		alarmID, level = id, l
		return nil
	})

	ack := &acknowledger{}
	handler(context.Background(), delivery(ack, `{"alarm_id":"plant/a1","level":2}`))

	is.Equal(alarmID, "plant/a1")
	is.Equal(level, 2)
	is.Equal(ack.acked, 1)
	is.Equal(ack.nacked, 0)
}

func TestFailedTriggerIsNackedWithoutRequeue(t *testing.T) {
	is := is.New(t)

	handler := NewTriggerHandler(func(ctx context.Context, id string, l int) error {
		return fmt.Errorf("%w: mail server down", application.ErrOperationFailed)
	})

	ack := &acknowledger{}
	handler(context.Background(), delivery(ack, `{"alarm_id":"a1","level":1}`))

	is.Equal(ack.acked, 0)
	is.Equal(ack.nacked, 1)
	is.True(!ack.requeued)
}

func TestTriggerForUnknownAlarmIsRejected(t *testing.T) {
	is := is.New(t)

	handler := NewTriggerHandler(func(ctx context.Context, id string, l int) error {
		return fmt.Errorf("%w: alarm a1", application.ErrNotFound)
	})

	ack := &acknowledger{}
	handler(context.Background(), delivery(ack, `{"alarm_id":"a1","level":1}`))

	is.Equal(ack.rejected, 1)
	is.Equal(ack.nacked, 0)
}

func TestMalformedMessageIsRejected(t *testing.T) {
	is := is.New(t)

	called := false
	handler := NewTriggerHandler(func(ctx context.Context, id string, l int) error {
		called = true
		return errors.New("should not be called")
	})

	ack := &acknowledger{}
	handler(context.Background(), delivery(ack, `{"alarm_id":`))

	is.True(!called)
	is.Equal(ack.rejected, 1)
}

type acknowledger struct {
	acked    int
	nacked   int
	rejected int
	requeued bool
}

func (a *acknowledger) Ack(tag uint64, multiple bool) error {
	a.acked++
	return nil
}

func (a *acknowledger) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked++
	a.requeued = a.requeued || requeue
	return nil
}

func (a *acknowledger) Reject(tag uint64, requeue bool) error {
	a.rejected++
	a.requeued = a.requeued || requeue
	return nil
}

func delivery(ack amqp.Acknowledger, body string) amqp.Delivery {
	return amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte(body)}
}
