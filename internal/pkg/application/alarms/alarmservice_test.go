package alarms

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/diwise/alarmer/internal/pkg/application"
	"github.com/diwise/alarmer/internal/pkg/application/events"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/controller"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/mail"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database/auditlog"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database/subscriptions"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database/userinfo"
	"github.com/matryer/is"
)

func TestTriggerOnInactiveAlarmOnlyLogs(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.state.Status = controller.StatusInactive

	err := f.svc.Trigger(ctx, "a1", 1)
	is.NoErr(err)

	is.Equal(len(f.log.AppendCalls()), 1)
	entry := f.log.AppendCalls()[0].Entry
	is.Equal(entry.Action, auditlog.ActionTriggered)
	is.Equal(entry.Level, 1)
	is.Equal(entry.Description, "boiler pressure")

	is.Equal(len(f.controller.SetCalls()), 0)
	is.Equal(len(f.mailer.SendCalls()), 0)
}

func TestTriggerEscalationUpdatesValueAndNotifies(t *testing.T) {
	is, ctx, f := testSetup(t)

	err := f.svc.Trigger(ctx, "plant/a1", 2)
	is.NoErr(err)

	is.Equal(len(f.controller.SetCalls()), 1)
	is.Equal(f.controller.SetCalls()[0].Oid, "lvar:alarmer/plant/a1")
	is.Equal(f.controller.SetCalls()[0].Value, 2)

	is.Equal(f.subs.SubscribersAtOrBelowCalls()[0].Level, 2)

	is.Equal(len(f.mailer.SendCalls()), 2)
	call := f.mailer.SendCalls()[0]
	is.Equal(call.Subject, "ALARM: boiler pressure")
	is.Equal(call.Body, "ALARM: boiler pressure (plant/a1)\nSystem: plant-1")

	is.Equal(len(f.publisher.PublishCalls()), 1)
	is.Equal(f.publisher.PublishCalls()[0].Event.TopicName(), events.TypeAlarmTriggered)
}

func TestTriggerWarningUsesWarningSubject(t *testing.T) {
	is, ctx, f := testSetup(t)

	is.NoErr(f.svc.Trigger(ctx, "a1", 1))
	is.True(strings.HasPrefix(f.mailer.SendCalls()[0].Subject, "WARNING: "))
}

func TestTriggerSkipsSubscribersWithoutContact(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.contacts.LookupFunc = func(ctx context.Context, field, user, userType string) ([]string, error) {
		if user == "ann" {
			return []string{}, nil
		}
		return []string{user + "@example.com"}, nil
	}

	is.NoErr(f.svc.Trigger(ctx, "a1", 2))
	is.Equal(len(f.mailer.SendCalls()), 1)
	is.Equal(f.mailer.SendCalls()[0].Recipients, []string{"joe@example.com"})
	is.Equal(f.contacts.LookupCalls()[0].Field, "email")
}

func TestDedupOnlyNotifiesOnEscalation(t *testing.T) {
	is, ctx, f := testSetup(t)

	levels := []int{1, 1, 2, 1, 2, 2}
	expectedNotifications := []bool{true, false, true, false, false, false}

	for i, level := range levels {
		before := len(f.subs.SubscribersAtOrBelowCalls())

		is.NoErr(f.svc.Trigger(ctx, "a1", level))

		notified := len(f.subs.SubscribersAtOrBelowCalls()) > before
		is.Equal(notified, expectedNotifications[i])
	}

	is.Equal(len(f.log.AppendCalls()), len(levels))
}

func TestExampleScenario(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.state.Status = controller.StatusInactive
	f.state.Value = ""
	f.subs.SubscribersAtOrBelowFunc = func(ctx context.Context, alarmID string, level int) ([]subscriptions.Subscriber, error) {
		return []subscriptions.Subscriber{}, nil
	}

	is.NoErr(f.svc.Trigger(ctx, "a1", 1))
	is.Equal(len(f.controller.SetCalls()), 0)

	f.mu.Lock()
	f.state.Status = controller.StatusActive
	f.state.Value = "0"
	f.mu.Unlock()

	is.NoErr(f.svc.Trigger(ctx, "a1", 1))
	is.Equal(len(f.controller.SetCalls()), 1)
	is.Equal(len(f.subs.SubscribersAtOrBelowCalls()), 1)

	is.NoErr(f.svc.Trigger(ctx, "a1", 1))
	is.Equal(len(f.controller.SetCalls()), 1)
	is.Equal(len(f.subs.SubscribersAtOrBelowCalls()), 1)

	is.Equal(len(f.log.AppendCalls()), 3)
	for _, c := range f.log.AppendCalls() {
		is.Equal(c.Entry.Level, 1)
		is.Equal(c.Entry.Action, auditlog.ActionTriggered)
	}
}

func TestTriggerProceedsWhenAuditWriteFails(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.log.AppendFunc = func(ctx context.Context, entry auditlog.Entry) error {
		return errors.New("disk full")
	}

	is.NoErr(f.svc.Trigger(ctx, "a1", 2))
	is.Equal(len(f.mailer.SendCalls()), 2)
}

func TestTriggerReportsDeliveryFailureAfterLogging(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.mailer.SendFunc = func(ctx context.Context, subject, body string, recipients []string) error {
		return errors.New("smtp unavailable")
	}

	err := f.svc.Trigger(ctx, "a1", 2)
	is.True(errors.Is(err, application.ErrOperationFailed))
	is.Equal(len(f.log.AppendCalls()), 1)
	is.Equal(len(f.mailer.SendCalls()), 2)
}

func TestTriggerPublishesEscalationWhenDeliveryFails(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.mailer.SendFunc = func(ctx context.Context, subject, body string, recipients []string) error {
		return errors.New("smtp unavailable")
	}

	err := f.svc.Trigger(ctx, "a1", 2)
	is.True(errors.Is(err, application.ErrOperationFailed))
	is.Equal(len(f.publisher.PublishCalls()), 1)
	is.Equal(f.publisher.PublishCalls()[0].Event.TopicName(), events.TypeAlarmTriggered)
}

func TestTriggerRejectsInvalidLevel(t *testing.T) {
	is, ctx, f := testSetup(t)

	err := f.svc.Trigger(ctx, "a1", 0)
	is.True(errors.Is(err, application.ErrInvalidArgument))
	is.Equal(len(f.log.AppendCalls()), 0)
}

func TestTriggerWithUnknownAlarm(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.controller.StateFunc = func(ctx context.Context, oid string) (controller.State, error) {
		return controller.State{}, &controller.ResultError{Func: "state", Target: oid, Code: controller.ResultNotFound}
	}

	err := f.svc.Trigger(ctx, "a1", 1)
	is.True(errors.Is(err, application.ErrNotFound))
}

func TestConcurrentTriggersNotifyOnce(t *testing.T) {
	is, ctx, f := testSetup(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.svc.Trigger(ctx, "a1", 2)
		}()
	}
	wg.Wait()

	is.Equal(len(f.controller.SetCalls()), 1)
	is.Equal(len(f.subs.SubscribersAtOrBelowCalls()), 1)
	is.Equal(len(f.log.AppendCalls()), 10)
}

func TestAcknowledgeClearsAndLogs(t *testing.T) {
	is, ctx, f := testSetup(t)

	who := application.Identity{User: "joe", UserType: "local", KeyID: "operator"}

	is.NoErr(f.svc.Acknowledge(ctx, who, "a1"))

	is.Equal(len(f.controller.ClearCalls()), 1)
	is.Equal(f.controller.ClearCalls()[0].Oid, "lvar:alarmer/a1")

	entry := f.log.AppendCalls()[0].Entry
	is.Equal(entry.Action, auditlog.ActionAcknowledged)
	is.Equal(entry.Level, 0)
	is.Equal(entry.User, "joe")
	is.Equal(entry.KeyID, "operator")

	is.Equal(f.authz.AuthorizedCalls()[0].Mode, application.AccessReadWrite)
	is.Equal(f.authz.AuthorizedCalls()[0].Resource, "lvar:alarmer/a1")
}

func TestAcknowledgeRequiresReadWriteAccess(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.authz.AuthorizedFunc = func(ctx context.Context, who application.Identity, resource string, mode application.AccessMode) (bool, error) {
		return mode == application.AccessReadOnly, nil
	}

	err := f.svc.Acknowledge(ctx, application.Identity{User: "joe"}, "a1")
	is.True(errors.Is(err, application.ErrAccessDenied))
	is.Equal(len(f.controller.ClearCalls()), 0)
}

func TestAcknowledgeUnknownAlarm(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.controller.ExistsFunc = func(ctx context.Context, oid string) (bool, error) {
		return false, nil
	}

	err := f.svc.Acknowledge(ctx, application.Identity{User: "joe"}, "a1")
	is.True(errors.Is(err, application.ErrNotFound))
}

func TestAcknowledgeByAnonymousCallerLogsEmptyUser(t *testing.T) {
	is, ctx, f := testSetup(t)

	is.NoErr(f.svc.Acknowledge(ctx, application.Identity{}, "a1"))
	is.Equal(f.log.AppendCalls()[0].Entry.User, "")
}

func TestSubscribeValidatesLevelFirst(t *testing.T) {
	is, ctx, f := testSetup(t)

	err := f.svc.Subscribe(ctx, application.Identity{User: "joe"}, "a1", 3)
	is.True(errors.Is(err, application.ErrInvalidArgument))
	is.Equal(len(f.controller.ExistsCalls()), 0)
}

func TestSubscribeRequiresLoggedInUser(t *testing.T) {
	is, ctx, f := testSetup(t)

	err := f.svc.Subscribe(ctx, application.Identity{KeyID: "anonymous"}, "a1", 1)
	is.True(errors.Is(err, application.ErrUnauthenticated))
	is.Equal(len(f.subs.SubscribeCalls()), 0)
}

func TestSubscribeChecksReadAccess(t *testing.T) {
	is, ctx, f := testSetup(t)

	is.NoErr(f.svc.Subscribe(ctx, application.Identity{User: "joe", UserType: "local"}, "a1", 1))
	is.Equal(f.authz.AuthorizedCalls()[0].Mode, application.AccessReadOnly)
	is.Equal(f.subs.SubscribeCalls()[0].User, "joe")
	is.Equal(f.subs.SubscribeCalls()[0].Level, 1)
}

func TestUnsubscribeOfUnknownAlarm(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.controller.ExistsFunc = func(ctx context.Context, oid string) (bool, error) {
		return false, nil
	}

	err := f.svc.Unsubscribe(ctx, application.Identity{User: "joe"}, "a1")
	is.True(errors.Is(err, application.ErrNotFound))
}

func TestListSubscriptionsRequiresUser(t *testing.T) {
	is, ctx, f := testSetup(t)

	_, err := f.svc.ListSubscriptions(ctx, application.Identity{})
	is.True(errors.Is(err, application.ErrUnauthenticated))

	subs, err := f.svc.ListSubscriptions(ctx, application.Identity{User: "joe", UserType: "local"})
	is.NoErr(err)
	is.Equal(len(subs), 1)
	is.Equal(subs[0].AlarmID, "a1")
}

func TestUnfilteredLogRequiresMaster(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.authz.AuthorizedFunc = func(ctx context.Context, who application.Identity, resource string, mode application.AccessMode) (bool, error) {
		return mode != application.AccessMaster, nil
	}

	_, err := f.svc.GetLog(ctx, application.Identity{User: "joe"}, "", 10)
	is.True(errors.Is(err, application.ErrAccessDenied))

	entries, err := f.svc.GetLog(ctx, application.Identity{User: "joe"}, "a1", 10)
	is.NoErr(err)
	is.Equal(len(entries), 1)
	is.Equal(entries[0].Action, "T")
	is.Equal(f.log.QueryCalls()[0].Limit, 10)
}

type fixture struct {
	svc        AlarmService
	mu         sync.Mutex
	state      controller.State
	controller *controller.ClientMock
	subs       *subscriptions.StoreMock
	log        *auditlog.LogMock
	contacts   *userinfo.StoreMock
	mailer     *mail.SenderMock
	authz      *application.AuthorizerMock
	publisher  *events.PublisherMock
}

func testSetup(t *testing.T) (*is.I, context.Context, *fixture) {
	is := is.New(t)

	f := &fixture{
		state: controller.State{
			Description: "boiler pressure",
			Status:      controller.StatusActive,
			Value:       "0",
		},
	}

	f.controller = &controller.ClientMock{
		StateFunc: func(ctx context.Context, oid string) (controller.State, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			s := f.state
			s.OID = oid
			return s, nil
		},
		SetFunc: func(ctx context.Context, oid string, value int) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			time.Sleep(time.Millisecond)
			f.state.Value = controller.Value(strconv.Itoa(value))
			return nil
		},
		ClearFunc: func(ctx context.Context, oid string) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.state.Value = "0"
			return nil
		},
		ExistsFunc: func(ctx context.Context, oid string) (bool, error) {
			return true, nil
		},
	}

	f.subs = &subscriptions.StoreMock{
		SubscribersAtOrBelowFunc: func(ctx context.Context, alarmID string, level int) ([]subscriptions.Subscriber, error) {
			return []subscriptions.Subscriber{
				{User: "joe", UserType: "local"},
				{User: "ann", UserType: "local"},
			}, nil
		},
		SubscribeFunc: func(ctx context.Context, user, userType, alarmID string, level int) error {
			return nil
		},
		UnsubscribeFunc: func(ctx context.Context, user, userType, alarmID string) error {
			return nil
		},
		ListFunc: func(ctx context.Context, user, userType string) ([]subscriptions.Subscription, error) {
			return []subscriptions.Subscription{{User: user, UserType: userType, AlarmID: "a1", Level: 2}}, nil
		},
	}

	f.log = &auditlog.LogMock{
		AppendFunc: func(ctx context.Context, entry auditlog.Entry) error {
			return nil
		},
		QueryFunc: func(ctx context.Context, alarmID string, limit int) ([]auditlog.Entry, error) {
			return []auditlog.Entry{{AlarmID: alarmID, Action: auditlog.ActionTriggered, Level: 1}}, nil
		},
	}

	f.contacts = &userinfo.StoreMock{
		LookupFunc: func(ctx context.Context, field, user, userType string) ([]string, error) {
			return []string{user + "@example.com"}, nil
		},
	}

	f.mailer = &mail.SenderMock{
		SendFunc: func(ctx context.Context, subject, body string, recipients []string) error {
			return nil
		},
	}

	f.authz = &application.AuthorizerMock{
		AuthorizedFunc: func(ctx context.Context, who application.Identity, resource string, mode application.AccessMode) (bool, error) {
			return true, nil
		},
	}

	f.publisher = &events.PublisherMock{
		PublishFunc: func(ctx context.Context, event events.Event) error {
			return nil
		},
	}

	f.svc = New(Config{SystemName: "plant-1"}, f.controller, f.subs, f.log, f.contacts, f.mailer, f.authz, f.publisher)

	return is, context.Background(), f
}
