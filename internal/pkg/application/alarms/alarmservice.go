package alarms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/alarmer/internal/pkg/application"
	"github.com/diwise/alarmer/internal/pkg/application/events"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/controller"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/logging"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/mail"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/metrics"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database/auditlog"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database/subscriptions"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database/userinfo"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/tracing"
	"github.com/diwise/alarmer/pkg/types"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate moq -rm -out alarmservice_mock.go . AlarmService

type AlarmService interface {
	Trigger(ctx context.Context, alarmID string, level int) error
	TriggerAs(ctx context.Context, who application.Identity, alarmID string, level int) error
	Acknowledge(ctx context.Context, who application.Identity, alarmID string) error

	Subscribe(ctx context.Context, who application.Identity, alarmID string, level int) error
	Unsubscribe(ctx context.Context, who application.Identity, alarmID string) error
	ListSubscriptions(ctx context.Context, who application.Identity) ([]types.Subscription, error)

	GetLog(ctx context.Context, who application.Identity, alarmID string, limit int) ([]types.LogEntry, error)
}

type Config struct {
	SystemName string
	EmailField string
}

type alarmSvc struct {
	cfg           Config
	controller    controller.Client
	subscriptions subscriptions.Store
	log           auditlog.Log
	contacts      userinfo.Store
	mailer        mail.Sender
	authz         application.Authorizer
	publisher     events.Publisher

	locks *keyedMutex
	now   func() time.Time
}

var tracer = otel.Tracer("alarmer/alarms")

func New(cfg Config, c controller.Client, s subscriptions.Store, l auditlog.Log, u userinfo.Store, m mail.Sender, a application.Authorizer, p events.Publisher) AlarmService {
	if cfg.EmailField == "" {
		cfg.EmailField = application.DefaultEmailField
	}

	if p == nil {
		p = events.NewNop()
	}

	return &alarmSvc{
		cfg:           cfg,
		controller:    c,
		subscriptions: s,
		log:           l,
		contacts:      u,
		mailer:        m,
		authz:         a,
		publisher:     p,
		locks:         newKeyedMutex(),
		now:           time.Now,
	}
}

// Trigger handles a rule firing for alarmID at level. The trigger is always
// written to the audit log. Notifications are only sent when the alarm is
// active and the level is higher than the current severity.
func (svc *alarmSvc) Trigger(ctx context.Context, alarmID string, level int) error {
	var err error
	ctx, span := tracer.Start(ctx, "trigger")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	span.SetAttributes(attribute.String("alarm.id", alarmID), attribute.Int("alarm.level", level))

	log := logging.GetLoggerFromContext(ctx).With().Str("alarm_id", alarmID).Int("level", level).Logger()
	ctx = logging.NewContextWithLogger(ctx, log)

	if alarmID == "" {
		err = fmt.Errorf("%w: alarm id must not be empty", application.ErrInvalidArgument)
		return err
	}

	if level < types.LevelWarning {
		err = fmt.Errorf("%w: trigger level must be 1 or higher, got %d", application.ErrInvalidArgument, level)
		return err
	}

	unlock := svc.locks.Lock(alarmID)
	defer unlock()

	oid := StateOID(alarmID)

	state, err := svc.controller.State(ctx, oid)
	if err != nil {
		err = controllerError(err, oid)
		metrics.Trigger(metrics.OutcomeFailed)
		return err
	}

	svc.appendLog(ctx, auditlog.Entry{
		AlarmID:     alarmID,
		Description: state.Description,
		Action:      auditlog.ActionTriggered,
		Level:       level,
	})

	if state.Status == controller.StatusInactive {
		log.Debug().Msg("inactive alarm triggered")
		metrics.Trigger(metrics.OutcomeInactive)
		return nil
	}

	current, err := state.Value.Int()
	if err != nil {
		log.Error().Err(err).Msg("unable to send notifications for alarm")
		err = fmt.Errorf("%w: %s", application.ErrOperationFailed, err.Error())
		metrics.Trigger(metrics.OutcomeFailed)
		return err
	}

	if current >= level {
		log.Info().Int("current", current).Msg("skipping alarm notifications, already triggered")
		metrics.Trigger(metrics.OutcomeSuppressed)
		return nil
	}

	err = svc.controller.Set(ctx, oid, level)
	if err != nil {
		log.Error().Err(err).Msg("unable to send notifications for alarm")
		err = controllerError(err, oid)
		metrics.Trigger(metrics.OutcomeFailed)
		return err
	}

	unlock()

	log.Warn().Str("severity", types.SeverityName(level)).Msg("alarm triggered")

	svc.publish(ctx, &events.AlarmTriggered{
		AlarmID:     alarmID,
		Description: state.Description,
		Level:       level,
		Severity:    types.SeverityName(level),
		Timestamp:   svc.now().UTC(),
	})

	err = svc.notify(ctx, log, alarmID, state.Description, level)
	if err != nil {
		log.Error().Err(err).Msg("unable to send notifications for alarm")
		metrics.Trigger(metrics.OutcomeFailed)
		return err
	}

	metrics.Trigger(metrics.OutcomeEscalated)

	return nil
}

func (svc *alarmSvc) TriggerAs(ctx context.Context, who application.Identity, alarmID string, level int) error {
	if err := svc.authorize(ctx, who, "", application.AccessMaster); err != nil {
		return err
	}

	return svc.Trigger(ctx, alarmID, level)
}

func (svc *alarmSvc) notify(ctx context.Context, log zerolog.Logger, alarmID, description string, level int) error {
	subscribers, err := svc.subscriptions.SubscribersAtOrBelow(ctx, alarmID, level)
	if err != nil {
		return fmt.Errorf("%w: failed to load subscribers: %s", application.ErrOperationFailed, err.Error())
	}

	severity := types.SeverityName(level)
	subject := fmt.Sprintf("%s: %s", severity, description)
	body := fmt.Sprintf("%s: %s (%s)\nSystem: %s", severity, description, alarmID, svc.cfg.SystemName)

	var errs []error

	for _, s := range subscribers {
		addresses, err := svc.contacts.Lookup(ctx, svc.cfg.EmailField, s.User, s.UserType)
		if err != nil {
			errs = append(errs, fmt.Errorf("contact lookup for %s/%s failed: %w", s.UserType, s.User, err))
			continue
		}

		for _, address := range addresses {
			if address == "" {
				continue
			}

			log.Debug().Str("user", s.User).Msgf("sending alarm email to %s", address)

			err = svc.mailer.Send(ctx, subject, body, []string{address})
			metrics.Notification(err)

			if err != nil {
				errs = append(errs, fmt.Errorf("mail to %s failed: %w", address, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", application.ErrOperationFailed, errors.Join(errs...))
	}

	return nil
}

// Acknowledge clears the severity of an alarm on behalf of who
func (svc *alarmSvc) Acknowledge(ctx context.Context, who application.Identity, alarmID string) error {
	var err error
	ctx, span := tracer.Start(ctx, "acknowledge")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetLoggerFromContext(ctx).With().Str("alarm_id", alarmID).Logger()
	ctx = logging.NewContextWithLogger(ctx, log)

	err = svc.checkAlarm(ctx, who, alarmID, application.AccessReadWrite)
	if err != nil {
		return err
	}

	unlock := svc.locks.Lock(alarmID)
	defer unlock()

	oid := StateOID(alarmID)

	state, err := svc.controller.State(ctx, oid)
	if err != nil {
		err = controllerError(err, oid)
		return err
	}

	err = svc.controller.Clear(ctx, oid)
	if err != nil {
		err = controllerError(err, oid)
		return err
	}

	svc.appendLog(ctx, auditlog.Entry{
		User:        who.User,
		UserType:    who.UserType,
		KeyID:       who.KeyID,
		AlarmID:     alarmID,
		Description: state.Description,
		Action:      auditlog.ActionAcknowledged,
		Level:       types.LevelInactive,
	})

	metrics.Acknowledged()
	log.Info().Str("user", who.User).Msg("alarm acknowledged")

	svc.publish(ctx, &events.AlarmAcknowledged{
		AlarmID:     alarmID,
		Description: state.Description,
		User:        who.User,
		UserType:    who.UserType,
		Timestamp:   svc.now().UTC(),
	})

	return nil
}

func (svc *alarmSvc) Subscribe(ctx context.Context, who application.Identity, alarmID string, level int) error {
	if level != types.LevelWarning && level != types.LevelAlarm {
		return fmt.Errorf("%w: level should be 1 or 2", application.ErrInvalidArgument)
	}

	if err := svc.checkAlarm(ctx, who, alarmID, application.AccessReadOnly); err != nil {
		return err
	}

	if !who.LoggedIn() {
		return fmt.Errorf("%w: user is not logged in", application.ErrUnauthenticated)
	}

	return svc.subscriptions.Subscribe(ctx, who.User, who.UserType, alarmID, level)
}

func (svc *alarmSvc) Unsubscribe(ctx context.Context, who application.Identity, alarmID string) error {
	if err := svc.checkAlarm(ctx, who, alarmID, application.AccessReadOnly); err != nil {
		return err
	}

	if !who.LoggedIn() {
		return fmt.Errorf("%w: user is not logged in", application.ErrUnauthenticated)
	}

	return svc.subscriptions.Unsubscribe(ctx, who.User, who.UserType, alarmID)
}

func (svc *alarmSvc) ListSubscriptions(ctx context.Context, who application.Identity) ([]types.Subscription, error) {
	if !who.LoggedIn() {
		return nil, fmt.Errorf("%w: user is not logged in", application.ErrUnauthenticated)
	}

	subs, err := svc.subscriptions.List(ctx, who.User, who.UserType)
	if err != nil {
		return nil, err
	}

	return lo.Map(subs, func(s subscriptions.Subscription, _ int) types.Subscription {
		return types.Subscription{
			AlarmID: s.AlarmID,
			Level:   s.Level,
		}
	}), nil
}

// GetLog returns the newest audit entries for alarmID, or for every alarm
// when alarmID is empty. The unfiltered log requires master access.
func (svc *alarmSvc) GetLog(ctx context.Context, who application.Identity, alarmID string, limit int) ([]types.LogEntry, error) {
	if alarmID != "" {
		if err := svc.checkAlarm(ctx, who, alarmID, application.AccessReadOnly); err != nil {
			return nil, err
		}
	} else if err := svc.authorize(ctx, who, "", application.AccessMaster); err != nil {
		return nil, fmt.Errorf("%w: master access is required to view unfiltered log", err)
	}

	entries, err := svc.log.Query(ctx, alarmID, limit)
	if err != nil {
		return nil, err
	}

	return lo.Map(entries, func(e auditlog.Entry, _ int) types.LogEntry {
		return types.LogEntry{
			User:        e.User,
			UserType:    e.UserType,
			KeyID:       e.KeyID,
			AlarmID:     e.AlarmID,
			Description: e.Description,
			Action:      string(e.Action),
			T:           e.T,
			Level:       e.Level,
		}
	}), nil
}

func (svc *alarmSvc) checkAlarm(ctx context.Context, who application.Identity, alarmID string, mode application.AccessMode) error {
	if alarmID == "" {
		return fmt.Errorf("%w: alarm id must not be empty", application.ErrInvalidArgument)
	}

	oid := StateOID(alarmID)

	exists, err := svc.controller.Exists(ctx, oid)
	if err != nil {
		return controllerError(err, oid)
	}

	if !exists {
		return fmt.Errorf("%w: alarm %s", application.ErrNotFound, alarmID)
	}

	return svc.authorize(ctx, who, oid, mode)
}

func (svc *alarmSvc) authorize(ctx context.Context, who application.Identity, resource string, mode application.AccessMode) error {
	ok, err := svc.authz.Authorized(ctx, who, resource, mode)
	if err != nil {
		return fmt.Errorf("%w: %s", application.ErrOperationFailed, err.Error())
	}

	if !ok {
		return application.ErrAccessDenied
	}

	return nil
}

func (svc *alarmSvc) appendLog(ctx context.Context, entry auditlog.Entry) {
	entry.T = auditlog.Timestamp(svc.now())

	if err := svc.log.Append(ctx, entry); err != nil {
		metrics.AuditWriteFailed()
		log := logging.GetLoggerFromContext(ctx)
		log.Error().Err(err).Msgf("unable to insert log record for alarm: %s", entry.AlarmID)
	}
}

func (svc *alarmSvc) publish(ctx context.Context, e events.Event) {
	if err := svc.publisher.Publish(ctx, e); err != nil {
		log := logging.GetLoggerFromContext(ctx)
		log.Warn().Err(err).Str("type", e.TopicName()).Msg("failed to publish alarm event")
	}
}

func controllerError(err error, oid string) error {
	var resultErr *controller.ResultError
	if errors.As(err, &resultErr) && resultErr.Code == controller.ResultNotFound {
		return fmt.Errorf("%w: %s", application.ErrNotFound, oid)
	}
	return fmt.Errorf("%w: %w", application.ErrOperationFailed, err)
}
