package provisioning

import (
	"context"
	"fmt"

	"github.com/diwise/alarmer/internal/pkg/application"
	"github.com/diwise/alarmer/internal/pkg/application/alarms"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/controller"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/logging"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/metrics"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database/subscriptions"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/tracing"
	"github.com/diwise/alarmer/pkg/types"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate moq -rm -out provisioning_mock.go . ProvisioningService

type ProvisioningService interface {
	Create(ctx context.Context, who application.Identity, spec types.AlarmSpec) (types.CreatedAlarm, error)
	Destroy(ctx context.Context, who application.Identity, alarmID string) (bool, error)
	SetDescription(ctx context.Context, who application.Identity, alarmID, description string, persist bool) error
	SetRuleProps(ctx context.Context, who application.Identity, alarmID string, update types.RulePropsUpdate) error
	ListRuleProps(ctx context.Context, who application.Identity, alarmID string) (types.RuleProps, error)
}

// wiring binds a rule to the trigger callback and is never exposed to or
// accepted from callers
var wiring = []string{"enabled", "macro", "macro_args", "macro_kwargs", "priority"}

const rulePriority int = 1

type provisioningSvc struct {
	callback      string
	controller    controller.Client
	subscriptions subscriptions.Store
	authz         application.Authorizer
}

var tracer = otel.Tracer("alarmer/provisioning")

func New(callback string, c controller.Client, s subscriptions.Store, a application.Authorizer) ProvisioningService {
	if callback == "" {
		callback = application.DefaultCallback
	}

	return &provisioningSvc{
		callback:      callback,
		controller:    c,
		subscriptions: s,
		authz:         a,
	}
}

func (p *provisioningSvc) Create(ctx context.Context, who application.Identity, spec types.AlarmSpec) (types.CreatedAlarm, error) {
	var err error
	ctx, span := tracer.Start(ctx, "create-alarm")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if err = p.requireMaster(ctx, who); err != nil {
		return types.CreatedAlarm{}, err
	}

	if !alarms.GroupFits(spec.Group) {
		err = fmt.Errorf("%w: group is too long for an alarm id of at most %d characters", application.ErrInvalidArgument, alarms.MaxIDLength)
		return types.CreatedAlarm{}, err
	}

	result, err := p.create(ctx, spec)
	metrics.Provisioning("create", err)

	return result, err
}

// create provisions the monitored value and both rules in order. The first
// failure, or a panic, rolls back everything by destroying the alarm.
func (p *provisioningSvc) create(ctx context.Context, spec types.AlarmSpec) (result types.CreatedAlarm, err error) {
	alarmID := alarms.NewID(spec.Group)
	valueID := alarms.ValueID(alarmID)
	warningRule, alarmRule := alarms.RuleIDs(alarmID)

	log := logging.GetLoggerFromContext(ctx).With().Str("alarm_id", alarmID).Logger()
	ctx = logging.NewContextWithLogger(ctx, log)

	trace.SpanFromContext(ctx).SetAttributes(attribute.String("alarm.id", alarmID))

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: unexpected failure while creating alarm %s: %v", application.ErrOperationFailed, alarmID, r)
		}

		if err != nil {
			log.Error().Err(err).Msg("failed to create alarm, rolling back")

			if !p.destroy(ctx, alarmID) {
				log.Warn().Msg("rollback of alarm did not complete")
			}

			result = types.CreatedAlarm{}
		}
	}()

	err = p.manage(ctx, "create_lvar", map[string]any{
		"i":    valueID,
		"save": spec.Persist && spec.Description == "",
	})
	if err != nil {
		return
	}

	if spec.Description != "" {
		err = p.manage(ctx, "set_prop", map[string]any{
			"i":    valueID,
			"p":    "description",
			"v":    spec.Description,
			"save": spec.Persist,
		})
		if err != nil {
			return
		}
	}

	tiers := []struct {
		ruleID string
		spec   map[string]any
		level  int
	}{
		{warningRule, spec.WarningRule, types.LevelWarning},
		{alarmRule, spec.AlarmRule, types.LevelAlarm},
	}

	for _, tier := range tiers {
		err = p.manage(ctx, "create_rule", map[string]any{
			"u": tier.ruleID,
			"v": tier.spec,
		})
		if err != nil {
			return
		}

		err = p.manage(ctx, "set_rule_prop", map[string]any{
			"i": tier.ruleID,
			"v": map[string]any{
				"description": spec.Description,
				"macro":       p.callback,
				"macro_args":  []any{alarmID, tier.level},
				"priority":    rulePriority,
				"enabled":     true,
			},
			"save": spec.Persist,
		})
		if err != nil {
			return
		}
	}

	err = p.reload(ctx)
	if err != nil {
		return
	}

	log.Info().Msg("alarm created")

	return types.CreatedAlarm{ID: alarmID, ValueID: valueID}, nil
}

func (p *provisioningSvc) Destroy(ctx context.Context, who application.Identity, alarmID string) (bool, error) {
	var err error
	ctx, span := tracer.Start(ctx, "destroy-alarm")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if alarmID == "" {
		err = fmt.Errorf("%w: alarm id must not be empty", application.ErrInvalidArgument)
		return false, err
	}

	if err = p.requireMaster(ctx, who); err != nil {
		return false, err
	}

	return p.destroy(ctx, alarmID), nil
}

// destroy removes the monitored value, both rules and all subscriptions of
// an alarm. Every step is attempted and the result is true only when all of
// them succeeded.
func (p *provisioningSvc) destroy(ctx context.Context, alarmID string) bool {
	log := logging.GetLoggerFromContext(ctx).With().Str("alarm_id", alarmID).Logger()

	ok := true

	if err := p.manage(ctx, "destroy_lvar", map[string]any{"i": alarms.ValueID(alarmID)}); err != nil {
		log.Warn().Err(err).Msg("failed to destroy monitored value")
		ok = false
	} else if err := p.controller.Reload(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to reload controller")
	}

	warningRule, alarmRule := alarms.RuleIDs(alarmID)
	for _, ruleID := range []string{warningRule, alarmRule} {
		if err := p.manage(ctx, "destroy_rule", map[string]any{"i": ruleID}); err != nil {
			log.Warn().Err(err).Str("rule_id", ruleID).Msg("failed to destroy rule")
			ok = false
		}
	}

	if err := p.subscriptions.DeleteAllForAlarm(ctx, alarmID); err != nil {
		log.Error().Err(err).Msg("failed to delete subscriptions")
		ok = false
	}

	metrics.ProvisioningResult("destroy", ok)

	if ok {
		log.Info().Msg("alarm destroyed")
	}

	return ok
}

func (p *provisioningSvc) SetDescription(ctx context.Context, who application.Identity, alarmID, description string, persist bool) error {
	var err error
	ctx, span := tracer.Start(ctx, "set-description")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if err = p.requireAlarm(ctx, who, alarmID); err != nil {
		return err
	}

	defer func() { metrics.Provisioning("set_description", err) }()

	err = p.manage(ctx, "set_prop", map[string]any{
		"i":    alarms.StateOID(alarmID),
		"p":    "description",
		"v":    description,
		"save": persist,
	})
	if err != nil {
		return err
	}

	warningRule, alarmRule := alarms.RuleIDs(alarmID)
	for _, ruleID := range []string{warningRule, alarmRule} {
		err = p.manage(ctx, "set_rule_prop", map[string]any{
			"i":    ruleID,
			"p":    "description",
			"v":    description,
			"save": persist,
		})
		if err != nil {
			return err
		}
	}

	err = p.reload(ctx)
	return err
}

func (p *provisioningSvc) SetRuleProps(ctx context.Context, who application.Identity, alarmID string, update types.RulePropsUpdate) error {
	var err error
	ctx, span := tracer.Start(ctx, "set-rule-props")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if err = p.requireAlarm(ctx, who, alarmID); err != nil {
		return err
	}

	defer func() { metrics.Provisioning("set_rule_props", err) }()

	warningRule, alarmRule := alarms.RuleIDs(alarmID)

	rules := []lo.Tuple2[string, map[string]any]{
		lo.T2(warningRule, update.Warning),
		lo.T2(alarmRule, update.Alarm),
	}

	for _, rule := range rules {
		ruleID, props := rule.Unpack()

		props = lo.OmitByKeys(props, wiring)
		if len(props) == 0 {
			continue
		}

		err = p.manage(ctx, "set_rule_prop", map[string]any{
			"i":    ruleID,
			"v":    props,
			"save": update.Persist,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *provisioningSvc) ListRuleProps(ctx context.Context, who application.Identity, alarmID string) (types.RuleProps, error) {
	var err error
	ctx, span := tracer.Start(ctx, "list-rule-props")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := types.RuleProps{}

	if err = p.requireAlarm(ctx, who, alarmID); err != nil {
		return result, err
	}

	warningRule, alarmRule := alarms.RuleIDs(alarmID)

	result.Warning, err = p.ruleProps(ctx, warningRule)
	if err != nil {
		return types.RuleProps{}, err
	}

	result.Alarm, err = p.ruleProps(ctx, alarmRule)
	if err != nil {
		return types.RuleProps{}, err
	}

	return result, nil
}

func (p *provisioningSvc) ruleProps(ctx context.Context, ruleID string) (map[string]any, error) {
	result, err := p.controller.Manage(ctx, "list_rule_props", map[string]any{"i": ruleID})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", application.ErrOperationFailed, err)
	}

	if !result.OK() {
		return nil, resultError("list_rule_props", ruleID, result.Code)
	}

	props := map[string]any{}
	if err = result.Decode(&props); err != nil {
		return nil, fmt.Errorf("%w: %w", application.ErrOperationFailed, err)
	}

	return lo.OmitByKeys(props, wiring), nil
}

func (p *provisioningSvc) manage(ctx context.Context, fn string, params map[string]any) error {
	result, err := p.controller.Manage(ctx, fn, params)
	if err != nil {
		return fmt.Errorf("%w: %w", application.ErrOperationFailed, err)
	}

	if !result.OK() {
		target, _ := params["i"].(string)
		if target == "" {
			target, _ = params["u"].(string)
		}
		return resultError(fn, target, result.Code)
	}

	return nil
}

func (p *provisioningSvc) reload(ctx context.Context) error {
	if err := p.controller.Reload(ctx); err != nil {
		return fmt.Errorf("%w: %w", application.ErrOperationFailed, err)
	}
	return nil
}

func (p *provisioningSvc) requireMaster(ctx context.Context, who application.Identity) error {
	ok, err := p.authz.Authorized(ctx, who, "", application.AccessMaster)
	if err != nil {
		return fmt.Errorf("%w: %w", application.ErrOperationFailed, err)
	}

	if !ok {
		return fmt.Errorf("%w: master access is required", application.ErrAccessDenied)
	}

	return nil
}

func (p *provisioningSvc) requireAlarm(ctx context.Context, who application.Identity, alarmID string) error {
	if alarmID == "" {
		return fmt.Errorf("%w: alarm id must not be empty", application.ErrInvalidArgument)
	}
	return p.requireMaster(ctx, who)
}

func resultError(fn, target string, code int) error {
	return fmt.Errorf("%w: %w", application.ErrOperationFailed, &controller.ResultError{Func: fn, Target: target, Code: code})
}
