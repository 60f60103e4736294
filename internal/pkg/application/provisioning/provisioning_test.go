package provisioning

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/diwise/alarmer/internal/pkg/application"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/controller"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database/subscriptions"
	"github.com/diwise/alarmer/pkg/types"
	"github.com/matryer/is"
)

var master = application.Identity{User: "admin", UserType: "local", KeyID: "masterkey"}

func TestCreateRunsAllStepsInOrder(t *testing.T) {
	is, ctx, f := testSetup(t)

	created, err := f.svc.Create(ctx, master, types.AlarmSpec{
		Description: "boiler pressure",
		Group:       "plant",
		WarningRule: map[string]any{"oid": "sensor:plant/pressure", "condition": "x > 5"},
		AlarmRule:   map[string]any{"oid": "sensor:plant/pressure", "condition": "x > 8"},
		Persist:     true,
	})
	is.NoErr(err)

	is.True(strings.HasPrefix(created.ID, "plant/"))
	is.Equal(created.ValueID, "alarmer/"+created.ID)

	is.Equal(f.functions(), []string{"create_lvar", "set_prop", "create_rule", "set_rule_prop", "create_rule", "set_rule_prop"})
	is.Equal(len(f.controller.ReloadCalls()), 1)

	calls := f.controller.ManageCalls()
	is.Equal(calls[0].Params["save"], false)
	is.Equal(calls[1].Params["v"], "boiler pressure")

	uuid := strings.TrimPrefix(created.ID, "plant/")
	is.Equal(calls[2].Params["u"], uuid+"_w")
	is.Equal(calls[4].Params["u"], uuid+"_a")

	props := calls[3].Params["v"].(map[string]any)
	is.Equal(props["macro"], "@x_alarmer_notify")
	is.Equal(props["macro_args"], []any{created.ID, 1})
	is.Equal(props["priority"], 1)
	is.Equal(props["enabled"], true)

	props = calls[5].Params["v"].(map[string]any)
	is.Equal(props["macro_args"], []any{created.ID, 2})
}

func TestCreateWithoutDescriptionPersistsValueDirectly(t *testing.T) {
	is, ctx, f := testSetup(t)

	_, err := f.svc.Create(ctx, master, types.AlarmSpec{Persist: true})
	is.NoErr(err)

	is.Equal(f.functions()[0:2], []string{"create_lvar", "create_rule"})
	is.Equal(f.controller.ManageCalls()[0].Params["save"], true)
}

func TestCreateRollsBackWhenWarningRuleConfigurationFails(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.failOn = "set_rule_prop"

	_, err := f.svc.Create(ctx, master, types.AlarmSpec{Description: "boiler pressure"})
	is.True(errors.Is(err, application.ErrOperationFailed))

	var resultErr *controller.ResultError
	is.True(errors.As(err, &resultErr))
	is.Equal(resultErr.Func, "set_rule_prop")

	is.Equal(f.functions(), []string{
		"create_lvar", "set_prop", "create_rule", "set_rule_prop",
		"destroy_lvar", "destroy_rule", "destroy_rule",
	})
	is.Equal(len(f.subs.DeleteAllForAlarmCalls()), 1)
}

func TestCreateRollsBackWhenReloadFails(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.controller.ReloadFunc = func(ctx context.Context) error {
		return errors.New("controller offline")
	}

	_, err := f.svc.Create(ctx, master, types.AlarmSpec{Description: "boiler pressure"})
	is.True(errors.Is(err, application.ErrOperationFailed))
	is.Equal(f.functions()[len(f.functions())-1], "destroy_rule")
}

func TestCreateRollsBackOnPanic(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.panicOn = "create_rule"

	_, err := f.svc.Create(ctx, master, types.AlarmSpec{Description: "boiler pressure"})
	is.True(errors.Is(err, application.ErrOperationFailed))
	is.Equal(len(f.subs.DeleteAllForAlarmCalls()), 1)
}

func TestCreateReturnsOriginalErrorWhenRollbackFails(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.failOn = "create_rule"
	f.subs.DeleteAllForAlarmFunc = func(ctx context.Context, alarmID string) error {
		return errors.New("database down")
	}

	_, err := f.svc.Create(ctx, master, types.AlarmSpec{})

	var resultErr *controller.ResultError
	is.True(errors.As(err, &resultErr))
	is.Equal(resultErr.Func, "create_rule")
}

func TestCreateRejectsOverlongGroup(t *testing.T) {
	is, ctx, f := testSetup(t)

	_, err := f.svc.Create(ctx, master, types.AlarmSpec{Group: strings.Repeat("plant/", 50)})
	is.True(errors.Is(err, application.ErrInvalidArgument))
	is.Equal(len(f.controller.ManageCalls()), 0)
}

func TestCreateRequiresMaster(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.authz.AuthorizedFunc = func(ctx context.Context, who application.Identity, resource string, mode application.AccessMode) (bool, error) {
		return false, nil
	}

	_, err := f.svc.Create(ctx, application.Identity{User: "joe"}, types.AlarmSpec{})
	is.True(errors.Is(err, application.ErrAccessDenied))
	is.Equal(len(f.controller.ManageCalls()), 0)
}

func TestDestroyAttemptsEveryStep(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.failOn = "destroy_lvar"

	ok, err := f.svc.Destroy(ctx, master, "plant/a1")
	is.NoErr(err)
	is.True(!ok)

	is.Equal(f.functions(), []string{"destroy_lvar", "destroy_rule", "destroy_rule"})
	is.Equal(f.controller.ManageCalls()[1].Params["i"], "a1_w")
	is.Equal(f.controller.ManageCalls()[2].Params["i"], "a1_a")
	is.Equal(f.subs.DeleteAllForAlarmCalls()[0].AlarmID, "plant/a1")
	is.Equal(len(f.controller.ReloadCalls()), 0)
}

func TestDestroySucceedsWhenAllStepsSucceed(t *testing.T) {
	is, ctx, f := testSetup(t)

	ok, err := f.svc.Destroy(ctx, master, "a1")
	is.NoErr(err)
	is.True(ok)
	is.Equal(f.controller.ManageCalls()[0].Params["i"], "alarmer/a1")
	is.Equal(len(f.controller.ReloadCalls()), 1)
}

func TestDestroyFailsWhenSubscriptionCleanupFails(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.subs.DeleteAllForAlarmFunc = func(ctx context.Context, alarmID string) error {
		return errors.New("database down")
	}

	ok, err := f.svc.Destroy(ctx, master, "a1")
	is.NoErr(err)
	is.True(!ok)
	is.Equal(len(f.controller.ManageCalls()), 3)
}

func TestSetDescriptionUpdatesValueAndRules(t *testing.T) {
	is, ctx, f := testSetup(t)

	is.NoErr(f.svc.SetDescription(ctx, master, "plant/a1", "steam pressure", true))

	is.Equal(f.functions(), []string{"set_prop", "set_rule_prop", "set_rule_prop"})
	is.Equal(f.controller.ManageCalls()[0].Params["i"], "lvar:alarmer/plant/a1")
	is.Equal(f.controller.ManageCalls()[1].Params["v"], "steam pressure")
	is.Equal(len(f.controller.ReloadCalls()), 1)
}

func TestSetDescriptionStopsAtFirstFailure(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.failOn = "set_prop"

	err := f.svc.SetDescription(ctx, master, "a1", "steam pressure", false)
	is.True(errors.Is(err, application.ErrOperationFailed))
	is.Equal(len(f.controller.ManageCalls()), 1)
	is.Equal(len(f.controller.ReloadCalls()), 0)
}

func TestSetRulePropsStripsWiring(t *testing.T) {
	is, ctx, f := testSetup(t)

	err := f.svc.SetRuleProps(ctx, master, "a1", types.RulePropsUpdate{
		Warning: map[string]any{"condition": "x > 4", "macro": "@evil", "enabled": false},
	})
	is.NoErr(err)

	is.Equal(f.functions(), []string{"set_rule_prop"})

	call := f.controller.ManageCalls()[0]
	is.Equal(call.Params["i"], "a1_w")
	is.Equal(call.Params["v"], map[string]any{"condition": "x > 4"})
}

func TestListRulePropsStripsWiring(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.controller.ManageFunc = func(ctx context.Context, fn string, params map[string]any) (controller.Result, error) {
		data, _ := json.Marshal(map[string]any{
			"condition":    "x > 4",
			"enabled":      true,
			"macro":        "@x_alarmer_notify",
			"macro_args":   []any{"a1", 1},
			"macro_kwargs": map[string]any{},
			"priority":     1,
		})
		return controller.Result{Code: controller.ResultOK, Data: data}, nil
	}

	props, err := f.svc.ListRuleProps(ctx, master, "a1")
	is.NoErr(err)
	is.Equal(props.Warning, map[string]any{"condition": "x > 4"})
	is.Equal(props.Alarm, map[string]any{"condition": "x > 4"})
}

func TestListRulePropsFailsOnNonSuccessCode(t *testing.T) {
	is, ctx, f := testSetup(t)
	f.failOn = "list_rule_props"

	_, err := f.svc.ListRuleProps(ctx, master, "a1")
	is.True(errors.Is(err, application.ErrOperationFailed))
}

type fixture struct {
	svc        ProvisioningService
	controller *controller.ClientMock
	subs       *subscriptions.StoreMock
	authz      *application.AuthorizerMock
	failOn     string
	panicOn    string
}

func (f *fixture) functions() []string {
	fns := []string{}
	for _, c := range f.controller.ManageCalls() {
		fns = append(fns, c.Fn)
	}
	return fns
}

func testSetup(t *testing.T) (*is.I, context.Context, *fixture) {
	is := is.New(t)

	f := &fixture{}

	f.controller = &controller.ClientMock{
		ManageFunc: func(ctx context.Context, fn string, params map[string]any) (controller.Result, error) {
			if fn == f.panicOn {
				panic("unexpected controller response")
			}
			if fn == f.failOn {
				return controller.Result{Code: controller.ResultFuncFailed}, nil
			}
			return controller.Result{Code: controller.ResultOK}, nil
		},
		ReloadFunc: func(ctx context.Context) error {
			return nil
		},
	}

	f.subs = &subscriptions.StoreMock{
		DeleteAllForAlarmFunc: func(ctx context.Context, alarmID string) error {
			return nil
		},
	}

	f.authz = &application.AuthorizerMock{
		AuthorizedFunc: func(ctx context.Context, who application.Identity, resource string, mode application.AccessMode) (bool, error) {
			return who.KeyID == "masterkey" && mode == application.AccessMaster, nil
		},
	}

	f.svc = New("", f.controller, f.subs, f.authz)

	return is, context.Background(), f
}
