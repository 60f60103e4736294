package subscriptions

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/alarmer/internal/pkg/application"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

func TestSubscribeRejectsInvalidLevel(t *testing.T) {
	is, ctx, s := testSetup(t)

	for _, level := range []int{0, 3, -1} {
		err := s.Subscribe(ctx, "joe", "local", "a1", level)
		is.True(errors.Is(err, application.ErrInvalidArgument))
	}

	subs, err := s.List(ctx, "joe", "local")
	is.NoErr(err)
	is.Equal(len(subs), 0)
}

func TestSubscribeTwiceKeepsLatestLevel(t *testing.T) {
	is, ctx, s := testSetup(t)

	is.NoErr(s.Subscribe(ctx, "joe", "local", "a1", 1))
	is.NoErr(s.Subscribe(ctx, "joe", "local", "a1", 2))

	subs, err := s.List(ctx, "joe", "local")
	is.NoErr(err)
	is.Equal(len(subs), 1)
	is.Equal(subs[0].Level, 2)
}

func TestListOnlyReturnsCallersSubscriptions(t *testing.T) {
	is, ctx, s := testSetup(t)

	is.NoErr(s.Subscribe(ctx, "joe", "local", "a1", 1))
	is.NoErr(s.Subscribe(ctx, "joe", "local", "grp/a2", 2))
	is.NoErr(s.Subscribe(ctx, "joe", "msad", "a1", 1))
	is.NoErr(s.Subscribe(ctx, "ann", "local", "a1", 1))

	subs, err := s.List(ctx, "joe", "local")
	is.NoErr(err)
	is.Equal(len(subs), 2)

	ids := lo.Map(subs, func(s Subscription, _ int) string { return s.AlarmID })
	is.True(lo.Contains(ids, "a1"))
	is.True(lo.Contains(ids, "grp/a2"))
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	is, ctx, s := testSetup(t)

	is.NoErr(s.Unsubscribe(ctx, "joe", "local", "a1"))

	is.NoErr(s.Subscribe(ctx, "joe", "local", "a1", 1))
	is.NoErr(s.Unsubscribe(ctx, "joe", "local", "a1"))
	is.NoErr(s.Unsubscribe(ctx, "joe", "local", "a1"))

	subs, err := s.List(ctx, "joe", "local")
	is.NoErr(err)
	is.Equal(len(subs), 0)
}

func TestSubscribersAtOrBelow(t *testing.T) {
	is, ctx, s := testSetup(t)

	is.NoErr(s.Subscribe(ctx, "warn", "local", "a1", 1))
	is.NoErr(s.Subscribe(ctx, "alarm", "local", "a1", 2))
	is.NoErr(s.Subscribe(ctx, "other", "local", "a2", 1))

	atAlarm, err := s.SubscribersAtOrBelow(ctx, "a1", 2)
	is.NoErr(err)
	is.Equal(len(atAlarm), 2)

	atWarning, err := s.SubscribersAtOrBelow(ctx, "a1", 1)
	is.NoErr(err)
	is.Equal(len(atWarning), 1)
	is.Equal(atWarning[0].User, "warn")
	is.Equal(atWarning[0].UserType, "local")
}

func TestDeleteAllForAlarm(t *testing.T) {
	is, ctx, s := testSetup(t)

	is.NoErr(s.Subscribe(ctx, "joe", "local", "a1", 1))
	is.NoErr(s.Subscribe(ctx, "ann", "local", "a1", 2))
	is.NoErr(s.Subscribe(ctx, "ann", "local", "a2", 2))

	is.NoErr(s.DeleteAllForAlarm(ctx, "a1"))

	remaining, err := s.SubscribersAtOrBelow(ctx, "a1", 2)
	is.NoErr(err)
	is.Equal(len(remaining), 0)

	other, err := s.SubscribersAtOrBelow(ctx, "a2", 2)
	is.NoErr(err)
	is.Equal(len(other), 1)
}

func TestStoreWorksInsideScope(t *testing.T) {
	is := is.New(t)

	m, err := database.NewManager(database.NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)
	defer m.Close()

	s, err := NewStore(m)
	is.NoErr(err)

	ctx, release := m.Scope(context.Background())
	is.NoErr(s.Subscribe(ctx, "joe", "local", "a1", 2))
	subs, err := s.SubscribersAtOrBelow(ctx, "a1", 2)
	release()

	is.NoErr(err)
	is.Equal(len(subs), 1)
}

func testSetup(t *testing.T) (*is.I, context.Context, Store) {
	is := is.New(t)

	m, err := database.NewManager(database.NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)
	t.Cleanup(func() { m.Close() })

	s, err := NewStore(m)
	is.NoErr(err)

	return is, context.Background(), s
}
