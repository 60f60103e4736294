package userinfo

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database"
	"github.com/matryer/is"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func TestLookupReturnsAllValuesForField(t *testing.T) {
	is, ctx, s := testSetup(t)

	is.NoErr(s.Put(ctx, Record{Name: "email", User: "joe", UserType: "local", Value: "joe@example.com"}))
	is.NoErr(s.Put(ctx, Record{Name: "email", User: "joe", UserType: "local", Value: "joe@work.example.com"}))
	is.NoErr(s.Put(ctx, Record{Name: "phone", User: "joe", UserType: "local", Value: "555-1234"}))
	is.NoErr(s.Put(ctx, Record{Name: "email", User: "joe", UserType: "msad", Value: "joe@ad.example.com"}))

	values, err := s.Lookup(ctx, "email", "joe", "local")
	is.NoErr(err)
	is.Equal(len(values), 2)
}

func TestLookupOfUnknownUserIsEmpty(t *testing.T) {
	is, ctx, s := testSetup(t)

	values, err := s.Lookup(ctx, "email", "nobody", "local")
	is.NoErr(err)
	is.Equal(len(values), 0)
}

func TestCachedLookupPopulatesCache(t *testing.T) {
	is, ctx, s := testSetup(t)
	is.NoErr(s.Put(ctx, Record{Name: "email", User: "joe", UserType: "local", Value: "joe@example.com"}))

	c := &fakeCache{values: map[string]string{}}
	cs := NewCached(s, c, time.Minute, zerolog.Nop())

	values, err := cs.Lookup(ctx, "email", "joe", "local")
	is.NoErr(err)
	is.Equal(values, []string{"joe@example.com"})
	is.Equal(len(c.values), 1)
}

func TestCachedLookupDoesNotCacheMissingContact(t *testing.T) {
	is, ctx, s := testSetup(t)

	c := &fakeCache{values: map[string]string{}}
	cs := NewCached(s, c, time.Minute, zerolog.Nop())

	values, err := cs.Lookup(ctx, "email", "joe", "local")
	is.NoErr(err)
	is.Equal(len(values), 0)
	is.Equal(len(c.values), 0)

	is.NoErr(s.Put(ctx, Record{Name: "email", User: "joe", UserType: "local", Value: "joe@example.com"}))

	values, err = cs.Lookup(ctx, "email", "joe", "local")
	is.NoErr(err)
	is.Equal(values, []string{"joe@example.com"})
}

func TestCachedLookupPrefersCache(t *testing.T) {
	is := is.New(t)

	b, _ := json.Marshal([]string{"cached@example.com"})
	c := &fakeCache{values: map[string]string{
		"alarmer:userinfo:email:local:joe": string(b),
	}}
	next := &StoreMock{
		LookupFunc: func(ctx context.Context, field, user, userType string) ([]string, error) {
			return []string{"db@example.com"}, nil
		},
	}

	cs := NewCached(next, c, time.Minute, zerolog.Nop())

	values, err := cs.Lookup(context.Background(), "email", "joe", "local")
	is.NoErr(err)
	is.Equal(values, []string{"cached@example.com"})
	is.Equal(len(next.LookupCalls()), 0)
}

type fakeCache struct {
	values map[string]string
}

func (f *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func testSetup(t *testing.T) (*is.I, context.Context, *store) {
	is := is.New(t)

	m, err := database.NewManager(database.NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)
	t.Cleanup(func() { m.Close() })

	s, err := New(m)
	is.NoErr(err)

	return is, context.Background(), s.(*store)
}
