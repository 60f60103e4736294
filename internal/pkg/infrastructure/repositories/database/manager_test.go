package database

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

type probe struct {
	ID   int `gorm:"primaryKey"`
	Name string
}

func TestAcquireWithoutScopeUsesPool(t *testing.T) {
	is, ctx, m := testSetup(t)

	db, err := m.Acquire(ctx)
	is.NoErr(err)
	is.NoErr(db.Create(&probe{ID: 1, Name: "one"}).Error)

	var p probe
	is.NoErr(db.First(&p, 1).Error)
	is.Equal(p.Name, "one")
}

func TestAcquireReturnsSameConnectionWithinScope(t *testing.T) {
	is, ctx, m := testSetup(t)

	ctx, release := m.Scope(ctx)

	first, err := m.Acquire(ctx)
	is.NoErr(err)
	second, err := m.Acquire(ctx)
	is.NoErr(err)

	is.Equal(first.Statement.ConnPool, second.Statement.ConnPool)

	is.NoErr(second.Create(&probe{ID: 2, Name: "two"}).Error)

	release()

	db, err := m.Acquire(context.Background())
	is.NoErr(err)

	var p probe
	is.NoErr(db.First(&p, 2).Error)
	is.Equal(p.Name, "two")
}

func TestAcquireReplacesBrokenConnection(t *testing.T) {
	is, ctx, m := testSetup(t)

	ctx, release := m.Scope(ctx)
	defer release()

	first, err := m.Acquire(ctx)
	is.NoErr(err)

	s := ctx.Value(scopeCtxKey).(*scope)
	s.conn.Close()

	second, err := m.Acquire(ctx)
	is.NoErr(err)
	is.True(first.Statement.ConnPool != second.Statement.ConnPool)
	is.NoErr(second.Exec("SELECT 1").Error)
}

func TestNestedScopeIsReused(t *testing.T) {
	is, ctx, m := testSetup(t)

	outer, release := m.Scope(ctx)
	defer release()

	inner, releaseInner := m.Scope(outer)
	releaseInner()

	is.Equal(outer, inner)
}

func testSetup(t *testing.T) (*is.I, context.Context, *Manager) {
	is := is.New(t)

	m, err := NewManager(NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)
	is.NoErr(m.Migrate(&probe{}))

	t.Cleanup(func() { m.Close() })

	return is, context.Background(), m
}
