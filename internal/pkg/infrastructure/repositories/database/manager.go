package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var ErrNoConnection = errors.New("no database connection")

// Manager hands out database handles. Inside a scope created with Scope the
// same dedicated connection is returned on every Acquire, validated with a
// trivial query before reuse and replaced when the probe fails. Outside of a
// scope the pooled handle is returned.
type Manager struct {
	connect ConnectorFunc

	mu  sync.RWMutex
	db  *gorm.DB
	log zerolog.Logger
}

func NewManager(connect ConnectorFunc) (*Manager, error) {
	db, log, err := connect()
	if err != nil {
		return nil, err
	}

	return &Manager{
		connect: connect,
		db:      db,
		log:     log,
	}, nil
}

func (m *Manager) Migrate(models ...any) error {
	return m.pool().AutoMigrate(models...)
}

type scope struct {
	mu   sync.Mutex
	conn *sql.Conn
	db   *gorm.DB
}

type scopeContextKey struct {
	name string
}

var scopeCtxKey = &scopeContextKey{"dbscope"}

// Scope attaches a connection slot to ctx. The returned func releases the
// connection, if one was acquired, and must be called when the scope ends.
func (m *Manager) Scope(ctx context.Context) (context.Context, func()) {
	if _, ok := ctx.Value(scopeCtxKey).(*scope); ok {
		return ctx, func() {}
	}

	s := &scope{}
	return context.WithValue(ctx, scopeCtxKey, s), func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.conn != nil {
			s.conn.Close()
			s.conn = nil
			s.db = nil
		}
	}
}

func (m *Manager) Acquire(ctx context.Context) (*gorm.DB, error) {
	s, ok := ctx.Value(scopeCtxKey).(*scope)
	if !ok {
		return m.pool().WithContext(ctx), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		err := s.db.WithContext(ctx).Exec("SELECT 1").Error
		if err == nil {
			return s.db.WithContext(ctx), nil
		}

		m.log.Warn().Err(err).Msg("database connection failed liveness probe, reconnecting")

		// returning ErrBadConn makes the pool drop the connection
		s.conn.Raw(func(any) error { return driver.ErrBadConn })
		s.conn.Close()
		s.conn, s.db = nil, nil
	}

	conn, err := m.dedicated(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("unable to get a connection from the pool, reconnecting")

		if err = m.reconnect(); err != nil {
			return nil, errors.Join(ErrNoConnection, err)
		}

		conn, err = m.dedicated(ctx)
		if err != nil {
			return nil, errors.Join(ErrNoConnection, err)
		}
	}

	db := m.pool().Session(&gorm.Session{NewDB: true, Context: context.Background()})
	db.Statement.ConnPool = conn

	s.conn, s.db = conn, db

	return db.WithContext(ctx), nil
}

func (m *Manager) dedicated(ctx context.Context) (*sql.Conn, error) {
	sqlDB, err := m.pool().DB()
	if err != nil {
		return nil, err
	}

	return sqlDB.Conn(ctx)
}

func (m *Manager) pool() *gorm.DB {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db
}

func (m *Manager) reconnect() error {
	db, log, err := m.connect()
	if err != nil {
		return err
	}

	m.mu.Lock()
	old := m.db
	m.db, m.log = db, log
	m.mu.Unlock()

	if old != nil {
		if sqlDB, err := old.DB(); err == nil && sqlDB != nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (m *Manager) Close() error {
	sqlDB, err := m.pool().DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
