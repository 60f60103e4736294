package userinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Record is a single named attribute of a user, e.g. an email address
type Record struct {
	Name     string `gorm:"column:name;primaryKey;size:128"`
	User     string `gorm:"column:u;primaryKey;size:128"`
	UserType string `gorm:"column:utp;primaryKey;size:32"`
	Value    string `gorm:"column:value;primaryKey;size:1024"`
}

func (Record) TableName() string {
	return "userinfo"
}

//go:generate moq -rm -out userinfo_mock.go . Store

type Store interface {
	Lookup(ctx context.Context, field, user, userType string) ([]string, error)
}

type store struct {
	db *database.Manager
}

func New(db *database.Manager) (Store, error) {
	if err := db.Migrate(&Record{}); err != nil {
		return nil, err
	}

	return &store{db: db}, nil
}

func (s *store) Lookup(ctx context.Context, field, user, userType string) ([]string, error) {
	db, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	values := []string{}

	err = db.Model(&Record{}).
		Where("name = ? AND u = ? AND utp = ?", field, user, userType).
		Pluck("value", &values).
		Error

	return values, err
}

// Put is used to seed contact details
func (s *store) Put(ctx context.Context, r Record) error {
	db, err := s.db.Acquire(ctx)
	if err != nil {
		return err
	}
	return db.Save(&r).Error
}

// Cache is the subset of redis.Cmdable used by the read-through cache
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

type cached struct {
	next Store
	rdb  Cache
	ttl  time.Duration
	log  zerolog.Logger
}

// NewCached wraps a Store with a redis read-through cache. Cache failures
// fall through to the wrapped store. Empty results are never cached.
func NewCached(next Store, rdb Cache, ttl time.Duration, log zerolog.Logger) Store {
	return &cached{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
		log:  log,
	}
}

func (c *cached) Lookup(ctx context.Context, field, user, userType string) ([]string, error) {
	key := fmt.Sprintf("alarmer:userinfo:%s:%s:%s", field, userType, user)

	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		values := []string{}
		if err = json.Unmarshal(b, &values); err == nil {
			return values, nil
		}
	}

	if err != nil && !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Str("key", key).Msg("userinfo cache read failed")
	}

	values, err := c.next.Lookup(ctx, field, user, userType)
	if err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return values, nil
	}

	b, _ = json.Marshal(values)
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("userinfo cache write failed")
	}

	return values, nil
}
