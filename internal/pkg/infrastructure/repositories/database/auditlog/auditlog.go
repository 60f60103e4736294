package auditlog

import (
	"context"
	"time"

	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database"
)

//go:generate moq -rm -out auditlog_mock.go . Log

type Log interface {
	Append(ctx context.Context, entry Entry) error
	Query(ctx context.Context, alarmID string, limit int) ([]Entry, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

const DefaultLimit int = 100

type auditLog struct {
	db *database.Manager
}

func New(db *database.Manager) (Log, error) {
	if err := db.Migrate(&Entry{}); err != nil {
		return nil, err
	}

	return &auditLog{db: db}, nil
}

func (l *auditLog) Append(ctx context.Context, entry Entry) error {
	db, err := l.db.Acquire(ctx)
	if err != nil {
		return err
	}

	entry.User = truncate(entry.User, 128)
	entry.UserType = truncate(entry.UserType, 32)
	entry.KeyID = truncate(entry.KeyID, 64)
	entry.Description = truncate(entry.Description, 256)

	return db.Create(&entry).Error
}

// Query returns the newest entries first. An empty alarmID returns entries
// for every alarm.
func (l *auditLog) Query(ctx context.Context, alarmID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	db, err := l.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&Entry{})
	if alarmID != "" {
		query = query.Where("alarm_id = ?", alarmID)
	}

	entries := []Entry{}

	err = query.Order("t DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (l *auditLog) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	db, err := l.db.Acquire(ctx)
	if err != nil {
		return 0, err
	}

	result := db.Where("t < ?", Timestamp(cutoff)).Delete(&Entry{})

	return result.RowsAffected, result.Error
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
