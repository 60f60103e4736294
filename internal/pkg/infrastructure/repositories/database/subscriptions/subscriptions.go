package subscriptions

import (
	"context"
	"fmt"

	"github.com/diwise/alarmer/internal/pkg/application"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database"
	"gorm.io/gorm/clause"
)

//go:generate moq -rm -out subscriptions_mock.go . Store

type Store interface {
	Subscribe(ctx context.Context, user, userType, alarmID string, level int) error
	Unsubscribe(ctx context.Context, user, userType, alarmID string) error
	List(ctx context.Context, user, userType string) ([]Subscription, error)
	SubscribersAtOrBelow(ctx context.Context, alarmID string, level int) ([]Subscriber, error)
	DeleteAllForAlarm(ctx context.Context, alarmID string) error
}

type store struct {
	db *database.Manager
}

func NewStore(db *database.Manager) (Store, error) {
	if err := db.Migrate(&Subscription{}); err != nil {
		return nil, err
	}

	return &store{db: db}, nil
}

func (s *store) Subscribe(ctx context.Context, user, userType, alarmID string, level int) error {
	if level != 1 && level != 2 {
		return fmt.Errorf("%w: subscription level must be 1 or 2, got %d", application.ErrInvalidArgument, level)
	}

	db, err := s.db.Acquire(ctx)
	if err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "u"}, {Name: "utp"}, {Name: "alarm_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"level"}),
	}).Create(&Subscription{
		User:     user,
		UserType: userType,
		AlarmID:  alarmID,
		Level:    level,
	}).Error
}

func (s *store) Unsubscribe(ctx context.Context, user, userType, alarmID string) error {
	db, err := s.db.Acquire(ctx)
	if err != nil {
		return err
	}

	return db.
		Where("u = ? AND utp = ? AND alarm_id = ?", user, userType, alarmID).
		Delete(&Subscription{}).
		Error
}

func (s *store) List(ctx context.Context, user, userType string) ([]Subscription, error) {
	db, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	subscriptions := []Subscription{}

	err = db.
		Where("u = ? AND utp = ?", user, userType).
		Find(&subscriptions).
		Error
	if err != nil {
		return nil, err
	}

	return subscriptions, nil
}

func (s *store) SubscribersAtOrBelow(ctx context.Context, alarmID string, level int) ([]Subscriber, error) {
	db, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	subscribers := []Subscriber{}

	err = db.Model(&Subscription{}).
		Select("u", "utp").
		Where("alarm_id = ? AND level <= ?", alarmID, level).
		Scan(&subscribers).
		Error
	if err != nil {
		return nil, err
	}

	return subscribers, nil
}

func (s *store) DeleteAllForAlarm(ctx context.Context, alarmID string) error {
	db, err := s.db.Acquire(ctx)
	if err != nil {
		return err
	}

	return db.
		Where("alarm_id = ?", alarmID).
		Delete(&Subscription{}).
		Error
}
