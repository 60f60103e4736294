package auditlog

import (
	"time"
)

type Action string

const (
	ActionTriggered    Action = "T"
	ActionAcknowledged Action = "A"
)

// Entry is an immutable audit record. Every column is part of the key.
type Entry struct {
	User        string  `gorm:"column:u;primaryKey;size:128"`
	UserType    string  `gorm:"column:utp;primaryKey;size:32"`
	KeyID       string  `gorm:"column:key_id;primaryKey;size:64"`
	AlarmID     string  `gorm:"column:alarm_id;primaryKey;size:256"`
	Description string  `gorm:"column:description;primaryKey;size:256"`
	Action      Action  `gorm:"column:action;primaryKey;type:char(1)"`
	T           float64 `gorm:"column:t;primaryKey;index:idx_alarmer_log_t"`
	Level       int     `gorm:"column:level;primaryKey;autoIncrement:false"`
}

func (Entry) TableName() string {
	return "alarmer_log"
}

func (e Entry) Time() time.Time {
	sec := int64(e.T)
	nsec := int64((e.T - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC()
}

func Timestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
