package events

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	TypeAlarmTriggered    string = "alarms.alarmTriggered"
	TypeAlarmAcknowledged string = "alarms.alarmAcknowledged"
)

// Event is a message about an alarm that is published on a topic and to
// webhook subscribers alike
type Event interface {
	ContentType() string
	TopicName() string
	Body() []byte
	EventID() string
	EventTime() time.Time
}

type AlarmTriggered struct {
	AlarmID     string    `json:"alarmID"`
	Description string    `json:"description"`
	Level       int       `json:"level"`
	Severity    string    `json:"severity"`
	Timestamp   time.Time `json:"timestamp"`
}

func (a *AlarmTriggered) ContentType() string {
	return "application/json"
}

func (a *AlarmTriggered) TopicName() string {
	return TypeAlarmTriggered
}

func (a *AlarmTriggered) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

func (a *AlarmTriggered) EventID() string {
	return fmt.Sprintf("%s:%d:%d", a.AlarmID, a.Level, a.Timestamp.UnixNano())
}

func (a *AlarmTriggered) EventTime() time.Time {
	return a.Timestamp
}

type AlarmAcknowledged struct {
	AlarmID     string    `json:"alarmID"`
	Description string    `json:"description"`
	User        string    `json:"user"`
	UserType    string    `json:"userType"`
	Timestamp   time.Time `json:"timestamp"`
}

func (a *AlarmAcknowledged) ContentType() string {
	return "application/json"
}

func (a *AlarmAcknowledged) TopicName() string {
	return TypeAlarmAcknowledged
}

func (a *AlarmAcknowledged) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

func (a *AlarmAcknowledged) EventID() string {
	return fmt.Sprintf("%s:ack:%d", a.AlarmID, a.Timestamp.UnixNano())
}

func (a *AlarmAcknowledged) EventTime() time.Time {
	return a.Timestamp
}
