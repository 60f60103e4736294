package types

import (
	"time"
)

const (
	LevelInactive int = 0
	LevelWarning  int = 1
	LevelAlarm    int = 2
)

// SeverityName returns WARNING for level 1 and ALARM for any other level
func SeverityName(level int) string {
	if level == LevelWarning {
		return "WARNING"
	}
	return "ALARM"
}

type Subscription struct {
	AlarmID string `json:"alarm_id"`
	Level   int    `json:"level"`
}

const (
	ActionTriggered    string = "T"
	ActionAcknowledged string = "A"
)

type LogEntry struct {
	User        string  `json:"u"`
	UserType    string  `json:"utp"`
	KeyID       string  `json:"key_id"`
	AlarmID     string  `json:"alarm_id"`
	Description string  `json:"description"`
	Action      string  `json:"action"`
	T           float64 `json:"t"`
	Level       int     `json:"level"`
}

func (e LogEntry) Time() time.Time {
	sec := int64(e.T)
	return time.Unix(sec, int64((e.T-float64(sec))*1e9)).UTC()
}

// AlarmSpec is the payload used to create an alarm. Rule specs are passed
// unchanged to the controller.
type AlarmSpec struct {
	Description string         `json:"description"`
	Group       string         `json:"group,omitempty"`
	WarningRule map[string]any `json:"warning_rule,omitempty"`
	AlarmRule   map[string]any `json:"alarm_rule,omitempty"`
	Persist     bool           `json:"persist"`
}

type CreatedAlarm struct {
	ID      string `json:"id"`
	ValueID string `json:"lvar_id"`
}

type DescriptionUpdate struct {
	Description string `json:"description"`
	Persist     bool   `json:"persist"`
}

type RuleProps struct {
	Warning map[string]any `json:"rw"`
	Alarm   map[string]any `json:"ra"`
}

type RulePropsUpdate struct {
	Warning map[string]any `json:"rw,omitempty"`
	Alarm   map[string]any `json:"ra,omitempty"`
	Persist bool           `json:"persist"`
}

type DestroyResult struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
