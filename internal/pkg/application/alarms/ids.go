package alarms

import (
	"strings"

	"github.com/google/uuid"
)

const valuePrefix string = "alarmer"

// MaxIDLength is the widest alarm id the subscription and log tables can hold
const MaxIDLength int = 256

// NewID returns a fresh alarm id, namespaced under group when one is given
func NewID(group string) string {
	id := uuid.NewString()

	group = strings.Trim(group, "/")
	if group == "" {
		return id
	}

	return group + "/" + id
}

// GroupFits reports whether ids generated under group stay within MaxIDLength
func GroupFits(group string) bool {
	group = strings.Trim(group, "/")
	if group == "" {
		return true
	}
	return len(group)+1+36 <= MaxIDLength
}

// ValueID is the id of the monitored value that holds the alarm severity
func ValueID(alarmID string) string {
	return valuePrefix + "/" + alarmID
}

// StateOID is the controller object id of the monitored value. It is also
// the resource that access checks are made against.
func StateOID(alarmID string) string {
	return "lvar:" + ValueID(alarmID)
}

// RuleIDs returns the warning and alarm tier rule ids
func RuleIDs(alarmID string) (warning, alarm string) {
	base := alarmID
	if idx := strings.LastIndex(alarmID, "/"); idx >= 0 {
		base = alarmID[idx+1:]
	}
	return base + "_w", base + "_a"
}
