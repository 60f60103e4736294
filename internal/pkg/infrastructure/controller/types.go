package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Result codes returned by the controller api
const (
	ResultOK            int = 0
	ResultNotFound      int = 1
	ResultForbidden     int = 2
	ResultAPIError      int = 3
	ResultUnknownError  int = 4
	ResultNotReady      int = 5
	ResultFuncUnknown   int = 6
	ResultServerError   int = 7
	ResultTimeout       int = 8
	ResultInvalidData   int = 9
	ResultFuncFailed    int = 10
	ResultInvalidParams int = 11
)

type Result struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data,omitempty"`
}

func (r Result) OK() bool {
	return r.Code == ResultOK
}

// Decode unmarshals the result data into v
func (r Result) Decode(v any) error {
	if len(r.Data) == 0 {
		return nil
	}
	return json.Unmarshal(r.Data, v)
}

const (
	StatusInactive int = 0
	StatusActive   int = 1
)

// State is the full state of a monitored value
type State struct {
	OID         string `json:"oid"`
	Description string `json:"description"`
	Status      int    `json:"status"`
	Value       Value  `json:"value"`
}

// Value holds a raw monitored value. The controller reports values as
// strings or numbers and uses an empty string or null for "no value".
type Value string

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	}

	*v = Value(b)
	return nil
}

// Int coerces the value to an integer. Absent values are 0.
func (v Value) Int() (int, error) {
	s := strings.TrimSpace(string(v))
	if s == "" || s == "null" {
		return 0, nil
	}

	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("value %q is not numeric: %w", s, err)
	}

	return int(f), nil
}

// ResultError is returned when the controller answers with a non success code
type ResultError struct {
	Func   string
	Target string
	Code   int
}

func (e *ResultError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("controller call %s failed (%d)", e.Func, e.Code)
	}
	return fmt.Sprintf("controller call %s at %s failed (%d)", e.Func, e.Target, e.Code)
}
