package application

import (
	"errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrAccessDenied    = errors.New("access denied")
	ErrOperationFailed = errors.New("operation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
)

const (
	CodeInvalidArgument = "InvalidArgument"
	CodeNotFound        = "NotFound"
	CodeAccessDenied    = "AccessDenied"
	CodeOperationFailed = "OperationFailed"
	CodeUnauthenticated = "Unauthenticated"
)

// ErrorCode maps an error to its stable code. Errors outside the known kinds
// are reported as OperationFailed.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return CodeInvalidArgument
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrAccessDenied):
		return CodeAccessDenied
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	default:
		return CodeOperationFailed
	}
}
