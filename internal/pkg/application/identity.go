package application

import (
	"context"
)

type AccessMode string

const (
	AccessReadOnly  AccessMode = "ro"
	AccessReadWrite AccessMode = "rw"
	AccessMaster    AccessMode = "master"
)

// Identity is the authenticated caller of an operation
type Identity struct {
	User     string         `json:"user"`
	UserType string         `json:"user_type"`
	KeyID    string         `json:"key_id"`
	Claims   map[string]any `json:"claims,omitempty"`
}

func (i Identity) LoggedIn() bool {
	return i.User != ""
}

//go:generate moq -rm -out authorizer_mock.go . Authorizer

// Authorizer decides if a caller may access a resource in the given mode
type Authorizer interface {
	Authorized(ctx context.Context, who Identity, resource string, mode AccessMode) (bool, error)
}

type identityContextKey struct {
	name string
}

var identityCtxKey = &identityContextKey{"identity"}

func WithIdentity(ctx context.Context, who Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, who)
}

func IdentityFromContext(ctx context.Context) Identity {
	who, ok := ctx.Value(identityCtxKey).(Identity)
	if !ok {
		return Identity{}
	}
	return who
}
