package auth

import (
	"context"
	"errors"
)

// Headers set by the gateway after the token has been verified.
const (
	XUserIDHeader   = "X-User-Id"
	XUserRoleHeader = "X-User-Role"
)

const (
	RoleUser      = "user"
	RoleLibrarian = "librarian"
)

type ctxKey struct{}

type Info struct {
	UserID int
	Role   string
}

var ErrNoAuthContext = errors.New("auth context is empty")

func SetAuthContext(ctx context.Context, userID int, role string) context.Context {
	return context.WithValue(ctx, ctxKey{}, Info{UserID: userID, Role: role})
}

func FromContext(ctx context.Context) (Info, error) {
	info, ok := ctx.Value(ctxKey{}).(Info)
	if !ok {
		return Info{}, ErrNoAuthContext
	}
	return info, nil
}
