// Package ctxutil carries the caller identity and request id through a
// request context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	userKey ctxKey = iota
	requestIDKey
)

// User is the caller as asserted by the upstream gateway.
type User struct {
	ID   uuid.UUID
	Name string
}

// WithUser stores the caller in the context.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromCtx returns the caller. ok is false when no caller was stored or
// its id is nil.
func UserFromCtx(ctx context.Context) (u User, ok bool) {
	u, ok = ctx.Value(userKey).(User)
	if !ok || u.ID == uuid.Nil {
		return User{}, false
	}
	return u, true
}

// WithUserID stores a caller that has no display name.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return WithUser(ctx, User{ID: id})
}

// UserIDFromCtx returns the caller id, or uuid.Nil and false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	u, ok := UserFromCtx(ctx)
	return u.ID, ok
}

// UserNameFromCtx returns the caller display name, empty when unknown.
func UserNameFromCtx(ctx context.Context) string {
	u, _ := UserFromCtx(ctx)
	return u.Name
}

// WithRequestID stores the request id in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns the request id, empty when absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
