// Package utils provides small helpers shared by the transport layer:
// request-scoped principal storage, JSON response writing, trace id
// generation and a preconfigured HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the auth middleware stores the
// authenticated [models.User].
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying user as the authenticated principal.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user stored by [WithUser].
//
// ok is false when no user was stored or the value has an unexpected type.
// Handlers behind the auth middleware can rely on ok being true.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
