package context

import (
	"context"

	"github.com/dtroode/catalog-server/internal/model"
	"github.com/google/uuid"
)

type contextKey int

const (
	userKey contextKey = iota
	correlationIDKey
)

// Manager represents an HTTP request context manager.
// It stores the authenticated user and the request correlation id on the
// request context under unexported keys.
type Manager struct{}

// NewManager creates a new context manager instance.
//
// Returns a pointer to the newly created Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext attaches the authenticated user to the context.
// The password hash is stripped before the user is stored.
//
// Parameters:
//   - ctx: The request context
//   - user: The authenticated user
//
// Returns a new context carrying the user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user.Sanitized())
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and a boolean indicating if a user was found.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	if !ok || user.ID == uuid.Nil {
		return model.User{}, false
	}
	return user, true
}

// GetUserIDFromContext retrieves the authenticated user's id from the context.
//
// Returns the user UUID and a boolean indicating if the user was found.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	user, ok := m.GetUserFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return user.ID, true
}

// WithCorrelationID returns a context carrying the request correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationID returns the correlation id stored on the context, if any.
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}
