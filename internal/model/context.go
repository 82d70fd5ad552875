package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager stores the authenticated user on a request context.
type ContextManager interface {
	SetUserToContext(ctx context.Context, user User) context.Context
	GetUserFromContext(ctx context.Context) (User, bool)
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
}
