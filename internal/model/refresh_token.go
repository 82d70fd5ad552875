package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenStore is the ledger of the single live refresh token per user.
// Every read treats records with ExpiresAt in the past as absent.
type RefreshTokenStore interface {
	// Save stores the token for the user, replacing any previous record.
	Save(ctx context.Context, userID uuid.UUID, tokenHash []byte, expiresAt time.Time) (RefreshToken, error)
	// Rotate atomically swaps oldHash for newHash. Returns ErrNotFound when
	// the user has no live record holding oldHash.
	Rotate(ctx context.Context, userID uuid.UUID, oldHash, newHash []byte, expiresAt time.Time) (RefreshToken, error)
	Exists(ctx context.Context, tokenHash []byte) (bool, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// RefreshToken is a persisted ledger record.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash []byte
	CreatedAt time.Time
	ExpiresAt time.Time
}
