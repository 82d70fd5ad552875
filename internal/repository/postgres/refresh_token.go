package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/catalog-server/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

// RefreshTokenRepository is the Postgres ledger of live refresh tokens.
// Postgres has no TTL index, so every read filters on expires_at and
// DeleteExpired is called periodically to reclaim space.
type RefreshTokenRepository struct {
	db DB
}

func NewRefreshTokenRepository(db DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

const refreshTokenColumns = `id, user_id, token_hash, created_at, expires_at`

func scanRefreshToken(row scanner) (model.RefreshToken, error) {
	var rt model.RefreshToken
	err := row.Scan(&rt.ID, &rt.UserID, &rt.TokenHash, &rt.CreatedAt, &rt.ExpiresAt)
	return rt, err
}

func (r *RefreshTokenRepository) Save(ctx context.Context, userID uuid.UUID, tokenHash []byte, expiresAt time.Time) (model.RefreshToken, error) {
	const query = `
        INSERT INTO refresh_tokens (id, user_id, token_hash, created_at, expires_at)
        VALUES ($1, $2, $3, NOW(), $4)
        ON CONFLICT (user_id) DO UPDATE
        SET token_hash = EXCLUDED.token_hash, created_at = NOW(), expires_at = EXCLUDED.expires_at
        RETURNING ` + refreshTokenColumns

	rt, err := scanRefreshToken(r.db.QueryRow(ctx, query, uuid.New(), userID, tokenHash, expiresAt))
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to save refresh token: %w", err)
	}
	return rt, nil
}

// Rotate relies on the row lock taken by UPDATE: a concurrent rotation with
// the same old hash waits, re-checks the predicate and matches nothing.
func (r *RefreshTokenRepository) Rotate(ctx context.Context, userID uuid.UUID, oldHash, newHash []byte, expiresAt time.Time) (model.RefreshToken, error) {
	const query = `
        UPDATE refresh_tokens
        SET token_hash = $3, expires_at = $4, created_at = NOW()
        WHERE user_id = $1 AND token_hash = $2 AND expires_at > NOW()
        RETURNING ` + refreshTokenColumns

	rt, err := scanRefreshToken(r.db.QueryRow(ctx, query, userID, oldHash, newHash, expiresAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	return rt, nil
}

func (r *RefreshTokenRepository) Exists(ctx context.Context, tokenHash []byte) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM refresh_tokens WHERE token_hash = $1 AND expires_at > NOW()
        )`

	var exists bool
	if err := r.db.QueryRow(ctx, query, tokenHash).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check refresh token: %w", err)
	}
	return exists, nil
}

func (r *RefreshTokenRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM refresh_tokens WHERE user_id = $1`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete refresh token by user: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	const query = `DELETE FROM refresh_tokens WHERE expires_at <= $1`
	tag, err := r.db.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
