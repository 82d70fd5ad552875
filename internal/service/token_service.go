package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/model"
)

// TokenService issues token pairs and keeps the refresh token ledger in step
// with them. It composes the TokenCodec and the RefreshTokenStore.
type TokenService struct {
	codec      model.TokenCodec
	store      model.RefreshTokenStore
	refreshTTL time.Duration
	logger     *logger.Logger
	now        func() time.Time
}

func NewTokenService(codec model.TokenCodec, store model.RefreshTokenStore, refreshTTL time.Duration, logger *logger.Logger) *TokenService {
	return &TokenService{
		codec:      codec,
		store:      store,
		refreshTTL: refreshTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// Issue creates a new token pair and records the refresh token, replacing
// any session the user had before.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (model.TokenPair, error) {
	access, err := s.codec.IssueAccessToken(userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := s.codec.IssueRefreshToken(userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	if _, err := s.store.Save(ctx, userID, hashRefresh(refresh), s.expiryOf(refresh)); err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Rotate swaps the presented refresh token for a new pair. It returns
// model.ErrTokenNotRegistered when the ledger holds no live record for the
// presented token, which covers replay of an already rotated token.
func (s *TokenService) Rotate(ctx context.Context, userID uuid.UUID, presented string) (model.TokenPair, error) {
	refresh, err := s.codec.IssueRefreshToken(userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	_, err = s.store.Rotate(ctx, userID, hashRefresh(presented), hashRefresh(refresh), s.expiryOf(refresh))
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, model.ErrTokenNotRegistered
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	access, err := s.codec.IssueAccessToken(userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Exists reports whether the refresh token has a live ledger record.
func (s *TokenService) Exists(ctx context.Context, refresh string) (bool, error) {
	ok, err := s.store.Exists(ctx, hashRefresh(refresh))
	if err != nil {
		return false, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	return ok, nil
}

// Revoke drops the user's ledger record.
func (s *TokenService) Revoke(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// expiryOf reads the ledger expiry from the token itself and falls back to
// the configured lifetime when the claim cannot be decoded.
func (s *TokenService) expiryOf(refresh string) time.Time {
	if exp, ok := s.codec.DecodeExpiry(refresh); ok {
		return exp
	}
	s.logger.Warn("Token service: refresh token has no readable expiry, using configured lifetime")
	return s.now().Add(s.refreshTTL)
}

func hashRefresh(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}
