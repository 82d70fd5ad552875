package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/model"
)

// VerificationStrategy resolves a bearer token to a user id.
type VerificationStrategy interface {
	Name() string
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}

// AccessTokenStrategy accepts access tokens signed with the access secret.
type AccessTokenStrategy struct {
	codec model.TokenCodec
}

func NewAccessTokenStrategy(codec model.TokenCodec) *AccessTokenStrategy {
	return &AccessTokenStrategy{codec: codec}
}

func (s *AccessTokenStrategy) Name() string { return "access" }

func (s *AccessTokenStrategy) Verify(_ context.Context, token string) (uuid.UUID, error) {
	claims, err := s.codec.Verify(token, model.TokenAccess)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

// RefreshTokenStrategy accepts refresh tokens that still have a live ledger
// record. A refresh token authorizes any call it reaches, so this strategy is
// only installed when the refresh fallback is enabled.
type RefreshTokenStrategy struct {
	codec  model.TokenCodec
	tokens *TokenService
}

func NewRefreshTokenStrategy(codec model.TokenCodec, tokens *TokenService) *RefreshTokenStrategy {
	return &RefreshTokenStrategy{codec: codec, tokens: tokens}
}

func (s *RefreshTokenStrategy) Name() string { return "refresh" }

func (s *RefreshTokenStrategy) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	claims, err := s.codec.Verify(token, model.TokenRefresh)
	if err != nil {
		return uuid.Nil, err
	}

	ok, err := s.tokens.Exists(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, model.ErrTokenNotRegistered
	}
	return claims.UserID, nil
}

// Authenticator resolves bearer tokens to active users by trying each
// strategy in order. The first strategy that verifies the token wins.
type Authenticator struct {
	users      model.UserStore
	strategies []VerificationStrategy
	logger     *logger.Logger
}

func NewAuthenticator(users model.UserStore, logger *logger.Logger, strategies ...VerificationStrategy) *Authenticator {
	return &Authenticator{users: users, strategies: strategies, logger: logger}
}

// Authenticate returns the sanitized user owning the token. Errors carry the
// internal cause and must not be shown to clients.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (model.User, error) {
	if len(a.strategies) == 0 {
		return model.User{}, fmt.Errorf("no verification strategy configured")
	}

	var (
		userID  uuid.UUID
		lastErr error
	)
	for _, strategy := range a.strategies {
		id, err := strategy.Verify(ctx, token)
		if err == nil {
			userID = id
			lastErr = nil
			break
		}
		a.logger.Debug("Authenticator: strategy rejected token",
			"strategy", strategy.Name(),
			"error", err.Error())
		lastErr = fmt.Errorf("%s: %w", strategy.Name(), err)
	}
	if lastErr != nil {
		return model.User{}, lastErr
	}

	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to resolve user: %w", err)
	}
	if !user.IsActive {
		return model.User{}, fmt.Errorf("user %s is not active", user.ID)
	}

	return user.Sanitized(), nil
}
