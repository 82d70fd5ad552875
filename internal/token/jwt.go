package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/catalog-server/internal/model"
)

var _ model.TokenCodec = (*JWT)(nil)

// Claims represents JWT claims with token type and user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID    uuid.UUID       `json:"user_id"`
	TokenType model.TokenKind `json:"typ"`
}

// Options configures the JWT codec.
type Options struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// JWT implements TokenCodec with HMAC-SHA256 and one secret per token kind.
type JWT struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWT creates a new JWT codec.
func NewJWT(opts Options) *JWT {
	return &JWT{
		accessSecret:  []byte(opts.AccessSecret),
		refreshSecret: []byte(opts.RefreshSecret),
		accessTTL:     opts.AccessTTL,
		refreshTTL:    opts.RefreshTTL,
		now:           time.Now,
	}
}

// IssueAccessToken creates a short-lived access token.
func (j *JWT) IssueAccessToken(userID uuid.UUID) (string, error) {
	token, err := j.sign(userID, model.TokenAccess, j.accessTTL, j.accessSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, nil
}

// IssueRefreshToken creates a long-lived refresh token with a random ID.
func (j *JWT) IssueRefreshToken(userID uuid.UUID) (string, error) {
	token, err := j.sign(userID, model.TokenRefresh, j.refreshTTL, j.refreshSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return token, nil
}

func (j *JWT) sign(userID uuid.UUID, kind model.TokenKind, ttl time.Duration, secret []byte) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		TokenType: kind,
	})

	return token.SignedString(secret)
}

// Verify checks signature, expiry and type of the token against the secret
// of the given kind. Errors wrap model.ErrTokenExpired or model.ErrTokenInvalid.
func (j *JWT) Verify(tokenString string, kind model.TokenKind) (model.TokenClaims, error) {
	var secret []byte
	switch kind {
	case model.TokenAccess:
		secret = j.accessSecret
	case model.TokenRefresh:
		secret = j.refreshSecret
	default:
		return model.TokenClaims{}, fmt.Errorf("%w: unknown token kind %q", model.ErrTokenInvalid, kind)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.TokenClaims{}, fmt.Errorf("failed to parse %s token: %w: %w", kind, model.ErrTokenExpired, err)
		}
		return model.TokenClaims{}, fmt.Errorf("failed to parse %s token: %w: %w", kind, model.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return model.TokenClaims{}, fmt.Errorf("%w: %s token is invalid", model.ErrTokenInvalid, kind)
	}
	if claims.TokenType != kind {
		return model.TokenClaims{}, fmt.Errorf("%w: token type mismatch: %s", model.ErrTokenInvalid, claims.TokenType)
	}
	if claims.UserID == uuid.Nil {
		return model.TokenClaims{}, fmt.Errorf("%w: token has no user", model.ErrTokenInvalid)
	}

	return model.TokenClaims{
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// DecodeExpiry reads the exp claim without verifying the signature.
// The result must never be used for authorization.
func (j *JWT) DecodeExpiry(tokenString string) (time.Time, bool) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
