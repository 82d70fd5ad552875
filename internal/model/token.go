package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenKind selects the secret and the expected type claim of a token.
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

// TokenClaims is the verified content of a token.
type TokenClaims struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// TokenPair is an access token together with its refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenCodec issues and verifies signed, time-limited tokens.
type TokenCodec interface {
	IssueAccessToken(userID uuid.UUID) (string, error)
	IssueRefreshToken(userID uuid.UUID) (string, error)
	Verify(token string, kind TokenKind) (TokenClaims, error)
	// DecodeExpiry reads the exp claim without checking the signature.
	DecodeExpiry(token string) (time.Time, bool)
}
