package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/catalog-server/internal/mocks"
	"github.com/dtroode/catalog-server/internal/model"
	"github.com/dtroode/catalog-server/internal/testutil"
	"github.com/dtroode/catalog-server/internal/token"
)

func newAuthenticatorFixture(t *testing.T, withFallback bool) (*Authenticator, *token.JWT, *TokenService, *servermocks.UserStore) {
	t.Helper()
	codec := token.NewJWT(token.Options{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    24 * time.Hour,
	})
	log := testutil.MakeNoopLogger()
	tokens := NewTokenService(codec, newMemLedger(), 24*time.Hour, log)
	users := servermocks.NewUserStore(t)

	strategies := []VerificationStrategy{NewAccessTokenStrategy(codec)}
	if withFallback {
		strategies = append(strategies, NewRefreshTokenStrategy(codec, tokens))
	}
	return NewAuthenticator(users, log, strategies...), codec, tokens, users
}

func TestAuthenticator_AccessToken(t *testing.T) {
	auth, codec, _, users := newAuthenticatorFixture(t, true)
	user := model.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: []byte("hash"), IsActive: true}
	users.On("GetByID", mock.Anything, user.ID).Return(user, nil).Once()

	access, err := codec.IssueAccessToken(user.ID)
	require.NoError(t, err)

	got, err := auth.Authenticate(context.Background(), access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Nil(t, got.PasswordHash)
}

func TestAuthenticator_RefreshFallback(t *testing.T) {
	ctx := context.Background()
	auth, codec, tokens, users := newAuthenticatorFixture(t, true)
	user := model.User{ID: uuid.New(), IsActive: true}

	t.Run("registered refresh token is accepted", func(t *testing.T) {
		pair, err := tokens.Issue(ctx, user.ID)
		require.NoError(t, err)
		users.On("GetByID", mock.Anything, user.ID).Return(user, nil).Once()

		got, err := auth.Authenticate(ctx, pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("unregistered refresh token is rejected", func(t *testing.T) {
		stray, err := codec.IssueRefreshToken(user.ID)
		require.NoError(t, err)

		_, err = auth.Authenticate(ctx, stray)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrTokenNotRegistered)
	})
}

func TestAuthenticator_RefreshWithoutFallback(t *testing.T) {
	ctx := context.Background()
	auth, _, tokens, users := newAuthenticatorFixture(t, false)
	user := model.User{ID: uuid.New(), IsActive: true}

	pair, err := tokens.Issue(ctx, user.ID)
	require.NoError(t, err)

	_, err = auth.Authenticate(ctx, pair.RefreshToken)
	require.Error(t, err)
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAuthenticator_Rejections(t *testing.T) {
	ctx := context.Background()
	auth, codec, _, users := newAuthenticatorFixture(t, true)

	_, err := auth.Authenticate(ctx, "not-a-token")
	assert.ErrorIs(t, err, model.ErrTokenInvalid)

	missing := uuid.New()
	access, err := codec.IssueAccessToken(missing)
	require.NoError(t, err)
	users.On("GetByID", mock.Anything, missing).Return(model.User{}, model.ErrNotFound).Once()
	_, err = auth.Authenticate(ctx, access)
	assert.ErrorIs(t, err, model.ErrNotFound)

	inactive := model.User{ID: uuid.New(), IsActive: false}
	access, err = codec.IssueAccessToken(inactive.ID)
	require.NoError(t, err)
	users.On("GetByID", mock.Anything, inactive.ID).Return(inactive, nil).Once()
	_, err = auth.Authenticate(ctx, access)
	assert.Error(t, err)
}

func TestAuthenticator_NoStrategies(t *testing.T) {
	auth := NewAuthenticator(servermocks.NewUserStore(t), testutil.MakeNoopLogger())
	_, err := auth.Authenticate(context.Background(), "anything")
	assert.Error(t, err)
}
