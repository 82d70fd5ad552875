package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/catalog-server/internal/apperror"
	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/model"
)

// RegisterParams describes a new account.
type RegisterParams struct {
	Name      string
	Email     string
	Password  string
	CompanyID *uuid.UUID
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	model.TokenPair
	User model.User
}

type Auth struct {
	userStore    model.UserStore
	codec        model.TokenCodec
	tokenService *TokenService
	logger       *logger.Logger
	now          func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	codec model.TokenCodec,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		codec:        codec,
		tokenService: tokenService,
		logger:       logger,
		now:          time.Now,
	}
}

func (a *Auth) Register(ctx context.Context, params RegisterParams) (model.User, error) {
	email := model.NormalizeEmail(params.Email)
	name := strings.TrimSpace(params.Name)

	a.logger.Debug("Auth service: registering user",
		"email", email)

	fields := map[string]string{}
	if name == "" {
		fields["name"] = "name is required"
	}
	if email == "" {
		fields["email"] = "email is required"
	}
	if params.Password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return model.User{}, apperror.NewErrValidation("name, email and password are required", fields)
	}

	user := model.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CompanyID: params.CompanyID,
		IsActive:  true,
	}
	if err := setPassword(&user, params.Password, "password"); err != nil {
		return model.User{}, err
	}

	saved, err := a.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.User{}, apperror.NewErrConflict("email is already registered")
	}
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apperror.NewErrNotFound("company")
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", saved.ID)

	return saved.Sanitized(), nil
}

// Login checks the password before the active flag so that a suspended
// account is only revealed to someone who knows its password.
func (a *Auth) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = model.NormalizeEmail(email)
	if email == "" || password == "" {
		return LoginResult{}, apperror.NewErrValidation("email and password are required", nil)
	}

	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return LoginResult{}, apperror.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"error", err.Error())
		return LoginResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !user.CheckPassword(password) {
		a.logger.Info("Auth service: login failed, password mismatch",
			"user_id", user.ID)
		return LoginResult{}, apperror.NewErrInvalidCredentials()
	}

	if !user.IsActive {
		a.logger.Info("Auth service: login refused, account is not active",
			"user_id", user.ID)
		return LoginResult{}, apperror.NewErrAccountSuspended()
	}

	now := a.now()
	if err := a.userStore.UpdateLastLogin(ctx, user.ID, now); err != nil {
		a.logger.Error("Auth service: failed to update last login",
			"user_id", user.ID,
			"error", err.Error())
		return LoginResult{}, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLoginAt = &now

	pair, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue tokens",
			"user_id", user.ID,
			"error", err.Error())
		return LoginResult{}, err
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return LoginResult{TokenPair: pair, User: user.Sanitized()}, nil
}

// Refresh exchanges a refresh token for a new pair. A token is accepted at
// most once; presenting it again after rotation fails.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return model.TokenPair{}, apperror.NewErrValidation("refresh token is required", nil)
	}

	claims, err := a.codec.Verify(refreshToken, model.TokenRefresh)
	if err != nil {
		a.logger.Info("Auth service: refresh token rejected",
			"error", err.Error())
		return model.TokenPair{}, apperror.NewErrInvalidToken(err)
	}

	user, err := a.userStore.GetByID(ctx, claims.UserID)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: refresh token for unknown user",
			"user_id", claims.UserID)
		return model.TokenPair{}, apperror.NewErrInvalidToken(err)
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !user.IsActive {
		return model.TokenPair{}, apperror.NewErrAccountSuspended()
	}

	pair, err := a.tokenService.Rotate(ctx, user.ID, refreshToken)
	if errors.Is(err, model.ErrTokenNotRegistered) {
		a.logger.Warn("Auth service: refresh token reuse or unknown session",
			"user_id", user.ID)
		return model.TokenPair{}, apperror.NewErrTokenReuse(err)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to rotate refresh token",
			"user_id", user.ID,
			"error", err.Error())
		return model.TokenPair{}, err
	}

	a.logger.Info("Auth service: tokens refreshed",
		"user_id", user.ID)

	return pair, nil
}

func (a *Auth) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := a.tokenService.Revoke(ctx, userID); err != nil {
		a.logger.Error("Auth service: failed to revoke session",
			"user_id", userID,
			"error", err.Error())
		return err
	}

	a.logger.Info("Auth service: user logged out",
		"user_id", userID)
	return nil
}

func (a *Auth) GetUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apperror.NewErrNotFound("user")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user.Sanitized(), nil
}

// ChangePassword replaces the password and ends the current session so the
// old refresh token can no longer be rotated.
func (a *Auth) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if current == "" || next == "" {
		return apperror.NewErrValidation("current and new password are required", nil)
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return apperror.NewErrNotFound("user")
	}
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if !user.CheckPassword(current) {
		return apperror.NewErrInvalidCredentials()
	}

	if err := setPassword(&user, next, "newPassword"); err != nil {
		return err
	}
	if err := a.userStore.UpdatePassword(ctx, user.ID, user.PasswordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := a.tokenService.Revoke(ctx, user.ID); err != nil {
		return err
	}

	a.logger.Info("Auth service: password changed",
		"user_id", user.ID)
	return nil
}

// setPassword hashes plain onto the user. Input bcrypt cannot hash is a
// validation error reported on field.
func setPassword(user *model.User, plain, field string) error {
	err := user.SetPassword(plain)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return apperror.NewErrValidation("password is too long",
			map[string]string{field: fmt.Sprintf("must be at most %d bytes", model.MaxPasswordBytes)})
	}
	if err != nil {
		return fmt.Errorf("failed to set password: %w", err)
	}
	return nil
}
