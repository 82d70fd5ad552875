package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/catalog-server/internal/api/http/response"
	"github.com/dtroode/catalog-server/internal/apperror"
	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/model"
	"github.com/dtroode/catalog-server/internal/service"
	"github.com/google/uuid"
)

// AuthService defines account and session operations.
type AuthService interface {
	Register(ctx context.Context, params service.RegisterParams) (model.User, error)
	Login(ctx context.Context, email, password string) (service.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	GetUser(ctx context.Context, userID uuid.UUID) (model.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	errorHandler
	authService    AuthService
	contextManager model.ContextManager
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger, exposeErrors bool) *Auth {
	return &Auth{
		errorHandler:   errorHandler{logger: logger, exposeErrors: exposeErrors},
		authService:    authService,
		contextManager: contextManager,
	}
}

// Register creates an account.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	params := service.RegisterParams{Name: req.Name, Email: req.Email, Password: req.Password}
	if req.CompanyID != nil {
		companyID, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			h.handleError(w, r, apperror.NewErrValidation("invalid companyId", nil))
			return
		}
		params.CompanyID = &companyID
	}

	user, err := h.authService.Register(r.Context(), params)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusCreated, "user registered", newUserView(user))
}

// Login verifies credentials and returns a token pair with the profile.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusOK, "login successful", loginView{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ID:           result.User.ID,
		Name:         result.User.Name,
		Email:        result.User.Email,
	})
}

// RefreshToken exchanges a refresh token for a new pair.
func (h *Auth) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	pair, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusOK, "token refreshed", tokenView{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout drops the caller's refresh token.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	if err := h.authService.Logout(r.Context(), userID); err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusOK, "logged out", nil)
}

// Me returns the caller's profile.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusOK, "user profile", newUserView(user))
}

// ChangePassword replaces the caller's password and ends their session.
func (h *Auth) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusOK, "password changed", nil)
}
