package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dtroode/catalog-server/internal/apperror"
	"github.com/dtroode/catalog-server/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, http.StatusCreated, "created", map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, float64(201), body["code"])
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "created", body["message"])
	assert.Equal(t, map[string]any{"id": "1"}, body["data"])
	assert.NotContains(t, body, "total")
}

func TestList(t *testing.T) {
	rec := httptest.NewRecorder()
	List(rec, "ok", []int{}, 0)

	body := decode(t, rec)
	assert.Equal(t, float64(0), body["total"])
	assert.Equal(t, []any{}, body["data"])
}

func TestUnauthorized(t *testing.T) {
	rec := httptest.NewRecorder()
	Unauthorized(rec)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "unauthorized", body["message"])
	assert.Equal(t, false, body["success"])
}

func TestError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		detail      bool
		wantStatus  int
		wantMessage string
		wantDetail  bool
	}{
		{
			name:        "api error",
			err:         apperror.NewErrInvalidCredentials(),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid email or password",
		},
		{
			name:        "wrapped api error",
			err:         fmt.Errorf("login: %w", apperror.NewErrAccountSuspended()),
			wantStatus:  http.StatusForbidden,
			wantMessage: "account is not active",
		},
		{
			name:        "not found",
			err:         fmt.Errorf("failed to get: %w", model.ErrNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "resource not found",
		},
		{
			name:        "already exists",
			err:         model.ErrAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantMessage: "resource already exists",
		},
		{
			name:        "internal hides detail",
			err:         errors.New("db down"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
		{
			name:        "internal with detail",
			err:         errors.New("db down"),
			detail:      true,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
			wantDetail:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			status := Error(rec, tt.err, tt.detail)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tt.wantMessage, body["message"])
			if tt.wantDetail {
				assert.Equal(t, "db down", body["error"])
			} else {
				assert.NotContains(t, body, "error")
			}
		})
	}
}

func TestError_ValidationFields(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, apperror.NewErrValidation("validation failed", map[string]string{"email": "is required"}), false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, map[string]any{"email": "is required"}, body["errors"])
}

func TestError_InternalCauseNotRendered(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, apperror.NewErrInvalidToken(errors.New("signature mismatch")), true)

	raw := rec.Body.String()
	assert.Contains(t, raw, "invalid refresh token")
	assert.NotContains(t, raw, "signature mismatch")
}
