package router

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpctx "github.com/dtroode/catalog-server/internal/api/http/context"
	"github.com/dtroode/catalog-server/internal/api/http/handler"
	"github.com/dtroode/catalog-server/internal/api/http/middleware"
	"github.com/dtroode/catalog-server/internal/model"
	"github.com/dtroode/catalog-server/internal/service"
	"github.com/dtroode/catalog-server/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = model.User{ID: uuid.New(), Name: "Alice", Email: "a@x.com", IsActive: true}

type stubAuthenticator struct{}

func (stubAuthenticator) Authenticate(_ context.Context, token string) (model.User, error) {
	if token == "valid" {
		return testUser, nil
	}
	return model.User{}, errors.New("invalid token")
}

type stubAuth struct{}

func (stubAuth) Register(context.Context, service.RegisterParams) (model.User, error) {
	return testUser, nil
}

func (stubAuth) Login(context.Context, string, string) (service.LoginResult, error) {
	return service.LoginResult{TokenPair: model.TokenPair{AccessToken: "a", RefreshToken: "r"}, User: testUser}, nil
}

func (stubAuth) Refresh(context.Context, string) (model.TokenPair, error) {
	return model.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil
}

func (stubAuth) Logout(context.Context, uuid.UUID) error { return nil }

func (stubAuth) GetUser(_ context.Context, id uuid.UUID) (model.User, error) {
	return testUser, nil
}

func (stubAuth) ChangePassword(context.Context, uuid.UUID, string, string) error { return nil }

type stubCompany struct{}

func (stubCompany) Create(_ context.Context, c model.Company, _ uuid.UUID) (model.Company, error) {
	c.ID = uuid.New()
	return c, nil
}

func (stubCompany) List(context.Context) ([]model.Company, error) {
	return []model.Company{{ID: uuid.New(), Name: "Acme"}}, nil
}

func (stubCompany) Get(_ context.Context, id uuid.UUID) (model.Company, error) {
	return model.Company{ID: id}, nil
}

func (stubCompany) Update(_ context.Context, id uuid.UUID, _ service.CompanyPatch) (model.Company, error) {
	return model.Company{ID: id}, nil
}

func (stubCompany) Delete(context.Context, uuid.UUID) error { return nil }

type stubProduct struct{}

func (stubProduct) Create(context.Context, service.ProductInput, uuid.UUID) (model.Product, error) {
	return model.Product{ID: uuid.New()}, nil
}

func (stubProduct) List(context.Context, service.ProductQuery) ([]model.Product, error) {
	return nil, nil
}

func (stubProduct) Get(_ context.Context, id uuid.UUID) (model.Product, error) {
	return model.Product{ID: id}, nil
}

func (stubProduct) Update(_ context.Context, id uuid.UUID, _ service.ProductPatch) (model.Product, error) {
	return model.Product{ID: id}, nil
}

func (stubProduct) Delete(context.Context, uuid.UUID) error { return nil }

type stubImage struct{}

func (stubImage) Upload(context.Context, service.UploadParams) ([]model.Image, error) {
	return nil, nil
}

func (stubImage) List(context.Context, model.OwnerType, uuid.UUID) ([]model.Image, error) {
	return nil, nil
}

func (stubImage) Open(context.Context, uuid.UUID) (model.Image, io.ReadCloser, error) {
	return model.Image{MimeType: "image/png"}, io.NopCloser(bytes.NewReader(nil)), nil
}

func (stubImage) SetPrimary(_ context.Context, id uuid.UUID) (model.Image, error) {
	return model.Image{ID: id}, nil
}

func (stubImage) Delete(context.Context, uuid.UUID) error { return nil }

func newTestRouter(t *testing.T, opts Options) http.Handler {
	t.Helper()
	lg := testutil.MakeNoopLogger()
	health := handler.NewHealth(lg)
	health.Register("postgres", func(context.Context) error { return nil })

	return New(
		Services{Auth: stubAuth{}, Company: stubCompany{}, Product: stubProduct{}, Image: stubImage{}},
		stubAuthenticator{},
		health,
		httpctx.NewManager(),
		lg,
		opts,
	).Register()
}

func defaultOptions() Options {
	return Options{
		AllowedOrigins:  []string{"http://localhost:5173"},
		Limiter:         middleware.NewRateLimiter(),
		RateLimitWindow: time.Minute,
		MaxRequests:     100,
		AuthMaxRequests: 100,
	}
}

func do(h http.Handler, method, path, token string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.RemoteAddr = "192.0.2.10:4000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Routes(t *testing.T) {
	h := newTestRouter(t, defaultOptions())
	id := uuid.NewString()

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       string
		wantStatus int
	}{
		{"login is public", http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com","password":"secret123"}`, http.StatusOK},
		{"refresh is public", http.MethodPost, "/api/auth/refresh-token", "", `{"refreshToken":"r"}`, http.StatusOK},
		{"register is public", http.MethodPost, "/api/auth/register", "", `{"name":"A","email":"a@x.com","password":"secret1"}`, http.StatusCreated},
		{"me without token", http.MethodGet, "/api/auth/me", "", "", http.StatusUnauthorized},
		{"me with bad token", http.MethodGet, "/api/auth/me", "expired", "", http.StatusUnauthorized},
		{"me with token", http.MethodGet, "/api/auth/me", "valid", "", http.StatusOK},
		{"logout requires token", http.MethodPost, "/api/auth/logout", "", "", http.StatusUnauthorized},
		{"company list is public", http.MethodGet, "/api/companies", "", "", http.StatusOK},
		{"company create requires token", http.MethodPost, "/api/companies", "", `{"name":"A","email":"a@a.test"}`, http.StatusUnauthorized},
		{"company create", http.MethodPost, "/api/companies", "valid", `{"name":"A","email":"a@a.test"}`, http.StatusCreated},
		{"company detail requires token", http.MethodGet, "/api/companies/" + id, "", "", http.StatusUnauthorized},
		{"products require token", http.MethodGet, "/api/products", "", "", http.StatusUnauthorized},
		{"products", http.MethodGet, "/api/products", "valid", "", http.StatusOK},
		{"product delete", http.MethodDelete, "/api/products/" + id, "valid", "", http.StatusOK},
		{"image primary", http.MethodPatch, "/api/images/" + id + "/primary", "valid", "", http.StatusOK},
		{"image content", http.MethodGet, "/api/images/" + id + "/content", "valid", "", http.StatusOK},
		{"liveness", http.MethodGet, "/api/health/live", "", "", http.StatusOK},
		{"readiness", http.MethodGet, "/api/health/ready", "", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/nope", "", "", http.StatusNotFound},
		{"wrong method", http.MethodDelete, "/api/auth/login", "", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_AuthRateLimit(t *testing.T) {
	opts := defaultOptions()
	opts.AuthMaxRequests = 2
	h := newTestRouter(t, opts)

	body := `{"email":"a@x.com","password":"secret123"}`
	assert.Equal(t, http.StatusOK, do(h, http.MethodPost, "/api/auth/login", "", body).Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodPost, "/api/auth/login", "", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(h, http.MethodPost, "/api/auth/login", "", body).Code)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/companies", "", "").Code)
}

func TestRouter_CorrelationAndCORS(t *testing.T) {
	h := newTestRouter(t, defaultOptions())

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
}
