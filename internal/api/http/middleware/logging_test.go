package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	httpctx "github.com/dtroode/catalog-server/internal/api/http/context"
	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging_GeneratesCorrelationID(t *testing.T) {
	var seen string
	h := NewLogging(testutil.MakeNoopLogger()).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = httpctx.CorrelationID(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/companies", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	got := rec.Header().Get(CorrelationIDHeader)
	require.NotEmpty(t, got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
	assert.Equal(t, got, seen)
}

func TestLogging_EchoesCorrelationID(t *testing.T) {
	h := NewLogging(testutil.MakeNoopLogger()).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CorrelationIDHeader, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(CorrelationIDHeader))
}

func TestLogging_LogsRouteAndStatus(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf, 0, "text")

	r := chi.NewRouter()
	r.Use(NewLogging(lg).Handle)
	r.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/products/123", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, "HTTP request started")
	assert.Contains(t, out, "HTTP request completed")
	assert.Contains(t, out, "route=/products/{id}")
	assert.Contains(t, out, "status=404")
	assert.Contains(t, out, "duration_ms=")
	assert.NotContains(t, out, "secret-token")
}
