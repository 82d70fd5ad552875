package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dtroode/catalog-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_Live(t *testing.T) {
	h := NewHealth(testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth_Ready(t *testing.T) {
	h := NewHealth(testutil.MakeNoopLogger())
	h.Register("postgres", func(context.Context) error { return nil })
	h.Register("storage", func(context.Context) error { return nil })

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var results []checkResult
	decodeData(t, decodeEnvelope(t, rec), &results)
	require.Len(t, results, 2)
	assert.Equal(t, "postgres", results[0].Name)
	assert.Equal(t, "up", results[1].Status)
}

func TestHealth_Ready_DependencyDown(t *testing.T) {
	h := NewHealth(testutil.MakeNoopLogger())
	h.Register("postgres", func(context.Context) error { return nil })
	h.Register("redis", func(context.Context) error { return errors.New("connection refused") })

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var results []checkResult
	decodeData(t, decodeEnvelope(t, rec), &results)
	require.Len(t, results, 2)
	assert.Equal(t, "redis", results[1].Name)
	assert.Equal(t, "down", results[1].Status)
	assert.Equal(t, "connection refused", results[1].Error)
}
