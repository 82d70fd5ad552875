package middleware

import (
	"net/http"
	"time"

	httpctx "github.com/dtroode/catalog-server/internal/api/http/context"
	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CorrelationIDHeader carries the request correlation id in both directions.
const CorrelationIDHeader = "X-Correlation-ID"

// statusRecorder captures the status code written by the next handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush lets streaming handlers flush through the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Logging logs every request with its correlation id, status and duration.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle assigns a correlation id and logs request start and completion.
func (l *Logging) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		correlationID := r.Header.Get(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}
		w.Header().Set(CorrelationIDHeader, correlationID)
		r = r.WithContext(httpctx.WithCorrelationID(r.Context(), correlationID))

		l.logger.Info("HTTP request started",
			"method", r.Method,
			"path", r.URL.Path,
			"correlation_id", correlationID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		args := []any{
			"method", r.Method,
			"route", route,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"correlation_id", correlationID,
		}
		if rec.status >= http.StatusInternalServerError {
			l.logger.Error("HTTP request completed", args...)
			return
		}
		l.logger.Info("HTTP request completed", args...)
	})
}
