package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/dtroode/catalog-server/internal/api/http/response"
	"github.com/dtroode/catalog-server/internal/logger"
)

// Recovery turns a handler panic into a 500 envelope.
func Recovery(logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("Recovery middleware: panic recovered",
						"panic", fmt.Sprint(rec),
						"stack", string(debug.Stack()),
						"method", r.Method,
						"path", r.URL.Path)
					response.JSON(w, http.StatusInternalServerError, response.Envelope{Message: "internal server error"})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
