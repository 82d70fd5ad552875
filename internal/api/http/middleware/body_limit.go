package middleware

import "net/http"

const (
	// MaxJSONBody caps JSON request bodies.
	MaxJSONBody int64 = 1 << 20
	// MaxMultipartBody caps multipart upload bodies.
	MaxMultipartBody int64 = 50 << 20
)

// BodyLimit caps the request body at limit bytes.
func BodyLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
