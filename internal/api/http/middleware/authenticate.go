package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dtroode/catalog-server/internal/api/http/response"
	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/model"
)

var (
	errMissingToken   = errors.New("missing bearer token")
	errMalformedToken = errors.New("malformed authorization header")
)

// Authenticator resolves the user a bearer token belongs to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.User, error)
}

// Authenticate validates bearer tokens and injects the user into the request context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid bearer token with a generic 401.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			m.reject(w, r, err)
			return
		}

		user, err := m.authenticator.Authenticate(r.Context(), token)
		if err != nil {
			m.reject(w, r, err)
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) reject(w http.ResponseWriter, r *http.Request, err error) {
	m.logger.Warn("Authenticate middleware: request rejected",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err.Error())
	response.Unauthorized(w)
}

const bearerPrefix = "Bearer "

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingToken
	}
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return "", errMalformedToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errMissingToken
	}
	return token, nil
}
