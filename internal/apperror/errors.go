// Package apperror defines the client-facing error taxonomy.
package apperror

import (
	"fmt"
	"net/http"
)

// Kind is the stable machine-readable error category.
type Kind string

const (
	KindValidation         Kind = "VALIDATION_ERROR"
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
	KindAccountSuspended   Kind = "ACCOUNT_SUSPENDED"
	KindInvalidToken       Kind = "INVALID_TOKEN"
	KindTokenReuse         Kind = "TOKEN_REUSE_OR_UNKNOWN"
	KindUnauthorized       Kind = "UNAUTHORIZED"
	KindNotFound           Kind = "NOT_FOUND"
	KindConflict           Kind = "CONFLICT"
	KindTooManyRequests    Kind = "TOO_MANY_REQUESTS"
	KindInternal           Kind = "INTERNAL"
)

// APIError is an error that can be rendered to a client. Err holds the
// internal cause and is never rendered.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string]string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches any APIError of the same kind.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrValidation         = &APIError{Kind: KindValidation, Status: http.StatusBadRequest}
	ErrInvalidCredentials = &APIError{Kind: KindInvalidCredentials, Status: http.StatusUnauthorized}
	ErrAccountSuspended   = &APIError{Kind: KindAccountSuspended, Status: http.StatusForbidden}
	ErrInvalidToken       = &APIError{Kind: KindInvalidToken, Status: http.StatusUnauthorized}
	ErrTokenReuse         = &APIError{Kind: KindTokenReuse, Status: http.StatusUnauthorized}
	ErrUnauthorized       = &APIError{Kind: KindUnauthorized, Status: http.StatusUnauthorized}
	ErrNotFound           = &APIError{Kind: KindNotFound, Status: http.StatusNotFound}
	ErrConflict           = &APIError{Kind: KindConflict, Status: http.StatusConflict}
	ErrTooManyRequests    = &APIError{Kind: KindTooManyRequests, Status: http.StatusTooManyRequests}
	ErrInternal           = &APIError{Kind: KindInternal, Status: http.StatusInternalServerError}
)

func NewErrValidation(message string, fields map[string]string) *APIError {
	return &APIError{Kind: KindValidation, Status: http.StatusBadRequest, Message: message, Fields: fields}
}

func NewErrInvalidCredentials() *APIError {
	return &APIError{Kind: KindInvalidCredentials, Status: http.StatusUnauthorized, Message: "invalid email or password"}
}

func NewErrAccountSuspended() *APIError {
	return &APIError{Kind: KindAccountSuspended, Status: http.StatusForbidden, Message: "account is not active"}
}

func NewErrInvalidToken(cause error) *APIError {
	return &APIError{Kind: KindInvalidToken, Status: http.StatusUnauthorized, Message: "invalid refresh token", Err: cause}
}

func NewErrTokenReuse(cause error) *APIError {
	return &APIError{Kind: KindTokenReuse, Status: http.StatusUnauthorized, Message: "invalid refresh token", Err: cause}
}

func NewErrUnauthorized(cause error) *APIError {
	return &APIError{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: "unauthorized", Err: cause}
}

func NewErrNotFound(resource string) *APIError {
	return &APIError{Kind: KindNotFound, Status: http.StatusNotFound, Message: resource + " not found"}
}

func NewErrConflict(message string) *APIError {
	return &APIError{Kind: KindConflict, Status: http.StatusConflict, Message: message}
}

func NewErrTooManyRequests() *APIError {
	return &APIError{Kind: KindTooManyRequests, Status: http.StatusTooManyRequests, Message: "too many requests"}
}

func NewErrInternal(cause error) *APIError {
	return &APIError{Kind: KindInternal, Status: http.StatusInternalServerError, Message: "internal server error", Err: cause}
}
