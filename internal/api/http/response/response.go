// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/catalog-server/internal/apperror"
	"github.com/dtroode/catalog-server/internal/model"
)

// Envelope is the body of every response.
type Envelope struct {
	Code    int               `json:"code"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Total   *int              `json:"total,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// JSON writes env with the given status.
func JSON(w http.ResponseWriter, status int, env Envelope) {
	env.Code = status
	env.Success = status < http.StatusBadRequest
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// OK writes a successful response carrying data.
func OK(w http.ResponseWriter, status int, message string, data any) {
	JSON(w, status, Envelope{Message: message, Data: data})
}

// List writes a successful response carrying items and their count.
func List(w http.ResponseWriter, message string, data any, total int) {
	JSON(w, http.StatusOK, Envelope{Message: message, Data: data, Total: &total})
}

// Unauthorized writes the generic 401 body.
func Unauthorized(w http.ResponseWriter) {
	JSON(w, http.StatusUnauthorized, Envelope{Message: "unauthorized"})
}

// Error maps err to a status and writes it. Unknown errors become a
// sanitized 500; detail adds the raw error text to it.
func Error(w http.ResponseWriter, err error, detail bool) int {
	var apiErr *apperror.APIError
	switch {
	case errors.As(err, &apiErr):
		JSON(w, apiErr.Status, Envelope{Message: apiErr.Message, Errors: apiErr.Fields})
		return apiErr.Status
	case errors.Is(err, model.ErrNotFound):
		JSON(w, http.StatusNotFound, Envelope{Message: "resource not found"})
		return http.StatusNotFound
	case errors.Is(err, model.ErrAlreadyExists):
		JSON(w, http.StatusConflict, Envelope{Message: "resource already exists"})
		return http.StatusConflict
	default:
		env := Envelope{Message: "internal server error"}
		if detail && err != nil {
			env.Error = err.Error()
		}
		JSON(w, http.StatusInternalServerError, env)
		return http.StatusInternalServerError
	}
}
