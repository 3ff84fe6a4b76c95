package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bburrets/mdf-contract-management/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeConflict         ErrorCode = "conflict"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeUnavailable   ErrorCode = "service_unavailable"
)

// APIError is the body of every error response
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	// Fields maps each offending field to its message on validation failures
	Fields domain.ValidationErrors `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

func newError(code ErrorCode, message string, details []string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewBadRequestError(message string, details ...string) *APIError {
	return newError(ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(ErrCodeNotFound, message, details)
}

// NewValidationError reports field errors
func NewValidationError(fields domain.ValidationErrors) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Fields:  fields,
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newError(ErrCodeUnauthorized, message, details)
}

func NewConflictError(message string, details ...string) *APIError {
	return newError(ErrCodeConflict, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(ErrCodeInternalError, message, details)
}

func NewDatabaseError(message string, details ...string) *APIError {
	return newError(ErrCodeDatabaseError, message, details)
}

func NewUnavailableError(message string, details ...string) *APIError {
	return newError(ErrCodeUnavailable, message, details)
}

// FromError maps a ledger error to its HTTP status and response body.
// Server side failures keep their cause out of the body.
func FromError(err error, message string) (int, *APIError) {
	if verrs, ok := domain.AsValidationErrors(err); ok {
		return http.StatusUnprocessableEntity, NewValidationError(verrs)
	}

	var txErr *domain.TransactionError
	switch {
	case errors.Is(err, domain.ErrActorRequired):
		return http.StatusUnauthorized, NewUnauthorizedError("Actor identity is required")
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, NewNotFoundError(message, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, NewConflictError(message, err.Error())
	case errors.Is(err, domain.ErrResourceExhausted):
		return http.StatusServiceUnavailable, NewUnavailableError("Database is busy, retry later")
	case errors.As(err, &txErr):
		return http.StatusInternalServerError, NewDatabaseError(message)
	default:
		return http.StatusInternalServerError, NewInternalError(message)
	}
}
