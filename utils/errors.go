package utils

import (
	"errors"
	"net/http"
)

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Error kinds. Every failure surfaced to a caller wraps exactly one of these.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
)

// AppError carries a kind, a human-readable message and an optional cause.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func NewError(kind error, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func WrapError(kind error, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func Unauthenticated(message string) *AppError { return NewError(ErrUnauthenticated, message) }
func Forbidden(message string) *AppError       { return NewError(ErrForbidden, message) }
func NotFound(message string) *AppError        { return NewError(ErrNotFound, message) }
func Conflict(message string) *AppError        { return NewError(ErrConflict, message) }
func Validation(message string) *AppError      { return NewError(ErrValidation, message) }

// HTTPStatus maps an error to its stable status code. Conflicts answer 400
// to stay compatible with existing clients.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrStorageDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the response body for err. Internal failures never
// leak their cause to the caller.
func NewErrorResponse(err error) ErrorResponse {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse{Message: appErr.Message, Error: appErr.Kind.Error()}
	}
	if errors.Is(err, ErrStorageDisabled) {
		return ErrorResponse{Message: "Photo uploads are not available", Error: ErrStorageDisabled.Error()}
	}
	return ErrorResponse{Message: "Internal server error", Error: "internal"}
}
