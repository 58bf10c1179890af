package apperrors

import (
	"errors"
	"net/http"
)

// AppError is the error type carried between the service layer and the HTTP
// handlers. The Code drives the HTTP status mapping; Origin keeps the
// underlying cause for logs.
type AppError struct {
	Code    string
	Message string
	Origin  error
}

func (e *AppError) Error() string {
	if e.Origin != nil {
		return e.Message + ": " + e.Origin.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Origin
}

// Standard error codes for the application
const (
	ErrNotFound     = "NOT_FOUND"
	ErrDuplicate    = "DUPLICATE"
	ErrInvalidInput = "INVALID_INPUT"
	ErrUnauthorized = "UNAUTHORIZED"
	ErrForbidden    = "FORBIDDEN" // Caller is authenticated but does not own the resource
	ErrDatabase     = "DATABASE_ERROR"
)

// New creates an AppError with an explicit code, message and optional cause.
func New(code string, message string, origin error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Origin:  origin,
	}
}

// NewNotFound reports a missing or dangling reference.
func NewNotFound(what string) *AppError {
	return &AppError{Code: ErrNotFound, Message: what + " not found"}
}

// NewInvalidInput reports a validation failure the caller can correct.
func NewInvalidInput(reason string) *AppError {
	return &AppError{Code: ErrInvalidInput, Message: reason}
}

// NewForbidden reports an authorization failure.
func NewForbidden(reason string) *AppError {
	return &AppError{Code: ErrForbidden, Message: reason}
}

// NewDatabase wraps an unexpected storage failure.
func NewDatabase(origin error) *AppError {
	return &AppError{Code: ErrDatabase, Message: "database error", Origin: origin}
}

// IsCode reports whether err is an AppError with the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// HTTPStatus converts an error to the HTTP status code handlers should return.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrInvalidInput:
		return http.StatusBadRequest
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrDuplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
