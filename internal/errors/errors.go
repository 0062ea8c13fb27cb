// Package errors provides the application error taxonomy for WealthWise.
// Service and store errors are AppErrors so that the HTTP layer can render a
// consistent response without leaking internal details to clients.
package errors

import (
	"errors"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so that
// errors.Is(err, ErrValidation) matches any validation failure.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validation returns a ValidationError carrying the given message.
func Validation(message string) *AppError {
	return WithMessage(ErrValidation, message)
}

// Storage returns a StorageError wrapping the failure reported by the medium.
func Storage(internal error) *AppError {
	return Wrap(ErrStorage, internal)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsStorage reports whether err is a StorageError.
func IsStorage(err error) bool { return errors.Is(err, ErrStorage) }

// Input and persistence errors.
var (
	ErrValidation = &AppError{Code: "VALIDATION_ERROR", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrStorage    = &AppError{Code: "STORAGE_ERROR", Message: "The record could not be stored or read", StatusCode: http.StatusInternalServerError}
)

// General errors.
var (
	ErrUnknownOwner   = &AppError{Code: "UNKNOWN_OWNER", Message: "Owner could not be resolved", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)
