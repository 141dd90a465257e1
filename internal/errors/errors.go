package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeInternal            = "INTERNAL_ERROR"
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeResourceUnavailable = "RESOURCE_UNAVAILABLE"
	ErrCodeMalformedEntry      = "MALFORMED_ENTRY"
	ErrCodeEmptyList           = "EMPTY_LIST"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "RESOURCE_UNAVAILABLE")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// As finds the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the first AppError in err's chain, or "" when there is none.
func CodeOf(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  http.StatusNotFound,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  http.StatusBadRequest,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewResourceUnavailableError reports that a manifest or word list could not be retrieved.
func NewResourceUnavailableError(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeResourceUnavailable,
		Message: fmt.Sprintf("resource unavailable: %s", resource),
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

// NewMalformedEntryError describes a manifest line or persisted value that was dropped.
func NewMalformedEntryError(what string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeMalformedEntry,
		Message: fmt.Sprintf("malformed entry: %s", what),
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// NewEmptyListError reports a word list with no usable words.
func NewEmptyListError(source string) *AppError {
	return &AppError{
		Code:    ErrCodeEmptyList,
		Message: fmt.Sprintf("no words in %s", source),
		Status:  http.StatusOK,
	}
}
