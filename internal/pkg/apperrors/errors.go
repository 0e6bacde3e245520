package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrDuplicateKey     = errors.New("duplicate key")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Store errors
	ErrStoreFailure = errors.New("store failure")
)

// Record errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrUserNotFound    = errors.New("user not found")
)

// NewValidationError creates a validation failure carrying the field-level
// message to surface to the caller.
func NewValidationError(message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewDuplicateKeyError creates a duplicate unique key error with an
// "already exists" style message.
func NewDuplicateKeyError(message string) *CustomError {
	return &CustomError{
		Err:     ErrDuplicateKey,
		Message: message,
	}
}

// NewStoreError wraps an unexpected persistence failure with its cause so it
// can be logged while the caller sees a generic message.
func NewStoreError(cause error) *CustomError {
	return &CustomError{
		Err:     ErrStoreFailure,
		Cause:   cause,
		Message: "unexpected store failure",
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Cause   error
	Message string
	Field   string
}

// Error implements the error interface. The cause, when present, is appended
// so logged store failures stay diagnosable.
func (e *CustomError) Error() string {
	switch {
	case e.Message != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "unknown error"
	}
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithField attaches the offending field name
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}
