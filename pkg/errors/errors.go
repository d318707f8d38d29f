package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of application errors
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeNoMatch     ErrorType = "no_match"
	ErrorTypeExternal    ErrorType = "external"
	ErrorTypePersistence ErrorType = "persistence"
	ErrorTypeCorrupt     ErrorType = "corrupt"
)

// AppError represents a structured application error
type AppError struct {
	Type     ErrorType `json:"type"`
	Message  string    `json:"message"`
	Internal error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Internal.Error())
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Internal
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewNoMatchError creates the error reported when the lookup finds no
// activity satisfying the current filters. An expected outcome, not a fault.
func NewNoMatchError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNoMatch,
		Message: message,
	}
}

// NewExternalError creates a new external service error
func NewExternalError(message string, internal error) *AppError {
	return &AppError{
		Type:     ErrorTypeExternal,
		Message:  message,
		Internal: internal,
	}
}

// NewPersistenceError creates an error for a failed activity list write
func NewPersistenceError(message string, internal error) *AppError {
	return &AppError{
		Type:     ErrorTypePersistence,
		Message:  message,
		Internal: internal,
	}
}

// NewCorruptError creates an error for an unreadable persisted document
func NewCorruptError(message string, internal error) *AppError {
	return &AppError{
		Type:     ErrorTypeCorrupt,
		Message:  message,
		Internal: internal,
	}
}

// TypeOf returns the ErrorType of err, or the empty string when err is not
// an AppError.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// IsNoMatch reports whether err is a no-match outcome
func IsNoMatch(err error) bool {
	return TypeOf(err) == ErrorTypeNoMatch
}

// IsCorrupt reports whether err is a load-time corruption error
func IsCorrupt(err error) bool {
	return TypeOf(err) == ErrorTypeCorrupt
}

// IsPersistence reports whether err is a persistence fault
func IsPersistence(err error) bool {
	return TypeOf(err) == ErrorTypePersistence
}
