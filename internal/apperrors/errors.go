// Package apperrors defines the error taxonomy shared by services and
// handlers. Services return these typed errors; handlers map them to HTTP
// status codes with errors.As. Anything else is treated as an internal error.
package apperrors

import "fmt"

// ValidationError reports one or more invalid request fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

// NewValidationError creates a ValidationError with the given field messages.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// AuthError reports a failed authentication: bad credentials or a missing,
// malformed or expired token. The message never distinguishes an unknown
// email from a wrong password.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// NewAuthError creates an AuthError with the given message.
func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

// ConflictError reports a uniqueness violation, e.g. an already registered
// email.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflictError creates a ConflictError with the given message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// NotFoundError reports that a resource does not exist. It is deliberately
// also returned when the resource exists but belongs to another owner, so a
// caller cannot probe for other users' data.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// NewNotFoundError creates a NotFoundError for the named resource.
func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}
