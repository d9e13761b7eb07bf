// Package errors provides structured error types for the Pokedex service.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The codes map one-to-one onto the outcomes of a species lookup:
//   - NOT_FOUND: the species upstream has no entry for the requested name
//   - UPSTREAM_ERROR: the species upstream answered with another non-2xx status
//   - NETWORK_ERROR: the species upstream could not be reached at all
//   - INVALID_SPECIES: the upstream record has no usable name
//   - CANCELLED: the caller cancelled the request or its deadline passed
//   - INVALID_INPUT: the requested name was rejected before any upstream call
//
// Translation failures never surface as errors; they degrade to the
// untranslated description inside the pokedex package.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid species name: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "failed to fetch %s", url)
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidSpecies Code = "INVALID_SPECIES"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Upstream errors
	ErrCodeUpstream Code = "UPSTREAM_ERROR"
	ErrCodeNetwork  Code = "NETWORK_ERROR"

	// Cancellation
	ErrCodeCancelled Code = "CANCELLED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Status  int    // Upstream HTTP status, 0 when not applicable
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithStatus records the upstream HTTP status on e and returns it.
func (e *Error) WithStatus(status int) *Error {
	e.Status = status
	return e
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Cancelled wraps a context error as ErrCodeCancelled.
// The context error stays in the chain, so errors.Is(err, context.Canceled)
// and errors.Is(err, context.DeadlineExceeded) keep working.
func Cancelled(cause error, format string, args ...any) *Error {
	return Wrap(ErrCodeCancelled, cause, format, args...)
}

// IsContextError reports whether err is (or wraps) context.Canceled or
// context.DeadlineExceeded.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetStatus extracts the upstream HTTP status from an error, if available.
// Returns 0 if the error is not an *Error or carries no status.
func GetStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
