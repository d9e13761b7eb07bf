package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeNetwork, cause, "failed to fetch")

	if err.Code != ErrCodeNetwork {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNetwork)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "NETWORK_ERROR: failed to fetch: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWithStatus(t *testing.T) {
	err := New(ErrCodeUpstream, "species upstream failed").WithStatus(503)

	if err.Status != 503 {
		t.Errorf("Status = %d, want 503", err.Status)
	}
	if got := GetStatus(fmt.Errorf("lookup: %w", err)); got != 503 {
		t.Errorf("GetStatus() through wrap = %d, want 503", got)
	}
	if got := GetStatus(errors.New("plain")); got != 0 {
		t.Errorf("GetStatus(plain) = %d, want 0", got)
	}
}

func TestCancelled(t *testing.T) {
	tests := []struct {
		name  string
		cause error
	}{
		{"canceled", context.Canceled},
		{"deadline", context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Cancelled(tt.cause, "fetch %s", "pikachu")
			if !Is(err, ErrCodeCancelled) {
				t.Errorf("Is(err, ErrCodeCancelled) = false, want true")
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("errors.Is(err, %v) = false, want true", tt.cause)
			}
			if !IsContextError(err) {
				t.Error("IsContextError() = false, want true")
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	if IsContextError(errors.New("boom")) {
		t.Error("IsContextError(plain) = true, want false")
	}
	if IsContextError(nil) {
		t.Error("IsContextError(nil) = true, want false")
	}
	if !IsContextError(fmt.Errorf("wrapped: %w", context.Canceled)) {
		t.Error("IsContextError(wrapped canceled) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeNotFound, "test"),
			code:     ErrCodeNotFound,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeNotFound, "test"),
			code:     ErrCodeUpstream,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeNetwork, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeNetwork,
			expected: true,
		},
		{
			name:     "fmt wrapped error",
			err:      fmt.Errorf("lookup: %w", New(ErrCodeInvalidSpecies, "blank name")),
			code:     ErrCodeInvalidSpecies,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidSpecies, "test"),
			expected: ErrCodeInvalidSpecies,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
