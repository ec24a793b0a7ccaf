package types

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unified error code across the engine.
type ErrorCode string

const (
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG"
	ErrAgentNotFound ErrorCode = "AGENT_NOT_FOUND"
	ErrTimeout       ErrorCode = "TIMEOUT"
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
)

// Error represents a structured error with code, message, and cause.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) ErrorCode {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return ""
}

// IsTimeoutText reports whether a recorded per-agent error string
// identifies a timeout. The status state machine treats timeouts
// differently from generic failures, and the classification is text-based
// because agent errors are carried as human-readable strings.
func IsTimeoutText(errText string) bool {
	return strings.Contains(strings.ToLower(errText), "timeout")
}
