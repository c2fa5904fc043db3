// internal/core/errors.go
package core

import "fmt"

// Error represents a structured error with code and optional cause.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is matching by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WrapError creates a new error with the same code but with a cause.
func WrapError(base *Error, cause error) *Error {
	return &Error{
		Code:    base.Code,
		Message: base.Message,
		Cause:   cause,
	}
}

// Predefined errors
var (
	// Config errors
	ErrConfigUnreadable    = &Error{Code: "CONFIG_UNREADABLE", Message: "configuration file unreadable"}
	ErrConfigInvalidFormat = &Error{Code: "CONFIG_INVALID_FORMAT", Message: "configuration file has invalid format"}
	ErrConfigInvalid       = &Error{Code: "CONFIG_INVALID", Message: "configuration invalid"}

	// Command errors
	ErrMissingArgument = &Error{Code: "MISSING_ARGUMENT", Message: "required argument missing"}
	ErrInvalidQuantity = &Error{Code: "INVALID_QUANTITY", Message: "invalid quantity"}
	ErrInvalidSymbol   = &Error{Code: "INVALID_SYMBOL", Message: "invalid symbol"}
)
