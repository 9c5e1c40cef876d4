// Package taxerr defines the error kinds returned by tax calculation.
package taxerr

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a tax calculation failure
type Kind int

const (
	// Input means caller supplied data failed validation. The message is safe to show to end users.
	Input Kind = iota + 1
	// Configuration means the provider rejected the configured credentials.
	Configuration
	// Internal covers transport, encoding and unexpected provider failures.
	Internal
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "input"
	case Configuration:
		return "configuration"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by the tax calculator and services
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// Cause satisfies github.com/pkg/errors causer
func (e *Error) Cause() error {
	return e.Err
}

// NewInputError creates an Input error
func NewInputError(format string, args ...interface{}) *Error {
	return &Error{Kind: Input, Message: fmt.Sprintf(format, args...)}
}

// NewConfigurationError creates a Configuration error
func NewConfigurationError(message string) *Error {
	return &Error{Kind: Configuration, Message: message}
}

// NewInternalError creates an Internal error without a cause
func NewInternalError(format string, args ...interface{}) *Error {
	return &Error{Kind: Internal, Message: fmt.Sprintf(format, args...)}
}

// WrapInternal creates an Internal error carrying err as its cause
func WrapInternal(err error, message string) *Error {
	return &Error{Kind: Internal, Message: message, Err: err}
}

// KindOf returns the Kind of err, or 0 when err is not a *Error
func KindOf(err error) Kind {
	var taxErr *Error
	if stderrors.As(err, &taxErr) {
		return taxErr.Kind
	}
	return 0
}

// IsInput reports whether err is an Input error
func IsInput(err error) bool { return KindOf(err) == Input }

// IsConfiguration reports whether err is a Configuration error
func IsConfiguration(err error) bool { return KindOf(err) == Configuration }

// IsInternal reports whether err is an Internal error
func IsInternal(err error) bool { return KindOf(err) == Internal }
