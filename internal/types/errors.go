package types

import (
	"errors"
	"fmt"
)

// ValidationError reports a request that names an unsupported value or is
// missing a required field. The message always includes the offending
// field or value.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError creates a ValidationError with a formatted message
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError reports a lookup for an unknown name, such as a template or
// provider key. The message names the value attempted.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

// NewNotFoundError creates a NotFoundError with a formatted message
func NewNotFoundError(format string, args ...any) *NotFoundError {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// IsNotFoundError reports whether err is (or wraps) a NotFoundError
func IsNotFoundError(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// InternalError wraps an unexpected failure caught at a service boundary.
// Callers receive the generic message; the underlying detail is logged but
// never surfaced.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	return "internal system error"
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

// NewInternalError wraps an unexpected error
func NewInternalError(cause error) *InternalError {
	return &InternalError{Cause: cause}
}

// IsInternalError reports whether err is (or wraps) an InternalError
func IsInternalError(err error) bool {
	var ie *InternalError
	return errors.As(err, &ie)
}
