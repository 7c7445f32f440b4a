package errors

import (
	"context"
	"errors"
	"fmt"
)

// Error is a structured import error with a code, a user-facing message and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error renders "CODE: message" followed by the cause, if any
func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same code
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithMeta sets a metadata entry and returns e for chaining
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err under message. An *Error anywhere in the chain lends its
// code and a copy of its metadata; anything else becomes Internal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	code := CodeInternal
	var existing *Error
	if errors.As(err, &existing) {
		code = existing.Code
	}
	return wrap(err, code, message)
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and replaces its code. Metadata is still carried.
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return wrap(err, code, message)
}

// FromContext wraps a context error as Canceled. Deadlines count as
// cancellation too: the caller gave up either way.
func FromContext(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return wrap(err, CodeCanceled, message)
}

func wrap(err error, code Code, message string) *Error {
	wrapped := &Error{Code: code, Message: message, Cause: err}

	var existing *Error
	if errors.As(err, &existing) && len(existing.Meta) > 0 {
		wrapped.Meta = make(map[string]interface{}, len(existing.Meta))
		for k, v := range existing.Meta {
			wrapped.Meta[k] = v
		}
	}
	return wrapped
}

// IsContext reports whether err stems from a canceled or expired context
func IsContext(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Constructors, one pair per code

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func FailedPrecondition(message string) *Error { return New(CodeFailedPrecondition, message) }

func FailedPreconditionf(format string, args ...interface{}) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

func Internal(message string) *Error { return New(CodeInternal, message) }

func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}

func Unavailable(message string) *Error { return New(CodeUnavailable, message) }

func Unavailablef(format string, args ...interface{}) *Error {
	return Newf(CodeUnavailable, format, args...)
}
