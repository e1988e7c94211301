package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// InternalError is the concrete error type produced by the fluent builder.
// It carries an optional human hint and structured details alongside the
// wrapped cause and marker.
type InternalError struct {
	cause   error
	marker  error
	hint    string
	details map[string]interface{}
}

func (e *InternalError) Error() string {
	return e.cause.Error()
}

func (e *InternalError) Unwrap() error {
	return e.cause
}

// Is lets errors.Is match both the cause chain and the marker.
func (e *InternalError) Is(target error) bool {
	if e.marker != nil && errors.Is(e.marker, target) {
		return true
	}
	return errors.Is(e.cause, target)
}

// ErrorBuilder builds an InternalError step by step. Terminate the chain
// with Mark to obtain the error value.
type ErrorBuilder struct {
	err *InternalError
}

// NewError starts a builder from a new error message.
func NewError(message string) *ErrorBuilder {
	return &ErrorBuilder{
		err: &InternalError{cause: errors.New(message)},
	}
}

// NewErrorf starts a builder from a formatted error message.
func NewErrorf(format string, args ...interface{}) *ErrorBuilder {
	return &ErrorBuilder{
		err: &InternalError{cause: errors.Newf(format, args...)},
	}
}

// WithError starts a builder wrapping an existing error.
func WithError(err error) *ErrorBuilder {
	if err == nil {
		err = errors.New("unknown error")
	}
	return &ErrorBuilder{
		err: &InternalError{cause: err},
	}
}

// WithHint attaches a human-readable hint for API consumers.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err.hint = hint
	return b
}

// WithHintf attaches a formatted hint.
func (b *ErrorBuilder) WithHintf(format string, args ...interface{}) *ErrorBuilder {
	b.err.hint = fmt.Sprintf(format, args...)
	return b
}

// WithReportableDetails attaches structured details safe to expose to callers.
func (b *ErrorBuilder) WithReportableDetails(details map[string]interface{}) *ErrorBuilder {
	b.err.details = details
	return b
}

// Mark tags the error with one of the package marker errors and returns it.
func (b *ErrorBuilder) Mark(marker error) error {
	b.err.marker = marker
	return b.err
}
