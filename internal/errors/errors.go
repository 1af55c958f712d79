// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeData indicates a malformed or missing source row, or a product
	// with no capable supplier. The offending row or product is excluded
	// and the run continues.
	TypeData Type = "DATA_ERROR"

	// TypeNormalization indicates a raw token that could not be parsed.
	// Always recovered to Unknown, never fatal.
	TypeNormalization Type = "NORMALIZATION_ERROR"

	// TypeLookup indicates a candidate referencing a product id absent
	// from a supplier's catalog. Fatal to that single evaluation only.
	TypeLookup Type = "LOOKUP_ERROR"

	// TypeResource indicates a temporary-storage read or write failure.
	TypeResource Type = "RESOURCE_ERROR"

	// TypeInterrupted indicates external cancellation or deadline expiry.
	// Not a failure outcome; triggers orderly shutdown and cleanup.
	TypeInterrupted Type = "INTERRUPTED"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Data creates a data error for a source row or product
func Data(message string) *Error {
	return New(TypeData, message)
}

// Normalization creates a recoverable normalization error
func Normalization(token string, cause error) *Error {
	return Wrapf(TypeNormalization, cause, "unparsable token %q", token)
}

// Lookup creates a lookup error for a missing product id
func Lookup(supplier, productID string) *Error {
	return Newf(TypeLookup, "product %s not in catalog of supplier %s", productID, supplier)
}

// Resource creates a temporary-storage error
func Resource(message string, cause error) *Error {
	return Wrap(TypeResource, message, cause)
}

// Interrupted creates an interruption error
func Interrupted(cause error) *Error {
	return Wrap(TypeInterrupted, "search interrupted", cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
