// Package errors defines the coded error type used by the generator pipeline.
// Plugin hooks never fail; these errors come from configuration loading,
// introspection, rendering and file output.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode represents the type of error that occurred
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota
	ConfigurationErrorCode
	ValidationErrorCode
	PluginErrorCode
	IntrospectionErrorCode
	GenerationErrorCode
	TemplateErrorCode
	FileSystemErrorCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ConfigurationErrorCode:
		return "ConfigurationError"
	case ValidationErrorCode:
		return "ValidationError"
	case PluginErrorCode:
		return "PluginError"
	case IntrospectionErrorCode:
		return "IntrospectionError"
	case GenerationErrorCode:
		return "GenerationError"
	case TemplateErrorCode:
		return "TemplateError"
	case FileSystemErrorCode:
		return "FileSystemError"
	default:
		return "UnknownError"
	}
}

// BaseError carries a code, a message, an optional cause, context data and
// suggestions for the operator
type BaseError struct {
	Code        ErrorCode              // type of error
	Message     string                 // error message
	Cause       error                  // underlying error cause
	ContextData map[string]interface{} // additional context information
	Hints       []string               // helpful suggestions for fixing the error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

// ErrorCode returns the error code
func (e *BaseError) ErrorCode() ErrorCode {
	return e.Code
}

// Context returns the error context data
func (e *BaseError) Context() map[string]interface{} {
	if e.ContextData == nil {
		return make(map[string]interface{})
	}
	return e.ContextData
}

// ContextKeys returns the context keys in sorted order
func (e *BaseError) ContextKeys() []string {
	keys := make([]string, 0, len(e.ContextData))
	for k := range e.ContextData {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Suggestions returns helpful suggestions for fixing the error
func (e *BaseError) Suggestions() []string {
	return e.Hints
}

// Unwrap returns the underlying error cause for error chain inspection
func (e *BaseError) Unwrap() error {
	return e.Cause
}

// WithCause adds an underlying error cause
func (e *BaseError) WithCause(cause error) *BaseError {
	e.Cause = cause
	return e
}

// WithContext adds context data to the error
func (e *BaseError) WithContext(key string, value interface{}) *BaseError {
	if e.ContextData == nil {
		e.ContextData = make(map[string]interface{})
	}
	e.ContextData[key] = value
	return e
}

// WithSuggestion adds a helpful suggestion for fixing the error
func (e *BaseError) WithSuggestion(suggestion string) *BaseError {
	e.Hints = append(e.Hints, suggestion)
	return e
}

// WithSuggestions adds multiple helpful suggestions
func (e *BaseError) WithSuggestions(suggestions ...string) *BaseError {
	e.Hints = append(e.Hints, suggestions...)
	return e
}

// New creates a new BaseError with the specified code and message
func New(code ErrorCode, message string) *BaseError {
	return &BaseError{
		Code:    code,
		Message: message,
		Hints:   make([]string, 0),
	}
}

// Newf creates a new BaseError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BaseError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates a new error that wraps another error
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	return &BaseError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Hints:   make([]string, 0),
	}
}

// Wrapf creates a new error that wraps another error with formatted message
func Wrapf(code ErrorCode, cause error, format string, args ...interface{}) *BaseError {
	return Wrap(code, fmt.Sprintf(format, args...), cause)
}

// AsBaseError finds the first BaseError in err's chain
func AsBaseError(err error) (*BaseError, bool) {
	var base *BaseError
	if errors.As(err, &base) {
		return base, true
	}
	return nil, false
}

// HasCode reports whether err's chain contains a BaseError with the given code
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if base, ok := err.(*BaseError); ok && base.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// MultipleErrors collects several errors, e.g. one per failing configuration field
type MultipleErrors struct {
	Errors []error
}

// Error implements the error interface
func (e *MultipleErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	messages := make([]string, 0, len(e.Errors))
	for i, err := range e.Errors {
		messages = append(messages, fmt.Sprintf("  %d. %s", i+1, err.Error()))
	}
	return fmt.Sprintf("multiple errors (%d total):\n%s", len(e.Errors), strings.Join(messages, "\n"))
}

// Unwrap exposes every collected error to errors.Is and errors.As
func (e *MultipleErrors) Unwrap() []error {
	return e.Errors
}

// Add adds an error to the collection; nil is ignored
func (e *MultipleErrors) Add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

// ErrorOrNil returns nil for an empty collection and e otherwise
func (e *MultipleErrors) ErrorOrNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}
