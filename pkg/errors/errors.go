// Package errors provides structured error types for chartlayout.
//
// Every failure the library can produce is deterministic given the same
// inputs, so there are no retryable categories: the codes exist to let
// callers distinguish a font problem from a drawing-backend problem from
// their own geometry misconfiguration.
//
//	err := errors.New(errors.ErrCodeGeometry, "main area %dx%d too small", w, h)
//	if errors.Is(err, errors.ErrCodeGeometry) {
//	    // caller misconfiguration, not a backend failure
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure categories of the layout pipeline.
const (
	// Font resolution and metrics errors
	ErrCodeFontNotFound Code = "FONT_NOT_FOUND"
	ErrCodeFontParse    Code = "FONT_PARSE"
	ErrCodeFontMetrics  Code = "FONT_METRICS"

	// Drawing backend errors
	ErrCodeRender Code = "RENDER_ERROR"
	ErrCodeEncode Code = "ENCODE_ERROR"

	// Caller configuration errors
	ErrCodeGeometry      Code = "GEOMETRY_ERROR"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
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

// Is reports whether err carries the given error code.
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
