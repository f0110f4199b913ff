package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Palette errors
	ErrPaletteLoad    ErrorCode = "PALETTE_LOAD"
	ErrPaletteParse   ErrorCode = "PALETTE_PARSE"
	ErrPaletteInvalid ErrorCode = "PALETTE_INVALID"
	ErrColorInvalid   ErrorCode = "COLOR_INVALID"

	// Output errors
	ErrFormatUnknown ErrorCode = "FORMAT_UNKNOWN"
	ErrRender        ErrorCode = "RENDER"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// TagtintError represents a structured error with code and details
type TagtintError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TagtintError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TagtintError) Unwrap() error {
	return e.Wrapped
}

// Is matches any TagtintError carrying the same code
func (e *TagtintError) Is(target error) bool {
	var targetErr *TagtintError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TagtintError with the given code and message
func New(code ErrorCode, message string) *TagtintError {
	return &TagtintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TagtintError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TagtintError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a TagtintError. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *TagtintError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TagtintError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *TagtintError) WithDetail(key string, value interface{}) *TagtintError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TagtintError) WithDetails(details map[string]interface{}) *TagtintError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tagtintErr *TagtintError
	if errors.As(err, &tagtintErr) {
		return tagtintErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TagtintError
func GetErrorCode(err error) ErrorCode {
	var tagtintErr *TagtintError
	if errors.As(err, &tagtintErr) {
		return tagtintErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TagtintError
func GetErrorDetails(err error) map[string]interface{} {
	var tagtintErr *TagtintError
	if errors.As(err, &tagtintErr) {
		return tagtintErr.Details
	}
	return nil
}
