package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category independently of its message
type ErrorCode string

const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Task file errors
	ErrTaskfileRead  ErrorCode = "TASKFILE_READ"
	ErrTaskfileParse ErrorCode = "TASKFILE_PARSE"

	// Directive errors
	ErrDirectiveUnsupported ErrorCode = "DIRECTIVE_UNSUPPORTED"
	ErrDirectiveUnknown     ErrorCode = "DIRECTIVE_UNKNOWN"
	ErrSpecMalformed        ErrorCode = "SPEC_MALFORMED"

	// Process errors
	ErrCommandSpawn   ErrorCode = "COMMAND_SPAWN"
	ErrCommandAborted ErrorCode = "COMMAND_ABORTED"
)

// DotaptError is a structured error carrying a stable code and optional details
type DotaptError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotaptError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotaptError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a DotaptError with the same code
func (e *DotaptError) Is(target error) bool {
	var targetErr *DotaptError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotaptError with the given code and message
func New(code ErrorCode, message string) *DotaptError {
	return &DotaptError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotaptError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotaptError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *DotaptError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps err with a code and formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotaptError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *DotaptError) WithDetail(key string, value interface{}) *DotaptError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dotaptErr *DotaptError
	if errors.As(err, &dotaptErr) {
		return dotaptErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotaptError
func GetErrorCode(err error) ErrorCode {
	var dotaptErr *DotaptError
	if errors.As(err, &dotaptErr) {
		return dotaptErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotaptError
func GetErrorDetails(err error) map[string]interface{} {
	var dotaptErr *DotaptError
	if errors.As(err, &dotaptErr) {
		return dotaptErr.Details
	}
	return nil
}
