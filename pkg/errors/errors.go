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

	// Environment errors
	ErrNixUnavailable ErrorCode = "NIX_UNAVAILABLE"
	ErrConfigDump     ErrorCode = "CONFIG_DUMP"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrVersionParse   ErrorCode = "VERSION_PARSE"
	ErrInstallFailed  ErrorCode = "INSTALL_FAILED"

	// Requirements errors
	ErrRequirementsLoad  ErrorCode = "REQUIREMENTS_LOAD"
	ErrRequirementsParse ErrorCode = "REQUIREMENTS_PARSE"

	// FileSystem errors
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileCreate    ErrorCode = "FILE_CREATE"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrBackupCreate  ErrorCode = "BACKUP_CREATE"
	ErrRestoreFailed ErrorCode = "RESTORE_FAILED"
)

// PreflightError represents a structured error with code and details
type PreflightError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PreflightError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PreflightError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PreflightError) Is(target error) bool {
	var targetErr *PreflightError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PreflightError with the given code and message
func New(code ErrorCode, message string) *PreflightError {
	return &PreflightError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PreflightError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PreflightError {
	return &PreflightError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PreflightError
func Wrap(err error, code ErrorCode, message string) *PreflightError {
	if err == nil {
		return nil
	}
	return &PreflightError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PreflightError {
	if err == nil {
		return nil
	}
	return &PreflightError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PreflightError) WithDetail(key string, value interface{}) *PreflightError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pfErr *PreflightError
	if errors.As(err, &pfErr) {
		return pfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PreflightError
func GetErrorCode(err error) ErrorCode {
	var pfErr *PreflightError
	if errors.As(err, &pfErr) {
		return pfErr.Code
	}
	return ErrUnknown
}
