package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeInvalidToken indicates a credential that could not be decoded.
	ErrCodeInvalidToken ErrorCode = "invalid_token"
	// ErrCodeUnauthorized indicates the upstream declared the credential
	// unacceptable (401/403). The only code that drives navigation.
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found (404).
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeConflict indicates a conflict with existing data (409),
	// e.g. a duplicate application.
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodeValidation indicates invalid input data (400), optionally with
	// field-level messages.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeServerError indicates an upstream 5xx.
	ErrCodeServerError ErrorCode = "server_error"
	// ErrCodeNetworkError indicates no response was received at all.
	ErrCodeNetworkError ErrorCode = "network_error"
)

// AppError represents a structured application error with a code, message,
// and optional cause. It supports error wrapping and unwrapping for use with
// errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Fields maps field names to validation messages (optional, for
	// validation errors with field-level detail)
	Fields map[string]string
	// Status is the upstream HTTP status that produced this error, or 0
	// when the error did not come from an upstream response. It lets a
	// caller distinguish statuses the taxonomy folds together (401 vs 403).
	Status int
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// InvalidToken creates a new InvalidToken error.
func InvalidToken(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidToken, Message: message}
}

// Unauthorized creates a new Unauthorized error.
func Unauthorized(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a new Conflict error.
func Conflict(message string) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// ValidationFields creates a Validation error carrying field-level messages.
func ValidationFields(message string, fields map[string]string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Fields: fields}
}

// ServerError creates a new ServerError error.
func ServerError(message string) *AppError {
	return &AppError{Code: ErrCodeServerError, Message: message}
}

// NetworkError creates a new NetworkError error.
func NetworkError(message string) *AppError {
	return &AppError{Code: ErrCodeNetworkError, Message: message}
}

// WithStatus records the upstream HTTP status on the error and returns it.
func (e *AppError) WithStatus(status int) *AppError {
	e.Status = status
	return e
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsInvalidToken checks if an error is an InvalidToken error.
func IsInvalidToken(err error) bool {
	return isCode(err, ErrCodeInvalidToken)
}

// IsUnauthorized checks if an error is an Unauthorized error.
func IsUnauthorized(err error) bool {
	return isCode(err, ErrCodeUnauthorized)
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsConflict checks if an error is a Conflict error.
func IsConflict(err error) bool {
	return isCode(err, ErrCodeConflict)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsServerError checks if an error is a ServerError error.
func IsServerError(err error) bool {
	return isCode(err, ErrCodeServerError)
}

// IsNetworkError checks if an error is a NetworkError error.
func IsNetworkError(err error) bool {
	return isCode(err, ErrCodeNetworkError)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetStatus returns the upstream HTTP status recorded on an error, or 0.
func GetStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return 0
}

// GetFields returns the field-level messages from an error, or nil.
func GetFields(err error) map[string]string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
