package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category. The category decides how a
// boundary adapter reports the error; Code identifies the concrete failure.

type ErrorType int

// Domain/Business Logic Errors
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeAuthorization

	// Infrastructure Errors
	ErrorTypeDatabase
	ErrorTypeExternalAPI

	// System/Configuration Errors
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeAuthorization:
		return "AUTHORIZATION_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across adapters
const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	AuthorizationError = ErrorTypeAuthorization
	DatabaseError      = ErrorTypeDatabase
	ExternalAPIError   = ErrorTypeExternalAPI
	ConfigurationError = ErrorTypeConfiguration
)

// AppError is the typed failure returned across package boundaries.
// Code is a stable machine-readable identifier; Message is safe to show to
// end users. Cause is kept for logs only.
type AppError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	prefix := e.Type.String()
	if e.Code != "" {
		prefix = fmt.Sprintf("%s[%s]", prefix, e.Code)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewCoded creates an error with a stable code and no cause.
func NewCoded(errorType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Code:    code,
		Message: message,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewAuthorizationError(code, message string) *AppError {
	return NewCoded(AuthorizationError, code, message)
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// As returns the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the stable code of err, or "" when err carries none.
func CodeOf(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return ""
}

func isType(err error, errorType ErrorType) bool {
	appErr, ok := As(err)
	return ok && appErr.Type == errorType
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return isType(err, NotFoundError)
}

func IsValidationError(err error) bool {
	return isType(err, ValidationError)
}

func IsAuthorizationError(err error) bool {
	return isType(err, AuthorizationError)
}

func IsDatabaseError(err error) bool {
	return isType(err, DatabaseError)
}

func IsExternalAPIError(err error) bool {
	return isType(err, ExternalAPIError)
}

func IsConfigurationError(err error) bool {
	return isType(err, ConfigurationError)
}
