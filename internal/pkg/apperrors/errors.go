package apperrors

import "errors"

// Error kinds returned by the service layer
var (
	// ErrReference is returned when a referenced entity (owner, course) does not exist
	ErrReference = errors.New("referenced entity not found")
	// ErrValidation is returned when input has the wrong shape
	ErrValidation = errors.New("validation failed")
	// ErrOperation is returned when the store reports that a write had no effect
	ErrOperation = errors.New("operation failed")
)

// Authentication and authorization errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// NewReferenceError creates a reference error with a message, e.g. "owner not found"
func NewReferenceError(message string) error {
	return &CustomError{
		Err:     ErrReference,
		Message: message,
	}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidation,
		Message: message,
	}
}

// NewFieldValidationError creates a validation error naming the offending field
func NewFieldValidationError(field, message string) error {
	return (&CustomError{
		Err:     ErrValidation,
		Message: message,
	}).WithDetails(map[string]interface{}{"field": field})
}

// NewOperationError creates an operation error with a message, e.g. "update failed"
func NewOperationError(message string) error {
	return &CustomError{
		Err:     ErrOperation,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// DetailsOf returns the context details attached to err, if any
func DetailsOf(err error) map[string]interface{} {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Details
	}
	return nil
}

// Message returns the user-facing message of err when it carries one
func Message(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
