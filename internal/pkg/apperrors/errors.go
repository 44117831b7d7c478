package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameAlreadyUsed = errors.New("username already in use")
)

// Inquiry errors
var (
	ErrInquiryNotFound     = errors.New("inquiry not found")
	ErrMobileAlreadyExists = errors.New("inquiry with this mobile already exists")
)

// Batch errors
var (
	ErrBatchNotFound = errors.New("batch not found")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrInquiryAlreadyAdmitted = errors.New("inquiry already has an enrolled student")
	ErrStudentMobileExists    = errors.New("student with this mobile already exists")
)

// Fee errors
var (
	ErrFeeNotFound = errors.New("fee record not found")
)

// Attendance errors
var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrAttendanceDuplicate = errors.New("attendance already marked for this student and date")
)

// Outreach errors
var (
	ErrOutreachNotFound = errors.New("outreach record not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithField marks the offending field
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}
