package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenMissing       = errors.New("access token required")
	ErrAccountDisabled    = errors.New("invalid or inactive user")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
)

// Faculty errors
var (
	ErrFacultyNotFound     = errors.New("faculty not found")
	ErrFacultyEmailExists  = errors.New("faculty with this official email already exists")
	ErrFacultyHasRelations = errors.New("faculty has associated records and cannot be removed")
)

// Department errors
var (
	ErrDepartmentNotFound          = errors.New("department not found")
	ErrDepartmentAlreadyExists     = errors.New("department with this name or code already exists")
	ErrDepartmentHasActivePrograms = errors.New("department has active programs and cannot be deactivated")
)

// Program errors
var (
	ErrProgramNotFound      = errors.New("program not found")
	ErrProgramAlreadyExists = errors.New("program with this name already exists in the department")
)

// Role errors
var (
	ErrRoleNotAllowed = errors.New("role is not a recognized role name")
)

// Appraisal errors
var (
	ErrAppraisalNotFound    = errors.New("appraisal not found")
	ErrAppraisalNotEditable = errors.New("appraisal is no longer editable")
)

// Survey errors
var (
	ErrSurveyNotFound          = errors.New("survey not found")
	ErrSurveyInvalidTransition = errors.New("survey cannot move to the requested status")
)

// File errors
var (
	ErrFileNotFound = errors.New("file not found")
)

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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
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

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
