package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrDuplicateValue   = errors.New("duplicate value")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Store errors
	ErrStoreFailure = errors.New("store failure")
)

// Entity errors
var (
	ErrUserNotFound    = NewResourceNotFoundError("user not found")
	ErrStudentNotFound = NewResourceNotFoundError("student not found")
	ErrAcademyNotFound = NewResourceNotFoundError("academy not found")
	ErrCourseNotFound  = NewResourceNotFoundError("Course not found")
	ErrEnrollNotFound  = NewResourceNotFoundError("enroll not found")

	ErrEmailAlreadyExists       = NewDuplicateValueError("already email exists")
	ErrDNIAlreadyExists         = NewDuplicateValueError("already dni exists")
	ErrAcademyNameAlreadyExists = NewDuplicateValueError("already name exists")

	ErrAcademyHasCourses = NewConflictError("cannot delete academy with courses")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
		Code:    "NotFound",
	}
}

// NewDuplicateValueError creates a new custom error for a violated uniqueness rule
func NewDuplicateValueError(message string) error {
	return &CustomError{
		Err:     ErrDuplicateValue,
		Message: message,
		Code:    "DuplicateValue",
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
		Code:    "Conflict",
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
		Code:    "BadRequest",
	}
}

// NewStoreError creates the 500 error for a store failure no rule classifies
func NewStoreError() *CustomError {
	return &CustomError{
		Err:     ErrStoreFailure,
		Message: "unhandled store error",
		Code:    "StoreFailure",
	}
}

// Is returns whether target matches any of the errors in errList
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
	Code    string
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

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
