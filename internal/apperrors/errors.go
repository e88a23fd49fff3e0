package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an application error carrying the HTTP status it maps to.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return e.Message
}

// ReferenceNotFoundError is raised when a request references a
// Status/Label/User that does not exist. Kind and Key identify the
// failed lookup for the error message.
type ReferenceNotFoundError struct {
	Kind string
	Key  string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

var (
	ErrAuthenticationRequired = &Error{
		Message:    "authentication required",
		StatusCode: http.StatusUnauthorized,
	}

	ErrInvalidCredentials = &Error{
		Message:    "invalid email or password",
		StatusCode: http.StatusUnauthorized,
	}

	ErrForbidden = &Error{
		Message:    "operation not permitted",
		StatusCode: http.StatusForbidden,
	}
)

func NewValidation(format string, args ...any) error {
	return &Error{
		Message:    fmt.Sprintf(format, args...),
		StatusCode: http.StatusBadRequest,
	}
}

func NewEntityNotFound(entity string, id uint) error {
	return &Error{
		Message:    fmt.Sprintf("%s with id %d not found", entity, id),
		StatusCode: http.StatusNotFound,
	}
}

func NewReferenceNotFound(kind, key string) error {
	return &ReferenceNotFoundError{Kind: kind, Key: key}
}

// StatusCode maps an error to its HTTP status. Unknown errors are 500.
func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	var refErr *ReferenceNotFoundError
	if errors.As(err, &refErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err maps to a 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
