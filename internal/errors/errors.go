package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailAlreadyRegistered is returned when registering an email that already exists.
	ErrEmailAlreadyRegistered = errors.New("Email already registered")
	// ErrInvalidCredentials is returned when the email is unknown or the password does not match.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrTaskNotFound is returned when a task is absent or owned by someone else.
	ErrTaskNotFound = errors.New("Task not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Detail: e.Message,
		Code:   e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are matched too.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailAlreadyRegistered):
		return NewHTTPError(http.StatusBadRequest, ErrEmailAlreadyRegistered.Error(), "EMAIL_ALREADY_REGISTERED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrTaskNotFound):
		return NewHTTPError(http.StatusNotFound, ErrTaskNotFound.Error(), "TASK_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error", "INTERNAL_ERROR")
	}
}
