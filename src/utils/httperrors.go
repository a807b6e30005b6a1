package utils

import (
	"fmt"
	"net/http"
)

// HTTPError defines a custom error structure that includes an HTTP status code and message
type HTTPError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError instance with a custom status code and message
func NewHTTPError(code int, message string) error {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// BadRequest creates a 400 Bad Request error
func BadRequest(message string) error {
	return NewHTTPError(http.StatusBadRequest, message)
}

// Unauthorized creates a 401 Unauthorized error
func Unauthorized(message string) error {
	return NewHTTPError(http.StatusUnauthorized, message)
}

// Forbidden creates a 403 Forbidden error
func Forbidden(message string) error {
	return NewHTTPError(http.StatusForbidden, message)
}

// NotFound creates a 404 Not Found error
func NotFound(message string) error {
	return NewHTTPError(http.StatusNotFound, message)
}

// Conflict creates a 409 Conflict error
func Conflict(message string) error {
	return NewHTTPError(http.StatusConflict, message)
}

// InternalServerError creates a 500 Internal Server Error
func InternalServerError(message string) error {
	return NewHTTPError(http.StatusInternalServerError, message)
}

// WriteError is a helper function to send the error response as JSON
func WriteError(w http.ResponseWriter, err error) {
	httpErr, ok := err.(*HTTPError)
	if !ok {
		httpErr = &HTTPError{
			Code:    http.StatusInternalServerError,
			Message: "Internal Server Error",
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Code)
	fmt.Fprintf(w, `{"error": "%s"}`, httpErr.Message)
}
