package apperr

import (
	"errors"
	"net/http"
)

// ValidationError is a missing or malformed request field, detected before
// any database work starts.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthorizationError is a denied identity.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// ConnectionError wraps a driver failure at connect time.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "error al conectar a la base de datos: " + e.Err.Error()
}
func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError wraps a driver failure at execute or scan time.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string { return e.Err.Error() }
func (e *QueryError) Unwrap() error { return e.Err }

func Validation(message string) error {
	return &ValidationError{Message: message}
}

func Authorization(message string) error {
	return &AuthorizationError{Message: message}
}

// Status maps an error to its HTTP status code. Unknown errors resolve to 500,
// same as any other database-facing failure.
func Status(err error) int {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}
	var authorization *AuthorizationError
	if errors.As(err, &authorization) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
