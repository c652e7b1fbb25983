// Package errors defines the application error type carrying an HTTP status
// and a user-facing message separate from the internal cause.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an application error with an HTTP status and context.
type AppError struct {
	Code    int    `json:"status_code"` // HTTP status code
	Message string `json:"message"`     // message shown to the user
	Err     error  `json:"-"`           // internal cause, logs only
	Context string `json:"-"`           // extra context (function, parameters)
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code of the error.
func (e *AppError) StatusCode() int {
	return e.Code
}

// UserMessage returns the message shown to the user.
func (e *AppError) UserMessage() string {
	return e.Message
}

// GetContext returns the error context.
func (e *AppError) GetContext() string {
	return e.Context
}

// WithContext attaches context to the error.
func (e *AppError) WithContext(context string) *AppError {
	e.Context = context
	return e
}

// NewValidationError creates a 400 Bad Request error.
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}

// NewUnprocessableError creates a 422 Unprocessable Entity error. Used when
// an upload is a well-formed workbook whose contents cannot be processed.
func NewUnprocessableError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Err:     err,
	}
}

// NewRequestTooLargeError creates a 413 Request Entity Too Large error.
func NewRequestTooLargeError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusRequestEntityTooLarge,
		Message: message,
		Err:     err,
	}
}

// NewInternalError creates a 500 Internal Server Error. The user gets a
// generic message; the details stay in the logs.
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Terjadi kesalahan internal",
		Err:     errors.Join(errors.New(message), err),
	}
}

// WrapError wraps an existing error with a message. An AppError keeps its
// status code, anything else becomes an internal error.
func WrapError(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Err:     appErr.Err,
			Context: appErr.Context,
		}
	}

	return NewInternalError(message, err)
}
