package internal

import (
	"errors"
	"fmt"
)

// Error codes used as stable discriminants across the storage boundary.
// The route layer maps these to HTTP statuses without string matching.
const (
	CodeInvalidPayload     = "INVALID_PAYLOAD"
	CodeEmailInUse         = "EMAIL_IN_USE"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeStorageIO          = "STORAGE_IO"
)

type AppError struct {
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.cause }

// Is matches any AppError carrying the same code, so sentinel values
// below work with errors.Is regardless of message or cause.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

func NewAppError(code string, status int, msg string) *AppError {
	return &AppError{Code: code, Status: status, Message: msg}
}

// Sentinels for the repository-level invariant violations.
var (
	ErrInvalidPayload     = NewAppError(CodeInvalidPayload, 400, "name, email and password are required")
	ErrEmailInUse         = NewAppError(CodeEmailInUse, 409, "email address already in use")
	ErrInvalidCredentials = NewAppError(CodeInvalidCredentials, 401, "invalid credentials")
)

// StorageError wraps a file read/write failure. Fatal for the operation
// that hit it, never retried.
func StorageError(op string, cause error) *AppError {
	return &AppError{Code: CodeStorageIO, Status: 500, Message: "storage: " + op + " failed", cause: cause}
}

// CodeOf extracts the discriminant from any error, walking wrapped
// chains; empty string when the error is not an AppError.
func CodeOf(err error) string {
	var app *AppError
	if errors.As(err, &app) {
		return app.Code
	}
	return ""
}
