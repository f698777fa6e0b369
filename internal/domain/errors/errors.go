// Package errors defines the application error taxonomy for the reminder
// engine. Every error carries an HTTP status, a stable business code and a
// user-facing message; transport and backend failures are kept distinct from
// not-found outcomes so resolution strategies can tell them apart.
package errors

import (
	"net/http"

	"fleetdesk/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails derives a copy of the error carrying detailed information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is reports whether target carries the same business code, so copies
// derived through WithDetails still match their sentinel under errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// Predefined error types
var (
	// ErrValidation: the payload was rejected before any network call
	// (missing title, schedule or recipients).
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// ErrNoRecipients: a reminder must always resolve to at least one
	// recipient, manually chosen or derived from the vehicle.
	ErrNoRecipients = NewBaseError(
		http.StatusBadRequest,
		"NO_RECIPIENTS",
		"A reminder needs at least one recipient",
		"",
	)

	// ErrAuthContext: no resolvable caller identity when one is required.
	ErrAuthContext = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_CONTEXT_MISSING",
		"No resolvable caller identity",
		"",
	)

	// ErrCallerProfileMissing: the session is valid but the caller profile
	// could not be found in the directory. Distinct from a missing session.
	ErrCallerProfileMissing = NewBaseError(
		http.StatusUnauthorized,
		"CALLER_PROFILE_MISSING",
		"Caller profile not found",
		"",
	)

	// ErrReminderNotFound: the reference resolved to nothing after
	// exhausting every resolution strategy.
	ErrReminderNotFound = NewBaseError(
		http.StatusNotFound,
		"REMINDER_NOT_FOUND",
		"Reminder not found",
		"",
	)

	ErrVehicleNotFound = NewBaseError(
		http.StatusNotFound,
		"VEHICLE_NOT_FOUND",
		"Vehicle not found",
		"",
	)

	// ErrMethodNotSupported: the backend rejected the operation shape.
	ErrMethodNotSupported = NewBaseError(
		http.StatusMethodNotAllowed,
		"METHOD_NOT_SUPPORTED",
		"The backend does not support this operation",
		"",
	)

	// ErrBackendUnreachable: transport-level failure, e.g. connection
	// refused. Never conflated with not-found.
	ErrBackendUnreachable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNREACHABLE",
		"The content store cannot be reached",
		"",
	)

	// ErrBackend: any other non-2xx backend outcome.
	ErrBackend = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_ERROR",
		"The content store rejected the request",
		"",
	)

	// ErrSubmissionInFlight: at most one in-flight mutation per list view.
	ErrSubmissionInFlight = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_IN_FLIGHT",
		"Another submission is already in progress",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// BackendStatusError represents a non-2xx store response, implementing the
// AppError interface. The message comes from the backend's error payload when
// present, falling back to a generic message keyed by the HTTP status.
type BackendStatusError struct {
	status  int
	message string
	details string
}

// NewBackendStatusError creates a store-response error
func NewBackendStatusError(status int, message, details string) AppError {
	if message == "" {
		message = "Content store error: " + http.StatusText(status)
	}

	return &BackendStatusError{
		status:  status,
		message: message,
		details: details,
	}
}

// Error implements the error interface
func (e *BackendStatusError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BackendStatusError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code
func (e *BackendStatusError) ErrorCode() string {
	return "BACKEND_ERROR"
}

// Message returns the user-friendly error message
func (e *BackendStatusError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BackendStatusError) Details() string {
	return e.details
}
