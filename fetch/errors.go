package fetch

import (
	"errors"
	"fmt"
)

// ErrorCode classifies fetch errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, etc).
	ErrCodeConnection
	// ErrCodeValidation indicates a local failure before any network
	// interaction (bad target, request construction, closed session).
	ErrCodeValidation
	// ErrCodeAuth indicates an authentication failure status (401/403).
	ErrCodeAuth
	// ErrCodeNotFound indicates a not-found status (404).
	ErrCodeNotFound
	// ErrCodeRateLimit indicates a rate-limiting status (429).
	ErrCodeRateLimit
	// ErrCodeServer indicates a server-side error status (5xx).
	ErrCodeServer
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeValidation:
		return "validation"
	case ErrCodeAuth:
		return "auth"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeRateLimit:
		return "rate_limit"
	case ErrCodeServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a structured fetch error with classification.
type Error struct {
	// StatusCode is the HTTP status code (0 for local and connection-level errors).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Retryable indicates whether the operation can be retried by the caller.
	Retryable bool
	// Body is the response body associated with a status error (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetch: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{
		Code:      ErrCodeTimeout,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{
		Code:      ErrCodeConnection,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// NewValidationError creates a local validation error.
func NewValidationError(msg string) *Error {
	return &Error{
		Code:      ErrCodeValidation,
		Message:   msg,
		Retryable: false,
	}
}

// ClassifyStatusCode converts an HTTP status code into a typed error for
// callers that want non-2xx completions surfaced as errors. Get, Post, and
// Do never apply it themselves; the raw status is always returned.
// Returns nil for 2xx status codes.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == 401 || statusCode == 403:
		return &Error{
			StatusCode: statusCode,
			Code:       ErrCodeAuth,
			Message:    fmt.Sprintf("HTTP %d", statusCode),
			Retryable:  false,
			Body:       body,
		}
	case statusCode == 404:
		return &Error{
			StatusCode: statusCode,
			Code:       ErrCodeNotFound,
			Message:    "HTTP 404",
			Retryable:  false,
			Body:       body,
		}
	case statusCode == 429:
		return &Error{
			StatusCode: statusCode,
			Code:       ErrCodeRateLimit,
			Message:    "HTTP 429",
			Retryable:  true,
			Body:       body,
		}
	case statusCode >= 400 && statusCode < 500:
		return &Error{
			StatusCode: statusCode,
			Code:       ErrCodeValidation,
			Message:    fmt.Sprintf("HTTP %d", statusCode),
			Retryable:  false,
			Body:       body,
		}
	case statusCode >= 500:
		return &Error{
			StatusCode: statusCode,
			Code:       ErrCodeServer,
			Message:    fmt.Sprintf("HTTP %d", statusCode),
			Retryable:  true,
			Body:       body,
		}
	default:
		return &Error{
			StatusCode: statusCode,
			Code:       ErrCodeServer,
			Message:    fmt.Sprintf("HTTP %d", statusCode),
			Retryable:  false,
			Body:       body,
		}
	}
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsValidation checks if an error is a local validation error.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeValidation
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}
