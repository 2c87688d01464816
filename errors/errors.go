package errors

import "fmt"

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// Validation creates a new AppError for a failed validation.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeValidation, Message: message, Retryable: false,
	}
}

// InvalidInput creates a new AppError for an invalid input field.
func InvalidInput(field, message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("%s %s", field, message),
		Retryable: false,
		Details:   map[string]any{"field": field},
	}
}

// Internal creates a new AppError for an unexpected internal failure.
func Internal(message string) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: message, Retryable: false,
	}
}
