package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeValidation indicates a validation failure.
	ErrCodeValidation ErrorCode = "VALIDATION_FAILED"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeTimeout indicates the operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeConnectionFailed indicates a failed connection to a service.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout:          true,
	ErrCodeConnectionFailed: true,
}

// IsRetryableCode reports whether operations failing with this code may be
// retried by the caller.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
