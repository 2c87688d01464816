// Package errors provides structured error handling for fetchkit.
// It implements a typed application error with machine-readable codes,
// retryable detection, and cause wrapping.
package errors
