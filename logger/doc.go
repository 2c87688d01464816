// Package logger provides structured logging for fetchkit on top of
// zerolog. Diagnostic output goes to stderr by default so it never mixes
// with payload data on stdout.
package logger
