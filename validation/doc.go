// Package validation provides struct-tag based validation for fetchkit
// configuration types, built on go-playground/validator.
package validation
