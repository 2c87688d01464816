// Package testutil provides helpers for testing code that uses fetchkit
// lifecycle components.
package testutil
