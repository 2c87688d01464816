// Package component defines lifecycle interfaces for managed fetchkit
// components: explicit Start/Stop with health reporting.
package component
