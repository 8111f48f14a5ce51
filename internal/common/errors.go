// Package common defines shared constants and sentinel errors used across
// the classtrack client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors (rejected or missing credential).
	ErrUnauthorized = errors.New("unauthorized")

	// Resource errors.
	ErrNotFound = errors.New("not found")
)
