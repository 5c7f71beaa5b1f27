// Package common defines shared constants and sentinel errors used across
// EcoTrack client components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository / roster-level errors.
	ErrNotFound = errors.New("not found")

	// Session-level errors.
	ErrNoActiveSession = errors.New("no active session")

	// Submission errors raised before any network call.
	ErrValidation = errors.New("validation failed")

	// Transport-level errors: the endpoint was unreachable or returned a
	// response that could not be decoded.
	ErrConnectivity = errors.New("connection failed")
)
