// Package directory holds the in-memory user directory: normalization of raw
// profiles, the single-use store, search filtering and statistics.
package directory

import "errors"

var (
	// ErrSourceUnavailable marks network or endpoint failures while fetching profiles. Retryable.
	ErrSourceUnavailable = errors.New("profile source unavailable")
	// ErrMalformedRecord marks a raw profile lacking required fields. The record is skipped.
	ErrMalformedRecord = errors.New("malformed profile record")
	// ErrAlreadyPopulated is returned by a second Populate call.
	ErrAlreadyPopulated = errors.New("directory already populated")
	// ErrNotLoaded is returned when the directory is queried before the initial load finished.
	ErrNotLoaded = errors.New("directory not loaded")
)
