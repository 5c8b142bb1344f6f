package domain

import "errors"

// Domain errors represent failure conditions of a sift run.
// These errors are returned by the public API and can be checked with errors.Is.
// The underlying cause (for example fs.ErrNotExist) is wrapped alongside them.
var (
	// ErrOpen is returned when the source cannot be opened for reading
	// or the destination cannot be opened for writing.
	ErrOpen = errors.New("fiveword: open failed")

	// ErrRead is returned when reading the source fails after it was opened.
	ErrRead = errors.New("fiveword: read failed")

	// ErrWrite is returned when writing, flushing or closing the destination fails.
	ErrWrite = errors.New("fiveword: write failed")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("fiveword: invalid configuration")
)
