package domain

import "errors"

// Domain errors represent error conditions in the id3mend domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidPath is returned when an argument path is neither a file
	// nor a directory.
	ErrInvalidPath = errors.New("id3mend: invalid path")

	// ErrNoTag is returned by tag readers when a file has no parseable
	// ID3 header. It marks a skippable file, never a fatal condition.
	ErrNoTag = errors.New("id3mend: no ID3 header")

	// ErrUnsupportedVersion is returned by tag readers for tag versions
	// the reader does not parse (e.g. ID3v2.2). Also a skippable file.
	ErrUnsupportedVersion = errors.New("id3mend: unsupported ID3 version")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("id3mend: invalid configuration")
)
