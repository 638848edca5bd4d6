package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied, including writes
	// and removals blocked by the read-only flag.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrSourceNotFound is returned when a recursive copy is requested from
	// a source folder that does not exist.
	ErrSourceNotFound = errors.New("source folder not found")

	// ErrAttribute is returned when the read-only attribute of a file cannot
	// be read or written (e.g., permissions on the containing directory).
	ErrAttribute = errors.New("attribute access failed")

	// ErrUnsupported is returned when an operation is not supported by the
	// backend. For example, attribute operations on backends with no notion
	// of a per-file read-only flag.
	ErrUnsupported = errors.New("operation not supported")
)
