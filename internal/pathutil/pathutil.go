// Package pathutil provides path normalization and manipulation utilities
// for the treetrim filesystem facade.
//
// All facade paths use forward slashes. A trailing separator on an input path
// expresses directory intent and is significant to the deleter and the
// enumerator, so it must be inspected before normalization strips it.
package pathutil

import (
	"path"
	"path/filepath"
	"strings"
)

// Separator is the canonical path separator used by the facade.
const Separator = "/"

// Normalize cleans a path and ensures forward slashes.
// Returns "." for empty paths.
//
// Normalize strips any trailing separator; callers that care about directory
// intent must call HasTrailingSeparator on the raw input first.
func Normalize(p string) string {
	if p == "" {
		return "."
	}

	// Convert backslashes first so Windows-style inputs clean correctly.
	p = strings.ReplaceAll(p, "\\", "/")

	// Clean the path (resolves . and ..); ToSlash again because
	// filepath.Clean may use the OS separator.
	return filepath.ToSlash(filepath.Clean(p))
}

// HasTrailingSeparator reports whether the raw path string ends with a
// directory separator (forward or backward slash).
func HasTrailingSeparator(p string) bool {
	return strings.HasSuffix(p, "/") || strings.HasSuffix(p, "\\")
}

// Join joins a directory with an entry name using the canonical separator
// and returns the normalized result.
func Join(dir, name string) string {
	return Normalize(path.Join(Normalize(dir), name))
}

// Base returns the last element of the normalized path.
func Base(p string) string {
	return path.Base(Normalize(p))
}

// IsHidden reports whether the entry named by the path is hidden, i.e. its
// base name starts with a dot.
func IsHidden(p string) bool {
	base := Base(p)
	return base != "." && base != "/" && strings.HasPrefix(base, ".")
}
