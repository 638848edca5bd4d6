// Package errs provides error handling utilities for the treetrim
// filesystem facade.
package errs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/igitur/treetrim/fs/core"
)

// PathError wraps an error in a fs.PathError for the given operation and path.
// If the error is nil, returns nil.
func PathError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &fs.PathError{Op: op, Path: path, Err: err}
}

// PathErrorf creates a fs.PathError with a formatted error message.
func PathErrorf(op, path, format string, args ...interface{}) error {
	return &fs.PathError{Op: op, Path: path, Err: fmt.Errorf(format, args...)}
}

// Attribute wraps an attribute store failure so callers can detect it with
// errors.Is(err, core.ErrAttribute). Not-exist and unsupported errors pass
// through unchanged so their own sentinels stay matchable.
func Attribute(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if isSentinel(err) {
		return PathError(op, path, err)
	}
	return &fs.PathError{Op: op, Path: path, Err: fmt.Errorf("%w: %w", core.ErrAttribute, err)}
}

func isSentinel(err error) bool {
	for _, sentinel := range []error{core.ErrNotExist, core.ErrUnsupported, core.ErrAttribute} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
