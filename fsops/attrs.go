package fsops

import (
	"github.com/igitur/treetrim/fs/core"
	"github.com/igitur/treetrim/internal/errs"
	"github.com/igitur/treetrim/internal/pathutil"
)

// IsReadOnly reports whether the file at path carries the read-only flag.
//
// Fails with core.ErrUnsupported when the backend has no attribute store,
// and with core.ErrAttribute when the flag cannot be read.
func (o *Ops) IsReadOnly(path string) (bool, error) {
	afs, ok := o.attrs()
	if !ok {
		return false, errs.PathError("attributes", path, core.ErrUnsupported)
	}
	readOnly, err := afs.IsReadOnly(pathutil.Normalize(path))
	if err != nil {
		return false, errs.Attribute("attributes", path, err)
	}
	return readOnly, nil
}

// SetReadOnly sets or clears the read-only flag on the file at path.
// Setting is idempotent: matching the current state is not an error.
func (o *Ops) SetReadOnly(path string, readOnly bool) error {
	afs, ok := o.attrs()
	if !ok {
		return errs.PathError("attributes", path, core.ErrUnsupported)
	}
	if err := afs.SetReadOnly(pathutil.Normalize(path), readOnly); err != nil {
		return errs.Attribute("attributes", path, err)
	}
	return nil
}
