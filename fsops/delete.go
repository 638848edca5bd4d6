package fsops

import (
	"github.com/igitur/treetrim/internal/errs"
	"github.com/igitur/treetrim/internal/pathutil"
)

// DeleteFileOrDirectory deletes the entity at path.
//
// If IsDeletableDirectory(path) holds, the directory and everything under it
// is removed in one operation; no read-only handling is needed because
// whole-tree deletion is atomic at this layer. Otherwise path is treated as
// a file: its read-only flag is cleared first if set, then the file is
// removed. Deleting a non-existent file is a hard failure wrapping
// core.ErrNotExist.
func (o *Ops) DeleteFileOrDirectory(path string) error {
	if o.IsDeletableDirectory(path) {
		if err := o.fsys.RemoveAll(pathutil.Normalize(path)); err != nil {
			return errs.PathError("delete", path, err)
		}
		return nil
	}

	name := pathutil.Normalize(path)
	if _, err := o.fsys.Stat(name); err != nil {
		return errs.PathError("delete", path, err)
	}

	// Clear protection flag, then perform the primary operation.
	if afs, ok := o.attrs(); ok {
		readOnly, err := afs.IsReadOnly(name)
		if err != nil {
			return errs.Attribute("delete", path, err)
		}
		if readOnly {
			if err := afs.SetReadOnly(name, false); err != nil {
				return errs.Attribute("delete", path, err)
			}
		}
	}

	if err := o.fsys.Remove(name); err != nil {
		return errs.PathError("delete", path, err)
	}
	return nil
}

// DeleteFileOrDirectories deletes each path in order, one
// DeleteFileOrDirectory call per element. The first failure aborts the
// remainder of the batch. There is no best-effort continuation.
func (o *Ops) DeleteFileOrDirectories(paths []string) error {
	for _, path := range paths {
		if err := o.DeleteFileOrDirectory(path); err != nil {
			return err
		}
	}
	return nil
}
