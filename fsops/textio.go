package fsops

import (
	"github.com/igitur/treetrim/internal/errs"
	"github.com/igitur/treetrim/internal/pathutil"
)

// ReadAllText reads the entire file at path and returns it as a string.
// Contents are decoded as UTF-8, the platform default text encoding.
// Fails with an error wrapping core.ErrNotExist when the file does not
// exist, or the underlying IO error when it cannot be read.
func (o *Ops) ReadAllText(path string) (string, error) {
	data, err := o.fsys.ReadFile(pathutil.Normalize(path))
	if err != nil {
		return "", errs.PathError("read", path, err)
	}
	return string(data), nil
}

// WriteTextToFile truncates and rewrites the file at path with contents.
//
// The read-only flag is cleared first, so writing to a previously protected
// file always succeeds rather than failing; the cleared flag is an
// observable side effect. No atomic temp-file swap is performed, so a crash
// mid-write leaves a partially written file.
func (o *Ops) WriteTextToFile(path, contents string) error {
	name := pathutil.Normalize(path)

	// Clear protection flag, then perform the primary operation. The file
	// may not exist yet, in which case there is nothing to clear.
	if afs, ok := o.attrs(); ok {
		exists, err := o.fsys.Exists(name)
		if err != nil {
			return errs.PathError("write", path, err)
		}
		if exists {
			if err := afs.SetReadOnly(name, false); err != nil {
				return errs.Attribute("write", path, err)
			}
		}
	}

	if err := o.fsys.WriteFile(name, []byte(contents), filePerm); err != nil {
		return errs.PathError("write", path, err)
	}
	return nil
}
