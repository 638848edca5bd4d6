package billy

import (
	"io/fs"
	"os"
)

// ownerWrite is the permission bit that encodes the read-only flag on the
// local backend: a file is read-only when its owner write bit is clear.
const ownerWrite = 0o200

// writeBits covers every write permission bit; setting read-only clears all
// of them so group/other writers cannot bypass the flag.
const writeBits = 0o222

// LocalFS AttributeFS interface implementation

// IsReadOnly reports whether the named file carries the read-only flag.
// On the local backend the flag maps to the owner write permission bit.
func (lfs *LocalFS) IsReadOnly(name string) (bool, error) {
	info, err := os.Stat(lfs.hostPath(normalize(name)))
	if err != nil {
		return false, err
	}
	return info.Mode().Perm()&ownerWrite == 0, nil
}

// SetReadOnly sets or clears the read-only flag on the named file.
// The permission set is read first and only the write bits are modified,
// so all other mode bits are preserved. Setting is idempotent.
func (lfs *LocalFS) SetReadOnly(name string, readOnly bool) error {
	host := lfs.hostPath(normalize(name))
	info, err := os.Stat(host)
	if err != nil {
		return err
	}

	perm := info.Mode().Perm()
	var target fs.FileMode
	if readOnly {
		target = perm &^ writeBits
	} else {
		target = perm | ownerWrite
	}
	if target == perm {
		return nil
	}
	return os.Chmod(host, target)
}

// MemoryFS AttributeFS interface implementation

// IsReadOnly reports whether the named file is marked read-only.
func (mfs *MemoryFS) IsReadOnly(name string) (bool, error) {
	name = normalize(name)
	if _, err := mfs.bfs.Stat(name); err != nil {
		return false, err
	}
	return mfs.readOnly[name], nil
}

// SetReadOnly sets or clears the read-only mark on the named file.
// Setting is idempotent.
func (mfs *MemoryFS) SetReadOnly(name string, readOnly bool) error {
	name = normalize(name)
	if _, err := mfs.bfs.Stat(name); err != nil {
		return err
	}
	if readOnly {
		mfs.readOnly[name] = true
	} else {
		delete(mfs.readOnly, name)
	}
	return nil
}
