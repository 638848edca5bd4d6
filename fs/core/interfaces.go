package core

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a local filesystem (e.g., disk-backed).
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the primary filesystem interface combining all core operations.
// FS explicitly embeds fs.FS for stdlib compatibility.
//
// All filesystem backends MUST implement this interface, which is composed
// of three sub-interfaces representing different categories of operations:
// ReadFS, WriteFS, and ManageFS.
type FS interface {
	fs.FS // Ensures stdlib compatibility (provides Open returning fs.File)
	ReadFS
	WriteFS
	ManageFS

	// Type returns the underlying filesystem type.
	// This allows callers to introspect whether the filesystem is
	// backed by a real disk or in-memory storage.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
// All backends MUST support this interface.
type ReadFS interface {
	// Open opens the named file for reading.
	// Returns fs.File for compatibility with io/fs package.
	//
	// The name must be a valid path relative to the filesystem root.
	// The returned file should be closed when no longer needed.
	Open(name string) (fs.File, error)

	// Stat returns file metadata.
	// It returns fs.FileInfo describing the named file.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir reads the directory named by dirname and returns
	// a list of directory entries sorted by filename.
	//
	// If there is an error, it will be of type *fs.PathError.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	// A successful call returns err == nil, not err == EOF.
	// Because ReadFile reads the whole file, it does not treat EOF
	// as an error to be reported.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// It returns true if the path exists, false if it does not exist.
	// If an error occurs while checking (e.g., permission denied),
	// it returns false and the error.
	//
	// Note: For most use cases, callers should check the error.
	// A false result with a non-nil error indicates the existence
	// could not be determined, not that the file doesn't exist.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// Create creates or truncates the named file for writing.
	// If the file already exists, it is truncated.
	// If the file does not exist, it is created with mode 0666 (before umask).
	// Returns File which also implements fs.File.
	//
	// The returned file must be closed when no longer needed.
	Create(name string) (File, error)

	// OpenFile opens a file with the specified flags and permissions.
	// The flags are a bitmask (O_RDONLY, O_WRONLY, O_RDWR, O_CREATE, O_TRUNC, etc.).
	//
	// If the file is created, the permission mode perm is used (before umask).
	// Returns File which also implements fs.File.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating it if necessary.
	// If the file already exists, WriteFile truncates it before writing.
	//
	// WriteFile is a convenience function that handles opening, writing,
	// and closing the file automatically. It is equivalent to opening the
	// file with O_WRONLY|O_CREATE|O_TRUNC, writing the data, and closing.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory named path, along with any necessary parents.
	// If path is already a directory, MkdirAll does nothing and returns nil.
	//
	// The permission bits perm are used for all directories that MkdirAll creates.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines file and directory management operations.
//
// These operations modify the filesystem structure by removing
// files and directories.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	// If the path does not exist, Remove returns an error (typically ErrNotExist).
	// If the path is a directory and is not empty, Remove returns an error.
	Remove(name string) error

	// RemoveAll removes path and any children it contains.
	// It removes everything it can but returns the first error it encounters.
	// If the path does not exist, RemoveAll returns nil (no error).
	//
	// RemoveAll is the atomic deletion primitive for directory trees: it does
	// not consult per-file read-only attributes while descending.
	RemoveAll(path string) error
}

// AttributeFS defines read-only attribute operations.
//
// Use type assertion to check if a filesystem supports attribute operations:
//
//	if afs, ok := filesystem.(core.AttributeFS); ok {
//	    readOnly, err := afs.IsReadOnly("file.txt")
//	}
//
// Backends that cannot express a per-file read-only flag return
// ErrUnsupported from both methods.
type AttributeFS interface {
	// IsReadOnly reports whether the named file carries the read-only flag.
	// If there is an error, it will be of type *fs.PathError.
	IsReadOnly(name string) (bool, error)

	// SetReadOnly sets or clears the read-only flag on the named file.
	//
	// Setting is idempotent: no error is raised if the flag already matches
	// the target state. Implementations must read-modify-write the underlying
	// attribute set so that bits other than the read-only flag are preserved.
	SetReadOnly(name string, readOnly bool) error
}

// File represents an open file handle.
// File extends fs.File with write operations.
//
// All backend File types implement both File and fs.File, allowing them
// to be used with stdlib functions that accept fs.File while also supporting
// write operations through the io.Writer interface.
type File interface {
	fs.File // Embeds: Read([]byte) (int, error), Close() error, Stat() (fs.FileInfo, error)

	// Write writes len(p) bytes from p to the underlying data stream.
	// It returns the number of bytes written from p (0 <= n <= len(p))
	// and any error encountered that caused the write to stop early.
	io.Writer

	// Name returns the name of the file as provided to Open or Create.
	// This is useful for debugging and error messages.
	Name() string
}
