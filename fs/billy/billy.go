// Package billy provides go-billy-backed implementations of the core
// filesystem abstraction: a disk-backed LocalFS and an in-memory MemoryFS.
//
// Both backends implement core.FS and the optional core.AttributeFS
// capability. LocalFS maps the read-only flag onto the owner write permission
// bit; MemoryFS keeps explicit read-only marks and enforces them on write and
// remove operations so tests exercise real protection semantics.
package billy

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/igitur/treetrim/fs/core"
	"github.com/igitur/treetrim/internal/pathutil"
)

// LocalFS wraps billy's osfs for local filesystem access.
// It provides a thin adapter that implements core.FS while maintaining
// access to the underlying billy.Filesystem.
type LocalFS struct {
	bfs  billy.Filesystem
	root string
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
// It provides a thin adapter that implements core.FS while maintaining
// access to the underlying billy.Filesystem.
type MemoryFS struct {
	bfs billy.Filesystem

	// readOnly holds the normalized paths currently marked read-only.
	readOnly map[string]bool
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot scopes a local filesystem to the given directory.
// All paths passed to the filesystem are interpreted relative to dir.
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

// NewLocal creates a go-billy-backed local filesystem.
// By default the filesystem is rooted at the filesystem root ("/");
// use WithRoot to scope it to a directory.
func NewLocal(opts ...Option) *LocalFS {
	cfg := config{root: "/"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &LocalFS{
		bfs:  osfs.New(cfg.root),
		root: cfg.root,
	}
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory(_ ...Option) *MemoryFS {
	return &MemoryFS{
		bfs:      memfs.New(),
		readOnly: make(map[string]bool),
	}
}

// Unwrap returns the underlying billy.Filesystem.
func (lfs *LocalFS) Unwrap() billy.Filesystem {
	return lfs.bfs
}

// Unwrap returns the underlying billy.Filesystem.
func (mfs *MemoryFS) Unwrap() billy.Filesystem {
	return mfs.bfs
}

// normalize converts paths to the facade's forward-slash convention.
func normalize(path string) string {
	return pathutil.Normalize(path)
}

// hostPath converts a normalized facade path to an absolute host path.
func (lfs *LocalFS) hostPath(name string) string {
	return filepath.Join(lfs.root, filepath.FromSlash(name))
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// LocalFS ReadFS interface implementation

// Open opens the named file for reading.
// Returns a File that also implements fs.File.
func (lfs *LocalFS) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := lfs.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: lfs.bfs, name: name}, nil
}

// Stat returns file metadata for the named file.
func (lfs *LocalFS) Stat(name string) (fs.FileInfo, error) {
	return lfs.bfs.Stat(normalize(name))
}

// ReadDir reads the directory named by dirname and returns
// a list of directory entries sorted by filename.
func (lfs *LocalFS) ReadDir(name string) ([]fs.DirEntry, error) {
	// Billy's ReadDir returns []fs.FileInfo, we need to convert to []fs.DirEntry
	infos, err := lfs.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (lfs *LocalFS) ReadFile(name string) ([]byte, error) {
	name = normalize(name)
	f, err := lfs.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (lfs *LocalFS) Exists(name string) (bool, error) {
	name = normalize(name)
	_, err := lfs.bfs.Stat(name)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// LocalFS WriteFS interface implementation

// Create creates or truncates the named file for writing.
// Returns a File that also implements fs.File.
func (lfs *LocalFS) Create(name string) (core.File, error) {
	name = normalize(name)
	f, err := lfs.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: lfs.bfs, name: name}, nil
}

// OpenFile opens a file with the specified flags and permissions.
func (lfs *LocalFS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	f, err := lfs.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: lfs.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (lfs *LocalFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)
	f, err := lfs.bfs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = f.Write(data)
	return err
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (lfs *LocalFS) MkdirAll(path string, perm fs.FileMode) error {
	return lfs.bfs.MkdirAll(normalize(path), perm)
}

// LocalFS ManageFS interface implementation

// Remove removes the named file or empty directory.
func (lfs *LocalFS) Remove(name string) error {
	return lfs.bfs.Remove(normalize(name))
}

// RemoveAll removes path and any children it contains.
func (lfs *LocalFS) RemoveAll(path string) error {
	path = normalize(path)
	// Billy doesn't have RemoveAll, implement via recursive removal
	info, err := lfs.bfs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // RemoveAll returns nil if path doesn't exist
		}
		return err
	}

	if !info.IsDir() {
		return lfs.bfs.Remove(path)
	}

	// Remove directory contents recursively
	entries, err := lfs.bfs.ReadDir(path)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		entryPath := normalize(filepath.Join(path, entry.Name()))
		if err := lfs.RemoveAll(entryPath); err != nil {
			return err
		}
	}

	// Remove the directory itself
	return lfs.bfs.Remove(path)
}

// Type returns FSTypeLocal for local filesystem implementations.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// MemoryFS ReadFS interface implementation

// Open opens the named file for reading.
// Returns a File that also implements fs.File.
func (mfs *MemoryFS) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := mfs.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: mfs.bfs, name: name}, nil
}

// Stat returns file metadata for the named file.
func (mfs *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	return mfs.bfs.Stat(normalize(name))
}

// ReadDir reads the directory named by dirname and returns
// a list of directory entries sorted by filename.
func (mfs *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	// Billy's ReadDir returns []fs.FileInfo, we need to convert to []fs.DirEntry
	infos, err := mfs.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (mfs *MemoryFS) ReadFile(name string) ([]byte, error) {
	name = normalize(name)
	f, err := mfs.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (mfs *MemoryFS) Exists(name string) (bool, error) {
	name = normalize(name)
	_, err := mfs.bfs.Stat(name)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// MemoryFS WriteFS interface implementation

// Create creates or truncates the named file for writing.
// Returns a File that also implements fs.File.
func (mfs *MemoryFS) Create(name string) (core.File, error) {
	name = normalize(name)
	if err := mfs.denyReadOnly("create", name); err != nil {
		return nil, err
	}
	f, err := mfs.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: mfs.bfs, name: name}, nil
}

// OpenFile opens a file with the specified flags and permissions.
func (mfs *MemoryFS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	if writeIntent(flag) {
		if err := mfs.denyReadOnly("open", name); err != nil {
			return nil, err
		}
	}
	f, err := mfs.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: mfs.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (mfs *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)
	if err := mfs.denyReadOnly("write", name); err != nil {
		return err
	}
	f, err := mfs.bfs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = f.Write(data)
	return err
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (mfs *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	return mfs.bfs.MkdirAll(normalize(path), perm)
}

// MemoryFS ManageFS interface implementation

// Remove removes the named file or empty directory.
// Removing a path marked read-only fails with fs.ErrPermission.
func (mfs *MemoryFS) Remove(name string) error {
	name = normalize(name)
	if err := mfs.denyReadOnly("remove", name); err != nil {
		return err
	}
	if err := mfs.bfs.Remove(name); err != nil {
		return err
	}
	delete(mfs.readOnly, name)
	return nil
}

// RemoveAll removes path and any children it contains.
// Unlike Remove, RemoveAll deletes read-only entries: it is the atomic
// directory deletion primitive, mirroring POSIX unlink semantics where
// removal depends on the containing directory, not the file's own bits.
func (mfs *MemoryFS) RemoveAll(path string) error {
	path = normalize(path)
	if err := mfs.removeAll(path); err != nil {
		return err
	}
	mfs.clearMarks(path)
	return nil
}

func (mfs *MemoryFS) removeAll(path string) error {
	info, err := mfs.bfs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // RemoveAll returns nil if path doesn't exist
		}
		return err
	}

	if !info.IsDir() {
		return mfs.bfs.Remove(path)
	}

	// Remove directory contents recursively
	entries, err := mfs.bfs.ReadDir(path)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		entryPath := normalize(filepath.Join(path, entry.Name()))
		if err := mfs.removeAll(entryPath); err != nil {
			return err
		}
	}

	// Remove the directory itself
	return mfs.bfs.Remove(path)
}

// clearMarks drops read-only marks for path and everything under it.
func (mfs *MemoryFS) clearMarks(path string) {
	delete(mfs.readOnly, path)
	prefix := path + "/"
	for marked := range mfs.readOnly {
		if strings.HasPrefix(marked, prefix) {
			delete(mfs.readOnly, marked)
		}
	}
}

// denyReadOnly returns a permission error when name is marked read-only.
func (mfs *MemoryFS) denyReadOnly(op, name string) error {
	if mfs.readOnly[name] {
		return &fs.PathError{Op: op, Path: name, Err: fs.ErrPermission}
	}
	return nil
}

// writeIntent reports whether the OpenFile flags imply mutation.
func writeIntent(flag int) bool {
	return flag&(os.O_WRONLY|os.O_RDWR|os.O_APPEND|os.O_TRUNC) != 0
}

// Type returns FSTypeMemory for in-memory filesystem implementations.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// Compile-time interface checks.
var (
	_ core.FS          = (*LocalFS)(nil)
	_ core.FS          = (*MemoryFS)(nil)
	_ core.AttributeFS = (*LocalFS)(nil)
	_ core.AttributeFS = (*MemoryFS)(nil)
)
