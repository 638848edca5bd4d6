package fsops

import (
	"io/fs"

	"github.com/igitur/treetrim/fs/core"
	"github.com/igitur/treetrim/internal/errs"
	"github.com/igitur/treetrim/internal/pathutil"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// CopyFolder recursively copies the directory tree rooted at source onto
// destination, overwriting any files already present. The destination and
// any missing intermediate directories are created on demand.
//
// The source must denote an existing folder; otherwise CopyFolder fails with
// an error wrapping core.ErrSourceNotFound.
//
// Traversal is depth-first, files before subdirectories at each level, in
// directory-listing order. Unchanged files are not skipped; every file is
// rewritten. A failure aborts the remaining copy at that point; entities
// already copied remain on disk. There is no symlink cycle guard.
func (o *Ops) CopyFolder(source, destination string) error {
	src := pathutil.Normalize(source)
	info, err := o.fsys.Stat(src)
	if err != nil || !info.IsDir() {
		return errs.PathError("copy", source, core.ErrSourceNotFound)
	}
	return o.copyTree(src, pathutil.Normalize(destination))
}

// copyTree copies one directory level, then recurses.
func (o *Ops) copyTree(src, dst string) error {
	if err := o.fsys.MkdirAll(dst, dirPerm); err != nil {
		return errs.PathError("copy", dst, err)
	}

	entries, err := o.fsys.ReadDir(src)
	if err != nil {
		return errs.PathError("copy", src, err)
	}

	// Files first, subdirectories second.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if err := o.copyFile(pathutil.Join(src, name), pathutil.Join(dst, name)); err != nil {
			return err
		}
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if err := o.copyTree(pathutil.Join(src, name), pathutil.Join(dst, name)); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies a single file, overwriting the destination if present.
func (o *Ops) copyFile(src, dst string) error {
	data, err := o.fsys.ReadFile(src)
	if err != nil {
		return errs.PathError("copy", src, err)
	}
	if err := o.fsys.WriteFile(dst, data, filePerm); err != nil {
		return errs.PathError("copy", dst, err)
	}
	return nil
}
