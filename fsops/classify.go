package fsops

import (
	"github.com/igitur/treetrim/fs/core"
	"github.com/igitur/treetrim/internal/pathutil"
)

// Classify determines whether a path denotes a file or a folder.
//
// Classification never fails: a path is EntityFile iff a regular file exists
// there; everything else, including an existing directory or nothing at all,
// is reported as EntityFolder.
func (o *Ops) Classify(path string) core.EntityKind {
	info, err := o.fsys.Stat(pathutil.Normalize(path))
	if err == nil && !info.IsDir() {
		return core.EntityFile
	}
	return core.EntityFolder
}

// IsFile reports whether a regular file exists at path.
func (o *Ops) IsFile(path string) bool {
	return o.Classify(path) == core.EntityFile
}

// IsFolder reports whether path denotes a folder per Classify.
func (o *Ops) IsFolder(path string) bool {
	return o.Classify(path) == core.EntityFolder
}

// IsDeletableDirectory reports whether the deleter should route path through
// whole-tree directory deletion. It returns true when the path string ends
// with a directory separator, or when something exists at the path, is a
// directory, and is not hidden.
//
// Hidden directories (base name starting with a dot) are intentionally
// treated as non-directories here, so the deleter routes them through the
// single-file path instead of whole-tree removal.
func (o *Ops) IsDeletableDirectory(path string) bool {
	if pathutil.HasTrailingSeparator(path) {
		return true
	}
	name := pathutil.Normalize(path)
	info, err := o.fsys.Stat(name)
	if err != nil {
		return false
	}
	return info.IsDir() && !pathutil.IsHidden(name)
}
