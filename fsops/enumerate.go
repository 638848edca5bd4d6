package fsops

import (
	"github.com/igitur/treetrim/internal/errs"
	"github.com/igitur/treetrim/internal/pathutil"
)

// ListFilesRecursively lists every file under directory, depth-first.
//
// The result contains the direct files of directory first, then the
// recursive results of each direct subdirectory in directory-listing order.
// A directory with no files and no subdirectories contributes one sentinel
// entry instead: its own path with a trailing separator appended,
// representing an otherwise-unreportable empty leaf directory.
func (o *Ops) ListFilesRecursively(directory string) ([]string, error) {
	dir := pathutil.Normalize(directory)

	entries, err := o.fsys.ReadDir(dir)
	if err != nil {
		return nil, errs.PathError("list", directory, err)
	}

	var files []string
	var subdirs []string
	for _, entry := range entries {
		child := pathutil.Join(dir, entry.Name())
		if entry.IsDir() {
			subdirs = append(subdirs, child)
		} else {
			files = append(files, child)
		}
	}

	// Empty leaf directory: synthesize the sentinel entry.
	if len(files) == 0 && len(subdirs) == 0 {
		files = append(files, dir+pathutil.Separator)
	}

	for _, subdir := range subdirs {
		nested, err := o.ListFilesRecursively(subdir)
		if err != nil {
			return nil, err
		}
		files = append(files, nested...)
	}
	return files, nil
}

// ListChildDirectories lists the immediate subdirectories of directory.
// The listing is single-level; it does not recurse.
func (o *Ops) ListChildDirectories(directory string) ([]string, error) {
	dir := pathutil.Normalize(directory)

	entries, err := o.fsys.ReadDir(dir)
	if err != nil {
		return nil, errs.PathError("list", directory, err)
	}

	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, pathutil.Join(dir, entry.Name()))
		}
	}
	return subdirs, nil
}
