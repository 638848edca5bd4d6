// Package fsops provides the hierarchical filesystem operations facade used
// by treetrim: entity classification, recursive copy with overwrite,
// recursive delete with read-only neutralization, recursive file enumeration
// with an empty-directory sentinel, and whole-file text IO.
//
// All operations run against a core.FS backend and hold no state of their
// own; every call re-reads the live filesystem. Operations are synchronous
// and fail-fast: the first error aborts the remaining work and is returned
// wrapped in a *fs.PathError naming the entity and stage that failed.
// Callers needing parallel traversal must add their own coordination;
// no operation is safe against concurrent mutation of the same subtree.
package fsops

import (
	"github.com/igitur/treetrim/fs/core"
)

// Ops exposes the filesystem operations facade over a core.FS backend.
//
// The zero value is not usable; construct with New.
type Ops struct {
	fsys core.FS
}

// New returns an Ops facade bound to the given filesystem backend.
func New(fsys core.FS) *Ops {
	return &Ops{fsys: fsys}
}

// FS returns the underlying filesystem backend.
func (o *Ops) FS() core.FS {
	return o.fsys
}

// attrs returns the backend's attribute capability, if it has one.
func (o *Ops) attrs() (core.AttributeFS, bool) {
	afs, ok := o.fsys.(core.AttributeFS)
	return afs, ok
}
