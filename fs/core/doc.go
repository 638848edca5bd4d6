// Package core provides the foundational interfaces and types for the
// filesystem abstraction used by the treetrim operations facade.
//
// This package defines contracts that filesystem backends must implement,
// enabling the facade to run unchanged against a real disk or an in-memory
// filesystem.
//
// # Design Philosophy
//
// The core package follows these principles:
//
//   - Zero dependencies: Only uses Go standard library
//   - Interface composition: Small focused interfaces compose into larger contracts
//   - Stdlib compatibility: Extends fs.FS and fs.File rather than replacing them
//   - Optional capabilities: Use type assertions for backend-specific features
//
// # Interface Hierarchy
//
// The main FS interface is composed of three sub-interfaces:
//
//   - ReadFS: Read-only operations (Open, Stat, ReadDir, ReadFile, Exists)
//   - WriteFS: Write operations (Create, OpenFile, WriteFile, MkdirAll)
//   - ManageFS: File management (Remove, RemoveAll)
//
// Optional interfaces for backend-specific capabilities:
//
//   - AttributeFS: Read-only attribute operations (IsReadOnly, SetReadOnly)
//
// # Checking Optional Capabilities
//
//	if afs, ok := filesystem.(core.AttributeFS); ok {
//	    afs.SetReadOnly("file.txt", false)
//	}
//
// # Backend Implementations
//
// This package contains only interface definitions and shared types. Concrete
// implementations are provided by github.com/igitur/treetrim/fs/billy.
package core
