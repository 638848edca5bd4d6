package core

// EntityKind classifies a path as denoting a file or a folder.
//
// Classification is deliberately total: a path at which a regular file exists
// is EntityFile, and every other path, whether an existing directory or nothing at
// all, is EntityFolder. Callers that need to distinguish "missing" from
// "directory" must use ReadFS.Exists or ReadFS.Stat directly.
type EntityKind int

const (
	// EntityFile indicates a regular file exists at the path.
	EntityFile EntityKind = iota
	// EntityFolder indicates anything other than a regular file at the path,
	// including the case where nothing exists at all.
	EntityFolder
)

// String returns a string representation of the EntityKind.
func (k EntityKind) String() string {
	switch k {
	case EntityFile:
		return "file"
	case EntityFolder:
		return "folder"
	default:
		return "unknown"
	}
}
