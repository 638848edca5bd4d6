package fsops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/igitur/treetrim/fs/billy"
	"github.com/igitur/treetrim/fs/core"
	"github.com/igitur/treetrim/fsops"
)

func newMemOps(t *testing.T) *fsops.Ops {
	t.Helper()
	return fsops.New(billy.NewMemory())
}

func TestClassify(t *testing.T) {
	ops := newMemOps(t)
	fsys := ops.FS()

	require.NoError(t, fsys.WriteFile("dir/file.txt", []byte("x"), 0o644))
	require.NoError(t, fsys.MkdirAll("dir/sub", 0o755))

	tests := []struct {
		name     string
		path     string
		expected core.EntityKind
	}{
		{"regular file", "dir/file.txt", core.EntityFile},
		{"directory", "dir/sub", core.EntityFolder},
		{"nothing at path", "dir/missing", core.EntityFolder},
		{"missing with separator", "dir/missing/", core.EntityFolder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ops.Classify(tt.path))
		})
	}
}

func TestIsFileIsFolder(t *testing.T) {
	ops := newMemOps(t)
	require.NoError(t, ops.FS().WriteFile("a.txt", []byte("x"), 0o644))

	require.True(t, ops.IsFile("a.txt"))
	require.False(t, ops.IsFolder("a.txt"))

	require.False(t, ops.IsFile("nowhere"))
	require.True(t, ops.IsFolder("nowhere"))
}

func TestIsDeletableDirectory(t *testing.T) {
	ops := newMemOps(t)
	fsys := ops.FS()

	require.NoError(t, fsys.MkdirAll("plain", 0o755))
	require.NoError(t, fsys.MkdirAll(".hidden", 0o755))
	require.NoError(t, fsys.WriteFile("file.txt", []byte("x"), 0o644))

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"existing directory", "plain", true},
		{"trailing separator", "plain/", true},
		{"trailing separator on nonexistent path", "ghost/", true},
		{"hidden directory routed as file", ".hidden", false},
		{"hidden directory with separator", ".hidden/", true},
		{"regular file", "file.txt", false},
		{"nothing at path", "ghost", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ops.IsDeletableDirectory(tt.path))
		})
	}
}
