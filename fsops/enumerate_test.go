package fsops_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListFilesRecursively_EmptyDirectory(t *testing.T) {
	ops := newMemOps(t)
	require.NoError(t, ops.FS().MkdirAll("empty", 0o755))

	files, err := ops.ListFilesRecursively("empty")
	require.NoError(t, err)

	// An empty leaf directory is reported by a single sentinel entry:
	// its own path with a trailing separator.
	require.Equal(t, []string{"empty/"}, files)
}

func TestListFilesRecursively_FilesThenEmptySubdirectory(t *testing.T) {
	ops := newMemOps(t)
	fsys := ops.FS()

	require.NoError(t, fsys.WriteFile("root/a.txt", []byte("a"), 0o644))
	require.NoError(t, fsys.WriteFile("root/b.txt", []byte("b"), 0o644))
	require.NoError(t, fsys.MkdirAll("root/c", 0o755))

	files, err := ops.ListFilesRecursively("root")
	require.NoError(t, err)
	require.Equal(t, []string{"root/a.txt", "root/b.txt", "root/c/"}, files)
}

func TestListFilesRecursively_NestedTree(t *testing.T) {
	ops := newMemOps(t)
	fsys := ops.FS()

	require.NoError(t, fsys.WriteFile("root/top.txt", []byte("t"), 0o644))
	require.NoError(t, fsys.WriteFile("root/sub/mid.txt", []byte("m"), 0o644))
	require.NoError(t, fsys.WriteFile("root/sub/deep/leaf.txt", []byte("l"), 0o644))

	files, err := ops.ListFilesRecursively("root")
	require.NoError(t, err)
	require.Equal(t, []string{
		"root/top.txt",
		"root/sub/mid.txt",
		"root/sub/deep/leaf.txt",
	}, files)
}

func TestListFilesRecursively_DirectoryWithOnlySubdirectories(t *testing.T) {
	ops := newMemOps(t)
	fsys := ops.FS()

	// The parent has subdirectories, so no sentinel is emitted for it; the
	// empty children each report their own sentinel.
	require.NoError(t, fsys.MkdirAll("root/x", 0o755))
	require.NoError(t, fsys.MkdirAll("root/y", 0o755))

	files, err := ops.ListFilesRecursively("root")
	require.NoError(t, err)
	require.Equal(t, []string{"root/x/", "root/y/"}, files)
}

func TestListChildDirectories(t *testing.T) {
	ops := newMemOps(t)
	fsys := ops.FS()

	require.NoError(t, fsys.WriteFile("root/file.txt", []byte("f"), 0o644))
	require.NoError(t, fsys.MkdirAll("root/one", 0o755))
	require.NoError(t, fsys.MkdirAll("root/two/nested", 0o755))

	dirs, err := ops.ListChildDirectories("root")
	require.NoError(t, err)

	// Single-level: files excluded, nested directories not descended into.
	require.Equal(t, []string{"root/one", "root/two"}, dirs)
}
