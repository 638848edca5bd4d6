package fstest

import (
	"testing"

	"github.com/igitur/treetrim/fs/core"
	"github.com/igitur/treetrim/fsops"
)

// TestEnumerator tests recursive file enumeration and the empty-directory
// sentinel convention, plus the single-level child directory listing.
func TestEnumerator(t *testing.T, filesystem core.FS, config Config) {
	ops := fsops.New(filesystem)

	t.Run("EmptyDirectorySentinel", func(t *testing.T) {
		skipIfConfigured(t, config, "Enumerator/EmptyDirectorySentinel")
		if err := filesystem.MkdirAll("empty", 0o755); err != nil {
			t.Fatalf("MkdirAll(empty): setup failed: %v", err)
		}
		files, err := ops.ListFilesRecursively("empty")
		if err != nil {
			t.Fatalf("ListFilesRecursively(empty): got error %v, want nil", err)
		}
		assertPaths(t, files, []string{"empty/"})
	})

	t.Run("FilesThenEmptySubdirectory", func(t *testing.T) {
		skipIfConfigured(t, config, "Enumerator/FilesThenEmptySubdirectory")
		if err := filesystem.WriteFile("root/a.txt", []byte("a"), 0o644); err != nil {
			t.Fatalf("WriteFile(root/a.txt): setup failed: %v", err)
		}
		if err := filesystem.WriteFile("root/b.txt", []byte("b"), 0o644); err != nil {
			t.Fatalf("WriteFile(root/b.txt): setup failed: %v", err)
		}
		if err := filesystem.MkdirAll("root/c", 0o755); err != nil {
			t.Fatalf("MkdirAll(root/c): setup failed: %v", err)
		}
		files, err := ops.ListFilesRecursively("root")
		if err != nil {
			t.Fatalf("ListFilesRecursively(root): got error %v, want nil", err)
		}
		// Direct files first, then recursion into subdirectories.
		assertPaths(t, files, []string{"root/a.txt", "root/b.txt", "root/c/"})
	})

	t.Run("ChildDirectories", func(t *testing.T) {
		skipIfConfigured(t, config, "Enumerator/ChildDirectories")
		if err := filesystem.WriteFile("parent/file.txt", []byte("f"), 0o644); err != nil {
			t.Fatalf("WriteFile(parent/file.txt): setup failed: %v", err)
		}
		if err := filesystem.MkdirAll("parent/one", 0o755); err != nil {
			t.Fatalf("MkdirAll(parent/one): setup failed: %v", err)
		}
		if err := filesystem.MkdirAll("parent/two/nested", 0o755); err != nil {
			t.Fatalf("MkdirAll(parent/two/nested): setup failed: %v", err)
		}
		dirs, err := ops.ListChildDirectories("parent")
		if err != nil {
			t.Fatalf("ListChildDirectories(parent): got error %v, want nil", err)
		}
		assertPaths(t, dirs, []string{"parent/one", "parent/two"})
	})
}

// assertPaths fails the test when got differs from want in content or order.
func assertPaths(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("got %d entries %v, want %d entries %v", len(got), got, len(want), want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}
