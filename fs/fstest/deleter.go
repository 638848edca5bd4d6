package fstest

import (
	"errors"
	"testing"

	"github.com/igitur/treetrim/fs/core"
	"github.com/igitur/treetrim/fsops"
)

// TestDeleter tests recursive deletion: files, read-only files, whole
// directory trees, the missing-entity failure, and batch fail-fast order.
func TestDeleter(t *testing.T, filesystem core.FS, config Config) {
	ops := fsops.New(filesystem)

	t.Run("File", func(t *testing.T) {
		skipIfConfigured(t, config, "Deleter/File")
		if err := filesystem.WriteFile("doomed.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(doomed.txt): setup failed: %v", err)
		}
		if err := ops.DeleteFileOrDirectory("doomed.txt"); err != nil {
			t.Fatalf("DeleteFileOrDirectory(doomed.txt): got error %v, want nil", err)
		}
		assertGone(t, filesystem, "doomed.txt")
	})

	t.Run("ReadOnlyFile", func(t *testing.T) {
		skipIfConfigured(t, config, "Deleter/ReadOnlyFile")
		if !config.SupportsAttributes {
			t.Skip("Attributes not supported")
		}
		if err := filesystem.WriteFile("locked.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(locked.txt): setup failed: %v", err)
		}
		if err := ops.SetReadOnly("locked.txt", true); err != nil {
			t.Fatalf("SetReadOnly(locked.txt): setup failed: %v", err)
		}
		// Read-only must not block deletion.
		if err := ops.DeleteFileOrDirectory("locked.txt"); err != nil {
			t.Fatalf("DeleteFileOrDirectory(locked.txt): got error %v, want nil", err)
		}
		assertGone(t, filesystem, "locked.txt")
	})

	t.Run("DirectoryTree", func(t *testing.T) {
		skipIfConfigured(t, config, "Deleter/DirectoryTree")
		if err := filesystem.WriteFile("tree/a.txt", []byte("a"), 0o644); err != nil {
			t.Fatalf("WriteFile(tree/a.txt): setup failed: %v", err)
		}
		if err := filesystem.WriteFile("tree/sub/b.txt", []byte("b"), 0o644); err != nil {
			t.Fatalf("WriteFile(tree/sub/b.txt): setup failed: %v", err)
		}
		// One call removes the directory and all contents.
		if err := ops.DeleteFileOrDirectory("tree"); err != nil {
			t.Fatalf("DeleteFileOrDirectory(tree): got error %v, want nil", err)
		}
		assertGone(t, filesystem, "tree")
	})

	t.Run("NotExist", func(t *testing.T) {
		skipIfConfigured(t, config, "Deleter/NotExist")
		err := ops.DeleteFileOrDirectory("no-such-entity.txt")
		if !errors.Is(err, core.ErrNotExist) {
			t.Errorf("DeleteFileOrDirectory(no-such-entity.txt): got error %v, want ErrNotExist", err)
		}
	})

	t.Run("BatchFailFast", func(t *testing.T) {
		skipIfConfigured(t, config, "Deleter/BatchFailFast")
		if err := filesystem.WriteFile("first.txt", []byte("1"), 0o644); err != nil {
			t.Fatalf("WriteFile(first.txt): setup failed: %v", err)
		}
		if err := filesystem.WriteFile("last.txt", []byte("2"), 0o644); err != nil {
			t.Fatalf("WriteFile(last.txt): setup failed: %v", err)
		}
		err := ops.DeleteFileOrDirectories([]string{"first.txt", "missing.txt", "last.txt"})
		if !errors.Is(err, core.ErrNotExist) {
			t.Fatalf("DeleteFileOrDirectories: got error %v, want ErrNotExist", err)
		}
		assertGone(t, filesystem, "first.txt")
		exists, err := filesystem.Exists("last.txt")
		if err != nil {
			t.Fatalf("Exists(last.txt): got error %v, want nil", err)
		}
		if !exists {
			t.Error("Exists(last.txt) = false, want true (batch must abort before it)")
		}
	})
}

// assertGone fails the test when path still exists.
func assertGone(t *testing.T, filesystem core.FS, path string) {
	t.Helper()
	exists, err := filesystem.Exists(path)
	if err != nil {
		t.Fatalf("Exists(%q): got error %v, want nil", path, err)
	}
	if exists {
		t.Errorf("Exists(%q) = true, want false", path)
	}
}
