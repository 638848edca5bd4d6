package fstest

import (
	"testing"

	"github.com/igitur/treetrim/fs/core"
	"github.com/igitur/treetrim/fsops"
)

// TestClassify tests entity classification: Classify, IsFile, IsFolder,
// IsDeletableDirectory.
func TestClassify(t *testing.T, filesystem core.FS, config Config) {
	ops := fsops.New(filesystem)

	// Setup: one file, one plain directory, one hidden directory.
	if err := filesystem.WriteFile("dir/file.txt", []byte("content"), 0o644); err != nil {
		t.Fatalf("WriteFile(dir/file.txt): setup failed: %v", err)
	}
	if err := filesystem.MkdirAll("dir/.hidden", 0o755); err != nil {
		t.Fatalf("MkdirAll(dir/.hidden): setup failed: %v", err)
	}

	t.Run("File", func(t *testing.T) {
		skipIfConfigured(t, config, "Classify/File")
		if kind := ops.Classify("dir/file.txt"); kind != core.EntityFile {
			t.Errorf("Classify(%q) = %v, want %v", "dir/file.txt", kind, core.EntityFile)
		}
		if !ops.IsFile("dir/file.txt") {
			t.Errorf("IsFile(%q) = false, want true", "dir/file.txt")
		}
	})

	t.Run("Directory", func(t *testing.T) {
		skipIfConfigured(t, config, "Classify/Directory")
		if kind := ops.Classify("dir"); kind != core.EntityFolder {
			t.Errorf("Classify(%q) = %v, want %v", "dir", kind, core.EntityFolder)
		}
		if !ops.IsFolder("dir") {
			t.Errorf("IsFolder(%q) = false, want true", "dir")
		}
	})

	t.Run("NothingAtPath", func(t *testing.T) {
		skipIfConfigured(t, config, "Classify/NothingAtPath")
		// Classification never fails; unknown paths default to folder.
		if kind := ops.Classify("no/such/entity"); kind != core.EntityFolder {
			t.Errorf("Classify(%q) = %v, want %v", "no/such/entity", kind, core.EntityFolder)
		}
	})

	t.Run("DeletableDirectory", func(t *testing.T) {
		skipIfConfigured(t, config, "Classify/DeletableDirectory")
		if !ops.IsDeletableDirectory("dir") {
			t.Errorf("IsDeletableDirectory(%q) = false, want true", "dir")
		}
		if !ops.IsDeletableDirectory("ghost/") {
			t.Errorf("IsDeletableDirectory(%q) = false, want true (trailing separator)", "ghost/")
		}
		if ops.IsDeletableDirectory("dir/.hidden") {
			t.Errorf("IsDeletableDirectory(%q) = true, want false (hidden)", "dir/.hidden")
		}
		if ops.IsDeletableDirectory("dir/file.txt") {
			t.Errorf("IsDeletableDirectory(%q) = true, want false (file)", "dir/file.txt")
		}
	})
}
