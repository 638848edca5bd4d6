package billy

import (
	"testing"

	"github.com/igitur/treetrim/fs/core"
	"github.com/igitur/treetrim/fs/fstest"
)

// TestLocalFS_Constructor verifies NewLocal creates a valid filesystem.
func TestLocalFS_Constructor(t *testing.T) {
	fs := NewLocal()
	if fs == nil {
		t.Fatal("NewLocal() returned nil")
	}
	if fs.bfs == nil {
		t.Error("NewLocal() bfs field is nil")
	}
	if fs.root != "/" {
		t.Errorf("NewLocal() root = %q, want %q", fs.root, "/")
	}
}

// TestLocalFS_WithRoot verifies the WithRoot option scopes the filesystem.
func TestLocalFS_WithRoot(t *testing.T) {
	dir := t.TempDir()
	fs := NewLocal(WithRoot(dir))
	if fs.root != dir {
		t.Errorf("NewLocal(WithRoot(%q)) root = %q, want %q", dir, fs.root, dir)
	}

	if err := fs.WriteFile("scoped.txt", []byte("data"), 0o644); err != nil {
		t.Fatalf("WriteFile(scoped.txt): got error %v, want nil", err)
	}
	data, err := fs.ReadFile("scoped.txt")
	if err != nil {
		t.Fatalf("ReadFile(scoped.txt): got error %v, want nil", err)
	}
	if string(data) != "data" {
		t.Errorf("ReadFile(scoped.txt) = %q, want %q", data, "data")
	}
}

// TestMemoryFS_Constructor verifies NewMemory creates a valid filesystem.
func TestMemoryFS_Constructor(t *testing.T) {
	fs := NewMemory()
	if fs == nil {
		t.Fatal("NewMemory() returned nil")
	}
	if fs.bfs == nil {
		t.Error("NewMemory() bfs field is nil")
	}
	if fs.readOnly == nil {
		t.Error("NewMemory() readOnly map is nil")
	}
}

// TestLocalFS_Type verifies LocalFS returns FSTypeLocal.
func TestLocalFS_Type(t *testing.T) {
	fs := NewLocal()
	if fsType := fs.Type(); fsType != core.FSTypeLocal {
		t.Errorf("LocalFS.Type() = %v, want %v", fsType, core.FSTypeLocal)
	}
}

// TestMemoryFS_Type verifies MemoryFS returns FSTypeMemory.
func TestMemoryFS_Type(t *testing.T) {
	fs := NewMemory()
	if fsType := fs.Type(); fsType != core.FSTypeMemory {
		t.Errorf("MemoryFS.Type() = %v, want %v", fsType, core.FSTypeMemory)
	}
}

// TestMemoryFS_BasicOperations verifies basic read/write operations work.
func TestMemoryFS_BasicOperations(t *testing.T) {
	fs := NewMemory()

	testData := []byte("Hello, World!")
	if err := fs.WriteFile("test.txt", testData, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := fs.ReadFile("test.txt")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != string(testData) {
		t.Errorf("ReadFile() = %q, want %q", data, testData)
	}

	info, err := fs.Stat("test.txt")
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() {
		t.Error("Stat() IsDir() = true, want false")
	}
	if info.Size() != int64(len(testData)) {
		t.Errorf("Stat() Size() = %d, want %d", info.Size(), len(testData))
	}

	exists, err := fs.Exists("test.txt")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists(test.txt) = false, want true")
	}
	exists, err = fs.Exists("missing.txt")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists(missing.txt) = true, want false")
	}
}

// TestMemoryFS_RemoveAll verifies recursive removal of a directory tree.
func TestMemoryFS_RemoveAll(t *testing.T) {
	fs := NewMemory()

	if err := fs.WriteFile("tree/a.txt", []byte("a"), 0o644); err != nil {
		t.Fatalf("WriteFile(tree/a.txt): setup failed: %v", err)
	}
	if err := fs.WriteFile("tree/sub/b.txt", []byte("b"), 0o644); err != nil {
		t.Fatalf("WriteFile(tree/sub/b.txt): setup failed: %v", err)
	}

	if err := fs.RemoveAll("tree"); err != nil {
		t.Fatalf("RemoveAll(tree): got error %v, want nil", err)
	}
	exists, err := fs.Exists("tree")
	if err != nil {
		t.Fatalf("Exists(tree): got error %v, want nil", err)
	}
	if exists {
		t.Error("Exists(tree) = true after RemoveAll, want false")
	}

	// RemoveAll on a nonexistent path is not an error.
	if err := fs.RemoveAll("no-such-tree"); err != nil {
		t.Errorf("RemoveAll(no-such-tree): got error %v, want nil", err)
	}
}

// TestMemoryFS_Conformance runs the facade conformance suite against the
// in-memory backend.
func TestMemoryFS_Conformance(t *testing.T) {
	fstest.TestSuite(t, func() core.FS {
		return NewMemory()
	})
}

// TestLocalFS_Conformance runs the facade conformance suite against the
// local backend scoped to a fresh temporary directory.
func TestLocalFS_Conformance(t *testing.T) {
	fstest.TestSuite(t, func() core.FS {
		return NewLocal(WithRoot(t.TempDir()))
	})
}
