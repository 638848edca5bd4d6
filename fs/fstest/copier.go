package fstest

import (
	"errors"
	"testing"

	"github.com/igitur/treetrim/fs/core"
	"github.com/igitur/treetrim/fsops"
)

// TestCopier tests recursive folder copy: tree mirroring, overwrite
// semantics, destination creation, and the missing-source failure.
func TestCopier(t *testing.T, filesystem core.FS, config Config) {
	ops := fsops.New(filesystem)

	// Setup: a small tree with two files and a nested subfolder.
	if err := filesystem.WriteFile("src/f1.txt", []byte("one"), 0o644); err != nil {
		t.Fatalf("WriteFile(src/f1.txt): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("src/f2.txt", []byte("two"), 0o644); err != nil {
		t.Fatalf("WriteFile(src/f2.txt): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("src/sub/nested.txt", []byte("deep"), 0o644); err != nil {
		t.Fatalf("WriteFile(src/sub/nested.txt): setup failed: %v", err)
	}

	t.Run("MirrorsTree", func(t *testing.T) {
		skipIfConfigured(t, config, "Copier/MirrorsTree")
		if err := ops.CopyFolder("src", "dst"); err != nil {
			t.Fatalf("CopyFolder(src, dst): got error %v, want nil", err)
		}
		for path, want := range map[string]string{
			"dst/f1.txt":         "one",
			"dst/f2.txt":         "two",
			"dst/sub/nested.txt": "deep",
		} {
			data, err := filesystem.ReadFile(path)
			if err != nil {
				t.Errorf("ReadFile(%q): got error %v, want nil", path, err)
				continue
			}
			if string(data) != want {
				t.Errorf("ReadFile(%q) = %q, want %q", path, data, want)
			}
		}
	})

	t.Run("Overwrites", func(t *testing.T) {
		skipIfConfigured(t, config, "Copier/Overwrites")
		if err := filesystem.WriteFile("src/f1.txt", []byte("updated"), 0o644); err != nil {
			t.Fatalf("WriteFile(src/f1.txt): setup failed: %v", err)
		}
		if err := ops.CopyFolder("src", "dst"); err != nil {
			t.Fatalf("CopyFolder(src, dst): got error %v, want nil", err)
		}
		data, err := filesystem.ReadFile("dst/f1.txt")
		if err != nil {
			t.Fatalf("ReadFile(dst/f1.txt): got error %v, want nil", err)
		}
		if string(data) != "updated" {
			t.Errorf("ReadFile(dst/f1.txt) = %q, want %q (overwrite, not skip)", data, "updated")
		}
	})

	t.Run("SourceNotFound", func(t *testing.T) {
		skipIfConfigured(t, config, "Copier/SourceNotFound")
		err := ops.CopyFolder("no-such-source", "dst2")
		if !errors.Is(err, core.ErrSourceNotFound) {
			t.Errorf("CopyFolder(no-such-source, dst2): got error %v, want ErrSourceNotFound", err)
		}
	})
}
