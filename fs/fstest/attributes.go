package fstest

import (
	"errors"
	"testing"

	"github.com/igitur/treetrim/fs/core"
	"github.com/igitur/treetrim/fsops"
)

// TestAttributes tests the read-only attribute store: flag lifecycle,
// idempotent setting, and the missing-file failure.
// Skips when the backend does not support attributes.
func TestAttributes(t *testing.T, filesystem core.FS, config Config) {
	if !config.SupportsAttributes {
		t.Skip("Attributes not supported")
	}
	if _, ok := filesystem.(core.AttributeFS); !ok {
		t.Fatal("config claims attribute support but backend does not implement core.AttributeFS")
	}
	ops := fsops.New(filesystem)

	if err := filesystem.WriteFile("f.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(f.txt): setup failed: %v", err)
	}

	t.Run("Lifecycle", func(t *testing.T) {
		skipIfConfigured(t, config, "Attributes/Lifecycle")
		readOnly, err := ops.IsReadOnly("f.txt")
		if err != nil {
			t.Fatalf("IsReadOnly(f.txt): got error %v, want nil", err)
		}
		if readOnly {
			t.Fatal("IsReadOnly(f.txt) = true for a fresh file, want false")
		}

		if err := ops.SetReadOnly("f.txt", true); err != nil {
			t.Fatalf("SetReadOnly(f.txt, true): got error %v, want nil", err)
		}
		readOnly, err = ops.IsReadOnly("f.txt")
		if err != nil {
			t.Fatalf("IsReadOnly(f.txt): got error %v, want nil", err)
		}
		if !readOnly {
			t.Error("IsReadOnly(f.txt) = false after SetReadOnly(true), want true")
		}

		if err := ops.SetReadOnly("f.txt", false); err != nil {
			t.Fatalf("SetReadOnly(f.txt, false): got error %v, want nil", err)
		}
		readOnly, err = ops.IsReadOnly("f.txt")
		if err != nil {
			t.Fatalf("IsReadOnly(f.txt): got error %v, want nil", err)
		}
		if readOnly {
			t.Error("IsReadOnly(f.txt) = true after SetReadOnly(false), want false")
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		skipIfConfigured(t, config, "Attributes/Idempotent")
		for _, readOnly := range []bool{false, false, true, true, false} {
			if err := ops.SetReadOnly("f.txt", readOnly); err != nil {
				t.Fatalf("SetReadOnly(f.txt, %v): got error %v, want nil", readOnly, err)
			}
		}
	})

	t.Run("NotExist", func(t *testing.T) {
		skipIfConfigured(t, config, "Attributes/NotExist")
		if _, err := ops.IsReadOnly("no-such-file.txt"); !errors.Is(err, core.ErrNotExist) {
			t.Errorf("IsReadOnly(no-such-file.txt): got error %v, want ErrNotExist", err)
		}
		if err := ops.SetReadOnly("no-such-file.txt", true); !errors.Is(err, core.ErrNotExist) {
			t.Errorf("SetReadOnly(no-such-file.txt, true): got error %v, want ErrNotExist", err)
		}
	})
}
