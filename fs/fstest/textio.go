package fstest

import (
	"errors"
	"testing"

	"github.com/igitur/treetrim/fs/core"
	"github.com/igitur/treetrim/fsops"
)

// TestTextIO tests whole-file text read/write, including the
// clear-read-only-before-write behavior.
func TestTextIO(t *testing.T, filesystem core.FS, config Config) {
	ops := fsops.New(filesystem)

	t.Run("RoundTrip", func(t *testing.T) {
		skipIfConfigured(t, config, "TextIO/RoundTrip")
		const contents = "alpha\nbeta\n"
		if err := ops.WriteTextToFile("notes.txt", contents); err != nil {
			t.Fatalf("WriteTextToFile(notes.txt): got error %v, want nil", err)
		}
		got, err := ops.ReadAllText("notes.txt")
		if err != nil {
			t.Fatalf("ReadAllText(notes.txt): got error %v, want nil", err)
		}
		if got != contents {
			t.Errorf("ReadAllText(notes.txt) = %q, want %q", got, contents)
		}
	})

	t.Run("WriteToReadOnlyFile", func(t *testing.T) {
		skipIfConfigured(t, config, "TextIO/WriteToReadOnlyFile")
		if !config.SupportsAttributes {
			t.Skip("Attributes not supported")
		}
		if err := ops.WriteTextToFile("locked.txt", "original"); err != nil {
			t.Fatalf("WriteTextToFile(locked.txt): setup failed: %v", err)
		}
		if err := ops.SetReadOnly("locked.txt", true); err != nil {
			t.Fatalf("SetReadOnly(locked.txt): setup failed: %v", err)
		}

		// The write succeeds and the flag is cleared as a side effect.
		if err := ops.WriteTextToFile("locked.txt", "updated"); err != nil {
			t.Fatalf("WriteTextToFile(locked.txt): got error %v, want nil", err)
		}
		readOnly, err := ops.IsReadOnly("locked.txt")
		if err != nil {
			t.Fatalf("IsReadOnly(locked.txt): got error %v, want nil", err)
		}
		if readOnly {
			t.Error("IsReadOnly(locked.txt) = true, want false after write")
		}
		got, err := ops.ReadAllText("locked.txt")
		if err != nil {
			t.Fatalf("ReadAllText(locked.txt): got error %v, want nil", err)
		}
		if got != "updated" {
			t.Errorf("ReadAllText(locked.txt) = %q, want %q", got, "updated")
		}
	})

	t.Run("ReadNotExist", func(t *testing.T) {
		skipIfConfigured(t, config, "TextIO/ReadNotExist")
		_, err := ops.ReadAllText("no-such-file.txt")
		if !errors.Is(err, core.ErrNotExist) {
			t.Errorf("ReadAllText(no-such-file.txt): got error %v, want ErrNotExist", err)
		}
	})
}
