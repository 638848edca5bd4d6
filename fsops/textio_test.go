package fsops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/igitur/treetrim/fs/core"
)

func TestWriteThenReadRoundTrip(t *testing.T) {
	ops := newMemOps(t)

	const contents = "line one\nline two\n"
	require.NoError(t, ops.WriteTextToFile("notes.txt", contents))

	got, err := ops.ReadAllText("notes.txt")
	require.NoError(t, err)
	require.Equal(t, contents, got)
}

func TestWriteTextToFile_Truncates(t *testing.T) {
	ops := newMemOps(t)

	require.NoError(t, ops.WriteTextToFile("f.txt", "a much longer original body"))
	require.NoError(t, ops.WriteTextToFile("f.txt", "short"))

	got, err := ops.ReadAllText("f.txt")
	require.NoError(t, err)
	require.Equal(t, "short", got)
}

func TestWriteTextToFile_ClearsReadOnly(t *testing.T) {
	ops := newMemOps(t)

	require.NoError(t, ops.WriteTextToFile("locked.txt", "original"))
	require.NoError(t, ops.SetReadOnly("locked.txt", true))

	// Writing to a protected file succeeds, and clearing the flag is an
	// observable side effect.
	require.NoError(t, ops.WriteTextToFile("locked.txt", "updated"))

	readOnly, err := ops.IsReadOnly("locked.txt")
	require.NoError(t, err)
	require.False(t, readOnly)

	got, err := ops.ReadAllText("locked.txt")
	require.NoError(t, err)
	require.Equal(t, "updated", got)
}

func TestReadAllText_NotExist(t *testing.T) {
	ops := newMemOps(t)

	_, err := ops.ReadAllText("nowhere.txt")
	require.ErrorIs(t, err, core.ErrNotExist)
}
