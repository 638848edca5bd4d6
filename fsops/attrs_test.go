package fsops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/igitur/treetrim/fs/billy"
	"github.com/igitur/treetrim/fs/core"
	"github.com/igitur/treetrim/fsops"
)

func TestReadOnlyFlagLifecycle(t *testing.T) {
	ops := newMemOps(t)
	require.NoError(t, ops.FS().WriteFile("f.txt", []byte("x"), 0o644))

	readOnly, err := ops.IsReadOnly("f.txt")
	require.NoError(t, err)
	require.False(t, readOnly)

	require.NoError(t, ops.SetReadOnly("f.txt", true))
	readOnly, err = ops.IsReadOnly("f.txt")
	require.NoError(t, err)
	require.True(t, readOnly)

	require.NoError(t, ops.SetReadOnly("f.txt", false))
	readOnly, err = ops.IsReadOnly("f.txt")
	require.NoError(t, err)
	require.False(t, readOnly)
}

func TestSetReadOnly_Idempotent(t *testing.T) {
	ops := newMemOps(t)
	require.NoError(t, ops.FS().WriteFile("f.txt", []byte("x"), 0o644))

	// Matching the current state is never an error.
	require.NoError(t, ops.SetReadOnly("f.txt", false))
	require.NoError(t, ops.SetReadOnly("f.txt", true))
	require.NoError(t, ops.SetReadOnly("f.txt", true))
}

func TestAttributes_NotExist(t *testing.T) {
	ops := newMemOps(t)

	_, err := ops.IsReadOnly("nowhere.txt")
	require.ErrorIs(t, err, core.ErrNotExist)

	err = ops.SetReadOnly("nowhere.txt", true)
	require.ErrorIs(t, err, core.ErrNotExist)
}

// bareFS hides the backend's attribute capability behind the plain core.FS
// interface set.
type bareFS struct {
	core.FS
}

func TestAttributes_UnsupportedBackend(t *testing.T) {
	ops := fsops.New(bareFS{billy.NewMemory()})

	_, err := ops.IsReadOnly("f.txt")
	require.ErrorIs(t, err, core.ErrUnsupported)

	err = ops.SetReadOnly("f.txt", true)
	require.ErrorIs(t, err, core.ErrUnsupported)
}
