package errs_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/igitur/treetrim/fs/core"
	"github.com/igitur/treetrim/internal/errs"
	"github.com/stretchr/testify/require"
)

func TestPathError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		require.NoError(t, errs.PathError("read", "a.txt", nil))
	})

	t.Run("wraps op and path", func(t *testing.T) {
		err := errs.PathError("read", "a.txt", core.ErrNotExist)
		require.Error(t, err)

		var pathErr *fs.PathError
		require.True(t, errors.As(err, &pathErr))
		require.Equal(t, "read", pathErr.Op)
		require.Equal(t, "a.txt", pathErr.Path)
		require.ErrorIs(t, err, core.ErrNotExist)
	})
}

func TestPathErrorf(t *testing.T) {
	err := errs.PathErrorf("copy", "src", "bad state: %d", 42)
	require.Error(t, err)

	var pathErr *fs.PathError
	require.True(t, errors.As(err, &pathErr))
	require.Equal(t, "copy", pathErr.Op)
	require.Contains(t, err.Error(), "bad state: 42")
}

func TestAttribute(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		require.NoError(t, errs.Attribute("attr", "a.txt", nil))
	})

	t.Run("generic failure matches ErrAttribute", func(t *testing.T) {
		err := errs.Attribute("attr", "a.txt", errors.New("chmod failed"))
		require.ErrorIs(t, err, core.ErrAttribute)
	})

	t.Run("not-exist passes through", func(t *testing.T) {
		err := errs.Attribute("attr", "a.txt", core.ErrNotExist)
		require.ErrorIs(t, err, core.ErrNotExist)
		require.NotErrorIs(t, err, core.ErrAttribute)
	})

	t.Run("unsupported passes through", func(t *testing.T) {
		err := errs.Attribute("attr", "a.txt", core.ErrUnsupported)
		require.ErrorIs(t, err, core.ErrUnsupported)
		require.NotErrorIs(t, err, core.ErrAttribute)
	})
}
