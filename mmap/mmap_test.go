package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/infinivision/suffine/errmsg"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text")
	require.NoError(t, os.WriteFile(path, []byte("hello, mapped world"), 0644))

	buf, err := Map(path)
	require.NoError(t, err)
	require.Equal(t, "hello, mapped world", string(buf))
	require.NoError(t, Unmap(buf))
}

func TestMapEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	buf, err := Map(path)
	require.NoError(t, err)
	require.Empty(t, buf)
	require.NoError(t, Unmap(buf))
}

func TestMapMissing(t *testing.T) {
	_, err := Map(filepath.Join(t.TempDir(), "missing"))
	require.True(t, errmsg.IsIo(err))
	require.ErrorIs(t, err, os.ErrNotExist)
}
