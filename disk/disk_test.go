package disk

import (
	"io"
	"testing"

	"github.com/infinivision/suffine/codec"
	"github.com/infinivision/suffine/constant"
	"github.com/infinivision/suffine/errmsg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestWriteOpen(t *testing.T) {
	fs := afero.NewMemMapFs()
	d := New(fs, "/spill", 0)
	defer d.Close()

	s, err := d.Write([]uint64{4, 2, 9}, constant.NarrowWidth)
	require.NoError(t, err)
	require.Equal(t, 3, s.Count)

	fp, err := d.Open(s)
	require.NoError(t, err)
	buf, err := io.ReadAll(fp)
	require.NoError(t, err)
	require.NoError(t, fp.Close())
	require.Len(t, buf, 12)
	require.Equal(t, uint64(9), codec.At(buf, constant.NarrowWidth, 2))
}

func TestRemove(t *testing.T) {
	fs := afero.NewMemMapFs()
	d := New(fs, "/spill", 0)

	s, err := d.Write([]uint64{1}, constant.WideWidth)
	require.NoError(t, err)
	require.NoError(t, d.Remove(s))
	ok, err := afero.Exists(fs, s.Name)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = d.Open(s)
	require.Equal(t, errmsg.NotExist, err)
	require.NoError(t, d.Remove(s))
}

func TestCloseRemovesLeftovers(t *testing.T) {
	fs := afero.NewMemMapFs()
	d := New(fs, "/spill", 0)
	for i := 0; i < 3; i++ {
		_, err := d.Write([]uint64{uint64(i)}, constant.NarrowWidth)
		require.NoError(t, err)
	}
	require.NoError(t, d.Close())
	fis, err := afero.ReadDir(fs, "/spill")
	require.NoError(t, err)
	require.Empty(t, fis)
}

func TestWriteFails(t *testing.T) {
	d := New(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/spill", 0)
	_, err := d.Write([]uint64{1}, constant.NarrowWidth)
	require.True(t, errmsg.IsIo(err))
}
