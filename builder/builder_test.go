package builder

import (
	"bytes"
	"errors"
	"io"
	"sort"
	"testing"

	"github.com/infinivision/suffine/codec"
	"github.com/infinivision/suffine/errmsg"
	"github.com/infinivision/suffine/index"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const spillDir = "/spill"

var errSink = errors.New("disk full")

type limitWriter struct {
	n int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		k := w.n
		w.n = 0
		return k, errSink
	}
	w.n -= len(p)
	return len(p), nil
}

func testConfig(blockSize int) Config {
	cfg := DefaultConfig()
	cfg.BlockSize = blockSize
	cfg.TempDir = spillDir
	cfg.Fs = afero.NewMemMapFs()
	cfg.LogWriter = io.Discard
	return cfg
}

func naive(text []byte) []uint64 {
	ps := make([]uint64, len(text))
	for i := range ps {
		ps[i] = uint64(i)
	}
	sort.Slice(ps, func(i, j int) bool {
		return bytes.Compare(text[ps[i]:], text[ps[j]:]) < 0
	})
	return ps
}

func decode(buf []byte, width int) []uint64 {
	ps := make([]uint64, len(buf)/width)
	for i := range ps {
		ps[i] = codec.At(buf, width, i)
	}
	return ps
}

func TestBuildErrors(t *testing.T) {
	_, err := New(nil, testConfig(16)).Build()
	require.Equal(t, errmsg.EmptyText, err)
	_, err = New([]byte("abc"), testConfig(0)).Build()
	require.Equal(t, errmsg.InvalidBlockSize, err)
	_, err = New([]byte("abc"), testConfig(-1)).BuildToSink(io.Discard)
	require.Equal(t, errmsg.InvalidBlockSize, err)

	cfg := testConfig(16)
	cfg.Workers = 0
	_, err = New([]byte("abc"), cfg).Build()
	require.Equal(t, errmsg.InvalidWorkers, err)
}

func TestBuildScream(t *testing.T) {
	text := []byte("I scream, you scream, we all scream for ice cream!")
	idx, err := New(text, testConfig(1<<20)).Build()
	require.NoError(t, err)
	require.Equal(t, []uint64{30, 44, 15, 3}, idx.Positions([]byte("cream")))
}

func TestBuildBlockSizes(t *testing.T) {
	text := []byte("I scream, you scream, we all scream for ice cream!")
	want := naive(text)
	for _, size := range []int{1, 2, 7, len(text) - 1, len(text), len(text) + 1, 1 << 20} {
		for _, spill := range []bool{false, true} {
			cfg := testConfig(size)
			cfg.Spill = spill
			cfg.Workers = 3
			var buf bytes.Buffer
			st, err := New(text, cfg).BuildToSink(&buf)
			require.NoError(t, err)
			require.Equal(t, len(text), st.Positions)
			require.Equal(t, want, decode(buf.Bytes(), st.Width), "block %d spill %v", size, spill)
		}
	}
}

func TestBuildToSinkStats(t *testing.T) {
	text := bytes.Repeat([]byte("abracadabra "), 20)
	cfg := testConfig(16)
	cfg.Workers = 2

	var buf bytes.Buffer
	st, err := New(text, cfg).BuildToSink(&buf)
	require.NoError(t, err)
	require.Equal(t, len(text), st.Positions)
	require.Equal(t, (len(text)+15)/16, st.Blocks)
	require.Equal(t, st.Blocks, st.Spilled)
	require.Equal(t, 4, st.Width)
	require.Equal(t, len(text)*st.Width, buf.Len())
	require.LessOrEqual(t, st.Peak, int64(cfg.Workers*cfg.BlockSize))

	fis, err := afero.ReadDir(cfg.Fs, spillDir)
	require.NoError(t, err)
	require.Empty(t, fis, "spill files left behind")
}

func TestBuildSingleBlockDoesNotSpill(t *testing.T) {
	cfg := testConfig(1 << 20)
	st, err := New([]byte("abc"), cfg).BuildToSink(io.Discard)
	require.NoError(t, err)
	require.Equal(t, 1, st.Blocks)
	require.Zero(t, st.Spilled)
}

func TestBuildToSinkFails(t *testing.T) {
	text := bytes.Repeat([]byte("xyz"), 100)
	cfg := testConfig(32)
	cfg.WriteBuffer = 16
	_, err := New(text, cfg).BuildToSink(&limitWriter{n: 40})
	require.True(t, errmsg.IsIo(err))
	require.ErrorIs(t, err, errSink)

	fis, err := afero.ReadDir(cfg.Fs, spillDir)
	require.NoError(t, err)
	require.Empty(t, fis)
}

func TestBuildDeterministic(t *testing.T) {
	text := []byte("to be or not to be, that is the question")
	var a, b bytes.Buffer
	_, err := New(text, testConfig(5)).BuildToSink(&a)
	require.NoError(t, err)
	_, err = New(text, testConfig(5)).BuildToSink(&b)
	require.NoError(t, err)
	require.Equal(t, a.Bytes(), b.Bytes())
}

func TestBuildProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.SliceOfN(rapid.ByteRange('a', 'c'), 1, 200).Draw(t, "text")
		cfg := testConfig(rapid.IntRange(1, 250).Draw(t, "block"))
		cfg.Workers = rapid.IntRange(1, 4).Draw(t, "workers")
		cfg.Spill = rapid.Bool().Draw(t, "spill")

		var buf bytes.Buffer
		st, err := New(text, cfg).BuildToSink(&buf)
		require.NoError(t, err)
		sa := decode(buf.Bytes(), st.Width)
		require.Equal(t, naive(text), sa)

		seen := make([]bool, len(text))
		for i, p := range sa {
			require.False(t, seen[p])
			seen[p] = true
			if i > 0 {
				require.Negative(t, bytes.Compare(text[sa[i-1]:], text[p:]))
			}
		}

		idx, err := New(text, testConfig(1<<20)).Build()
		require.NoError(t, err)
		loaded, err := index.FromBytes(text, buf.Bytes())
		require.NoError(t, err)
		lo := rapid.IntRange(0, len(text)-1).Draw(t, "lo")
		hi := rapid.IntRange(lo, len(text)).Draw(t, "hi")
		q := text[lo:hi]
		require.Equal(t, idx.Positions(q), loaded.Positions(q))
	})
}
