package merge

import (
	"sort"
	"testing"

	"github.com/infinivision/suffine/block"
	"github.com/infinivision/suffine/run"
	"github.com/stretchr/testify/require"
)

func naive(text []byte) []uint64 {
	ps := make([]uint64, len(text))
	for i := range ps {
		ps[i] = uint64(i)
	}
	sort.Slice(ps, func(i, j int) bool {
		return string(text[ps[i]:]) < string(text[ps[j]:])
	})
	return ps
}

func runs(text []byte, size int) []run.Run {
	var rs []run.Run
	for _, b := range block.Split(len(text), size) {
		rs = append(rs, run.NewMemory(block.Sort(text, b)))
	}
	return rs
}

func collect(t *testing.T, itr Iterator) []uint64 {
	var ps []uint64
	for itr.Valid() {
		ps = append(ps, itr.Position())
		require.NoError(t, itr.Next())
	}
	return ps
}

func TestMerge(t *testing.T) {
	text := []byte("mississippi")
	for _, size := range []int{1, 2, 3, 5, 11, 64} {
		itr := New(text, runs(text, size))
		require.Equal(t, naive(text), collect(t, itr), "block size %d", size)
		require.NoError(t, itr.Close())
	}
}

func TestMergeRepetitive(t *testing.T) {
	text := []byte("aaaaaaaaaaaaaaaaaaaa")
	itr := New(text, runs(text, 3))
	defer itr.Close()
	ps := collect(t, itr)
	for i, p := range ps {
		require.Equal(t, uint64(len(text)-1-i), p)
	}
}

func TestMergeEmpty(t *testing.T) {
	itr := New(nil, nil)
	require.False(t, itr.Valid())
	require.NoError(t, itr.Next())
	require.NoError(t, itr.Close())
}
