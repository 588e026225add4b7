package block

import (
	"github.com/infinivision/suffine/suffix"
	"golang.org/x/exp/slices"
)

// Split cuts positions [0, n) into consecutive blocks of at most size
// positions. The last block may be shorter.
func Split(n, size int) []Block {
	if n <= 0 || size <= 0 {
		return nil
	}
	bs := make([]Block, 0, (n+size-1)/size)
	for begin := 0; begin < n; begin += size {
		end := begin + size
		if end > n || end < begin {
			end = n
		}
		bs = append(bs, Block{uint64(begin), uint64(end)})
	}
	return bs
}

// Sort returns the positions of b ordered by their suffixes of the whole
// text, so runs of different blocks agree on the order.
func Sort(text []byte, b Block) []uint64 {
	ps := make([]uint64, 0, b.Len())
	for p := b.Begin; p < b.End; p++ {
		ps = append(ps, p)
	}
	slices.SortFunc(ps, func(x, y uint64) int {
		return suffix.Compare(text, x, y)
	})
	return ps
}
