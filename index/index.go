package index

import (
	"io"
	"sort"

	"github.com/infinivision/suffine/codec"
	"github.com/infinivision/suffine/errmsg"
	"github.com/infinivision/suffine/suffix"
)

// FromBytes binds an encoded suffix array to text without copying it. The
// element width follows from len(text). Only the length of bs is checked:
// the caller guarantees bs was built from this exact text, and a truncated
// array is not detected.
func FromBytes(text, bs []byte) (*Index, error) {
	if len(text) == 0 {
		return nil, errmsg.EmptyText
	}
	width := codec.Width(len(text))
	n, err := codec.Len(bs, width)
	if err != nil {
		return nil, err
	}
	if n > len(text) {
		return nil, errmsg.MalformedLength
	}
	return &Index{n: n, width: width, text: text, sa: bs}, nil
}

func (idx *Index) Len() int {
	return idx.n
}

func (idx *Index) Width() int {
	return idx.width
}

func (idx *Index) Text() []byte {
	return idx.text
}

// Bytes returns the encoded array as loaded or built.
func (idx *Index) Bytes() []byte {
	return idx.sa
}

func (idx *Index) At(i int) uint64 {
	return codec.At(idx.sa, idx.width, i)
}

// Range returns the half-open span of the array whose suffixes start with q.
// An empty q spans the whole array.
func (idx *Index) Range(q []byte) (int, int) {
	lo := sort.Search(idx.n, func(i int) bool {
		return suffix.CompareQuery(idx.text, idx.At(i), q) >= 0
	})
	hi := lo + sort.Search(idx.n-lo, func(i int) bool {
		return !suffix.HasPrefix(idx.text, idx.At(lo+i), q)
	})
	return lo, hi
}

func (idx *Index) Count(q []byte) int {
	lo, hi := idx.Range(q)
	return hi - lo
}

// Positions returns every offset where q occurs, in suffix-array order, not
// offset order.
func (idx *Index) Positions(q []byte) []uint64 {
	lo, hi := idx.Range(q)
	ps := make([]uint64, 0, hi-lo)
	for i := lo; i < hi; i++ {
		ps = append(ps, idx.At(i))
	}
	return ps
}

// WriteTo writes the array in the on-disk layout.
func (idx *Index) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(idx.sa)
	if err == nil && n != len(idx.sa) {
		err = errmsg.WriteFailed
	}
	return int64(n), errmsg.Wrap(err, "write index")
}
