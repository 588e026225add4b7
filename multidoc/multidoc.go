package multidoc

import (
	"bytes"
	"encoding/binary"
	"io"
	"sort"

	"github.com/infinivision/suffine/codec"
	"github.com/infinivision/suffine/constant"
	"github.com/infinivision/suffine/errmsg"
	"github.com/infinivision/suffine/index"
)

// Build scans the text of idx once, left to right, for non-overlapping
// occurrences of delim.
func Build(idx *index.Index, delim []byte) (*Index, error) {
	if len(delim) == 0 {
		return nil, errmsg.InvalidDelimiter
	}
	text := idx.Text()
	m := &Index{idx: idx, delim: len(delim), bs: []uint64{0}}
	for o := 0; ; {
		i := bytes.Index(text[o:], delim)
		if i < 0 {
			break
		}
		o += i + len(delim)
		if o == len(text) {
			m.trailing = true
			break
		}
		m.bs = append(m.bs, uint64(o))
	}
	return m, nil
}

func (m *Index) Index() *index.Index {
	return m.idx
}

func (m *Index) Docs() int {
	return len(m.bs)
}

// Boundaries returns the first offset of every document.
func (m *Index) Boundaries() []uint64 {
	return m.bs
}

// Doc returns the bytes of document id without its delimiter.
func (m *Index) Doc(id int) ([]byte, bool) {
	if id < 0 || id >= len(m.bs) {
		return nil, false
	}
	text := m.idx.Text()
	end := uint64(len(text))
	switch {
	case id+1 < len(m.bs):
		end = m.bs[id+1] - uint64(m.delim)
	case m.trailing:
		end -= uint64(m.delim)
	}
	return text[m.bs[id]:end], true
}

// Locate maps a text offset to its document and the offset inside it.
func (m *Index) Locate(p uint64) (int, uint64) {
	doc := sort.Search(len(m.bs), func(i int) bool { return m.bs[i] > p }) - 1
	return doc, p - m.bs[doc]
}

func (m *Index) DocPositions(q []byte) *iterator {
	lo, hi := m.idx.Range(q)
	itr := &iterator{i: lo, hi: hi, m: m}
	itr.load()
	return itr
}

func (itr *iterator) Valid() bool {
	return itr.i < itr.hi
}

func (itr *iterator) Next() {
	if itr.i < itr.hi {
		itr.i++
		itr.load()
	}
}

func (itr *iterator) DocID() int {
	return itr.doc
}

func (itr *iterator) Offset() uint64 {
	return itr.off
}

func (itr *iterator) load() {
	if itr.i < itr.hi {
		itr.doc, itr.off = itr.m.Locate(itr.m.idx.At(itr.i))
	}
}

// WriteTo writes the suffix array, the document boundaries at the same
// width, and a footer of four native-order 64-bit words: array length,
// boundary count, delimiter length and flags.
func (m *Index) WriteTo(w io.Writer) (int64, error) {
	var buf []byte

	n, err := m.idx.WriteTo(w)
	if err != nil {
		return n, err
	}
	width := m.idx.Width()
	for _, b := range m.bs {
		buf = codec.Append(buf, width, b)
	}
	var flags uint64
	if m.trailing {
		flags |= constant.TrailingDelim
	}
	for _, v := range []uint64{uint64(m.idx.Len()), uint64(len(m.bs)), uint64(m.delim), flags} {
		buf = binary.NativeEndian.AppendUint64(buf, v)
	}
	k, err := w.Write(buf)
	if err == nil && k != len(buf) {
		err = errmsg.WriteFailed
	}
	return n + int64(k), errmsg.Wrap(err, "write multi-document index")
}

// FromBytes loads the layout written by WriteTo. The suffix array part is
// borrowed from bs, as with index.FromBytes.
func FromBytes(text, bs []byte) (*Index, error) {
	if len(text) == 0 {
		return nil, errmsg.EmptyText
	}
	if len(bs) < constant.FooterSize {
		return nil, errmsg.MalformedLength
	}
	width := codec.Width(len(text))
	footer := bs[len(bs)-constant.FooterSize:]
	saLen := binary.NativeEndian.Uint64(footer)
	docs := binary.NativeEndian.Uint64(footer[8:])
	delim := binary.NativeEndian.Uint64(footer[16:])
	flags := binary.NativeEndian.Uint64(footer[24:])
	if saLen > uint64(len(text)) || docs == 0 || docs > uint64(len(text)) || delim == 0 {
		return nil, errmsg.MalformedLength
	}
	saSize := saLen * uint64(width)
	if saSize+docs*uint64(width)+constant.FooterSize != uint64(len(bs)) {
		return nil, errmsg.MalformedLength
	}
	idx, err := index.FromBytes(text, bs[:saSize])
	if err != nil {
		return nil, err
	}
	m := &Index{
		idx:      idx,
		delim:    int(delim),
		trailing: flags&constant.TrailingDelim != 0,
		bs:       make([]uint64, docs),
	}
	for i := range m.bs {
		m.bs[i] = codec.At(bs[saSize:], width, i)
	}
	if !m.valid() {
		return nil, errmsg.MalformedLength
	}
	return m, nil
}

// valid checks that the boundaries describe documents of text: the first
// starts at 0, each later one follows a whole delimiter, and all of them
// including a trailing delimiter fit inside text.
func (m *Index) valid() bool {
	n, d := uint64(len(m.idx.Text())), uint64(m.delim)
	if m.bs[0] != 0 || d > n {
		return false
	}
	for i := 1; i < len(m.bs); i++ {
		if m.bs[i] >= n || m.bs[i] < m.bs[i-1] || m.bs[i]-m.bs[i-1] < d {
			return false
		}
	}
	return !m.trailing || m.bs[len(m.bs)-1]+d <= n
}
