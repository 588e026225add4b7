package multidoc

import "github.com/infinivision/suffine/index"

// Index splits the text of an index.Index into documents separated by a
// delimiter. Delimiter bytes belong to no document. A text ending with the
// delimiter has no trailing empty document.
type Index struct {
	trailing bool // text ends with the delimiter
	delim    int  // delimiter length
	bs       []uint64
	idx      *index.Index
}

// Iterator yields one (document, offset) pair per match, in suffix-array
// order. It cannot be restarted.
type Iterator interface {
	Next()
	Valid() bool
	DocID() int
	Offset() uint64
}

type iterator struct {
	i, hi int
	m     *Index
	doc   int
	off   uint64
}
