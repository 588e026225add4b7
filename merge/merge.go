/*
Package merge performs the k-way merge of sorted runs.

Every step pops the run whose head suffix is smallest, so a full merge of n
positions over k runs costs O(n log k) suffix comparisons. A comparison walks
the common prefix of two suffixes, which on highly repetitive text grows
towards the text length; that term dominates construction time on such
inputs and is left as is.
*/
package merge

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/infinivision/suffine/run"
	"github.com/infinivision/suffine/suffix"
)

// New starts a merge over rs. Ties between runs, which can only happen for
// a position compared with itself, go to the lower position. The iterator
// owns rs and closes them.
func New(text []byte, rs []run.Run) *iterator {
	itr := &iterator{text: text, rs: rs}
	itr.h = binaryheap.NewWith(func(a, b interface{}) int {
		return suffix.Ordered(text, a.(run.Run).Position(), b.(run.Run).Position())
	})
	for _, r := range rs {
		if r.Valid() {
			itr.h.Push(r)
		}
	}
	itr.pop()
	return itr
}

func (itr *iterator) Valid() bool {
	return itr.cur != nil
}

func (itr *iterator) Position() uint64 {
	return itr.cur.Position()
}

func (itr *iterator) Next() error {
	if itr.cur == nil {
		return nil
	}
	if err := itr.cur.Next(); err != nil {
		itr.cur = nil
		return err
	}
	if itr.cur.Valid() {
		itr.h.Push(itr.cur)
	}
	itr.pop()
	return nil
}

func (itr *iterator) Close() error {
	var first error
	for _, r := range itr.rs {
		if err := r.Close(); err != nil && first == nil {
			first = err
		}
	}
	itr.cur = nil
	itr.h.Clear()
	return first
}

func (itr *iterator) pop() {
	if v, ok := itr.h.Pop(); ok {
		itr.cur = v.(run.Run)
	} else {
		itr.cur = nil
	}
}
