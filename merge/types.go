package merge

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/infinivision/suffine/run"
)

// Iterator yields the positions of all runs in global suffix order.
type Iterator interface {
	Close() error
	Next() error
	Valid() bool
	Position() uint64
}

type iterator struct {
	text []byte
	cur  run.Run
	rs   []run.Run
	h    *binaryheap.Heap
}
