package run

import (
	"bufio"

	"github.com/infinivision/suffine/disk"
)

// Run yields the positions of one sorted block in suffix order. A run is
// consumed once, front to back.
type Run interface {
	Len() int
	Close() error
	Next() error
	Valid() bool
	Position() uint64
}

type memRun struct {
	ps []uint64
}

type fileRun struct {
	left  int // positions not yet read
	valid bool
	pos   uint64
	buf   []byte
	s     disk.Spill
	d     disk.Disk
	fp    disk.File
	r     *bufio.Reader
}
