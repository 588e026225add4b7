package disk

import (
	"io"
	"sync"

	"github.com/spf13/afero"
)

// Spill names a sorted run written to the store.
type Spill struct {
	Name  string
	Count int // positions
	Width int
}

type File interface {
	io.ReadCloser
	Name() string
}

type Disk interface {
	Close() error
	Remove(Spill) error
	Open(Spill) (File, error)
	Write([]uint64, int) (Spill, error)
}

type disk struct {
	sync.Mutex
	dir  string
	bufs int // write buffer size
	fs   afero.Fs
	mp   map[string]struct{} // live spill files
}
