package builder

import (
	"io"

	"github.com/infinivision/suffine/index"
	"github.com/nnsgmsone/damrey/logger"
	"github.com/spf13/afero"
)

/*
Builder constructs the suffix array of one text. It holds no state between
calls, so one Builder may run several builds.
*/
type Builder interface {
	Build() (*index.Index, error)
	BuildToSink(io.Writer) (Stats, error)
}

type Config struct {
	BlockSize   int  // bytes of text sorted as one block
	Workers     int  // blocks sorted concurrently
	Spill       bool // keep sorted blocks on Fs instead of in memory
	ReadAhead   int  // buffer per spilled run during the merge
	WriteBuffer int  // buffer of the output and spill writers
	TempDir     string
	Fs          afero.Fs
	LogWriter   io.Writer
}

// Stats describes one finished build. Peak counts positions held in memory
// at once while sorting, eight bytes each; with spilling it never exceeds
// Workers*BlockSize. The merge adds ReadAhead bytes per spilled run.
type Stats struct {
	Positions int
	Blocks    int
	Spilled   int
	Width     int
	Peak      int64
}

type builder struct {
	cfg  Config
	text []byte
	log  logger.Log
}
