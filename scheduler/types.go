package scheduler

import (
	"github.com/infinivision/suffine/block"
	"github.com/infinivision/suffine/disk"
	"github.com/infinivision/suffine/run"
)

type Scheduler interface {
	Peak() int64
	Spilled() int
	Run([]block.Block) ([]run.Run, error)
}

type Config struct {
	Workers   int
	Spill     bool // write each sorted block to disk before merging
	Width     int
	ReadAhead int
}

type scheduler struct {
	cnt     int64 // resident positions
	peak    int64
	spilled int
	cfg     Config
	text    []byte
	d       disk.Disk
}
