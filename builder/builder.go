package builder

import (
	"bytes"
	"io"
	"os"

	"github.com/infinivision/suffine/block"
	"github.com/infinivision/suffine/codec"
	"github.com/infinivision/suffine/constant"
	"github.com/infinivision/suffine/disk"
	"github.com/infinivision/suffine/errmsg"
	"github.com/infinivision/suffine/index"
	"github.com/infinivision/suffine/merge"
	"github.com/infinivision/suffine/scheduler"
	"github.com/nnsgmsone/damrey/logger"
	"github.com/spf13/afero"
)

func DefaultConfig() Config {
	return Config{
		BlockSize:   constant.DefaultBlockSize,
		Workers:     constant.DefaultWorkers,
		Spill:       true,
		ReadAhead:   constant.ReadAheadSize,
		WriteBuffer: constant.WriteBufferSize,
		TempDir:     os.TempDir(),
		Fs:          afero.NewOsFs(),
		LogWriter:   os.Stderr,
	}
}

// New returns a Builder over text. Text must stay unchanged until every
// Index built from it is dropped.
func New(text []byte, cfg Config) *builder {
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.LogWriter == nil {
		cfg.LogWriter = os.Stderr
	}
	return &builder{
		cfg:  cfg,
		text: text,
		log:  logger.New(cfg.LogWriter, constant.LogPrefix),
	}
}

func (b *builder) Build() (*index.Index, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer

	buf.Grow(len(b.text) * codec.Width(len(b.text)))
	if _, err := b.BuildToSink(&buf); err != nil {
		return nil, err
	}
	return index.FromBytes(b.text, buf.Bytes())
}

// BuildToSink streams the suffix array into w, one fixed-width native-order
// position at a time, without ever holding the whole array. A failing w
// aborts the build; nothing is retried.
func (b *builder) BuildToSink(w io.Writer) (Stats, error) {
	if err := b.check(); err != nil {
		return Stats{}, err
	}
	bs := block.Split(len(b.text), b.cfg.BlockSize)
	st := Stats{Blocks: len(bs), Width: codec.Width(len(b.text))}
	d := disk.New(b.cfg.Fs, b.cfg.TempDir, b.cfg.WriteBuffer)
	defer func() {
		if err := d.Close(); err != nil {
			b.log.Errorf("builder - failed to remove spill files: %v\n", err)
		}
	}()
	schd := scheduler.New(b.text, d, scheduler.Config{
		Workers:   b.cfg.Workers,
		Spill:     b.cfg.Spill && len(bs) > 1,
		Width:     st.Width,
		ReadAhead: b.cfg.ReadAhead,
	})
	rs, err := schd.Run(bs)
	if err != nil {
		return st, err
	}
	st.Peak, st.Spilled = schd.Peak(), schd.Spilled()
	itr := merge.New(b.text, rs)
	defer func() {
		if err := itr.Close(); err != nil {
			b.log.Errorf("builder - failed to close runs: %v\n", err)
		}
	}()
	cw := codec.NewWriter(w, st.Width, b.cfg.WriteBuffer)
	for itr.Valid() {
		if err := cw.Write(itr.Position()); err != nil {
			return st, err
		}
		if err := itr.Next(); err != nil {
			return st, err
		}
	}
	if err := cw.Flush(); err != nil {
		return st, err
	}
	st.Positions = cw.Count()
	return st, nil
}

func (b *builder) check() error {
	switch {
	case len(b.text) == 0:
		return errmsg.EmptyText
	case b.cfg.BlockSize <= 0:
		return errmsg.InvalidBlockSize
	case b.cfg.Workers <= 0:
		return errmsg.InvalidWorkers
	}
	return nil
}
