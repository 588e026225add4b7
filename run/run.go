package run

import (
	"bufio"
	"io"

	"github.com/infinivision/suffine/codec"
	"github.com/infinivision/suffine/constant"
	"github.com/infinivision/suffine/disk"
	"github.com/infinivision/suffine/errmsg"
)

// NewMemory wraps positions already held in memory.
func NewMemory(ps []uint64) *memRun {
	return &memRun{ps}
}

func (r *memRun) Len() int {
	return len(r.ps)
}

func (r *memRun) Close() error {
	r.ps = nil
	return nil
}

func (r *memRun) Next() error {
	if len(r.ps) > 0 {
		r.ps = r.ps[1:]
	}
	return nil
}

func (r *memRun) Valid() bool {
	return len(r.ps) > 0
}

func (r *memRun) Position() uint64 {
	return r.ps[0]
}

// NewFile opens a spilled run and reads its first position. Closing the run
// removes the spill file.
func NewFile(d disk.Disk, s disk.Spill, readAhead int) (*fileRun, error) {
	if readAhead <= 0 {
		readAhead = constant.ReadAheadSize
	}
	fp, err := d.Open(s)
	if err != nil {
		return nil, err
	}
	r := &fileRun{
		d:    d,
		s:    s,
		fp:   fp,
		left: s.Count,
		buf:  make([]byte, s.Width),
		r:    bufio.NewReaderSize(fp, readAhead),
	}
	if err := r.Next(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *fileRun) Len() int {
	return r.s.Count
}

func (r *fileRun) Close() error {
	r.valid = false
	if r.fp == nil {
		return nil
	}
	err := r.fp.Close()
	r.fp = nil
	if rerr := r.d.Remove(r.s); rerr != nil {
		return rerr
	}
	return errmsg.Wrap(err, "close spill file")
}

func (r *fileRun) Next() error {
	if r.left == 0 {
		r.valid = false
		return nil
	}
	switch n, err := io.ReadFull(r.r, r.buf); {
	case err == io.ErrUnexpectedEOF || err == io.EOF:
		r.valid = false
		return errmsg.Wrap(errmsg.ReadFailed, "spill file truncated")
	case err != nil:
		r.valid = false
		return errmsg.Wrap(err, "read spill file")
	case n != len(r.buf):
		r.valid = false
		return errmsg.Wrap(errmsg.ReadFailed, "short read")
	}
	r.pos = codec.Get(r.buf, r.s.Width)
	r.left--
	r.valid = true
	return nil
}

func (r *fileRun) Valid() bool {
	return r.valid
}

func (r *fileRun) Position() uint64 {
	return r.pos
}
