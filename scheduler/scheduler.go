package scheduler

import (
	"context"
	"sync/atomic"

	"github.com/infinivision/suffine/block"
	"github.com/infinivision/suffine/disk"
	"github.com/infinivision/suffine/run"
	"golang.org/x/sync/errgroup"
)

func New(text []byte, d disk.Disk, cfg Config) *scheduler {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &scheduler{text: text, d: d, cfg: cfg}
}

// Peak is the largest number of positions held in memory at once while
// sorting.
func (s *scheduler) Peak() int64 {
	return atomic.LoadInt64(&s.peak)
}

func (s *scheduler) Spilled() int {
	return s.spilled
}

// Run sorts every block, at most Workers at a time, and returns one run per
// block in block order. Spilled blocks release their memory as soon as they
// are on disk. Once a block fails the blocks not yet started are skipped.
func (s *scheduler) Run(bs []block.Block) ([]run.Run, error) {
	eg, ctx := errgroup.WithContext(context.Background())

	ps := make([][]uint64, len(bs))
	ss := make([]disk.Spill, len(bs))
	eg.SetLimit(s.cfg.Workers)
	for i := range bs {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.add(int64(bs[i].Len()))
			xs := block.Sort(s.text, bs[i])
			if !s.cfg.Spill {
				ps[i] = xs
				return nil
			}
			sp, err := s.d.Write(xs, s.cfg.Width)
			s.add(-int64(bs[i].Len()))
			if err != nil {
				return err
			}
			ss[i] = sp
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	rs := make([]run.Run, 0, len(bs))
	for i := range bs {
		if !s.cfg.Spill {
			rs = append(rs, run.NewMemory(ps[i]))
			continue
		}
		r, err := run.NewFile(s.d, ss[i], s.cfg.ReadAhead)
		if err != nil {
			for _, r := range rs {
				r.Close()
			}
			return nil, err
		}
		rs = append(rs, r)
		s.spilled++
	}
	return rs, nil
}

func (s *scheduler) add(n int64) {
	curr := atomic.AddInt64(&s.cnt, n)
	for {
		peak := atomic.LoadInt64(&s.peak)
		if curr <= peak || atomic.CompareAndSwapInt64(&s.peak, peak, curr) {
			return
		}
	}
}
