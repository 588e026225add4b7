// Package mmap maps whole files read-only, for texts and indexes that are
// larger than memory.
package mmap

import (
	"os"

	"github.com/infinivision/suffine/errmsg"
	"golang.org/x/sys/unix"
)

// Map maps the file at path. An empty file maps to an empty, unmapped
// slice. The returned bytes stay valid until Unmap.
func Map(path string) ([]byte, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, errmsg.Wrap(err, "open "+path)
	}
	defer fp.Close()
	st, err := fp.Stat()
	if err != nil {
		return nil, errmsg.Wrap(err, "stat "+path)
	}
	if st.Size() == 0 {
		return []byte{}, nil
	}
	buf, err := unix.Mmap(int(fp.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errmsg.Wrap(err, "mmap "+path)
	}
	// suffix comparisons jump around the text; the hint is advisory, so a
	// refusal only costs read-ahead tuning
	_ = unix.Madvise(buf, unix.MADV_RANDOM)
	return buf, nil
}

func Unmap(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return errmsg.Wrap(unix.Munmap(buf), "munmap")
}
