package codec

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/infinivision/suffine/constant"
	"github.com/infinivision/suffine/errmsg"
)

// Width is the number of bytes needed to store any position of a text of
// length n.
func Width(n int) int {
	if uint64(n) <= constant.MaxNarrowText {
		return constant.NarrowWidth
	}
	return constant.WideWidth
}

// Len returns how many positions of the given width buf holds.
func Len(buf []byte, width int) (int, error) {
	if len(buf)%width != 0 {
		return 0, errmsg.MalformedLength
	}
	return len(buf) / width, nil
}

func Put(buf []byte, width int, v uint64) {
	switch width {
	case constant.NarrowWidth:
		binary.NativeEndian.PutUint32(buf, uint32(v))
	default:
		binary.NativeEndian.PutUint64(buf, v)
	}
}

func Get(buf []byte, width int) uint64 {
	switch width {
	case constant.NarrowWidth:
		return uint64(binary.NativeEndian.Uint32(buf))
	default:
		return binary.NativeEndian.Uint64(buf)
	}
}

// At returns the i-th position of an encoded array.
func At(buf []byte, width, i int) uint64 {
	return Get(buf[i*width:], width)
}

// Append encodes v onto buf.
func Append(buf []byte, width int, v uint64) []byte {
	var tmp [8]byte
	Put(tmp[:], width, v)
	return append(buf, tmp[:width]...)
}

func NewWriter(w io.Writer, width, size int) *writer {
	if size <= 0 {
		size = constant.WriteBufferSize
	}
	return &writer{width: width, w: bufio.NewWriterSize(w, size)}
}

func (w *writer) Count() int {
	return w.n
}

func (w *writer) Write(v uint64) error {
	Put(w.buf[:], w.width, v)
	if _, err := w.w.Write(w.buf[:w.width]); err != nil {
		return errmsg.Wrap(err, "write position")
	}
	w.n++
	return nil
}

func (w *writer) Flush() error {
	return errmsg.Wrap(w.w.Flush(), "flush positions")
}
