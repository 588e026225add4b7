package codec

import "bufio"

// Writer streams positions as fixed-width native-order integers.
type Writer interface {
	Flush() error
	Count() int
	Write(uint64) error
}

type writer struct {
	n     int // positions written
	width int
	buf   [8]byte
	w     *bufio.Writer
}
