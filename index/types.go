package index

// Index is an immutable suffix array bound to its text. It borrows both the
// text and the encoded array; neither may change or be unmapped while the
// Index is in use. Queries are safe for concurrent use.
type Index struct {
	n     int // array entries
	width int
	text  []byte
	sa    []byte // fixed-width native-order positions
}
