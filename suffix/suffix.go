/*
Package suffix implements the byte-wise suffix order shared by every stage of
index construction and lookup.

A suffix text[p:] is never copied. Bytes are compared forward from both
positions until a mismatch; when one suffix runs out first it is a proper
prefix of the other and sorts first.
*/
package suffix

import "bytes"

// Compare orders text[a:] against text[b:]. Positions must be <= len(text).
func Compare(text []byte, a, b uint64) int {
	if a == b {
		return Equal
	}
	return bytes.Compare(text[a:], text[b:])
}

// Ordered is Compare with the lower position winning ties. Distinct
// positions never tie, so this only fixes the order of a position with itself.
func Ordered(text []byte, a, b uint64) int {
	if r := Compare(text, a, b); r != Equal {
		return r
	}
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}

// CompareQuery orders text[p:] against q.
func CompareQuery(text []byte, p uint64, q []byte) int {
	return bytes.Compare(text[p:], q)
}

// HasPrefix reports whether q starts at p. A q running past the end of text
// never matches.
func HasPrefix(text []byte, p uint64, q []byte) bool {
	return bytes.HasPrefix(text[p:], q)
}
