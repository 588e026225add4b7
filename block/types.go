package block

// Block is the half-open position range [Begin, End) sorted as one unit.
type Block struct {
	Begin uint64
	End   uint64
}

func (b Block) Len() int {
	return int(b.End - b.Begin)
}
