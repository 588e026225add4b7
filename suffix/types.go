package suffix

const (
	Less    = -1
	Equal   = 0
	Greater = 1
)
