package constant

const (
	DefaultBlockSize = 256 << 20 // 256MB of text per block
	DefaultWorkers   = 1
)

const (
	ReadAheadSize   = 64 << 10 // per spilled run cursor
	WriteBufferSize = 64 << 10 // output and spill writers
)

const (
	NarrowWidth = 4
	WideWidth   = 8
)

const (
	MaxNarrowText = 1<<32 - 1 // longest text addressed with NarrowWidth positions
)

const (
	IndexSuffix   = ".suffine-index"
	SpillPattern  = "suffine-run-*.tmp"
	LogPrefix     = "suffine"
	FooterWords   = 4
	FooterSize    = FooterWords * WideWidth
	TrailingDelim = uint64(1)
)
