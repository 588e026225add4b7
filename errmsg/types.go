package errmsg

import "errors"

var (
	Io               = errors.New("io failure")
	NotExist         = errors.New("not exist")
	EmptyText        = errors.New("text is empty")
	ReadFailed       = errors.New("read failed")
	WriteFailed      = errors.New("write failed")
	InvalidWorkers   = errors.New("worker count must be positive")
	MalformedLength  = errors.New("index length is not a multiple of the position width")
	InvalidBlockSize = errors.New("block size must be positive")
	InvalidDelimiter = errors.New("delimiter cannot be empty")
)
