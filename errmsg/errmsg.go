package errmsg

import "github.com/cockroachdb/errors"

// Wrap attaches msg to err and marks the result as an Io failure.
// A nil err stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, msg), Io)
}

func IsIo(err error) bool {
	return errors.Is(err, Io)
}
