package pipeline

import (
	"fmt"

	"github.com/pkg/errors"
)

// IOError reports a results source that could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("read results: %v", e.Err)
	}
	return fmt.Sprintf("read results %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// AsIOError attempts to unwrap an error into an IOError.
func AsIOError(err error) (*IOError, bool) {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ioErr, true
	}
	return nil, false
}

func ioError(path, op string, err error) error {
	return &IOError{Path: path, Err: errors.Wrap(err, op)}
}
