package wordlist

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrNoSources is returned when Collect is given an empty filename list.
var ErrNoSources = errors.New("no source files given")

// SourceError reports which source file failed and during which step.
type SourceError struct {
	Path string
	Op   string
	Err  error
}

func (e *SourceError) Error() string {
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) && pathErr.Path == e.Path {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
