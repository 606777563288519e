package transfer

import (
	"errors"
	"fmt"
)

// ErrDestinationExists is returned when the target already holds a file of
// the same name and overwrite is disabled
var ErrDestinationExists = errors.New("destination already exists")

// CopyError identifies the input file that stopped a copy batch
type CopyError struct {
	Path string // source path of the failed file
	Dest string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s to %s: %v", e.Path, e.Dest, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// FailedPath returns the source path carried by a *CopyError in err's chain,
// or "" when there is none
func FailedPath(err error) string {
	var copyErr *CopyError
	if errors.As(err, &copyErr) {
		return copyErr.Path
	}
	return ""
}
