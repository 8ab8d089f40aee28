package texture

import (
	"errors"
	"fmt"
)

var (
	ErrBadMagic  = errors.New("unrecognized texture format")
	ErrBadHeader = errors.New("invalid raster header")
	ErrTruncated = errors.New("truncated raster data")
)

// LoadError reports why the texture at Path could not be loaded.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("load texture %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("load texture %s: %s: %v", e.Path, e.Reason, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
