package texture

import (
	"errors"

	"golang.org/x/exp/mmap"
)

// Load reads the texture at path. Binary P6 rasters are decoded directly;
// anything else goes through the TIFF and image codecs.
// Every failure is a *LoadError.
func Load(path string) (*Texture, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "open", Err: err}
	}
	defer reader.Close()

	size := int64(reader.Len())
	tex, err := DecodePPM(reader, size)
	if err == nil {
		return tex, nil
	}
	if !errors.Is(err, ErrBadMagic) {
		return nil, &LoadError{Path: path, Reason: "decode P6", Err: err}
	}

	tex, err = decodeImage(path, reader, size)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "decode image", Err: err}
	}
	return tex, nil
}
