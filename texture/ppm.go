package texture

import (
	"fmt"
	"io"

	"github.com/echoflaresat/spheretracer/vectors"
)

// maxHeaderSize bounds how far into the file we look for the P6 header.
const maxHeaderSize = 4096

type ppmHeader struct {
	Width, Height int
	MaxVal        int
	DataOffset    int64
}

// DecodePPM reads a binary P6 raster of the given size from r.
// Samples are divided by maxval into [0,1].
func DecodePPM(r io.ReaderAt, size int64) (*Texture, error) {
	headLen := size
	if headLen > maxHeaderSize {
		headLen = maxHeaderSize
	}
	head := make([]byte, headLen)
	if _, err := r.ReadAt(head, 0); err != nil && err != io.EOF {
		return nil, err
	}

	hdr, err := parsePPMHeader(head)
	if err != nil {
		return nil, err
	}

	bytesPerSample := 1
	if hdr.MaxVal > 255 {
		bytesPerSample = 2
	}
	need := int64(hdr.Width) * int64(hdr.Height) * 3 * int64(bytesPerSample)
	if size-hdr.DataOffset < need {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, need, size-hdr.DataOffset)
	}

	data := make([]byte, need)
	if _, err := r.ReadAt(data, hdr.DataOffset); err != nil && err != io.EOF {
		return nil, err
	}

	maxVal := float64(hdr.MaxVal)
	channel := func(i int) float64 {
		if bytesPerSample == 2 {
			return float64(int(data[2*i])<<8|int(data[2*i+1])) / maxVal
		}
		return float64(data[i]) / maxVal
	}

	samples := make([]vectors.Vec3, hdr.Width*hdr.Height)
	for i := range samples {
		samples[i] = vectors.Vec3{X: channel(3 * i), Y: channel(3*i + 1), Z: channel(3*i + 2)}
	}
	return New(hdr.Width, hdr.Height, samples)
}

func parsePPMHeader(buf []byte) (ppmHeader, error) {
	if len(buf) < 2 || buf[0] != 'P' || buf[1] != '6' {
		return ppmHeader{}, ErrBadMagic
	}
	if len(buf) > 2 && !isSpace(buf[2]) && buf[2] != '#' {
		return ppmHeader{}, ErrBadMagic
	}

	pos := 2
	next := func(name string) (int, error) {
		// skip whitespace and comments
		for pos < len(buf) {
			c := buf[pos]
			if c == '#' {
				for pos < len(buf) && buf[pos] != '\n' {
					pos++
				}
				continue
			}
			if !isSpace(c) {
				break
			}
			pos++
		}
		start := pos
		n := 0
		for pos < len(buf) && buf[pos] >= '0' && buf[pos] <= '9' {
			n = n*10 + int(buf[pos]-'0')
			if n > 1<<30 {
				return 0, fmt.Errorf("%w: %s too large", ErrBadHeader, name)
			}
			pos++
		}
		if pos == start {
			return 0, fmt.Errorf("%w: missing %s", ErrBadHeader, name)
		}
		return n, nil
	}

	var hdr ppmHeader
	var err error
	if hdr.Width, err = next("width"); err != nil {
		return ppmHeader{}, err
	}
	if hdr.Height, err = next("height"); err != nil {
		return ppmHeader{}, err
	}
	if hdr.MaxVal, err = next("maxval"); err != nil {
		return ppmHeader{}, err
	}

	// exactly one whitespace byte separates the header from the pixels
	if pos >= len(buf) || !isSpace(buf[pos]) {
		return ppmHeader{}, fmt.Errorf("%w: no separator after maxval", ErrBadHeader)
	}
	hdr.DataOffset = int64(pos + 1)

	if hdr.Width <= 0 || hdr.Height <= 0 {
		return ppmHeader{}, fmt.Errorf("%w: invalid dimensions %dx%d", ErrBadHeader, hdr.Width, hdr.Height)
	}
	if hdr.MaxVal <= 0 || hdr.MaxVal > 65535 {
		return ppmHeader{}, fmt.Errorf("%w: maxval %d out of range", ErrBadHeader, hdr.MaxVal)
	}
	return hdr, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
