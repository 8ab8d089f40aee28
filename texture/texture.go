package texture

import (
	"fmt"

	"github.com/echoflaresat/spheretracer/vectors"
)

// Sampler is the lookup contract spheres use for surface color.
// u and v are expected in [0,1]; values outside are clamped to the edge texels.
type Sampler interface {
	Sample(u, v float64) vectors.Vec3
}

// Texture is an immutable grid of RGB samples, row-major (y then x).
type Texture struct {
	Width   int
	Height  int
	samples []vectors.Vec3
}

// New wraps samples as a Width×Height texture. The slice is not copied
// and must not be modified afterwards.
func New(width, height int, samples []vectors.Vec3) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadHeader, width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("texture %dx%d needs %d samples, got %d", width, height, width*height, len(samples))
	}
	return &Texture{Width: width, Height: height, samples: samples}, nil
}

func (t *Texture) Size() (width, height int) {
	return t.Width, t.Height
}

// Sample returns the nearest texel to (u, v). No interpolation.
func (t *Texture) Sample(u, v float64) vectors.Vec3 {
	return t.At(texelIndex(u, t.Width), texelIndex(v, t.Height))
}

// At returns the texel at (x, y), clamping both indices into range.
func (t *Texture) At(x, y int) vectors.Vec3 {
	if x < 0 {
		x = 0
	} else if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.Height {
		y = t.Height - 1
	}
	return t.samples[y*t.Width+x]
}

// texelIndex maps f in [0,1] to a texel index in [0, n-1].
func texelIndex(f float64, n int) int {
	x := f * float64(n)
	// NaN and negatives land on the first texel
	if !(x > 0) {
		return 0
	}
	if x >= float64(n) {
		return n - 1
	}
	return int(x)
}
