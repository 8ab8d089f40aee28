package colors

import (
	"image/color"

	"github.com/echoflaresat/spheretracer/vectors"
)

// FromStandardColor converts any color.Color into a unit-range RGB triple.
// Alpha is dropped after de-premultiplying.
func FromStandardColor(c color.Color) vectors.Vec3 {
	r16, g16, b16, a16 := c.RGBA()
	if a16 == 0 {
		return vectors.Zero()
	}

	invA := float64(0xFFFF) / float64(a16)
	return vectors.Vec3{
		X: float64(r16) * invA / 65535.0,
		Y: float64(g16) * invA / 65535.0,
		Z: float64(b16) * invA / 65535.0,
	}
}

// FromBytes maps 8-bit channels into [0,1].
func FromBytes(r, g, b byte) vectors.Vec3 {
	return vectors.Vec3{
		X: float64(r) / 255.0,
		Y: float64(g) / 255.0,
		Z: float64(b) / 255.0,
	}
}

// ToNRGBA returns the opaque 8-bit color for a radiance value.
func ToNRGBA(v vectors.Vec3) color.NRGBA {
	return color.NRGBA{
		R: To8bit(v.X),
		G: To8bit(v.Y),
		B: To8bit(v.Z),
		A: 255,
	}
}

// Clamp01 clamps each component into [0,1].
func Clamp01(v vectors.Vec3) vectors.Vec3 {
	return vectors.Vec3{X: clamp01(v.X), Y: clamp01(v.Y), Z: clamp01(v.Z)}
}

// To8bit returns int(255 * clamp01(x)), truncating toward zero.
// NaN maps to 0.
func To8bit(x float64) uint8 {
	return uint8(255.0 * clamp01(x))
}

func clamp01(x float64) float64 {
	if x > 1 {
		return 1
	}
	// also catches NaN
	if !(x > 0) {
		return 0
	}
	return x
}
