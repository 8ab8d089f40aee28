package render

import (
	"math"

	"github.com/echoflaresat/spheretracer/vectors"
)

// Camera models a pinhole camera at the origin looking down -Z with +Y up.
type Camera struct {
	Width, Height int
	FOVDeg        float64
	Angle         float64 // tan of half the field of view
	AspectRatio   float64
}

func NewCamera(width, height int, fovDeg float64) Camera {
	return Camera{
		Width:       width,
		Height:      height,
		FOVDeg:      fovDeg,
		Angle:       math.Tan(math.Pi * 0.5 * fovDeg / 180.0),
		AspectRatio: float64(width) / float64(height),
	}
}

// Origin is where every primary ray starts.
func (c Camera) Origin() vectors.Vec3 {
	return vectors.Zero()
}

// ComputeRay returns the normalized viewing direction through the center
// of pixel (x, y). Row 0 is the top of the image.
func (c Camera) ComputeRay(x, y int) vectors.Vec3 {
	xx := (2*((float64(x)+0.5)/float64(c.Width)) - 1) * c.Angle * c.AspectRatio
	yy := (1 - 2*((float64(y)+0.5)/float64(c.Height))) * c.Angle
	return vectors.Vec3{X: xx, Y: yy, Z: -1}.Normalize()
}
