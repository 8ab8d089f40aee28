package render

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/echoflaresat/spheretracer/vectors"
)

var ErrInvalidOptions = errors.New("invalid render options")

// Options holds every tunable of a render.
type Options struct {
	Width, Height int
	FOV           float64 // vertical field of view, degrees
	MaxDepth      int     // specular bounces before surfaces shade as diffuse
	Bias          float64 // offset along the normal for secondary rays
	IOR           float64 // index of refraction of transparent spheres
	Background    vectors.Vec3
	Workers       int // concurrent rows; 0 means GOMAXPROCS

	// AnyChannelLights treats any sphere with non-zero emission as a light.
	// By default only a positive red emission channel does.
	AnyChannelLights bool
}

// DefaultOptions reproduces the classic 640×480 demo settings.
func DefaultOptions() Options {
	return Options{
		Width:      640,
		Height:     480,
		FOV:        30,
		MaxDepth:   5,
		Bias:       1e-4,
		IOR:        1.1,
		Background: vectors.Splat(2),
		Workers:    runtime.GOMAXPROCS(0),
	}
}

func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidOptions, o.Width, o.Height)
	case !(o.FOV > 0 && o.FOV < 180):
		return fmt.Errorf("%w: fov %v not in (0, 180)", ErrInvalidOptions, o.FOV)
	case o.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidOptions, o.MaxDepth)
	case o.Bias < 0:
		return fmt.Errorf("%w: bias %v", ErrInvalidOptions, o.Bias)
	case !(o.IOR > 0):
		return fmt.Errorf("%w: ior %v", ErrInvalidOptions, o.IOR)
	case o.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidOptions, o.Workers)
	}
	return nil
}
