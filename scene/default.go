package scene

import (
	"github.com/echoflaresat/spheretracer/texture"
	"github.com/echoflaresat/spheretracer/vectors"
)

// Default returns the demo scene: a huge gray ground sphere, a red glass
// sphere in the middle, three mirrors and one light above the camera.
// tex, when non-nil, is wrapped around the middle sphere.
func Default(tex texture.Sampler) Scene {
	middle := NewSphere(vectors.Vec3{X: 0, Y: 0, Z: -20}, 4, vectors.Vec3{X: 1.00, Y: 0.32, Z: 0.36}, 1, 0.5, vectors.Zero())
	if tex != nil {
		middle = middle.WithTexture(tex)
	}

	return Scene{
		NewSphere(vectors.Vec3{X: 0, Y: -10004, Z: -20}, 10000, vectors.Splat(0.20), 0, 0, vectors.Zero()),
		middle,
		NewSphere(vectors.Vec3{X: 5, Y: -1, Z: -15}, 2, vectors.Vec3{X: 0.90, Y: 0.76, Z: 0.46}, 1, 0, vectors.Zero()),
		NewSphere(vectors.Vec3{X: 5, Y: 0, Z: -25}, 3, vectors.Vec3{X: 0.65, Y: 0.77, Z: 0.97}, 1, 0, vectors.Zero()),
		NewSphere(vectors.Vec3{X: -5.5, Y: 0, Z: -15}, 3, vectors.Splat(0.90), 1, 0, vectors.Zero()),
		// light
		NewSphere(vectors.Vec3{X: 0, Y: 20, Z: -30}, 3, vectors.Zero(), 0, 0, vectors.Splat(3)),
	}
}
