package render

import (
	"github.com/echoflaresat/spheretracer/scene"
	"github.com/echoflaresat/spheretracer/vectors"
)

// RayContext carries the per-hit state needed by the shaders.
// SurfaceNormal always faces the incoming ray; Inside records whether it was flipped.
type RayContext struct {
	RayDirection  vectors.Vec3
	HitPoint      vectors.Vec3
	SurfaceNormal vectors.Vec3
	Inside        bool
	Sphere        *scene.Sphere
}

// NewRayContext sets up the hit of a ray with sphere idx at distance t.
func NewRayContext(sc scene.Scene, idx int, origin, dir vectors.Vec3, t float64) RayContext {
	s := &sc[idx]
	hit := origin.Add(dir.Scale(t))
	normal := hit.Sub(s.Center).Normalize()

	inside := false
	if dir.Dot(normal) > 0 {
		normal = normal.Neg()
		inside = true
	}

	return RayContext{
		RayDirection:  dir,
		HitPoint:      hit,
		SurfaceNormal: normal,
		Inside:        inside,
		Sphere:        s,
	}
}

// ViewDotNormal is the cosine between the reversed ray and the normal.
func (c *RayContext) ViewDotNormal() float64 {
	return -c.RayDirection.Dot(c.SurfaceNormal)
}

// OffsetOutside nudges the hit point along the normal, toward the ray origin side.
func (c *RayContext) OffsetOutside(bias float64) vectors.Vec3 {
	return c.HitPoint.Add(c.SurfaceNormal.Scale(bias))
}

// OffsetInside nudges the hit point to the far side of the surface.
func (c *RayContext) OffsetInside(bias float64) vectors.Vec3 {
	return c.HitPoint.Sub(c.SurfaceNormal.Scale(bias))
}
