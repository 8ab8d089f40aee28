package scene

import (
	"math"

	"github.com/echoflaresat/spheretracer/vectors"
)

// Scene is an ordered list of spheres. It is read-only while rendering.
type Scene []Sphere

// Nearest returns the index of the closest sphere hit by the ray and the hit
// distance, or -1 and +Inf on a miss. A ray starting inside a sphere
// reports the far intersection. Ties go to the earlier sphere.
func (sc Scene) Nearest(orig, dir vectors.Vec3) (int, float64) {
	nearest := -1
	tNear := math.Inf(1)
	for i := range sc {
		hit, t0, t1 := sc[i].Intersect(orig, dir)
		if !hit {
			continue
		}
		if t0 < 0 {
			t0 = t1
		}
		if t0 < tNear {
			tNear = t0
			nearest = i
		}
	}
	return nearest, tNear
}

// Occluded reports whether any sphere other than skip intersects the ray.
// Distance along the ray is not considered.
func (sc Scene) Occluded(orig, dir vectors.Vec3, skip int) bool {
	for j := range sc {
		if j == skip {
			continue
		}
		if hit, _, _ := sc[j].Intersect(orig, dir); hit {
			return true
		}
	}
	return false
}

// Lights returns the indices of spheres that act as light sources.
func (sc Scene) Lights(anyChannel bool) []int {
	var lights []int
	for i := range sc {
		if sc[i].IsLight(anyChannel) {
			lights = append(lights, i)
		}
	}
	return lights
}
