package render

import (
	"math"

	"github.com/echoflaresat/spheretracer/scene"
	"github.com/echoflaresat/spheretracer/vectors"
)

// Tracer computes the radiance carried by a single ray through a scene.
// It holds no mutable state and is safe for concurrent use.
type Tracer struct {
	scene  scene.Scene
	opts   Options
	lights []int
}

func NewTracer(sc scene.Scene, opts Options) *Tracer {
	return &Tracer{
		scene:  sc,
		opts:   opts,
		lights: sc.Lights(opts.AnyChannelLights),
	}
}

// Trace returns the radiance arriving along dir at orig.
// depth is the number of specular bounces already taken.
func (tr *Tracer) Trace(orig, dir vectors.Vec3, depth int) vectors.Vec3 {
	return tr.trace(orig, dir, depth, nil)
}

func (tr *Tracer) trace(orig, dir vectors.Vec3, depth int, st *Stats) vectors.Vec3 {
	st.addRay(depth)

	idx, tNear := tr.scene.Nearest(orig, dir)
	if idx < 0 {
		return tr.opts.Background
	}

	ctx := NewRayContext(tr.scene, idx, orig, dir, tNear)
	s := ctx.Sphere

	var surface vectors.Vec3
	if (s.Transparency > 0 || s.Reflection > 0) && depth < tr.opts.MaxDepth {
		surface = tr.shadeSpecular(&ctx, depth, st)
	} else {
		// past the depth limit specular spheres shade as diffuse
		surface = tr.shadeDiffuse(&ctx, st)
	}
	return surface.Add(s.EmissionColor)
}

// mix returns b*t + a*(1-t).
func mix(a, b, t float64) float64 {
	return b*t + a*(1-t)
}

// shadeSpecular blends the reflected and refracted rays with a Fresnel weight.
func (tr *Tracer) shadeSpecular(ctx *RayContext, depth int, st *Stats) vectors.Vec3 {
	s := ctx.Sphere
	dir := ctx.RayDirection
	n := ctx.SurfaceNormal

	fresnel := mix(math.Pow(1-ctx.ViewDotNormal(), 3), 1, 0.1)

	reflDir := dir.Reflect(n).Normalize()
	reflection := tr.trace(ctx.OffsetOutside(tr.opts.Bias), reflDir, depth+1, st)

	var refraction vectors.Vec3
	if s.Transparency > 0 {
		if refrDir, ok := refract(dir, n, ctx.Inside, tr.opts.IOR); ok {
			refraction = tr.trace(ctx.OffsetInside(tr.opts.Bias), refrDir, depth+1, st)
		}
	}

	return reflection.Scale(fresnel).
		Add(refraction.Scale((1 - fresnel) * s.Transparency)).
		Mul(s.Color(ctx.HitPoint))
}

// refract bends dir through the surface with normal n (facing dir's origin)
// using Snell's law. It reports false on total internal reflection.
func refract(dir, n vectors.Vec3, inside bool, ior float64) (vectors.Vec3, bool) {
	eta := 1 / ior
	if inside {
		eta = ior
	}
	cosi := -n.Dot(dir)
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return vectors.Vec3{}, false
	}
	return dir.Scale(eta).Add(n.Scale(eta*cosi - math.Sqrt(k))).Normalize(), true
}

// shadeDiffuse sums the Lambert term of every unoccluded light.
func (tr *Tracer) shadeDiffuse(ctx *RayContext, st *Stats) vectors.Vec3 {
	var result vectors.Vec3
	if len(tr.lights) == 0 {
		return result
	}

	shadowOrig := ctx.OffsetOutside(tr.opts.Bias)
	color := ctx.Sphere.Color(ctx.HitPoint)

	for _, li := range tr.lights {
		light := &tr.scene[li]
		lightDir := light.Center.Sub(ctx.HitPoint).Normalize()

		st.addShadowRay()
		if tr.scene.Occluded(shadowOrig, lightDir, li) {
			continue
		}

		lambert := math.Max(0, ctx.SurfaceNormal.Dot(lightDir))
		result = result.Add(color.Scale(lambert).Mul(light.EmissionColor))
	}
	return result
}
