package scene

import (
	"math"

	"github.com/echoflaresat/spheretracer/texture"
	"github.com/echoflaresat/spheretracer/vectors"
)

// Sphere is an implicit sphere with simple material properties.
// The radius is fixed by NewSphere or SetRadius, which keep its square cached.
type Sphere struct {
	Center        vectors.Vec3
	SurfaceColor  vectors.Vec3
	EmissionColor vectors.Vec3
	Transparency  float64
	Reflection    float64
	Texture       texture.Sampler // optional

	radius, radius2 float64
}

func NewSphere(center vectors.Vec3, radius float64, surface vectors.Vec3, reflection, transparency float64, emission vectors.Vec3) Sphere {
	return Sphere{
		Center:        center,
		radius:        radius,
		SurfaceColor:  surface,
		EmissionColor: emission,
		Transparency:  transparency,
		Reflection:    reflection,
		radius2:       radius * radius,
	}
}

// WithTexture returns a copy of s that samples tex for its surface color.
func (s Sphere) WithTexture(tex texture.Sampler) Sphere {
	s.Texture = tex
	return s
}

func (s *Sphere) Radius() float64 {
	return s.radius
}

// SetRadius changes the radius and its cached square together.
func (s *Sphere) SetRadius(radius float64) {
	s.radius = radius
	s.radius2 = radius * radius
}

// Radius2 returns the squared radius.
func (s *Sphere) Radius2() float64 {
	return s.radius2
}

// Intersect solves the ray-sphere intersection geometrically for a unit dir.
// The ray is rejected whenever the center projects behind the origin, which
// also drops some hits from rays starting inside the sphere.
func (s *Sphere) Intersect(orig, dir vectors.Vec3) (hit bool, t0, t1 float64) {
	l := s.Center.Sub(orig)
	tca := l.Dot(dir)
	if tca < 0 {
		return false, 0, 0
	}
	d2 := l.Dot(l) - tca*tca
	if d2 > s.radius2 {
		return false, 0, 0
	}
	thc := math.Sqrt(s.radius2 - d2)
	return true, tca - thc, tca + thc
}

// Color returns the surface color at hit point p.
// Textured spheres use a longitude/latitude projection around the local Y axis.
func (s *Sphere) Color(p vectors.Vec3) vectors.Vec3 {
	if s.Texture == nil {
		return s.SurfaceColor
	}
	u, v := s.UV(p)
	return s.Texture.Sample(u, v)
}

// UV maps p onto texture coordinates in [0,1]².
func (s *Sphere) UV(p vectors.Vec3) (u, v float64) {
	local := p.Sub(s.Center)
	u = math.Atan2(local.Z, local.X)/(2*math.Pi) + 0.5
	cosTheta := local.Y / s.radius
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}
	v = math.Acos(cosTheta) / math.Pi
	return u, v
}

// IsLight reports whether the sphere illuminates the diffuse surfaces.
// By default only the red emission channel counts; anyChannel widens this
// to any non-zero emission.
func (s *Sphere) IsLight(anyChannel bool) bool {
	if anyChannel {
		return s.EmissionColor.Length2() > 0
	}
	return s.EmissionColor.X > 0
}
