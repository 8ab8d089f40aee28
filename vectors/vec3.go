package vectors

import "math"

// Vec3 is a simple 3D vector with float64 components.
// It doubles as an RGB radiance triple (X=R, Y=G, Z=B).
type Vec3 struct {
	X, Y, Z float64
}

func Zero() Vec3 {
	return Vec3{X: 0.0, Y: 0.0, Z: 0.0}
}

// Splat returns {s, s, s}.
func Splat(s float64) Vec3 {
	return Vec3{s, s, s}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product of v and o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Dot returns the dot product v · o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length2 returns ||v||².
func (v Vec3) Length2() float64 {
	return v.Dot(v)
}

// Norm returns the Euclidean length ||v||.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Length2())
}

// Normalize returns the unit vector v / ||v||.
// If ||v|| == 0, v is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	n2 := v.Length2()
	if n2 > 0 {
		inv := 1.0 / math.Sqrt(n2)
		return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
	}
	return v
}

// Reflect mirrors v about the normal n: v - n*2(v·n).
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsNaN(v.Z) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsInf(v.Z, 0)
}

func Distance(v1, v2 Vec3) float64 {
	return v1.Sub(v2).Norm()
}
