package scene

import (
	"time"

	"github.com/echoflaresat/spheretracer/vectors"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// SunDirection returns the unit direction to the Sun seen by an observer at
// geodetic latitude/longitude (degrees, east positive) at time t.
// Scene axes: +X east, +Y up, -Z north.
func SunDirection(t time.Time, latDeg, lonDeg float64) vectors.Vec3 {
	t = t.UTC()
	jd := julian.TimeToJD(t)

	// Apparent RA/Dec of the Sun
	ra, dec := solar.ApparentEquatorial(jd)

	// Local hour angle from apparent sidereal time at Greenwich
	gast := sidereal.Apparent(jd)
	lon := unit.AngleFromDeg(lonDeg)
	hourAngle := unit.Angle(gast.Angle().Rad() + lon.Rad() - ra.Rad())

	lat := unit.AngleFromDeg(latDeg)
	east := -dec.Cos() * hourAngle.Sin()
	north := dec.Sin()*lat.Cos() - dec.Cos()*lat.Sin()*hourAngle.Cos()
	up := dec.Sin()*lat.Sin() + dec.Cos()*lat.Cos()*hourAngle.Cos()

	return vectors.Vec3{X: east, Y: up, Z: -north}.Normalize()
}

// SunLight places an emissive sphere at distance along the Sun's direction.
// The second return value is false when the Sun is below the horizon.
func SunLight(t time.Time, latDeg, lonDeg, distance, radius float64, emission vectors.Vec3) (Sphere, bool) {
	dir := SunDirection(t, latDeg, lonDeg)
	light := NewSphere(dir.Scale(distance), radius, vectors.Zero(), 0, 0, emission)
	return light, dir.Y > 0
}
