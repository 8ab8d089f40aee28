package scene

import (
	"math"
	"testing"

	"github.com/echoflaresat/spheretracer/vectors"
)

func ball(center vectors.Vec3, radius float64) Sphere {
	return NewSphere(center, radius, vectors.Splat(0.5), 0, 0, vectors.Zero())
}

func TestNearest(t *testing.T) {
	sc := Scene{
		ball(vectors.Vec3{Z: -20}, 2),
		ball(vectors.Vec3{Z: -10}, 2),
		ball(vectors.Vec3{X: 10, Z: -10}, 2),
	}
	forward := vectors.Vec3{Z: -1}

	idx, tNear := sc.Nearest(vectors.Zero(), forward)
	if idx != 1 || math.Abs(tNear-8) > 1e-12 {
		t.Errorf("Nearest = (%d, %v), want (1, 8)", idx, tNear)
	}

	// from inside sphere 1 the far side is reported
	idx, tNear = sc.Nearest(vectors.Vec3{Z: -9}, forward)
	if idx != 1 || math.Abs(tNear-3) > 1e-12 {
		t.Errorf("inside: Nearest = (%d, %v), want (1, 3)", idx, tNear)
	}

	idx, tNear = sc.Nearest(vectors.Zero(), vectors.Vec3{Y: 1})
	if idx != -1 || !math.IsInf(tNear, 1) {
		t.Errorf("miss: Nearest = (%d, %v), want (-1, +Inf)", idx, tNear)
	}
}

func TestNearestTieGoesToFirst(t *testing.T) {
	sc := Scene{
		ball(vectors.Vec3{Z: -10}, 2),
		ball(vectors.Vec3{Z: -10}, 2),
	}
	if idx, _ := sc.Nearest(vectors.Zero(), vectors.Vec3{Z: -1}); idx != 0 {
		t.Errorf("tie resolved to %d, want 0", idx)
	}
}

func TestNearestEmptyScene(t *testing.T) {
	var sc Scene
	if idx, _ := sc.Nearest(vectors.Zero(), vectors.Vec3{Z: -1}); idx != -1 {
		t.Errorf("empty scene hit sphere %d", idx)
	}
}

func TestOccluded(t *testing.T) {
	sc := Scene{
		ball(vectors.Vec3{Z: -10}, 1),
		ball(vectors.Vec3{Z: -20}, 1),
	}
	dir := vectors.Vec3{Z: -1}
	if !sc.Occluded(vectors.Zero(), dir, 1) {
		t.Error("blocker not detected")
	}
	if !sc.Occluded(vectors.Zero(), dir, 0) {
		t.Error("sphere behind the skipped one should still occlude")
	}
	if (Scene{sc[0]}).Occluded(vectors.Zero(), dir, 0) {
		t.Error("skipped sphere occluded its own ray")
	}
}

func TestLights(t *testing.T) {
	sc := Scene{
		ball(vectors.Zero(), 1),
		NewSphere(vectors.Zero(), 1, vectors.Zero(), 0, 0, vectors.Splat(3)),
		NewSphere(vectors.Zero(), 1, vectors.Zero(), 0, 0, vectors.Vec3{Y: 2}),
	}
	if got := sc.Lights(false); len(got) != 1 || got[0] != 1 {
		t.Errorf("Lights(false) = %v, want [1]", got)
	}
	if got := sc.Lights(true); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Lights(true) = %v, want [1 2]", got)
	}
}

func TestDefault(t *testing.T) {
	sc := Default(nil)
	if len(sc) != 6 {
		t.Fatalf("default scene has %d spheres, want 6", len(sc))
	}
	if lights := sc.Lights(false); len(lights) != 1 || lights[0] != 5 {
		t.Errorf("lights = %v, want [5]", lights)
	}
	if sc[1].Texture != nil {
		t.Error("middle sphere textured without a texture")
	}

	tex := checker(t, 2, 2)
	if Default(tex)[1].Texture == nil {
		t.Error("texture not attached to the middle sphere")
	}
}
