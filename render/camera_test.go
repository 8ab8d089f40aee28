package render

import (
	"math"
	"testing"
)

func TestCameraComputeRay(t *testing.T) {
	cam := NewCamera(640, 480, 30)

	if got := cam.Angle; math.Abs(got-math.Tan(15*math.Pi/180)) > 1e-15 {
		t.Errorf("Angle = %v, want tan(15°)", got)
	}

	for _, p := range [][2]int{{0, 0}, {639, 0}, {0, 479}, {639, 479}, {320, 240}} {
		d := cam.ComputeRay(p[0], p[1])
		if math.Abs(d.Norm()-1) > 1e-12 {
			t.Errorf("ray %v not normalized: %v", p, d)
		}
		if d.Z >= 0 {
			t.Errorf("ray %v does not look down -Z: %v", p, d)
		}
	}

	topLeft := cam.ComputeRay(0, 0)
	if topLeft.X >= 0 || topLeft.Y <= 0 {
		t.Errorf("top-left ray should point left and up, got %v", topLeft)
	}
	bottomRight := cam.ComputeRay(639, 479)
	if bottomRight.X <= 0 || bottomRight.Y >= 0 {
		t.Errorf("bottom-right ray should point right and down, got %v", bottomRight)
	}
}

func TestCameraCenterPixel(t *testing.T) {
	// with odd dimensions the middle pixel looks straight ahead
	cam := NewCamera(3, 3, 60)
	d := cam.ComputeRay(1, 1)
	if math.Abs(d.X) > 1e-15 || math.Abs(d.Y) > 1e-15 || math.Abs(d.Z+1) > 1e-15 {
		t.Errorf("center ray = %v, want (0, 0, -1)", d)
	}
}

func TestCameraEdgeAngle(t *testing.T) {
	// the vertical extent at the pixel centers of a 2-pixel-high image is ±angle/2
	cam := NewCamera(2, 2, 90)
	d := cam.ComputeRay(1, 0)
	slope := d.Y / -d.Z
	if math.Abs(slope-0.5) > 1e-12 {
		t.Errorf("top pixel slope = %v, want 0.5", slope)
	}
	if x := d.X / -d.Z; math.Abs(x-0.5) > 1e-12 {
		t.Errorf("right pixel slope = %v, want 0.5", x)
	}
}
