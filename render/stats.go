package render

// Stats counts the work done by a render.
type Stats struct {
	Pixels     int // primary rays traced
	Rays       int // calls into the integrator, primary rays included
	ShadowRays int
	MaxDepth   int // deepest recursion level reached
}

func (s *Stats) addRay(depth int) {
	if s == nil {
		return
	}
	s.Rays++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
}

func (s *Stats) addShadowRay() {
	if s == nil {
		return
	}
	s.ShadowRays++
}

// Merge folds o into s.
func (s *Stats) Merge(o Stats) {
	s.Pixels += o.Pixels
	s.Rays += o.Rays
	s.ShadowRays += o.ShadowRays
	if o.MaxDepth > s.MaxDepth {
		s.MaxDepth = o.MaxDepth
	}
}
