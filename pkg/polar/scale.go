package polar

import "math"

// Linear is a continuous linear scale from Domain onto Range.
// A degenerate domain maps every input to the middle of the range.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
	Clamp  bool // restrict outputs to Range
}

// NewLinear returns a linear scale mapping [d0, d1] onto [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Clamped returns a copy of s with clamping enabled.
func (s Linear) Clamped() Linear {
	s.Clamp = true
	return s
}

// Apply maps x from the domain onto the range.
func (s Linear) Apply(x float64) float64 {
	d0, d1 := s.Domain[0], s.Domain[1]
	r0, r1 := s.Range[0], s.Range[1]
	span := d1 - d0
	if span == 0 || math.IsNaN(span) {
		return (r0 + r1) / 2
	}
	t := (x - d0) / span
	if s.Clamp {
		t = max(0, min(1, t))
	}
	return r0 + t*(r1-r0)
}

// Window returns the current domain as (min, max).
func (s Linear) Window() (lo, hi float64) {
	return min(s.Domain[0], s.Domain[1]), max(s.Domain[0], s.Domain[1])
}

// Scales bundles the angular and radial scales of a chart.
//
// Angular maps the normalized angular coordinate onto radians, with 0 at
// 12 o'clock once [HalfPi] is subtracted. Radial maps ring-index units onto
// radius units.
type Scales struct {
	Angular Linear
	Radial  Linear
}

// FullCircle returns scales that show the whole chart: the angular domain
// [0, 1] spans 2π, and the radial domain [depthLow, depthHigh] spans
// [inner, outer].
func FullCircle(depthLow, depthHigh, inner, outer float64) Scales {
	return Scales{
		Angular: NewLinear(0, 1, 0, 2*math.Pi).Clamped(),
		Radial:  NewLinear(depthLow, depthHigh, inner, outer),
	}
}

// Visible reports whether r lies entirely within the angular window.
func (s Scales) Visible(r Rect) bool {
	lo, hi := s.Angular.Window()
	return r.X0 >= lo && r.X1 <= hi
}
