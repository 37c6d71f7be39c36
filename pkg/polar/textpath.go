package polar

import "math"

// HalfPi is subtracted from mapped angles so 0 rad points straight up.
const HalfPi = math.Pi / 2

// Rect is a sector's rectangle in normalized polar coordinates.
// X0 ≤ X1 are fractions of the full circle; Y0 ≤ Y1 are ring indices.
type Rect struct {
	X0 float64 `json:"x0"`
	X1 float64 `json:"x1"`
	Y0 float64 `json:"y0"`
	Y1 float64 `json:"y1"`
}

// Angles returns the sector's angular bounds in radians with 0 at
// 12 o'clock.
func (s Scales) Angles(r Rect) (a0, a1 float64) {
	return s.Angular.Apply(r.X0) - HalfPi, s.Angular.Apply(r.X1) - HalfPi
}

// MidAngle returns the angle halfway between the sector's bounds.
func (s Scales) MidAngle(r Rect) float64 {
	a0, a1 := s.Angles(r)
	return (a0 + a1) / 2
}

// AngularSpan returns the sector's angle in radians.
func (s Scales) AngularSpan(r Rect) float64 {
	return s.Angular.Apply(r.X1) - s.Angular.Apply(r.X0)
}

// MeanRadius returns the mean of the mapped radial bounds, never negative.
func (s Scales) MeanRadius(r Rect) float64 {
	return max(0, (s.Radial.Apply(r.Y0)+s.Radial.Apply(r.Y1))/2)
}

// ArcLength approximates the length of the sector's mean-radius arc.
func (s Scales) ArcLength(r Rect) float64 {
	return s.AngularSpan(r) * s.MeanRadius(r)
}

// OuterArcLength returns the length of the sector's outer arc. It bounds
// the height of text laid out along the sector's mid-line.
func (s Scales) OuterArcLength(r Rect) float64 {
	return s.Radial.Apply(r.Y1) * s.AngularSpan(r)
}

// RadialExtent returns the distance between the sector's inner and outer
// radius.
func (s Scales) RadialExtent(r Rect) float64 {
	return s.Radial.Apply(r.Y1) - s.Radial.Apply(r.Y0)
}

// Flipped reports whether an arc with the given mid-angle must be drawn
// anti-clockwise to keep its text upright.
func Flipped(midAngle float64) bool {
	return midAngle > 0 && midAngle < math.Pi
}

// LeftHalf reports whether a mid-angle points into the left half-plane,
// where mid-lines are drawn from the outer point inwards.
func LeftHalf(midAngle float64) bool {
	return midAngle >= math.Pi/2 && midAngle <= 3*math.Pi/2
}

// BuildPath returns the path a label of the given mode follows on r, in
// sector-centered coordinates. Radii are clamped at zero.
func (s Scales) BuildPath(r Rect, m Mode) *Path {
	var p Path
	switch m {
	case SectorArc:
		a0, a1 := s.Angles(r)
		radius := s.MeanRadius(r)
		flip := Flipped((a0 + a1) / 2)
		if flip {
			a0, a1 = a1, a0
		}
		p.Arc(0, 0, radius, a0, a1, flip)
	case MidLine:
		mid := s.MidAngle(r)
		cos, sin := math.Cos(mid), math.Sin(mid)
		inner, outer := max(0, s.Radial.Apply(r.Y0)), max(0, s.Radial.Apply(r.Y1))
		if LeftHalf(mid) {
			p.MoveTo(outer*cos, outer*sin)
			p.LineTo(inner*cos, inner*sin)
		} else {
			p.MoveTo(inner*cos, inner*sin)
			p.LineTo(outer*cos, outer*sin)
		}
	default:
		mustBeMode(m)
	}
	return &p
}

// Wedge returns the closed outline of r as an annular sector, suitable for
// filling. Inner radii are clamped at zero.
func (s Scales) Wedge(r Rect) *Path {
	var p Path
	a0, a1 := s.Angles(r)
	inner := max(0, s.Radial.Apply(r.Y0))
	outer := max(0, s.Radial.Apply(r.Y1))
	p.Arc(0, 0, outer, a0, a1, false)
	if inner > 0 {
		p.Arc(0, 0, inner, a1, a0, true)
	} else {
		p.LineTo(0, 0)
	}
	p.ClosePath()
	return &p
}
