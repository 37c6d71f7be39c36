package polar

import (
	"math"
	"strconv"
	"strings"
)

const (
	tau        = 2 * math.Pi
	epsilon    = 1e-6
	tauEpsilon = tau - epsilon
)

// Path accumulates SVG path data.
//
// The zero value is an empty path ready for use. Commands are written in
// the compact form produced by d3-path ("M0,0L1,1A5,5,0,0,1,5,0").
type Path struct {
	b        strings.Builder
	x0, y0   float64 // start of the current subpath
	x1, y1   float64 // current point
	hasPoint bool
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.x0, p.y0, p.x1, p.y1 = x, y, x, y
	p.hasPoint = true
	p.b.WriteByte('M')
	p.point(x, y)
}

// LineTo draws a straight line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.x1, p.y1 = x, y
	p.hasPoint = true
	p.b.WriteByte('L')
	p.point(x, y)
}

// Arc draws a circular arc centered at (x, y) with radius r from angle a0
// to angle a1, anti-clockwise when ccw is set.
//
// If the path has a current point, a line joins it to the arc start. A
// zero radius only moves to the center; a negative radius is treated as
// zero. Sweeps of a full turn or more are drawn as two half arcs.
func (p *Path) Arc(x, y, r, a0, a1 float64, ccw bool) {
	r = max(0, r)
	dx := r * math.Cos(a0)
	dy := r * math.Sin(a0)
	sx, sy := x+dx, y+dy

	switch {
	case !p.hasPoint:
		p.MoveTo(sx, sy)
	case math.Abs(p.x1-sx) > epsilon || math.Abs(p.y1-sy) > epsilon:
		p.LineTo(sx, sy)
	}

	if r == 0 {
		return
	}

	da := a1 - a0
	if ccw {
		da = a0 - a1
	}
	if da < 0 {
		da = math.Mod(da, tau) + tau
	}

	sweep := 1
	if ccw {
		sweep = 0
	}

	switch {
	case da > tauEpsilon:
		p.arcTo(r, 1, sweep, x-dx, y-dy)
		p.arcTo(r, 1, sweep, sx, sy)
	case da > epsilon:
		large := 0
		if da >= math.Pi {
			large = 1
		}
		p.arcTo(r, large, sweep, x+r*math.Cos(a1), y+r*math.Sin(a1))
	}
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() {
	if !p.hasPoint {
		return
	}
	p.x1, p.y1 = p.x0, p.y0
	p.b.WriteByte('Z')
}

// String returns the accumulated path data.
func (p *Path) String() string {
	return p.b.String()
}

func (p *Path) arcTo(r float64, large, sweep int, x, y float64) {
	p.x1, p.y1 = x, y
	p.b.WriteByte('A')
	p.b.WriteString(formatNumber(r))
	p.b.WriteByte(',')
	p.b.WriteString(formatNumber(r))
	p.b.WriteString(",0,")
	p.b.WriteString(strconv.Itoa(large))
	p.b.WriteByte(',')
	p.b.WriteString(strconv.Itoa(sweep))
	p.b.WriteByte(',')
	p.point(x, y)
}

func (p *Path) point(x, y float64) {
	p.b.WriteString(formatNumber(x))
	p.b.WriteByte(',')
	p.b.WriteString(formatNumber(y))
}

// formatNumber prints v the way JavaScript's Number#toString does for the
// magnitudes a chart produces: plain decimals, exponent form only for very
// small or very large values.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs < 1e-6 || abs >= 1e21 {
		s := strconv.FormatFloat(v, 'g', -1, 64)
		return strings.NewReplacer("e-0", "e-", "e+0", "e+").Replace(s)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
