package label

import (
	"math"

	"github.com/matzehuels/sunburst/pkg/hierarchy"
	"github.com/matzehuels/sunburst/pkg/polar"
)

// View is the geometry of one redraw: the chart scales and the window of
// rings currently displayed.
type View struct {
	Scales    polar.Scales
	DepthLow  int
	DepthHigh int

	// FontScale maps the number of displayed rings to a font-size
	// multiplier. The zero value uses [DefaultFontScale].
	FontScale polar.Linear
}

// DefaultFontScale shrinks text from 1.0 to 0.7 of the base size as the
// displayed depth span grows from 1 to 5 rings.
func DefaultFontScale() polar.Linear {
	return polar.NewLinear(1, 5, 1.0, 0.7).Clamped()
}

// NewView returns an unzoomed view in which ring boundaries depthLow and
// depthHigh map onto the inner and outer radius.
func NewView(depthLow, depthHigh int, inner, outer float64) View {
	return View{
		Scales:    polar.FullCircle(float64(depthLow), float64(depthHigh), inner, outer),
		DepthLow:  depthLow,
		DepthHigh: depthHigh,
		FontScale: DefaultFontScale(),
	}
}

// Zoom returns v with the angular window narrowed to [x0, x1], as after a
// click on a sector spanning that range.
func (v View) Zoom(x0, x1 float64) View {
	v.Scales.Angular = polar.NewLinear(x0, x1, 0, 2*math.Pi).Clamped()
	return v
}

// Zoomed reports whether the angular window is narrower than the full
// circle.
func (v View) Zoomed() bool {
	d := v.Scales.Angular.Domain
	return d[0] != 0 || d[1] != 1
}

// FontMultiplier returns the rem multiplier for the current depth span.
func (v View) FontMultiplier() float64 {
	fs := v.FontScale
	if fs == (polar.Linear{}) {
		fs = DefaultFontScale()
	}
	return fs.Apply(float64(v.DepthHigh - v.DepthLow))
}

// TextRing returns the depth of the ring that carries labels. When zoomed
// into a sector the ring at DepthLow holds only the selected sector, so
// text moves one ring out.
func TextRing(v View) int {
	if v.Zoomed() {
		return v.DepthLow + 1
	}
	return v.DepthLow
}

// VisibleSectors returns the labelled sectors of root for v in pre-order:
// nodes on the text ring that lie inside the angular window and carry a
// feature token.
func VisibleSectors(root *hierarchy.Node, v View) []*hierarchy.Node {
	var out []*hierarchy.Node
	for _, n := range root.AtDepth(TextRing(v)) {
		if n.IsSentinel() || !v.Scales.Visible(n.Rect()) {
			continue
		}
		out = append(out, n)
	}
	return out
}
