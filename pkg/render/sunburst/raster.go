package sunburst

import (
	"github.com/matzehuels/sunburst/pkg/hierarchy"
	"github.com/matzehuels/sunburst/pkg/label"
	"github.com/matzehuels/sunburst/pkg/render"
)

// DefaultScale is the PNG scale factor used when none is given.
const DefaultScale = 2.0

// RenderPNG renders the chart as PNG via SVG conversion. A scale <= 0 uses
// [DefaultScale].
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(root *hierarchy.Node, view label.View, placements []label.Placement, scale float64, opts ...SVGOption) ([]byte, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	return render.ToPNG(RenderSVG(root, view, placements, opts...), scale)
}

// RenderPDF renders the chart as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(root *hierarchy.Node, view label.View, placements []label.Placement, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(RenderSVG(root, view, placements, opts...))
}
