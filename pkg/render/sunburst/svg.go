package sunburst

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/sunburst/pkg/feature"
	"github.com/matzehuels/sunburst/pkg/fonts"
	"github.com/matzehuels/sunburst/pkg/hierarchy"
	"github.com/matzehuels/sunburst/pkg/label"
)

const (
	defaultSize  = 600
	sentinelFill = "#e8e8e8"
	sectorStroke = "#ffffff"
)

const sectorCSS = `
    .sector { stroke: ` + sectorStroke + `; stroke-width: 1; transition: opacity 0.2s ease; }
    .sector:hover { opacity: 0.85; }
    .text-arc, .text-line { fill: none; stroke: none; }
    .feature-name { text-anchor: middle; dominant-baseline: middle; pointer-events: none; }`

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height int
	fill          func(token string) string
	lookup        feature.Lookup
	title         string
}

// WithSize sets the pixel size of the drawing. Non-positive values keep
// the default of 600.
func WithSize(width, height int) SVGOption {
	return func(r *svgRenderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

// WithRegistry colours sectors from reg and uses its display names for
// sector tooltips.
func WithRegistry(reg *feature.Registry) SVGOption {
	return func(r *svgRenderer) {
		r.fill = reg.Color
		r.lookup = reg
	}
}

// WithFill sets the sector fill colour per feature token. Options apply in
// order, so pass it after [WithRegistry] to override the registry's colours.
func WithFill(fill func(token string) string) SVGOption {
	return func(r *svgRenderer) { r.fill = fill }
}

// WithTitle adds a <title> element to the document.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{width: defaultSize, height: defaultSize}
	for _, opt := range opts {
		opt(&r)
	}
	if r.fill == nil {
		var reg feature.Registry
		r.fill = reg.Color
	}
	if r.lookup == nil {
		r.lookup = feature.LookupFunc(feature.ParseToken)
	}
	return r
}

// RenderSVG draws root as seen through view, with the given label
// placements on top.
func RenderSVG(root *hierarchy.Node, view label.View, placements []label.Placement, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	w, h := float64(r.width), float64(r.height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%d" height="%d" font-family="%s">`+"\n",
		num(-w/2), num(-h/2), num(w), num(h), r.width, r.height, escape(fonts.FallbackFontFamily))
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(r.title))
	}
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", sectorCSS)

	renderSectors(&buf, &r, root, view)
	renderText(&buf, placements)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderSectors draws every node whose ring lies inside the depth window
// and whose span overlaps the angular window, in pre-order.
func renderSectors(buf *bytes.Buffer, r *svgRenderer, root *hierarchy.Node, view label.View) {
	lo, hi := view.Scales.Angular.Window()
	low, high := float64(view.DepthLow), float64(view.DepthHigh)

	buf.WriteString(`  <g class="sectors">` + "\n")
	root.Walk(func(n *hierarchy.Node) bool {
		if n.Y0 >= high || n.X1 <= lo || n.X0 >= hi {
			return false
		}
		if n.Y0 < low || n.Y1 > high {
			return true
		}
		fill, tip := sentinelFill, ""
		if !n.IsSentinel() {
			fill = r.fill(n.Token())
			tip = r.lookup.Lookup(n.Token()).NameValue
		}
		fmt.Fprintf(buf, `    <path class="sector" d="%s" fill="%s" data-depth="%d">`,
			view.Scales.Wedge(n.Rect()), escape(fill), n.Depth)
		if tip != "" {
			fmt.Fprintf(buf, "<title>%s</title>", escape(tip))
		}
		buf.WriteString("</path>\n")
		return true
	})
	buf.WriteString("  </g>\n")
}

func renderText(buf *bytes.Buffer, placements []label.Placement) {
	buf.WriteString(`  <g class="labels">` + "\n")
	for _, p := range placements {
		fmt.Fprintf(buf, `    <path class="text-arc" id="%s" d="%s"/>`+"\n", label.ArcID(p.Index), p.ArcPath)
		fmt.Fprintf(buf, `    <path class="text-line" id="%s" d="%s"/>`+"\n", label.LineID(p.Index), p.LinePath)

		fmt.Fprintf(buf, `    <text class="feature-name" data-mode="%s" style="fill: %s; font-size: %spx">`,
			p.Mode, escape(p.Color), num(p.FontSize))
		if p.Text != "" {
			fmt.Fprintf(buf, `<textPath href="#%s" startOffset="50%%">%s</textPath>`, p.PathID, escape(p.Text))
		}
		buf.WriteString("</text>\n")
	}
	buf.WriteString("  </g>\n")
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// num formats v with at most three decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 { // drop negative zero
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
