// Package render turns a labelled sunburst into output artifacts.
//
// # Overview
//
// The [sunburst] subpackage draws the chart as SVG: one filled wedge per
// visible sector plus the text layer computed by [label.Layout]. This
// package holds the format conversion shared by every renderer.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert an SVG document with the external
// rsvg-convert tool (from librsvg):
//
//	svg := sunburst.RenderSVG(root, view, placements)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// Both return an UNSUPPORTED error when rsvg-convert is not on PATH.
// Install it with brew install librsvg (macOS) or apt install
// librsvg2-bin (Linux).
//
// [sunburst]: github.com/matzehuels/sunburst/pkg/render/sunburst
// [label.Layout]: github.com/matzehuels/sunburst/pkg/label.Layout
package render
