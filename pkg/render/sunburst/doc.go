// Package sunburst renders a partitioned hierarchy and its label layer as
// SVG.
//
// # Overview
//
// [RenderSVG] draws one filled annular wedge per sector between the
// view's DepthLow and DepthHigh ring boundaries, then the text layer:
//
//   - every placement contributes both of its candidate paths (arc and
//     mid-line) under stable ids, so a client can switch modes without
//     regenerating geometry
//   - a <text class="feature-name"> element references the chosen path
//     through <textPath href="#id" startOffset="50%">, centring the label
//
// Suppressed sectors keep their paths and an empty text element.
//
// The chart is centred on the origin; the viewBox spans the configured
// size around it.
//
//	placements := label.Layout(ctx, label.VisibleSectors(root, view))
//	svg := sunburst.RenderSVG(root, view, placements,
//	    sunburst.WithSize(600, 600),
//	    sunburst.WithRegistry(reg),
//	)
//
// [RenderPNG] and [RenderPDF] wrap the SVG through [render.ToPNG] and
// [render.ToPDF], which need rsvg-convert on PATH.
//
// [render.ToPNG]: github.com/matzehuels/sunburst/pkg/render.ToPNG
// [render.ToPDF]: github.com/matzehuels/sunburst/pkg/render.ToPDF
package sunburst
