// Package polar maps sunburst sectors from normalized polar coordinates
// onto local Cartesian geometry.
//
// A sector is a [Rect]: an angular span [X0, X1] expressed as fractions of
// the full circle and a radial span [Y0, Y1] in ring-index units. A pair of
// [Linear] scales ([Scales]) turns those into radians and radius units. The
// chart owns the scales; this package only reads them.
//
// # Text paths
//
// Labels are attached to one of two path shapes, selected by [Mode]:
//
//   - [SectorArc]: a circular arc at the sector's mean radius
//   - [MidLine]: a straight radial segment through the sector's mid-angle
//
// [Scales.BuildPath] produces either shape in sector-centered coordinates,
// oriented so text read from start to end is never upside-down: arcs whose
// mid-angle falls in (0, π) are drawn anti-clockwise with swapped bounds,
// and lines on the left half-plane run from the outer point inwards.
//
// # Path strings
//
// [Path] emits SVG path data with the same grammar as d3-path, so output
// can be dropped straight into a <path d="..."> attribute.
package polar
