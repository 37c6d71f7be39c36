// Package label decides how feature labels are laid out on the sectors of
// a sunburst chart.
//
// # Overview
//
// Only one ring carries text: the innermost visible ring (see [TextRing]).
// For every visible sector on that ring the engine picks one of two path
// shapes from [polar.Mode], a foreground colour that contrasts with the
// sector fill, and the final text, which may be shortened to fit.
//
// # Algorithm
//
// [Layout] makes two passes over the sectors in traversal order. Each pass
// builds its own set of feature names already drawn; the first sector that
// shows a name gets the full "name: value" label and later sectors with the
// same name show only the value.
//
// The first pass chooses the path. A straight mid-line is used when the
// text fits the sector's radial extent minus [Options.LinePadding]. Failing
// that, a curved arc is used when this is the first occurrence of the name
// and the text fits the mean-radius arc (see [FitsArc]). Everything else
// falls back to the mid-line.
//
// The second pass fixes the text. Arc labels are kept as they are. Mid-line
// labels are dropped entirely when the outer arc is shorter than
// [Options.MinTextHeight]; when they are too long, full labels are swapped
// for the short form and then cut one rune at a time behind an ellipsis
// (see [Shorten]).
//
// # Rendering
//
// [Layer] wraps the engine with the teardown-then-attach lifecycle of a
// chart redraw: [Layer.RenderText] replaces every placement of the
// previous redraw and [Layer.RemoveText] clears them.
//
// The package performs no I/O and keeps no state between calls other than
// what a Layer holds explicitly.
package label
