package label

import (
	"slices"

	"github.com/matzehuels/sunburst/pkg/hierarchy"
)

// Layer holds the labels attached to a chart between redraws. It is not
// safe for concurrent use.
type Layer struct {
	ctx        Context
	placements []Placement
}

// NewLayer returns an empty layer using the collaborators and options of
// ctx. The view is supplied per redraw.
func NewLayer(ctx Context) *Layer {
	return &Layer{ctx: ctx}
}

// RenderText drops the current placements and lays out the visible
// sectors of root for view. It returns the new placements.
func (l *Layer) RenderText(root *hierarchy.Node, view View) []Placement {
	l.RemoveText()
	ctx := l.ctx
	ctx.View = view
	l.placements = Layout(ctx, VisibleSectors(root, view))
	return l.Placements()
}

// RemoveText drops all placements. It is a no-op on an empty layer.
func (l *Layer) RemoveText() {
	l.placements = nil
}

// Placements returns a copy of the attached placements.
func (l *Layer) Placements() []Placement {
	return slices.Clone(l.placements)
}

// Len returns the number of attached placements.
func (l *Layer) Len() int { return len(l.placements) }
