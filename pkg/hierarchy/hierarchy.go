// Package hierarchy models the partitioned tree a sunburst chart is drawn
// from.
//
// # Overview
//
// Each [Node] carries a feature token and a rectangle in normalized polar
// coordinates: X0..X1 is a fraction of the full circle and Y0..Y1 a span
// of ring indices. The partition layout that produces these rectangles
// lives outside this package; nodes arrive with their geometry already
// assigned and are only read from here on.
//
// The root usually carries the [Sentinel] token "_", meaning "no feature".
// Sentinel sectors are drawn but never labelled.
//
// # Traversal
//
// [Node.Walk] visits nodes in pre-order, the same order a renderer appends
// them to the document, so every consumer agrees on sector indices.
// [Node.AtDepth] collects one ring in that order.
package hierarchy

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/matzehuels/sunburst/pkg/polar"
)

// Sentinel is the feature token of placeholder nodes such as the root.
const Sentinel = "_"

// epsilon absorbs floating-point drift in partition bounds.
const epsilon = 1e-9

var (
	// ErrInvertedSpan is returned by [Node.Validate] when X0 > X1 or Y0 > Y1.
	ErrInvertedSpan = errors.New("inverted span")

	// ErrChildOutsideParent is returned by [Node.Validate] when a child's
	// angular span is not contained in its parent's.
	ErrChildOutsideParent = errors.New("child outside parent span")

	// ErrChildOverlap is returned by [Node.Validate] when sibling spans
	// overlap.
	ErrChildOverlap = errors.New("sibling spans overlap")

	// ErrNonMonotonicDepth is returned by [Node.Validate] when a child does
	// not sit at its parent's depth plus one, or starts inside its parent's
	// ring.
	ErrNonMonotonicDepth = errors.New("depth must increase from parent to child")
)

// Data is the payload attached to a node.
type Data struct {
	F string `json:"f"`
}

// Node is one sector of the chart.
//
// Parent and Depth are derived: [Node.Link] fills them in from the
// Children structure.
type Node struct {
	Data     Data
	X0, X1   float64
	Y0, Y1   float64
	Depth    int
	Children []*Node
	Parent   *Node
}

// Rect returns the node's polar rectangle.
func (n *Node) Rect() polar.Rect {
	return polar.Rect{X0: n.X0, X1: n.X1, Y0: n.Y0, Y1: n.Y1}
}

// Token returns the node's feature token.
func (n *Node) Token() string { return n.Data.F }

// IsSentinel reports whether the node is a placeholder without a feature.
func (n *Node) IsSentinel() bool { return n.Data.F == Sentinel }

// Link sets Parent and Depth on every descendant, treating n as the root
// at depth 0.
func (n *Node) Link() {
	n.Parent = nil
	n.Depth = 0
	n.link()
}

func (n *Node) link() {
	for _, c := range n.Children {
		c.Parent = n
		c.Depth = n.Depth + 1
		c.link()
	}
}

// Walk calls fn for n and its descendants in pre-order. Returning false
// from fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// AtDepth returns the nodes at the given depth in pre-order.
func (n *Node) AtDepth(depth int) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Depth == depth {
			out = append(out, c)
			return false
		}
		return c.Depth < depth
	})
	return out
}

// Len returns the number of nodes in the subtree rooted at n.
func (n *Node) Len() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// MaxDepth returns the depth of the deepest node below n.
func (n *Node) MaxDepth() int {
	deepest := 0
	n.Walk(func(c *Node) bool {
		deepest = max(deepest, c.Depth)
		return true
	})
	return deepest
}

// Validate checks the partition invariants: spans are ordered, children
// nest inside their parent's angular span without overlapping, and depth
// grows by one per level. Children may arrive in any angular order. Errors
// wrap one of the Err* sentinels and name the offending node by its token.
func (n *Node) Validate() error {
	if n.X0 > n.X1+epsilon || n.Y0 > n.Y1+epsilon {
		return fmt.Errorf("%w: %q [%g,%g]x[%g,%g]", ErrInvertedSpan, n.Data.F, n.X0, n.X1, n.Y0, n.Y1)
	}
	for _, c := range n.Children {
		if c.Depth != n.Depth+1 || c.Y0 < n.Y1-epsilon {
			return fmt.Errorf("%w: %q under %q", ErrNonMonotonicDepth, c.Data.F, n.Data.F)
		}
		if c.X0 < n.X0-epsilon || c.X1 > n.X1+epsilon {
			return fmt.Errorf("%w: %q under %q", ErrChildOutsideParent, c.Data.F, n.Data.F)
		}
		if err := c.Validate(); err != nil {
			return err
		}
	}

	byStart := slices.SortedFunc(slices.Values(n.Children), func(a, b *Node) int {
		return cmp.Compare(a.X0, b.X0)
	})
	prevEnd := n.X0
	for _, c := range byStart {
		if c.X0 < prevEnd-epsilon {
			return fmt.Errorf("%w: %q under %q", ErrChildOverlap, c.Data.F, n.Data.F)
		}
		prevEnd = c.X1
	}
	return nil
}
