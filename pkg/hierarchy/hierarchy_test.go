package hierarchy

import (
	"errors"
	"testing"
)

// sample builds a two-level partition:
//
//	_ [0,1]
//	├── age:>30 [0,0.5]
//	│   ├── income:high [0,0.25]
//	│   └── income:low  [0.25,0.5]
//	└── age:<=30 [0.5,1]
func sample() *Node {
	root := &Node{
		Data: Data{F: Sentinel}, X0: 0, X1: 1, Y0: 0, Y1: 1,
		Children: []*Node{
			{
				Data: Data{F: "age:>30"}, X0: 0, X1: 0.5, Y0: 1, Y1: 2,
				Children: []*Node{
					{Data: Data{F: "income:high"}, X0: 0, X1: 0.25, Y0: 2, Y1: 3},
					{Data: Data{F: "income:low"}, X0: 0.25, X1: 0.5, Y0: 2, Y1: 3},
				},
			},
			{Data: Data{F: "age:<=30"}, X0: 0.5, X1: 1, Y0: 1, Y1: 2},
		},
	}
	root.Link()
	return root
}

func tokens(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Token()
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLink(t *testing.T) {
	root := sample()
	leaf := root.Children[0].Children[1]
	if leaf.Depth != 2 {
		t.Errorf("leaf.Depth = %d, want 2", leaf.Depth)
	}
	if leaf.Parent != root.Children[0] {
		t.Error("leaf.Parent not linked")
	}
	if root.Parent != nil || root.Depth != 0 {
		t.Error("root should have no parent and depth 0")
	}
}

func TestWalkPreOrder(t *testing.T) {
	var got []string
	sample().Walk(func(n *Node) bool {
		got = append(got, n.Token())
		return true
	})
	want := []string{"_", "age:>30", "income:high", "income:low", "age:<=30"}
	if !equal(got, want) {
		t.Errorf("Walk() order = %v, want %v", got, want)
	}
}

func TestWalkSkipsSubtree(t *testing.T) {
	var got []string
	sample().Walk(func(n *Node) bool {
		got = append(got, n.Token())
		return n.Token() != "age:>30"
	})
	want := []string{"_", "age:>30", "age:<=30"}
	if !equal(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestAtDepth(t *testing.T) {
	root := sample()
	tests := []struct {
		depth int
		want  []string
	}{
		{0, []string{"_"}},
		{1, []string{"age:>30", "age:<=30"}},
		{2, []string{"income:high", "income:low"}},
		{3, nil},
	}
	for _, tt := range tests {
		if got := tokens(root.AtDepth(tt.depth)); !equal(got, tt.want) {
			t.Errorf("AtDepth(%d) = %v, want %v", tt.depth, got, tt.want)
		}
	}
}

func TestLenAndMaxDepth(t *testing.T) {
	root := sample()
	if got := root.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
	if got := root.MaxDepth(); got != 2 {
		t.Errorf("MaxDepth() = %d, want 2", got)
	}
}

func TestSentinel(t *testing.T) {
	root := sample()
	if !root.IsSentinel() {
		t.Error("root should be a sentinel")
	}
	if root.Children[0].IsSentinel() {
		t.Error("feature node reported as sentinel")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Node)
		want   error
	}{
		{"valid", func(*Node) {}, nil},
		{"inverted x", func(r *Node) { r.Children[1].X0 = 1.2 }, ErrInvertedSpan},
		{"inverted y", func(r *Node) { r.Children[0].Children[0].Y1 = 1.5 }, ErrInvertedSpan},
		{"outside parent", func(r *Node) { r.Children[0].Children[1].X1 = 0.6 }, ErrChildOutsideParent},
		{"overlap", func(r *Node) { r.Children[0].Children[1].X0 = 0.2 }, ErrChildOverlap},
		{"siblings out of angular order", func(r *Node) {
			r.Children[0], r.Children[1] = r.Children[1], r.Children[0]
		}, nil},
		{"overlap out of angular order", func(r *Node) {
			kids := r.Children[0].Children
			kids[0], kids[1] = kids[1], kids[0]
			kids[0].X0 = 0.2
		}, ErrChildOverlap},
		{"depth skip", func(r *Node) { r.Children[0].Children[0].Depth = 3 }, ErrNonMonotonicDepth},
		{"ring inside parent", func(r *Node) { r.Children[1].Y0 = 0.5 }, ErrNonMonotonicDepth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := sample()
			tt.mutate(root)
			err := root.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRect(t *testing.T) {
	n := sample().Children[0]
	r := n.Rect()
	if r.X0 != 0 || r.X1 != 0.5 || r.Y0 != 1 || r.Y1 != 2 {
		t.Errorf("Rect() = %+v", r)
	}
}
