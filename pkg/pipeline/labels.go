package pipeline

import (
	"github.com/matzehuels/sunburst/pkg/feature"
	"github.com/matzehuels/sunburst/pkg/hierarchy"
	"github.com/matzehuels/sunburst/pkg/label"
	"github.com/matzehuels/sunburst/pkg/observability"
	"github.com/matzehuels/sunburst/pkg/polar"
)

// Labels places text on the visible ring of root. Names and fills come
// from reg; text is measured with the embedded Go Regular metrics.
func Labels(root *hierarchy.Node, reg *feature.Registry, opts Options) []label.Placement {
	layer := label.NewLayer(label.Context{
		Lookup:  reg,
		Fill:    reg.Color,
		Options: opts.Label,
	})
	return layer.RenderText(root, opts.View())
}

// Summarize counts the outcomes of a label layout.
func Summarize(ps []label.Placement) observability.LayoutStats {
	s := observability.LayoutStats{Sectors: len(ps)}
	for _, p := range ps {
		switch p.Mode {
		case polar.SectorArc:
			s.Arcs++
		case polar.MidLine:
			s.Lines++
		}
		if p.Truncated {
			s.Truncated++
		}
		if p.Suppressed {
			s.Suppressed++
		}
	}
	return s
}
