package pipeline

import (
	"bytes"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/feature"
	"github.com/matzehuels/sunburst/pkg/hierarchy"
	sio "github.com/matzehuels/sunburst/pkg/io"
)

// Parse decodes the hierarchy and the feature registry of in. Without
// registry data every token is parsed on its own and colours come from
// [feature.Palette].
func Parse(in Input) (*hierarchy.Node, *feature.Registry, error) {
	if len(bytes.TrimSpace(in.Hierarchy)) == 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "hierarchy is empty")
	}
	root, err := sio.ReadHierarchy(bytes.NewReader(in.Hierarchy))
	if err != nil {
		return nil, nil, err
	}

	reg := feature.NewRegistry()
	if len(in.Features) > 0 {
		format := in.FeaturesFormat
		if format == "" {
			format = sio.FormatJSON
		}
		reg, err = sio.ReadFeatures(bytes.NewReader(in.Features), format)
		if err != nil {
			return nil, nil, err
		}
	}
	AssignColors(root, reg)
	return root, reg, nil
}

// AssignColors fixes palette colours in pre-order of first appearance so
// the same input is always coloured the same way, whatever is drawn
// first.
func AssignColors(root *hierarchy.Node, reg *feature.Registry) {
	root.Walk(func(n *hierarchy.Node) bool {
		if !n.IsSentinel() {
			reg.Color(n.Token())
		}
		return true
	})
}
