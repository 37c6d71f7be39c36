package pipeline

import (
	"bytes"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/feature"
	"github.com/matzehuels/sunburst/pkg/hierarchy"
	sio "github.com/matzehuels/sunburst/pkg/io"
	"github.com/matzehuels/sunburst/pkg/label"
	"github.com/matzehuels/sunburst/pkg/render/sunburst"
)

// Render generates output artifacts in the requested formats.
func Render(root *hierarchy.Node, reg *feature.Registry, placements []label.Placement, opts Options) (map[string][]byte, error) {
	view := opts.View()
	svgOpts := buildSVGOptions(reg, opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sunburst.RenderSVG(root, view, placements, svgOpts...)
		case FormatPNG:
			data, err = sunburst.RenderPNG(root, view, placements, opts.Scale, svgOpts...)
		case FormatPDF:
			data, err = sunburst.RenderPDF(root, view, placements, svgOpts...)
		case FormatJSON:
			var buf bytes.Buffer
			err = sio.WritePlacements(&buf, placements)
			data = buf.Bytes()
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInternal
			}
			return nil, errors.Wrap(code, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func buildSVGOptions(reg *feature.Registry, opts Options) []sunburst.SVGOption {
	svgOpts := []sunburst.SVGOption{
		sunburst.WithSize(opts.Chart.Width, opts.Chart.Height),
		sunburst.WithRegistry(reg),
	}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sunburst.WithTitle(opts.Title))
	}
	return svgOpts
}
