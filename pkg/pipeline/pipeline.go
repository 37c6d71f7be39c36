// Package pipeline runs the parse → label → render pipeline shared by the
// CLI and the HTTP server.
//
// # Stages
//
//  1. Parse: decode the hierarchy JSON and the optional feature registry
//  2. Label: place text on the visible ring with [label.Layer]
//  3. Render: encode the chart in each requested format (SVG, JSON, PNG, PDF)
//
// Stages 2 and 3 are cached. Placements are keyed by a content hash of
// the inputs plus every option that moves text; artifacts are keyed by
// the placements key plus the rendering options.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Input{Hierarchy: data}, pipeline.Options{
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sunburst/pkg/cache"
	"github.com/matzehuels/sunburst/pkg/config"
	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/feature"
	"github.com/matzehuels/sunburst/pkg/hierarchy"
	"github.com/matzehuels/sunburst/pkg/label"
	"github.com/matzehuels/sunburst/pkg/observability"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Formats lists the supported output formats.
var Formats = []string{FormatSVG, FormatJSON, FormatPNG, FormatPDF}

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Chart     config.Chart     `json:"chart"`
	FontScale config.FontScale `json:"font_scale"`
	Label     label.Options    `json:"label"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"` // PNG only
	Title   string   `json:"title,omitempty"`

	// Refresh bypasses cache reads; results are still stored.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// OptionsFromConfig copies the chart, font and label settings of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Chart:     cfg.Chart,
		FontScale: cfg.FontScale,
		Label:     cfg.Label,
	}
}

// Input is the raw data of one chart.
type Input struct {
	// Hierarchy is the partitioned tree as JSON.
	Hierarchy []byte

	// Features is an optional registry file in FeaturesFormat ("toml" or
	// "json").
	Features       []byte
	FeaturesFormat string
}

// Hash returns the content hash of the input.
func (in Input) Hash() string {
	parts := make([]byte, 0, len(in.Hierarchy)+len(in.Features)+len(in.FeaturesFormat)+2)
	parts = append(parts, in.Hierarchy...)
	parts = append(parts, 0)
	parts = append(parts, in.FeaturesFormat...)
	parts = append(parts, 0)
	parts = append(parts, in.Features...)
	return cache.Hash(parts)
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Root is the parsed hierarchy.
	Root *hierarchy.Node

	// Registry holds the feature metadata and the sector fills.
	Registry *feature.Registry

	// InputHash is the content hash of the input.
	InputHash string

	// Placements is the label layer of the visible ring.
	Placements []label.Placement

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Nodes      int
	Labels     observability.LayoutStats
	ParseTime  time.Duration
	LabelTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks which stages hit the cache.
type CacheInfo struct {
	LabelsHit bool // placements came from cache
	RenderHit bool // every artifact came from cache
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f, Formats...); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults fills unset fields from [config.Default] and
// validates the result. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	def := config.Default()
	if o.Chart == (config.Chart{}) {
		o.Chart = def.Chart
	}
	if o.Chart.Window == [2]float64{} {
		o.Chart.Window = [2]float64{0, 1}
	}
	if o.FontScale == (config.FontScale{}) {
		o.FontScale = def.FontScale
	}
	if o.Label == (label.Options{}) {
		o.Label = def.Label
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := o.Chart.Validate(); err != nil {
		return err
	}
	if err := o.FontScale.Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// View returns the label view of the options.
func (o *Options) View() label.View {
	return config.ViewOf(o.Chart, o.FontScale)
}

// LabelKeyOpts returns cache key options for the label stage.
func (o *Options) LabelKeyOpts() cache.LabelKeyOpts {
	lo := o.Label
	return cache.LabelKeyOpts{
		Window:        o.Chart.Window,
		DepthLow:      o.Chart.DepthLow,
		DepthHigh:     o.Chart.DepthHigh,
		InnerRadius:   o.Chart.InnerRadius,
		OuterRadius:   o.Chart.OuterRadius,
		FontDomain:    o.FontScale.Domain,
		FontRange:     o.FontScale.Range,
		BaseFontSize:  lo.BaseFontSize,
		LinePadding:   lo.LinePadding,
		ArcPadding:    lo.ArcPadding,
		MinTextHeight: lo.MinTextHeight,
		Ellipsis:      lo.Ellipsis,
	}
}

// ArtifactKeyOpts returns cache key options for one output format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format: format,
		Width:  o.Chart.Width,
		Height: o.Chart.Height,
		Title:  o.Title,
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}
