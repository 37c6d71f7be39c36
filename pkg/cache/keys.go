package cache

// Keyer builds cache keys for the two cached stages of a render: the
// label layout and the encoded artifacts.
type Keyer interface {
	// LabelsKey keys the placements computed for an input under a view.
	LabelsKey(inputHash string, opts LabelKeyOpts) string

	// ArtifactKey keys one encoded output of a layout.
	ArtifactKey(labelsKey string, opts ArtifactKeyOpts) string
}

// LabelKeyOpts lists everything besides the input that changes placements.
type LabelKeyOpts struct {
	Window      [2]float64 `json:"window"`
	DepthLow    int        `json:"depth_low"`
	DepthHigh   int        `json:"depth_high"`
	InnerRadius float64    `json:"inner_radius"`
	OuterRadius float64    `json:"outer_radius"`
	FontDomain  [2]float64 `json:"font_domain"`
	FontRange   [2]float64 `json:"font_range"`

	BaseFontSize  float64 `json:"base_font_size"`
	LinePadding   float64 `json:"line_padding"`
	ArcPadding    float64 `json:"arc_padding"`
	MinTextHeight float64 `json:"min_text_height"`
	Ellipsis      string  `json:"ellipsis"`
}

// ArtifactKeyOpts lists the rendering options of one output.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  float64 `json:"scale,omitempty"`
	Title  string  `json:"title,omitempty"`
}

// DefaultKeyer hashes its inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard Keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LabelsKey returns "labels:<sha256>".
func (DefaultKeyer) LabelsKey(inputHash string, opts LabelKeyOpts) string {
	return hashKey("labels", inputHash, opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(labelsKey string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", labelsKey, opts)
}
