package label

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/sunburst/pkg/colorutil"
	"github.com/matzehuels/sunburst/pkg/feature"
	"github.com/matzehuels/sunburst/pkg/fonts"
	"github.com/matzehuels/sunburst/pkg/hierarchy"
	"github.com/matzehuels/sunburst/pkg/polar"
)

// Options tunes the layout engine. The zero value means [DefaultOptions];
// start from DefaultOptions to override single fields.
type Options struct {
	BaseFontSize  float64 `json:"base_font_size" toml:"base_font_size"`   // px per rem
	LinePadding   float64 `json:"line_padding" toml:"line_padding"`       // subtracted from the radial extent
	ArcPadding    float64 `json:"arc_padding" toml:"arc_padding"`         // subtracted from the arc length
	MinTextHeight float64 `json:"min_text_height" toml:"min_text_height"` // outer arc below which mid-lines stay empty
	Ellipsis      string  `json:"ellipsis" toml:"ellipsis"`
}

// DefaultOptions returns the standard engine constants.
func DefaultOptions() Options {
	return Options{
		BaseFontSize:  16,
		LinePadding:   15,
		ArcPadding:    10,
		MinTextHeight: 18.5,
		Ellipsis:      "...",
	}
}

// withDefaults replaces a zero Options with [DefaultOptions]. Otherwise
// zero paddings and a zero MinTextHeight are kept as given; only a
// non-positive BaseFontSize and an empty Ellipsis fall back.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o == (Options{}) {
		return d
	}
	if o.BaseFontSize <= 0 {
		o.BaseFontSize = d.BaseFontSize
	}
	if o.Ellipsis == "" {
		o.Ellipsis = d.Ellipsis
	}
	return o
}

// Context carries everything one redraw needs. Lookup is required; the
// other collaborators are optional.
type Context struct {
	View   View
	Lookup feature.Lookup

	// Fill returns the fill colour of the sector carrying token. Nil means
	// text inherits the document colour.
	Fill func(token string) string

	// Measurer defaults to [fonts.GoRegular].
	Measurer fonts.Measurer

	Options Options
}

// Placement is the layout decision for one sector.
type Placement struct {
	Index    int        `json:"index"`
	Token    string     `json:"token"`
	Name     string     `json:"name"`
	Rect     polar.Rect `json:"rect"`
	Mode     polar.Mode `json:"mode"`
	ArcPath  string     `json:"arc_path"`
	LinePath string     `json:"line_path"`
	PathID   string     `json:"path_id"`
	Text     string     `json:"text"`
	Color    string     `json:"color"`
	FontSize float64    `json:"font_size"`

	// Suppressed marks mid-line sectors too thin for any text.
	Suppressed bool `json:"suppressed,omitempty"`
	// Truncated marks text that differs from the label the sector asked for.
	Truncated bool `json:"truncated,omitempty"`
}

// ArcID returns the id of sector i's arc path.
func ArcID(i int) string { return fmt.Sprintf("text-arc-%d", i) }

// LineID returns the id of sector i's mid-line path.
func LineID(i int) string { return fmt.Sprintf("text-line-%d", i) }

// PathIDFor returns the id of the path a label of mode m follows.
func PathIDFor(i int, m polar.Mode) string {
	switch m {
	case polar.SectorArc:
		return ArcID(i)
	case polar.MidLine:
		return LineID(i)
	}
	panic(fmt.Sprintf("label: unknown mode %d", m))
}

// FitsArc reports whether text set at size fits the mean-radius arc of r
// with padding to spare. A nil m uses [fonts.GoRegular].
func FitsArc(m fonts.Measurer, s polar.Scales, r polar.Rect, size float64, text string, padding float64) bool {
	if m == nil {
		m = fonts.GoRegular()
	}
	return m.Width(text, size) <= s.ArcLength(r)-padding
}

// Shorten cuts text one rune at a time behind ellipsis until it measures
// at most limit. It returns "" once nothing is left to cut, so it ends
// after at most as many steps as text has runes.
func Shorten(m fonts.Measurer, text string, size, limit float64, ellipsis string) string {
	for m.Width(text, size) > limit {
		base := strings.TrimSuffix(text, ellipsis)
		if base == "" {
			return ""
		}
		_, n := utf8.DecodeLastRuneInString(base)
		base = base[:len(base)-n]
		if base == "" {
			return ""
		}
		text = base + ellipsis
	}
	return text
}

// nameSet records the feature names drawn so far in one pass.
type nameSet map[string]struct{}

// candidate returns the label a sector asks for: the full label for the
// first occurrence of a name, the bare value afterwards.
func (s nameSet) candidate(info feature.Info) (text string, repeated bool) {
	if _, ok := s[info.Name]; ok {
		return info.Value, true
	}
	return info.NameValue, false
}

func (s nameSet) add(name string) { s[name] = struct{}{} }

// Layout computes placements for sectors, in order. An empty slice yields
// no placements.
func Layout(ctx Context, sectors []*hierarchy.Node) []Placement {
	if len(sectors) == 0 {
		return nil
	}
	e := newEngine(ctx)
	modes := e.chooseModes(sectors, nameSet{})
	return e.materialize(sectors, modes, nameSet{})
}

type engine struct {
	ctx  Context
	opts Options
	m    fonts.Measurer
	size float64
}

func newEngine(ctx Context) *engine {
	m := ctx.Measurer
	if m == nil {
		m = fonts.GoRegular()
	}
	opts := ctx.Options.withDefaults()
	return &engine{
		ctx:  ctx,
		opts: opts,
		m:    m,
		size: opts.BaseFontSize * ctx.View.FontMultiplier(),
	}
}

func (e *engine) lineLimit(r polar.Rect) float64 {
	return e.ctx.View.Scales.RadialExtent(r) - e.opts.LinePadding
}

// chooseModes picks the path shape of every sector.
func (e *engine) chooseModes(sectors []*hierarchy.Node, drawn nameSet) []polar.Mode {
	scales := e.ctx.View.Scales
	modes := make([]polar.Mode, len(sectors))
	for i, n := range sectors {
		info := e.ctx.Lookup.Lookup(n.Token())
		text, repeated := drawn.candidate(info)
		drawn.add(info.Name)

		r := n.Rect()
		switch {
		case e.m.Width(text, e.size) < e.lineLimit(r):
			modes[i] = polar.MidLine
		case !repeated && FitsArc(e.m, scales, r, e.size, text, e.opts.ArcPadding):
			modes[i] = polar.SectorArc
		default:
			modes[i] = polar.MidLine
		}
	}
	return modes
}

// materialize fixes the text of every sector given its mode.
func (e *engine) materialize(sectors []*hierarchy.Node, modes []polar.Mode, drawn nameSet) []Placement {
	scales := e.ctx.View.Scales
	out := make([]Placement, len(sectors))
	for i, n := range sectors {
		info := e.ctx.Lookup.Lookup(n.Token())
		want, onlyValue := drawn.candidate(info)
		r := n.Rect()

		p := Placement{
			Index:    i,
			Token:    n.Token(),
			Name:     info.Name,
			Rect:     r,
			Mode:     modes[i],
			ArcPath:  scales.BuildPath(r, polar.SectorArc).String(),
			LinePath: scales.BuildPath(r, polar.MidLine).String(),
			PathID:   PathIDFor(i, modes[i]),
			Color:    e.color(n.Token()),
			FontSize: e.size,
		}

		switch modes[i] {
		case polar.SectorArc:
			p.Text = want
		case polar.MidLine:
			p.Text, p.Suppressed = e.fitLine(r, info, want, onlyValue)
		default:
			panic(fmt.Sprintf("label: unknown mode %d", modes[i]))
		}
		p.Truncated = !p.Suppressed && p.Text != want

		drawn.add(info.Name)
		out[i] = p
	}
	return out
}

// fitLine returns the text of a mid-line label, or "" and true when the
// sector is too thin to show any.
func (e *engine) fitLine(r polar.Rect, info feature.Info, text string, onlyValue bool) (string, bool) {
	if e.ctx.View.Scales.OuterArcLength(r) < e.opts.MinTextHeight {
		return "", true
	}
	limit := e.lineLimit(r)
	if e.m.Width(text, e.size) <= limit || onlyValue {
		return text, false
	}
	return Shorten(e.m, info.ShortValue, e.size, limit, e.opts.Ellipsis), false
}

func (e *engine) color(token string) string {
	if e.ctx.Fill == nil {
		return colorutil.Inherit.CSS()
	}
	return colorutil.PickTextColor(e.ctx.Fill(token)).CSS()
}
