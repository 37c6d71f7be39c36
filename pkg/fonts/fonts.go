// Package fonts provides glyph-width tables for approximating rendered
// label widths.
//
// Layout decisions need text widths long before anything is drawn, and
// they must be reproducible in tests. A [Table] holds static per-rune
// advance widths for one font family in em units; [Table.Width] scales
// them linearly by the font size. Nothing here touches a rendering
// surface and nothing is mutated after construction.
//
// [GoRegular] is the default table, read once from the Go Regular font
// bundled with golang.org/x/image. [Uniform] builds a monospace
// approximation for callers that only need a rough estimate.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontFamily is the CSS font-family name matching [GoRegular].
const FontFamily = "Go"

// FallbackFontFamily lists fallbacks for viewers without the Go font.
// The metrics of the fallbacks are close enough for layout purposes.
const FallbackFontFamily = `'Go', 'Lato', 'Helvetica Neue', Arial, sans-serif`

// approxCharWidth is the average advance of a proportional sans-serif
// glyph in em units.
const approxCharWidth = 0.55

// Measurer approximates the rendered width of text at a font size in px.
type Measurer interface {
	Width(text string, size float64) float64
}

// Table is a static glyph-width table in em units.
type Table struct {
	widths   map[rune]float64
	fallback float64
}

// NewTable returns a table with the given advances. Runes missing from
// widths measure as fallback.
func NewTable(widths map[rune]float64, fallback float64) *Table {
	w := make(map[rune]float64, len(widths))
	for r, v := range widths {
		w[r] = v
	}
	return &Table{widths: w, fallback: fallback}
}

// Uniform returns a table in which every rune has the same advance.
func Uniform(advance float64) *Table {
	return &Table{fallback: advance}
}

// Advance returns the advance of r in em units.
func (t *Table) Advance(r rune) float64 {
	if w, ok := t.widths[r]; ok {
		return w
	}
	return t.fallback
}

// Width returns the width of text set at size px.
func (t *Table) Width(text string, size float64) float64 {
	var em float64
	for _, r := range text {
		em += t.Advance(r)
	}
	return em * size
}

// Len returns the number of runes with an explicit advance.
func (t *Table) Len() int { return len(t.widths) }

// covered lists the rune ranges read from fonts: printable ASCII, Latin-1
// and the horizontal ellipsis.
var covered = [][2]rune{
	{0x20, 0x7e},
	{0xa0, 0xff},
	{0x2026, 0x2026},
}

// FromFont reads the advance widths of the covered runes from an OpenType
// or TrueType font. Runes without a glyph are left to the fallback, which
// is the mean advance of the runes that were found.
func FromFont(data []byte) (*Table, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse: %w", err)
	}

	upem := float64(f.UnitsPerEm())
	// At ppem == unitsPerEm one pixel is one font unit.
	ppem := fixed.I(int(f.UnitsPerEm()))

	var buf sfnt.Buffer
	widths := make(map[rune]float64, 256)
	var total float64
	for _, rng := range covered {
		for r := rng[0]; r <= rng[1]; r++ {
			idx, err := f.GlyphIndex(&buf, r)
			if err != nil || idx == 0 {
				continue
			}
			adv, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
			if err != nil {
				continue
			}
			w := float64(adv) / 64 / upem
			widths[r] = w
			total += w
		}
	}
	if len(widths) == 0 {
		return nil, fmt.Errorf("fonts: no glyphs for the covered ranges")
	}
	return &Table{widths: widths, fallback: total / float64(len(widths))}, nil
}

var (
	goRegular     *Table
	goRegularOnce sync.Once
)

// GoRegular returns the width table of the Go Regular font.
// The table is computed on first use and shared afterwards.
func GoRegular() *Table {
	goRegularOnce.Do(func() {
		t, err := FromFont(goregular.TTF)
		if err != nil {
			t = Uniform(approxCharWidth)
		}
		goRegular = t
	})
	return goRegular
}

// MeasureWidth measures text at size px with [GoRegular].
func MeasureWidth(text string, size float64) float64 {
	return GoRegular().Width(text, size)
}

// Ensure Table implements Measurer.
var _ Measurer = (*Table)(nil)
