package label

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/matzehuels/sunburst/pkg/feature"
	"github.com/matzehuels/sunburst/pkg/fonts"
	"github.com/matzehuels/sunburst/pkg/hierarchy"
	"github.com/matzehuels/sunburst/pkg/polar"
)

// Every rune is 0.5em wide, so at the default 16px size a label measures
// exactly 8px per rune.
var halfEm = fonts.Uniform(0.5)

// ring returns a root whose depth-1 children split the circle at the
// given boundaries and carry the given tokens.
func ring(bounds []float64, tokens ...string) *hierarchy.Node {
	root := &hierarchy.Node{Data: hierarchy.Data{F: hierarchy.Sentinel}, X0: 0, X1: 1, Y0: 0, Y1: 1}
	for i, tok := range tokens {
		root.Children = append(root.Children, &hierarchy.Node{
			Data: hierarchy.Data{F: tok},
			X0:   bounds[i], X1: bounds[i+1],
			Y0: 1, Y1: 2,
		})
	}
	root.Link()
	return root
}

// evenRing splits the circle evenly between tokens.
func evenRing(tokens ...string) *hierarchy.Node {
	bounds := make([]float64, len(tokens)+1)
	for i := range bounds {
		bounds[i] = float64(i) / float64(len(tokens))
	}
	return ring(bounds, tokens...)
}

// ctxFor returns a context whose ring 1 spans radii [0, outer].
func ctxFor(outer float64) Context {
	return Context{
		View:     NewView(1, 2, 0, outer),
		Lookup:   feature.LookupFunc(feature.ParseToken),
		Measurer: halfEm,
	}
}

func layout(ctx Context, root *hierarchy.Node) []Placement {
	return Layout(ctx, VisibleSectors(root, ctx.View))
}

func texts(ps []Placement) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Text
	}
	return out
}

func TestLayoutDeduplicatesNames(t *testing.T) {
	ps := layout(ctxFor(200), evenRing("age:>30", "age:>30", "income:high"))

	want := []string{"age: >30", ">30", "income: high"}
	got := texts(ps)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("texts = %q, want %q", got, want)
	}
	for _, p := range ps {
		if p.Mode != polar.MidLine {
			t.Errorf("sector %d mode = %v, want line", p.Index, p.Mode)
		}
		if p.Truncated || p.Suppressed {
			t.Errorf("sector %d: truncated=%v suppressed=%v", p.Index, p.Truncated, p.Suppressed)
		}
	}
}

func TestLayoutPrefersArcForFirstLongLabel(t *testing.T) {
	// Radial extent 100 leaves 85px for a line (10 runes). "income: high"
	// is 96px but the half-circle arc at radius 50 offers 157-10px.
	ps := layout(ctxFor(100), evenRing("income:high", "income:low"))

	if ps[0].Mode != polar.SectorArc {
		t.Errorf("first mode = %v, want arc", ps[0].Mode)
	}
	if ps[0].Text != "income: high" {
		t.Errorf("arc text = %q, want unchanged label", ps[0].Text)
	}
	if ps[0].PathID != "text-arc-0" {
		t.Errorf("PathID = %q, want text-arc-0", ps[0].PathID)
	}
	if ps[1].Mode != polar.MidLine || ps[1].Text != "low" {
		t.Errorf("second = %v %q, want line \"low\"", ps[1].Mode, ps[1].Text)
	}
	if ps[1].PathID != "text-line-1" {
		t.Errorf("PathID = %q, want text-line-1", ps[1].PathID)
	}
}

func TestLayoutNeverUsesArcForBareValue(t *testing.T) {
	// The repeated value is too long for the line and would fit the arc,
	// but a bare value on a curve is avoided.
	ps := layout(ctxFor(100), evenRing("x:a", "x:bbbbbbbbbbbb"))

	if ps[1].Mode != polar.MidLine {
		t.Errorf("mode = %v, want line", ps[1].Mode)
	}
	// Value-only labels are never shortened.
	if ps[1].Text != "bbbbbbbbbbbb" || ps[1].Truncated {
		t.Errorf("text = %q truncated=%v, want the bare value untouched", ps[1].Text, ps[1].Truncated)
	}
}

func TestLayoutShortensLongLineLabels(t *testing.T) {
	// A thin sector: the arc is too short and the label too long for the
	// 85px line, so the short form is cut down to 10 runes.
	ps := layout(ctxFor(100), ring([]float64{0, 0.1, 1}, "petal_width:<=1.75", "_"))

	if len(ps) != 1 {
		t.Fatalf("got %d placements, want 1 (sentinel excluded)", len(ps))
	}
	p := ps[0]
	if p.Mode != polar.MidLine {
		t.Fatalf("mode = %v, want line", p.Mode)
	}
	if p.Text != "pet.: <..." {
		t.Errorf("text = %q, want %q", p.Text, "pet.: <...")
	}
	if !p.Truncated {
		t.Error("Truncated = false, want true")
	}
}

func TestLayoutUsesShortValueWhenItFits(t *testing.T) {
	// "income: high" is 96px, "inc.: high" 80px against an 85px line.
	ps := layout(ctxFor(100), ring([]float64{0, 0.1, 1}, "income:high", "age:>30"))

	if ps[0].Text != "inc.: high" {
		t.Errorf("text = %q, want short form", ps[0].Text)
	}
	if !ps[0].Truncated {
		t.Error("Truncated = false, want true")
	}
}

func TestLayoutSuppressesThinSectors(t *testing.T) {
	// 0.02 of the circle at radius 100 is an outer arc of about 12.6px.
	ps := layout(ctxFor(100), ring([]float64{0, 0.02, 1}, "age:>30", "income:high"))

	if ps[0].Text != "" || !ps[0].Suppressed {
		t.Errorf("thin sector = %q suppressed=%v, want empty and suppressed", ps[0].Text, ps[0].Suppressed)
	}
	if ps[0].Truncated {
		t.Error("suppressed sector should not be marked truncated")
	}
	// The suppressed sector still records its name.
	if ps[1].Text == "" {
		t.Error("wide sector lost its text")
	}
}

func TestLayoutSuppressedNameStillCountsAsDrawn(t *testing.T) {
	ps := layout(ctxFor(100), ring([]float64{0, 0.02, 1}, "age:>30", "age:<=30"))
	if ps[1].Text != "<=30" {
		t.Errorf("text = %q, want bare value after a suppressed first occurrence", ps[1].Text)
	}
}

func TestLayoutEmpty(t *testing.T) {
	if ps := Layout(ctxFor(100), nil); ps != nil {
		t.Errorf("Layout(nil) = %v, want nil", ps)
	}
	root := &hierarchy.Node{Data: hierarchy.Data{F: hierarchy.Sentinel}, X1: 1, Y1: 1}
	root.Link()
	if ps := layout(ctxFor(100), root); ps != nil {
		t.Errorf("Layout(no ring) = %v, want nil", ps)
	}
}

func TestLayoutColors(t *testing.T) {
	ctx := ctxFor(200)
	ps := layout(ctx, evenRing("a:1", "b:2"))
	if ps[0].Color != "currentcolor" {
		t.Errorf("nil Fill colour = %q, want currentcolor", ps[0].Color)
	}

	fills := map[string]string{"a:1": "#141414", "b:2": "#ffffff"}
	ctx.Fill = func(token string) string { return fills[token] }
	ps = layout(ctx, evenRing("a:1", "b:2"))
	if ps[0].Color != "hsla(0, 0%, 99%, 1)" {
		t.Errorf("dark fill text = %q, want light", ps[0].Color)
	}
	if ps[1].Color != "rgb(74, 74, 74)" {
		t.Errorf("light fill text = %q, want dark", ps[1].Color)
	}
}

func TestLayoutPaths(t *testing.T) {
	ctx := ctxFor(200)
	ps := layout(ctx, evenRing("a:1", "b:2"))
	for _, p := range ps {
		if p.ArcPath != ctx.View.Scales.BuildPath(p.Rect, polar.SectorArc).String() {
			t.Errorf("sector %d arc path mismatch", p.Index)
		}
		if p.LinePath != ctx.View.Scales.BuildPath(p.Rect, polar.MidLine).String() {
			t.Errorf("sector %d line path mismatch", p.Index)
		}
		if p.FontSize != 16 {
			t.Errorf("FontSize = %v, want 16", p.FontSize)
		}
	}
}

func TestLayoutIsRepeatable(t *testing.T) {
	ctx := ctxFor(100)
	root := evenRing("age:>30", "age:>30", "income:high", "income:low")
	a, b := layout(ctx, root), layout(ctx, root)
	if strings.Join(texts(a), "|") != strings.Join(texts(b), "|") {
		t.Errorf("second layout differs: %q vs %q", texts(a), texts(b))
	}
}

func TestFitsArc(t *testing.T) {
	s := polar.Scales{
		Angular: polar.NewLinear(0, 1, 0, 2*math.Pi),
		Radial:  polar.NewLinear(0, 1, 0, 100),
	}
	r := polar.Rect{X0: 0, X1: 0.25, Y0: 1, Y1: 2}
	// Arc length is π/2·150 ≈ 235.6, so 225.6px remain after padding.
	if !FitsArc(halfEm, s, r, 16, strings.Repeat("x", 28), 10) {
		t.Error("28 runes (224px) should fit")
	}
	if FitsArc(halfEm, s, r, 16, strings.Repeat("x", 29), 10) {
		t.Error("29 runes (232px) should not fit")
	}
	if !FitsArc(halfEm, s, r, 16, "", 235) {
		t.Error("empty text should fit")
	}
}

func TestFitsArcNegativeRadius(t *testing.T) {
	s := polar.Scales{
		Angular: polar.NewLinear(0, 1, 0, 2*math.Pi),
		Radial:  polar.NewLinear(0, 1, -100, 0),
	}
	if FitsArc(halfEm, s, polar.Rect{X1: 0.5, Y1: 0.5}, 16, "a", 0) {
		t.Error("a clamped zero radius leaves no room")
	}
}

func TestShorten(t *testing.T) {
	unit := fonts.Uniform(1)
	tests := []struct {
		text     string
		limit    float64
		ellipsis string
		want     string
	}{
		{"abcdef", 6, "...", "abcdef"},
		{"abcdef", 5, "...", "ab..."},
		{"abcdef", 4, "...", "a..."},
		{"abcdef", 3, "...", ""},
		{"abcdef", -1, "...", ""},
		{"...", 2, "...", ""},
		{"größe", 4, "…", "grö…"},
		{"", -1, "...", ""},
	}
	for _, tt := range tests {
		if got := Shorten(unit, tt.text, 1, tt.limit, tt.ellipsis); got != tt.want {
			t.Errorf("Shorten(%q, %v) = %q, want %q", tt.text, tt.limit, got, tt.want)
		}
	}
}

type countingMeasurer struct {
	fonts.Measurer
	calls int
}

func (c *countingMeasurer) Width(text string, size float64) float64 {
	c.calls++
	return c.Measurer.Width(text, size)
}

func TestShortenIsBounded(t *testing.T) {
	text := strings.Repeat("w", 50)
	m := &countingMeasurer{Measurer: fonts.Uniform(1)}
	if got := Shorten(m, text, 1, -1, "..."); got != "" {
		t.Fatalf("Shorten() = %q, want empty", got)
	}
	if limit := utf8.RuneCountInString(text) + 1; m.calls > limit {
		t.Errorf("measured %d times, want at most %d", m.calls, limit)
	}
}

func TestShortenNeverGrows(t *testing.T) {
	m := fonts.GoRegular()
	text := "petal_width: <=1.75"
	prev := m.Width(text, 16)
	for limit := prev; limit > 0; limit -= 7 {
		got := Shorten(m, text, 16, limit, "...")
		w := m.Width(got, 16)
		if w > limit {
			t.Fatalf("Shorten(limit=%v) = %q measures %v", limit, got, w)
		}
		if w > prev {
			t.Fatalf("result grew from %v to %v", prev, w)
		}
		prev = w
	}
}

func TestOptionsDefaults(t *testing.T) {
	zeroPadding := DefaultOptions()
	zeroPadding.LinePadding = 0
	zeroPadding.ArcPadding = 0
	zeroPadding.MinTextHeight = 0

	tests := []struct {
		name string
		in   Options
		want Options
	}{
		{"zero value", Options{}, DefaultOptions()},
		{"explicit zero paddings kept", zeroPadding, zeroPadding},
		{
			"bad font size and empty ellipsis fall back",
			Options{LinePadding: 5},
			Options{BaseFontSize: 16, LinePadding: 5, Ellipsis: "..."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.withDefaults(); got != tt.want {
				t.Errorf("withDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPathIDForUnknownModePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("PathIDFor(0) should panic")
		}
	}()
	PathIDFor(0, polar.Mode(0))
}
