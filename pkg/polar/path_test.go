package polar

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestPathLines(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, 0.5)
	p.LineTo(-3, 1e-7)
	p.ClosePath()

	want := "M0,0L10,0.5L-3,1e-7Z"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathArc(t *testing.T) {
	tests := []struct {
		name string
		draw func(p *Path)
		want string
	}{
		{
			name: "quarter clockwise",
			draw: func(p *Path) { p.Arc(0, 0, 10, 0, math.Pi/2, false) },
			want: "M10,0A10,10,0,0,1,",
		},
		{
			name: "three quarters sets large arc flag",
			draw: func(p *Path) { p.Arc(0, 0, 10, 0, 3*math.Pi/2, false) },
			want: "M10,0A10,10,0,1,1,",
		},
		{
			name: "anti-clockwise clears sweep flag",
			draw: func(p *Path) { p.Arc(0, 0, 10, 0, -math.Pi/2, true) },
			want: "M10,0A10,10,0,0,0,",
		},
		{
			name: "zero radius moves to center",
			draw: func(p *Path) { p.Arc(5, 5, 0, 0, 1, false) },
			want: "M5,5",
		},
		{
			name: "empty sweep only moves",
			draw: func(p *Path) { p.Arc(0, 0, 10, 0, 0, false) },
			want: "M10,0",
		},
		{
			name: "joins current point with a line",
			draw: func(p *Path) {
				p.MoveTo(0, 0)
				p.Arc(0, 0, 10, 0, math.Pi/2, false)
			},
			want: "M0,0L10,0A10,10,0,0,1,",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Path
			tt.draw(&p)
			if got := p.String(); !strings.HasPrefix(got, tt.want) {
				t.Errorf("String() = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestPathFullCircle(t *testing.T) {
	var p Path
	p.Arc(0, 0, 10, 0, 2*math.Pi, false)
	got := p.String()
	if n := strings.Count(got, "A"); n != 2 {
		t.Errorf("full circle %q has %d arc commands, want 2", got, n)
	}
	if !strings.HasPrefix(got, "M10,0A10,10,0,1,1,-10,0A10,10,0,1,1,10,0") {
		t.Errorf("full circle = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{150, "150"},
		{-0.25, "-0.25"},
		{1000000, "1000000"},
		{6.123233995736766e-15, "6.123233995736766e-15"},
		{2e-7, "2e-7"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLinear(t *testing.T) {
	s := NewLinear(0, 10, 100, 200)
	if got := s.Apply(5); got != 150 {
		t.Errorf("Apply(5) = %v, want 150", got)
	}
	if got := s.Apply(20); got != 300 {
		t.Errorf("Apply(20) = %v, want 300 (unclamped)", got)
	}
	if got := s.Clamped().Apply(20); got != 200 {
		t.Errorf("Clamped().Apply(20) = %v, want 200", got)
	}
	if got := NewLinear(3, 3, 0, 10).Apply(7); got != 5 {
		t.Errorf("degenerate domain Apply() = %v, want 5", got)
	}
	lo, hi := NewLinear(0.5, 0.25, 0, 1).Window()
	if lo != 0.25 || hi != 0.5 {
		t.Errorf("Window() = (%v, %v), want (0.25, 0.5)", lo, hi)
	}
}

func TestModeText(t *testing.T) {
	for _, m := range []Mode{SectorArc, MidLine} {
		b, err := json.Marshal(m)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", m, err)
		}
		var back Mode
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("Unmarshal(%s): %v", b, err)
		}
		if back != m {
			t.Errorf("round trip %v -> %s -> %v", m, b, back)
		}
	}

	if _, err := json.Marshal(Mode(0)); err == nil {
		t.Error("Marshal(Mode(0)) should fail")
	}
	if _, err := ParseMode("spiral"); err == nil {
		t.Error(`ParseMode("spiral") should fail`)
	}
	if got := Mode(7).String(); got != "Mode(7)" {
		t.Errorf("String() = %q, want Mode(7)", got)
	}
}
