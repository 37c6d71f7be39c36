package colorutil

// Foreground is the text colour chosen for a filled sector.
type Foreground uint8

const (
	// Inherit leaves the colour to the surrounding document.
	Inherit Foreground = iota
	// Light is the near-white reference (252, 252, 252).
	Light
	// Dark is the near-black reference (74, 74, 74).
	Dark
)

// CSS returns the colour as a CSS value.
func (f Foreground) CSS() string {
	switch f {
	case Light:
		return "hsla(0, 0%, 99%, 1)"
	case Dark:
		return "rgb(74, 74, 74)"
	}
	return "currentcolor"
}

// String returns the CSS value.
func (f Foreground) String() string { return f.CSS() }

// PickTextColor chooses the text colour for a sector filled with fill.
//
// Unparsable fills yield [Inherit]. Otherwise [Light] is chosen when its
// [ContrastRatio] against the fill is lower than that of [Dark]. Because
// the ratio is darker/lighter, lower means more contrast, so this picks
// the reference that stands out more.
func PickTextColor(fill string) Foreground {
	bg, ok := Parse(fill)
	if !ok {
		return Inherit
	}
	return pickFor(bg)
}

func pickFor(bg RGB) Foreground {
	if ContrastRatio(NearWhite, bg) < ContrastRatio(NearBlack, bg) {
		return Light
	}
	return Dark
}
