package polar

import "fmt"

// Mode selects the path shape a label follows.
//
// Exactly two modes exist. Every switch over Mode handles both and panics
// on anything else, so adding a variant fails loudly at each site that has
// not been taught about it.
type Mode uint8

const (
	// SectorArc places text along the sector's mean-radius arc.
	SectorArc Mode = iota + 1
	// MidLine places text along a radial line through the mid-angle.
	MidLine
)

// String returns "arc" or "line".
func (m Mode) String() string {
	switch m {
	case SectorArc:
		return "arc"
	case MidLine:
		return "line"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode parses the output of [Mode.String].
func ParseMode(s string) (Mode, error) {
	switch s {
	case "arc":
		return SectorArc, nil
	case "line":
		return MidLine, nil
	}
	return 0, fmt.Errorf("unknown text path mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != SectorArc && m != MidLine {
		return nil, fmt.Errorf("unknown text path mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// mustBeMode panics for values outside the enumeration.
func mustBeMode(m Mode) {
	panic(fmt.Sprintf("polar: unhandled text path mode %v", m))
}
