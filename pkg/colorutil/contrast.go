// Package colorutil parses CSS colours and picks legible text colours for
// filled chart sectors.
//
// Contrast follows the WCAG 2.1 relative-luminance definition, with one
// twist: [ContrastRatio] returns the ratio darker/lighter, so values lie
// in (0, 1] and smaller means more contrast.
package colorutil

import (
	"math"
)

// RGB is a colour with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Reference foreground colours.
var (
	NearWhite = RGB{252, 252, 252}
	NearBlack = RGB{74, 74, 74}
)

// Luminance returns the WCAG relative luminance of c in [0, 1].
func Luminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(v uint8) float64 {
	s := float64(v) / 255
	if s <= 0.03928 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// ContrastRatio returns (darker + 0.05) / (lighter + 0.05) for the
// luminances of a and b. Identical colours give 1; black on white gives
// 1/21.
func ContrastRatio(a, b RGB) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la > lb {
		return (lb + 0.05) / (la + 0.05)
	}
	return (la + 0.05) / (lb + 0.05)
}

// Level is a WCAG conformance level.
type Level string

// WCAG levels.
const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// HaveContrast reports whether a and b meet the given level. Small text
// needs 4.5:1 (AA) or 7:1 (AAA); large text 3:1 (AA) or 4.5:1 (AAA).
// Unknown levels are treated as AAA.
func HaveContrast(a, b RGB, level Level, smallText bool) bool {
	ratio := ContrastRatio(a, b)
	switch {
	case level == LevelAA && smallText:
		return ratio <= 1/4.5
	case level == LevelAA:
		return ratio <= 1.0/3
	case smallText:
		return ratio <= 1.0/7
	default:
		return ratio <= 1/4.5
	}
}
