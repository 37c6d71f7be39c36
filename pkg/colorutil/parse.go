package colorutil

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Parse reads a CSS colour: #rgb, #rrggbb, rgb()/rgba(), hsl()/hsla() or
// a CSS named colour. Alpha is ignored. The second result is false for
// anything else, including "none", "transparent" and "currentcolor".
func Parse(s string) (RGB, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return RGB{}, false
	case strings.HasPrefix(s, "#"):
		if len(s) != 4 && len(s) != 7 {
			return RGB{}, false
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return RGB{}, false
		}
		return fromColorful(c), true
	case strings.HasPrefix(s, "rgb"):
		return parseRGBFunc(s)
	case strings.HasPrefix(s, "hsl"):
		return parseHSLFunc(s)
	}
	if s == "transparent" {
		return RGB{}, false
	}
	if c, ok := colornames.Map[s]; ok {
		return RGB{c.R, c.G, c.B}, true
	}
	return RGB{}, false
}

// MustParse is like Parse but panics on invalid input. Intended for
// package-level palettes.
func MustParse(s string) RGB {
	c, ok := Parse(s)
	if !ok {
		panic("colorutil: invalid colour " + strconv.Quote(s))
	}
	return c
}

// Hex formats c as #rrggbb.
func (c RGB) Hex() string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// funcArgs splits "name(a, b, c)" or "name(a b c / d)" into its arguments.
func funcArgs(s string) ([]string, bool) {
	lo, hi := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if lo < 0 || hi < lo {
		return nil, false
	}
	body := strings.NewReplacer(",", " ", "/", " ").Replace(s[lo+1 : hi])
	return strings.Fields(body), true
}

func parseRGBFunc(s string) (RGB, bool) {
	args, ok := funcArgs(s)
	if !ok || len(args) < 3 {
		return RGB{}, false
	}
	var ch [3]uint8
	for i := range ch {
		v, ok := channel(args[i])
		if !ok {
			return RGB{}, false
		}
		ch[i] = v
	}
	return RGB{ch[0], ch[1], ch[2]}, true
}

// channel parses an rgb() component: a number in [0, 255] or a percentage.
func channel(arg string) (uint8, bool) {
	scale := 1.0
	if strings.HasSuffix(arg, "%") {
		arg = strings.TrimSuffix(arg, "%")
		scale = 255.0 / 100
	}
	v, ok := parseFinite(arg)
	if !ok {
		return 0, false
	}
	v = max(0, min(255, v*scale))
	return uint8(v + 0.5), true
}

func parseHSLFunc(s string) (RGB, bool) {
	args, ok := funcArgs(s)
	if !ok || len(args) < 3 {
		return RGB{}, false
	}
	h, ok := parseFinite(strings.TrimSuffix(args[0], "deg"))
	if !ok {
		return RGB{}, false
	}
	sat, ok := percent(args[1])
	if !ok {
		return RGB{}, false
	}
	light, ok := percent(args[2])
	if !ok {
		return RGB{}, false
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsl(h, sat, light)), true
}

func percent(arg string) (float64, bool) {
	if !strings.HasSuffix(arg, "%") {
		return 0, false
	}
	v, ok := parseFinite(strings.TrimSuffix(arg, "%"))
	if !ok {
		return 0, false
	}
	return max(0, min(1, v/100)), true
}

// parseFinite is strconv.ParseFloat minus the "nan" and "inf" spellings
// it also accepts.
func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
