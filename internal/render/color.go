package render

import "image/color"

// Named colors accepted on the wire alongside #rgb / #rrggbb hex.
var namedColors = map[string]color.RGBA{
	"black": {0x00, 0x00, 0x00, 0xff},
	"white": {0xff, 0xff, 0xff, 0xff},
}

// ParseColor converts a wire color string to an opaque RGBA value.
// Unrecognized input falls back to black, matching the default pen.
func ParseColor(s string) color.RGBA {
	if c, ok := namedColors[s]; ok {
		return c
	}
	if len(s) == 4 && s[0] == '#' {
		r, ok1 := hexNibble(s[1])
		g, ok2 := hexNibble(s[2])
		b, ok3 := hexNibble(s[3])
		if ok1 && ok2 && ok3 {
			return color.RGBA{r * 0x11, g * 0x11, b * 0x11, 0xff}
		}
	}
	if len(s) == 7 && s[0] == '#' {
		r, ok1 := hexByte(s[1], s[2])
		g, ok2 := hexByte(s[3], s[4])
		b, ok3 := hexByte(s[5], s[6])
		if ok1 && ok2 && ok3 {
			return color.RGBA{r, g, b, 0xff}
		}
	}
	return namedColors["black"]
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func hexByte(hi, lo byte) (uint8, bool) {
	h, ok1 := hexNibble(hi)
	l, ok2 := hexNibble(lo)
	return h<<4 | l, ok1 && ok2
}
