package timeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// rgba is a parsed hex color with 8-bit channels.
type rgba struct {
	r, g, b, a uint8
	hasAlpha   bool
}

// parseHexColor parses #rgb, #rrggbb or #rrggbbaa strings.
func parseHexColor(s string) (rgba, error) {
	if !strings.HasPrefix(s, "#") {
		return rgba{}, fmt.Errorf("not a hex color: %q", s)
	}
	hex := s[1:]

	if len(hex) == 3 {
		// Expand shorthand: #f0a -> #ff00aa
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	switch len(hex) {
	case 6, 8:
	default:
		return rgba{}, fmt.Errorf("not a hex color: %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return rgba{}, fmt.Errorf("not a hex color: %q", s)
	}

	if len(hex) == 8 {
		return rgba{
			r:        uint8(v >> 24),
			g:        uint8(v >> 16),
			b:        uint8(v >> 8),
			a:        uint8(v),
			hasAlpha: true,
		}, nil
	}
	return rgba{r: uint8(v >> 16), g: uint8(v >> 8), b: uint8(v), a: 0xff}, nil
}

func (c rgba) format() string {
	if c.hasAlpha {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.r, c.g, c.b, c.a)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// lerpColor blends two hex colors per channel at eased progress e.
// Alpha is carried when either endpoint declares it.
func lerpColor(from, to string, e float64) (string, error) {
	c0, err := parseHexColor(from)
	if err != nil {
		return "", err
	}
	c1, err := parseHexColor(to)
	if err != nil {
		return "", err
	}

	out := rgba{
		r:        lerpChannel(c0.r, c1.r, e),
		g:        lerpChannel(c0.g, c1.g, e),
		b:        lerpChannel(c0.b, c1.b, e),
		a:        lerpChannel(c0.a, c1.a, e),
		hasAlpha: c0.hasAlpha || c1.hasAlpha,
	}
	return out.format(), nil
}

func lerpChannel(a, b uint8, e float64) uint8 {
	v := math.Round(float64(a) + e*(float64(b)-float64(a)))
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
