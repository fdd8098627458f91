// Package canvas provides drawing backends for the overview renderer: an SVG
// writer and a display-list recorder that can be shipped to a remote canvas
// and replayed.
package canvas

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]color.RGBA{
	"black":  {A: 0xff},
	"white":  {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"orange": {R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
	"red":    {R: 0xff, A: 0xff},
	"green":  {G: 0x80, A: 0xff},
	"blue":   {B: 0xff, A: 0xff},
	"gray":   {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"grey":   {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

// ParseColor parses a CSS colour given as "#rgb", "#rrggbb" or one of a few
// colour keywords.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}

	r, g, b := c.RGB255()

	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// CSS formats a colour as "#rrggbb". The alpha channel is dropped; see
// Opacity.
func CSS(c color.Color) string {
	if c == nil {
		return "none"
	}

	_, _, _, a := c.RGBA()
	if a == 0 {
		return "none"
	}

	cf, _ := colorful.MakeColor(c)

	return cf.Hex()
}

// Opacity returns the alpha channel of a colour in [0, 1].
func Opacity(c color.Color) float64 {
	if c == nil {
		return 0
	}

	_, _, _, a := c.RGBA()

	return float64(a) / 0xffff
}
