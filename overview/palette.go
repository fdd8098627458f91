package overview

import "image/color"

// Palette holds the fixed colours and the font used by the overview.
type Palette struct {
	Background   color.Color
	Marker       color.Color
	RulerFill    color.Color
	RulerTick    color.Color
	RulerText    color.Color
	RulerBorder  color.Color
	RulerFont    string
	MarkerWidth  float64
	MarkerRadius float64
}

// DefaultPalette returns the classic overview look.
func DefaultPalette() Palette {
	return Palette{
		Background:   color.RGBA{R: 0xea, G: 0xea, B: 0xea, A: 0xff},
		Marker:       color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
		RulerFill:    color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
		RulerTick:    color.RGBA{R: 0x52, G: 0x52, B: 0x52, A: 0xff},
		RulerText:    color.RGBA{A: 0xff},
		RulerBorder:  color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		RulerFont:    "6px sans-serif",
		MarkerWidth:  2,
		MarkerRadius: 1,
	}
}
