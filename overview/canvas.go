package overview

import "image/color"

// TextAlign is the horizontal anchor of text drawn by FillText.
type TextAlign int

// The supported text anchors.
const (
	AlignStart TextAlign = iota
	AlignCenter
	AlignEnd
)

func (a TextAlign) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// Canvas is the subset of a 2D canvas API that the overview needs.
type Canvas interface {
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	SetFont(font string)
	SetTextAlign(align TextAlign)

	FillRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)

	// Arc adds a circular arc centred at (x, y). Angles are in radians.
	Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool)
	Stroke()

	FillText(text string, x, y float64)
}
