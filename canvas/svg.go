package canvas

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sarchlab/overview/overview"
)

// SVG is an overview.Canvas that writes an SVG document.
type SVG struct {
	width, height float64

	body strings.Builder
	path strings.Builder

	fill      color.Color
	stroke    color.Color
	lineWidth float64
	font      string
	align     overview.TextAlign
}

// NewSVG creates an SVG canvas of the given size.
func NewSVG(width, height float64) *SVG {
	return &SVG{
		width:     width,
		height:    height,
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
		font:      "10px sans-serif",
	}
}

// SetFillColor sets the colour used by FillRect and FillText.
func (c *SVG) SetFillColor(col color.Color) { c.fill = col }

// SetStrokeColor sets the colour used by Stroke.
func (c *SVG) SetStrokeColor(col color.Color) { c.stroke = col }

// SetLineWidth sets the width used by Stroke.
func (c *SVG) SetLineWidth(w float64) { c.lineWidth = w }

// SetFont sets a CSS font shorthand such as "6px sans-serif".
func (c *SVG) SetFont(font string) { c.font = font }

// SetTextAlign sets the anchor of FillText.
func (c *SVG) SetTextAlign(align overview.TextAlign) { c.align = align }

// FillRect adds a filled rectangle.
func (c *SVG) FillRect(x, y, w, h float64) {
	fmt.Fprintf(&c.body,
		`<rect x="%s" y="%s" width="%s" height="%s" fill="%s"%s/>`+"\n",
		num(x), num(y), num(w), num(h), CSS(c.fill), opacityAttr("fill", c.fill))
}

// BeginPath discards the current path.
func (c *SVG) BeginPath() {
	c.path.Reset()
}

// MoveTo starts a new sub-path.
func (c *SVG) MoveTo(x, y float64) {
	fmt.Fprintf(&c.path, "M%s %s ", num(x), num(y))
}

// LineTo adds a straight segment to the current sub-path.
func (c *SVG) LineTo(x, y float64) {
	if c.path.Len() == 0 {
		c.MoveTo(x, y)
		return
	}

	fmt.Fprintf(&c.path, "L%s %s ", num(x), num(y))
}

// Arc adds a circular arc to the current path, joined to the previous point
// by a straight line as on an HTML canvas.
func (c *SVG) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	sx := x + radius*math.Cos(startAngle)
	sy := y + radius*math.Sin(startAngle)

	if c.path.Len() == 0 {
		c.MoveTo(sx, sy)
	} else {
		c.LineTo(sx, sy)
	}

	sweep := endAngle - startAngle
	if anticlockwise {
		sweep = -sweep
	}

	if math.Abs(sweep) >= 2*math.Pi {
		// SVG cannot draw a full circle with a single arc command.
		ox := x - radius*math.Cos(startAngle)
		oy := y - radius*math.Sin(startAngle)
		c.arcTo(radius, false, !anticlockwise, ox, oy)
		c.arcTo(radius, false, !anticlockwise, sx, sy)

		return
	}

	ex := x + radius*math.Cos(endAngle)
	ey := y + radius*math.Sin(endAngle)
	sweep = math.Mod(sweep+4*math.Pi, 2*math.Pi)
	c.arcTo(radius, sweep > math.Pi, !anticlockwise, ex, ey)
}

func (c *SVG) arcTo(radius float64, large, clockwise bool, x, y float64) {
	fmt.Fprintf(&c.path, "A%s %s 0 %d %d %s %s ",
		num(radius), num(radius), flag(large), flag(clockwise), num(x), num(y))
}

// Stroke outlines the current path.
func (c *SVG) Stroke() {
	if c.path.Len() == 0 {
		return
	}

	fmt.Fprintf(&c.body,
		`<path d="%s" fill="none" stroke="%s" stroke-width="%s"%s/>`+"\n",
		strings.TrimSpace(c.path.String()), CSS(c.stroke), num(c.lineWidth),
		opacityAttr("stroke", c.stroke))
}

// FillText adds a text label.
func (c *SVG) FillText(text string, x, y float64) {
	fmt.Fprintf(&c.body,
		`<text x="%s" y="%s" text-anchor="%s" style="font: %s" fill="%s">%s</text>`+"\n",
		num(x), num(y), anchor(c.align), escapeXML(c.font), CSS(c.fill),
		escapeXML(text))
}

// String returns the complete SVG document.
func (c *SVG) String() string {
	var b strings.Builder

	_, _ = c.WriteTo(&b)

	return b.String()
}

// WriteTo writes the complete SVG document to w.
func (c *SVG) WriteTo(w io.Writer) (int64, error) {
	var total int64

	n, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(c.width), num(c.height), num(c.width), num(c.height))
	total += int64(n)
	if err != nil {
		return total, err
	}

	n, err = io.WriteString(w, c.body.String())
	total += int64(n)
	if err != nil {
		return total, err
	}

	n, err = io.WriteString(w, "</svg>\n")
	total += int64(n)

	return total, err
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func flag(b bool) int {
	if b {
		return 1
	}

	return 0
}

func anchor(a overview.TextAlign) string {
	switch a {
	case overview.AlignCenter:
		return "middle"
	case overview.AlignEnd:
		return "end"
	default:
		return "start"
	}
}

func opacityAttr(name string, c color.Color) string {
	o := Opacity(c)
	if o >= 1 || o == 0 {
		return ""
	}

	return fmt.Sprintf(` %s-opacity="%s"`, name, num(o))
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")

	return s
}
