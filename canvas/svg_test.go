package canvas

import (
	"image/color"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/overview/overview"
)

var _ = Describe("SVG", func() {
	var c *SVG

	BeforeEach(func() {
		c = NewSVG(100, 50)
	})

	It("should wrap the body in an svg element", func() {
		out := c.String()

		Expect(out).To(HavePrefix(
			`<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50" viewBox="0 0 100 50">`))
		Expect(out).To(HaveSuffix("</svg>\n"))
	})

	It("should fill rectangles", func() {
		c.SetFillColor(color.RGBA{R: 0xff, A: 0xff})
		c.FillRect(1, 2, 3.5, 4)

		Expect(c.String()).To(ContainSubstring(
			`<rect x="1" y="2" width="3.5" height="4" fill="#ff0000"/>`))
	})

	It("should carry translucency", func() {
		c.SetFillColor(color.NRGBA{R: 0xff, A: 0x80})
		c.FillRect(0, 0, 1, 1)

		Expect(c.String()).To(ContainSubstring(`fill-opacity="0.502"`))
	})

	It("should stroke lines", func() {
		c.SetStrokeColor(color.RGBA{R: 0xff, G: 0xa5, A: 0xff})
		c.SetLineWidth(2)
		c.BeginPath()
		c.MoveTo(40, 20)
		c.LineTo(40, 50)
		c.Stroke()

		Expect(c.String()).To(ContainSubstring(
			`<path d="M40 20 L40 50" fill="none" stroke="#ffa500" stroke-width="2"/>`))
	})

	It("should draw full circles as two arcs", func() {
		c.SetStrokeColor(color.RGBA{R: 0xff, G: 0xa5, A: 0xff})
		c.SetLineWidth(2)
		c.BeginPath()
		c.Arc(5, 20, 1, 0, 2*math.Pi, true)
		c.Stroke()

		Expect(c.String()).To(ContainSubstring(
			`<path d="M6 20 A1 1 0 0 0 4 20 A1 1 0 0 0 6 20" fill="none" stroke="#ffa500" stroke-width="2"/>`))
	})

	It("should draw partial arcs", func() {
		c.BeginPath()
		c.Arc(0, 0, 10, 0, math.Pi/2, false)
		c.Stroke()

		Expect(c.String()).To(ContainSubstring(`d="M10 0 A10 10 0 0 1 0 10"`))
	})

	It("should not emit empty paths", func() {
		c.BeginPath()
		c.Stroke()

		Expect(c.String()).NotTo(ContainSubstring("<path"))
	})

	It("should escape and anchor text", func() {
		c.SetFont("6px sans-serif")
		c.SetTextAlign(overview.AlignCenter)
		c.FillText("a<b & c", 10, 8)

		Expect(c.String()).To(ContainSubstring(
			`<text x="10" y="8" text-anchor="middle" style="font: 6px sans-serif" fill="#000000">a&lt;b &amp; c</text>`))
	})
})

var _ = Describe("Colours", func() {
	It("should parse hex colours", func() {
		c, err := ParseColor("#eaeaea")

		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(color.RGBA{R: 0xea, G: 0xea, B: 0xea, A: 0xff}))
	})

	It("should parse short hex colours", func() {
		c, err := ParseColor("#f00")

		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(color.RGBA{R: 0xff, A: 0xff}))
	})

	It("should parse keywords", func() {
		c, err := ParseColor(" Orange ")

		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(color.RGBA{R: 0xff, G: 0xa5, A: 0xff}))
	})

	It("should reject garbage", func() {
		_, err := ParseColor("not-a-colour")

		Expect(err).To(HaveOccurred())
	})

	It("should format colours", func() {
		Expect(CSS(color.RGBA{R: 0x52, G: 0x52, B: 0x52, A: 0xff})).To(Equal("#525252"))
		Expect(CSS(color.RGBA{})).To(Equal("none"))
		Expect(CSS(nil)).To(Equal("none"))
	})
})
