package overview

import "math"

// RulerHeight is the pixel height of the time ruler band.
const RulerHeight = 10

// The ruler aims for roughly this many pixels per labelled block.
const initialBlockLength = 120

// TimePerBlock returns the duration, in nanoseconds, of one ruler block. It
// is the largest power of two not exceeding the time covered by
// initialBlockLength pixels. It returns 0 if either argument is not positive.
func TimePerBlock(traceDuration, width float64) float64 {
	if traceDuration <= 0 || width <= 0 {
		return 0
	}

	frac, exp := math.Frexp(traceDuration / width * initialBlockLength)
	if frac == 0 {
		return 0
	}

	return math.Ldexp(1, exp-1)
}

// PaintTimeRuler draws the ruler band with a tick at every block boundary
// and the time of the block centre as its label. Block boundaries are aligned
// to multiples of the block duration so the grid does not slide when the view
// is panned.
func (r *Renderer) PaintTimeRuler(s Surface, ctx Canvas) {
	if r.viewRange == nil {
		return
	}

	traceDuration := float64(r.viewRange.TraceDuration())
	timePerBlock := TimePerBlock(traceDuration, s.Width)
	if timePerBlock == 0 || s.Spacing <= 0 {
		return
	}

	pixelsPerBlock := timePerBlock * s.Spacing

	// Ticks closer than a pixel apart are indistinguishable.
	blockCount := min(s.Width/pixelsPerBlock, s.Width)

	traceStart := float64(r.viewRange.TraceStart())
	realStartTime := math.Floor(traceStart/timePerBlock) * timePerBlock
	realStartPos := (traceStart - realStartTime) * s.Spacing

	ctx.SetFont(r.palette.RulerFont)
	ctx.SetFillColor(r.palette.RulerFill)
	ctx.FillRect(0, 0, s.Width, RulerHeight)

	ctx.SetStrokeColor(r.palette.RulerTick)
	ctx.SetTextAlign(AlignCenter)

	for i := 0; float64(i) < blockCount+1; i++ {
		x := math.Floor(float64(i)*pixelsPerBlock - realStartPos)

		ctx.BeginPath()
		ctx.MoveTo(x, RulerHeight/2)
		ctx.LineTo(x, RulerHeight)
		ctx.Stroke()

		label := PrettyPrintTime((float64(i)+0.5)*timePerBlock + realStartTime)
		ctx.SetFillColor(r.palette.RulerText)
		ctx.FillText(label, x+pixelsPerBlock/2, RulerHeight/2+3)
	}

	ctx.SetFillColor(r.palette.RulerBorder)
	ctx.FillRect(0, RulerHeight-1, s.Width, 1)
}
