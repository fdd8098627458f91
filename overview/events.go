package overview

import "math"

// PaintEvents draws one bar per event in the stride window of each lane.
// Bars are anchored at the bottom of their lane and are at least one pixel
// wide.
func (r *Renderer) PaintEvents(s Surface, ctx Canvas) {
	if !r.hasData() {
		return
	}

	offset, increment := s.stride()
	traceStart := r.viewRange.TraceStart()

	for model := 0; model < r.provider.ModelCount(); model++ {
		count := r.provider.Count(model)
		for i := offset; i < count; i += increment {
			x := math.Round(
				float64(r.provider.StartTime(model, i)-traceStart) * s.Spacing)

			width := float64(r.provider.Duration(model, i)) * s.Spacing
			if width < 1 {
				width = 1
			}

			height := r.provider.RelativeHeight(model, i) * s.BlockHeight
			y := float64(model+1)*s.BlockHeight - height

			ctx.SetFillColor(r.provider.Color(model, i))
			ctx.FillRect(x, s.Bump+y, width, height)
		}
	}
}
