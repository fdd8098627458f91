package overview

import "math"

// PaintBindingLoopMarkers circles the end of every event that takes part in
// a binding loop. The scan starts one stride before the window so that the
// owner of a marker just left of the window is not missed.
func (r *Renderer) PaintBindingLoopMarkers(s Surface, ctx Canvas) {
	if !r.hasData() {
		return
	}

	offset, increment := s.stride()
	start := offset - increment
	if start < 0 {
		start = offset
	}

	traceStart := r.viewRange.TraceStart()

	ctx.SetStrokeColor(r.palette.Marker)
	ctx.SetLineWidth(r.palette.MarkerWidth)

	for model := 0; model < r.provider.ModelCount(); model++ {
		count := r.provider.Count(model)
		for i := start; i < count; i += increment {
			if r.provider.BindingLoopDest(model, i) < 0 {
				continue
			}

			end := r.provider.StartTime(model, i) + r.provider.Duration(model, i)
			x := math.Round(float64(end-traceStart) * s.Spacing)
			y := math.Round(
				s.Bump + s.BlockHeight*float64(model) + s.BlockHeight/2)

			ctx.BeginPath()
			ctx.Arc(x, y, r.palette.MarkerRadius, 0, 2*math.Pi, true)
			ctx.Stroke()
		}
	}
}
