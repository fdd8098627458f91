package overview

import "math"

// The area under the ruler is split into seven bands: a margin, three bands
// for the upper tick, a gap, one band for the lower tick and a margin.
const noteBands = 7

// PaintNotes draws a pair of vertical ticks at the centre of every annotated
// event. Notes whose event or lane has been removed are skipped.
func (r *Renderer) PaintNotes(s Surface, ctx Canvas) {
	if r.viewRange == nil || r.provider == nil || r.provider.NoteCount() == 0 {
		return
	}

	traceStart := r.viewRange.TraceStart()
	traceDuration := r.viewRange.TraceDuration()
	if traceDuration <= 0 {
		return
	}

	spacing := s.Width / float64(traceDuration)
	band := (s.Height - s.Bump) / noteBands

	upperBound := traceStart + traceDuration
	if r.noteClamp == NoteClampLegacy {
		upperBound = traceStart
	}

	ctx.SetStrokeColor(r.palette.Marker)
	ctx.SetLineWidth(r.palette.MarkerWidth)

	for note := 0; note < r.provider.NoteCount(); note++ {
		model := r.provider.NoteTimelineModel(note)
		index := r.provider.NoteTimelineIndex(note)
		if index == -1 || model < 0 {
			continue
		}

		start := max(r.provider.StartTime(model, index), traceStart)
		end := min(r.provider.EndTime(model, index), upperBound)
		mid := float64(start+end)/2 - float64(traceStart)
		x := math.Round(mid * spacing)

		ctx.BeginPath()
		ctx.MoveTo(x, s.Bump+band)
		ctx.LineTo(x, s.Bump+band*4)
		ctx.Stroke()

		ctx.BeginPath()
		ctx.MoveTo(x, s.Bump+band*5)
		ctx.LineTo(x, s.Bump+band*6)
		ctx.Stroke()
	}
}
