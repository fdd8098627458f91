package overview

import "image/color"

// DataProvider exposes the event index that the overview draws. Lanes are
// called models and are addressed by a dense index in [0, ModelCount()).
// Events within a model are addressed by a dense index in [0, Count(model))
// and must be sorted by start time. All times are in nanoseconds.
type DataProvider interface {
	ModelCount() int
	Count(model int) int
	IsEmpty() bool

	StartTime(model, index int) int64
	EndTime(model, index int) int64
	Duration(model, index int) int64

	// RelativeHeight returns the bar height as a fraction of the lane height,
	// in [0, 1].
	RelativeHeight(model, index int) float64
	Color(model, index int) color.Color

	// BindingLoopDest returns the index of the event that closes the binding
	// loop this event takes part in, or -1.
	BindingLoopDest(model, index int) int

	NoteCount() int
	NoteTimelineModel(note int) int

	// NoteTimelineIndex returns -1 if the annotated event no longer exists.
	NoteTimelineIndex(note int) int
}

// ViewRange is the zoom and pan state that maps time onto the surface.
type ViewRange interface {
	TraceStart() int64
	TraceDuration() int64
}
