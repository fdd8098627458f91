package timeline

import (
	"image/color"
	"math"
)

// Aggregator stacks lanes in display order and serves them to the overview
// renderer.
type Aggregator struct {
	models []*Model
	notes  *Notes
}

// NewAggregator creates an aggregator with no lanes.
func NewAggregator() *Aggregator {
	return &Aggregator{notes: NewNotes()}
}

// AddModel appends a lane. Lane ids must be unique.
func (a *Aggregator) AddModel(m *Model) {
	a.models = append(a.models, m)
}

// SetModels replaces all lanes and re-resolves the notes against them.
func (a *Aggregator) SetModels(models []*Model) {
	a.models = append([]*Model(nil), models...)
	a.notes.Restore(a.lookupType)
}

func (a *Aggregator) lookupType(modelID, index int) (int, bool) {
	i := a.ModelIndexFromID(modelID)
	if i < 0 || index >= a.models[i].Count() {
		return 0, false
	}

	return a.models[i].TypeID(index), true
}

// Model returns the lane at display position i.
func (a *Aggregator) Model(i int) *Model { return a.models[i] }

// Models returns the lanes in display order.
func (a *Aggregator) Models() []*Model {
	return append([]*Model(nil), a.models...)
}

// ModelIndexFromID returns the display position of a lane id, or -1.
func (a *Aggregator) ModelIndexFromID(id int) int {
	for i, m := range a.models {
		if m.ID() == id {
			return i
		}
	}

	return -1
}

// SwapModels exchanges the display positions of two lanes.
func (a *Aggregator) SwapModels(i, j int) {
	a.models[i], a.models[j] = a.models[j], a.models[i]
}

// Notes returns the annotations.
func (a *Aggregator) Notes() *Notes { return a.notes }

// NoteText returns the text attached to a range of the lane at display
// position model, or "" if there is none.
func (a *Aggregator) NoteText(model, index int) string {
	note, ok := a.notes.Get(a.models[model].ID(), index)
	if !ok {
		return ""
	}

	return note.Text
}

// SetNoteText attaches text to a range, creating, updating or removing the
// note as needed. It returns the note id, or "" if the note was removed.
func (a *Aggregator) SetNoteText(model, index int, text string) string {
	m := a.models[model]

	note, ok := a.notes.Get(m.ID(), index)
	if ok {
		if err := a.notes.Update(note.ID, text); err != nil || text == "" {
			return ""
		}

		return note.ID
	}

	if text == "" {
		return ""
	}

	return a.notes.Add(m.ID(), index, m.TypeID(index), text)
}

// ModelCount returns the number of lanes.
func (a *Aggregator) ModelCount() int { return len(a.models) }

// Count returns the number of ranges of a lane.
func (a *Aggregator) Count(model int) int { return a.models[model].Count() }

// IsEmpty tells if no lane has any range.
func (a *Aggregator) IsEmpty() bool {
	for _, m := range a.models {
		if !m.IsEmpty() {
			return false
		}
	}

	return true
}

// StartTime returns the start of a range.
func (a *Aggregator) StartTime(model, index int) int64 {
	return a.models[model].StartTime(index)
}

// EndTime returns the end of a range.
func (a *Aggregator) EndTime(model, index int) int64 {
	return a.models[model].EndTime(index)
}

// Duration returns the length of a range.
func (a *Aggregator) Duration(model, index int) int64 {
	return a.models[model].Duration(index)
}

// RelativeHeight returns the bar height of a range.
func (a *Aggregator) RelativeHeight(model, index int) float64 {
	return a.models[model].RelativeHeight(index)
}

// Color returns the colour of a range.
func (a *Aggregator) Color(model, index int) color.Color {
	return a.models[model].Color(index)
}

// BindingLoopDest returns the binding loop head of a range, or -1.
func (a *Aggregator) BindingLoopDest(model, index int) int {
	return a.models[model].BindingLoopDest(index)
}

// NoteCount returns the number of notes.
func (a *Aggregator) NoteCount() int { return a.notes.Count() }

// NoteTimelineModel maps the lane id of a note to its display position.
func (a *Aggregator) NoteTimelineModel(note int) int {
	return a.ModelIndexFromID(a.notes.At(note).TimelineModel)
}

// NoteTimelineIndex returns the range a note is attached to, or -1.
func (a *Aggregator) NoteTimelineIndex(note int) int {
	return a.notes.At(note).TimelineIndex
}

// TraceStart returns the earliest start of all ranges, or 0 if empty.
func (a *Aggregator) TraceStart() int64 {
	start := int64(math.MaxInt64)
	for _, m := range a.models {
		if !m.IsEmpty() {
			start = min(start, m.StartTime(0))
		}
	}

	if start == math.MaxInt64 {
		return 0
	}

	return start
}

// TraceEnd returns the latest end of all ranges, or 0 if empty.
func (a *Aggregator) TraceEnd() int64 {
	var end int64
	found := false

	for _, m := range a.models {
		for i := 0; i < m.Count(); i++ {
			if !found || m.EndTime(i) > end {
				end = m.EndTime(i)
				found = true
			}
		}
	}

	return end
}

// TraceDuration returns TraceEnd minus TraceStart.
func (a *Aggregator) TraceDuration() int64 {
	return a.TraceEnd() - a.TraceStart()
}

// Height returns the pixel height of all lanes stacked.
func (a *Aggregator) Height() int {
	h := 0
	for _, m := range a.models {
		h += m.Height()
	}

	return h
}
