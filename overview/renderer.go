package overview

// NoteClamp selects how the end of an annotated event is clamped into the
// trace window before the note tick is placed.
type NoteClamp int

const (
	// NoteClampWindow clamps the end of the event to the end of the trace.
	NoteClampWindow NoteClamp = iota

	// NoteClampLegacy clamps the end of the event against the trace start,
	// which reproduces the tick positions of older overview renderings.
	NoteClampLegacy
)

// Renderer paints the overview of a timeline.
type Renderer struct {
	provider  DataProvider
	viewRange ViewRange
	palette   Palette
	noteClamp NoteClamp
}

// Builder can build Renderers.
type Builder struct {
	provider  DataProvider
	viewRange ViewRange
	palette   Palette
	noteClamp NoteClamp
}

// MakeBuilder creates a builder with the default palette.
func MakeBuilder() Builder {
	return Builder{
		palette:   DefaultPalette(),
		noteClamp: NoteClampWindow,
	}
}

// WithDataProvider sets the event index to draw.
func (b Builder) WithDataProvider(p DataProvider) Builder {
	b.provider = p
	return b
}

// WithViewRange sets the zoom state used to map time to pixels.
func (b Builder) WithViewRange(v ViewRange) Builder {
	b.viewRange = v
	return b
}

// WithPalette sets the colours of the overview.
func (b Builder) WithPalette(p Palette) Builder {
	b.palette = p
	return b
}

// WithNoteClamp sets how note targets are clamped into the trace window.
func (b Builder) WithNoteClamp(c NoteClamp) Builder {
	b.noteClamp = c
	return b
}

// Build creates the Renderer.
func (b Builder) Build() *Renderer {
	return &Renderer{
		provider:  b.provider,
		viewRange: b.viewRange,
		palette:   b.palette,
		noteClamp: b.noteClamp,
	}
}

// BindDataProvider replaces the event index. Passing nil unbinds it, after
// which the data passes draw nothing.
func (r *Renderer) BindDataProvider(p DataProvider) {
	r.provider = p
}

// BindViewRange replaces the zoom state.
func (r *Renderer) BindViewRange(v ViewRange) {
	r.viewRange = v
}

// DataProvider returns the bound event index.
func (r *Renderer) DataProvider() DataProvider {
	return r.provider
}

// ViewRange returns the bound zoom state.
func (r *Renderer) ViewRange() ViewRange {
	return r.viewRange
}

// Palette returns the colours used by the renderer.
func (r *Renderer) Palette() Palette {
	return r.palette
}

// Paint draws a complete frame.
func (r *Renderer) Paint(s Surface, ctx Canvas) {
	r.ClearBackground(s, ctx)
	r.PaintEvents(s, ctx)
	r.PaintBindingLoopMarkers(s, ctx)
	r.PaintNotes(s, ctx)
	r.PaintTimeRuler(s, ctx)
}

// ClearBackground fills the whole surface with the background colour.
func (r *Renderer) ClearBackground(s Surface, ctx Canvas) {
	ctx.SetFillColor(r.palette.Background)
	ctx.FillRect(0, 0, s.Width, s.Height)
}

func (r *Renderer) hasData() bool {
	return r.viewRange != nil && r.provider != nil && !r.provider.IsEmpty()
}
