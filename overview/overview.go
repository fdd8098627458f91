// Package overview paints the compact overview strip of a profiling timeline.
//
// A Renderer reads events from a DataProvider and the visible window from a
// ViewRange, and issues canvas-style draw calls on a Canvas. It keeps no
// state between calls other than the two injected collaborators. The host
// composes a frame by calling ClearBackground, PaintEvents,
// PaintBindingLoopMarkers, PaintNotes and PaintTimeRuler in that order, or
// simply Paint.
package overview
