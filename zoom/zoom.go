// Package zoom keeps the zoom and pan state of a timeline view.
package zoom

import "math"

// MinRange is the shortest selectable range, in nanoseconds.
const MinRange = 1

// Control is the zoom state. The trace bounds cover all recorded events; the
// range is the visible window inside them.
type Control struct {
	traceStart, traceEnd int64
	rangeStart, rangeEnd int64
	locked               bool
}

// NewControl creates a control over an empty trace.
func NewControl() *Control {
	return &Control{}
}

// SetTrace sets the trace bounds and shows the whole trace.
func (c *Control) SetTrace(start, end int64) {
	if end < start {
		start, end = end, start
	}

	c.traceStart = start
	c.traceEnd = end
	c.rangeStart = start
	c.rangeEnd = end
}

// TraceStart returns the start of the trace.
func (c *Control) TraceStart() int64 { return c.traceStart }

// TraceEnd returns the end of the trace.
func (c *Control) TraceEnd() int64 { return c.traceEnd }

// TraceDuration returns the length of the trace.
func (c *Control) TraceDuration() int64 { return c.traceEnd - c.traceStart }

// RangeStart returns the start of the visible window.
func (c *Control) RangeStart() int64 { return c.rangeStart }

// RangeEnd returns the end of the visible window.
func (c *Control) RangeEnd() int64 { return c.rangeEnd }

// RangeDuration returns the length of the visible window.
func (c *Control) RangeDuration() int64 { return c.rangeEnd - c.rangeStart }

// SetWindowLocked locks or unlocks the visible window.
func (c *Control) SetWindowLocked(locked bool) { c.locked = locked }

// WindowLocked tells if the visible window ignores range changes.
func (c *Control) WindowLocked() bool { return c.locked }

// SetRange moves the visible window. The window is kept inside the trace and
// is at least MinRange long unless the trace itself is shorter. A locked
// window does not move.
func (c *Control) SetRange(start, end int64) {
	if c.locked {
		return
	}

	c.rangeStart, c.rangeEnd = c.clamp(start, end)
}

func (c *Control) clamp(start, end int64) (int64, int64) {
	if end < start {
		start, end = end, start
	}

	d := min(end-start, c.TraceDuration())
	if c.TraceDuration() >= MinRange {
		d = max(d, MinRange)
	}

	if start+d > c.traceEnd {
		start = c.traceEnd - d
	}

	start = max(start, c.traceStart)

	return start, start + d
}

// ZoomBy scales the visible window around centre. Factors above 1 zoom in.
// The time under centre stays at the same relative position.
func (c *Control) ZoomBy(factor float64, centre int64) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}

	before := float64(centre - c.rangeStart)
	after := float64(c.rangeEnd - centre)

	start := centre - int64(math.Round(before/factor))
	end := centre + int64(math.Round(after/factor))

	c.SetRange(start, end)
}

// PanBy shifts the visible window by delta nanoseconds, stopping at the
// trace bounds.
func (c *Control) PanBy(delta int64) {
	c.SetRange(c.rangeStart+delta, c.rangeEnd+delta)
}

// Reset unlocks the window and shows the whole trace.
func (c *Control) Reset() {
	c.locked = false
	c.rangeStart = c.traceStart
	c.rangeEnd = c.traceEnd
}
