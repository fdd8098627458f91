// Package timeline holds the lane models that back the overview: sorted
// ranges per lane, their nesting and binding loops, and the annotations that
// users attach to them.
package timeline

import (
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultRowHeight is the pixel height of one row of a lane.
const DefaultRowHeight = 30

// Hue parameters of the per-type colours.
const (
	selectionIDHueMultiplier = 25
	saturation               = 150.0 / 255
	lightness                = 166.0 / 255
)

// HeightMode decides the relative height of the bars of a lane.
type HeightMode int

const (
	// HeightUniform draws every bar at full lane height.
	HeightUniform HeightMode = iota

	// HeightByDuration scales bars by their duration relative to the longest
	// range of the lane.
	HeightByDuration
)

// A Range is one event of a lane. Times are in nanoseconds.
type Range struct {
	Start    int64
	Duration int64
	TypeID   int
}

// End returns the end time of the range.
func (r Range) End() int64 {
	return r.Start + r.Duration
}

// Model is one lane of the timeline.
type Model struct {
	id          int
	displayName string
	heightMode  HeightMode

	ranges    []Range
	rows      []int
	rowCount  int
	loopHeads []int
	heights   []float64
}

// NewModel creates an empty lane. The id is stable across reloads and is
// what notes refer to.
func NewModel(id int, displayName string, mode HeightMode) *Model {
	return &Model{
		id:          id,
		displayName: displayName,
		heightMode:  mode,
		rowCount:    1,
	}
}

// ID returns the stable id of the lane.
func (m *Model) ID() int { return m.id }

// DisplayName returns the label of the lane.
func (m *Model) DisplayName() string { return m.displayName }

// Insert adds a range and returns its index. Ranges stay sorted by start
// time; ranges with equal start keep their insertion order. Finalize must be
// called after the last insert.
func (m *Model) Insert(start, duration int64, typeID int) int {
	if duration < 0 {
		duration = 0
	}

	i := sort.Search(len(m.ranges), func(i int) bool {
		return m.ranges[i].Start > start
	})

	m.ranges = append(m.ranges, Range{})
	copy(m.ranges[i+1:], m.ranges[i:])
	m.ranges[i] = Range{Start: start, Duration: duration, TypeID: typeID}

	return i
}

// Finalize computes the derived per-range data.
func (m *Model) Finalize() {
	m.computeNesting()
	m.findBindingLoops()
	m.computeHeights()
}

func (m *Model) computeNesting() {
	m.rows = make([]int, len(m.ranges))
	m.rowCount = 1

	level := 0
	ends := []int64{0}

	for i, r := range m.ranges {
		if ends[level] > r.Start {
			level++
			if level == len(ends) {
				ends = append(ends, 0)
			}
		} else {
			for level > 0 && ends[level-1] <= r.Start {
				level--
			}
		}

		ends[level] = r.End()
		m.rows[i] = level
		m.rowCount = max(m.rowCount, level+1)
	}
}

// findBindingLoops marks every range that starts while an enclosing range of
// the same type is still running.
func (m *Model) findBindingLoops() {
	m.loopHeads = make([]int, len(m.ranges))

	var stack []int
	for i, r := range m.ranges {
		m.loopHeads[i] = -1

		for len(stack) > 0 && m.ranges[stack[len(stack)-1]].End() <= r.Start {
			stack = stack[:len(stack)-1]
		}

		for _, parent := range stack {
			if m.ranges[parent].TypeID == r.TypeID {
				m.loopHeads[i] = parent
				break
			}
		}

		stack = append(stack, i)
	}
}

func (m *Model) computeHeights() {
	m.heights = make([]float64, len(m.ranges))

	var longest int64
	for _, r := range m.ranges {
		longest = max(longest, r.Duration)
	}

	for i, r := range m.ranges {
		if m.heightMode == HeightByDuration && longest > 0 {
			m.heights[i] = float64(r.Duration) / float64(longest)
		} else {
			m.heights[i] = 1
		}
	}
}

// Count returns the number of ranges.
func (m *Model) Count() int { return len(m.ranges) }

// IsEmpty tells if the lane has no ranges.
func (m *Model) IsEmpty() bool { return len(m.ranges) == 0 }

// Range returns the range at index.
func (m *Model) Range(index int) Range { return m.ranges[index] }

// StartTime returns the start of the range at index.
func (m *Model) StartTime(index int) int64 { return m.ranges[index].Start }

// EndTime returns the end of the range at index.
func (m *Model) EndTime(index int) int64 { return m.ranges[index].End() }

// Duration returns the length of the range at index.
func (m *Model) Duration(index int) int64 { return m.ranges[index].Duration }

// TypeID returns the type of the range at index.
func (m *Model) TypeID(index int) int { return m.ranges[index].TypeID }

// Row returns the nesting depth of the range at index.
func (m *Model) Row(index int) int { return m.rows[index] }

// RowCount returns the number of nesting rows.
func (m *Model) RowCount() int { return m.rowCount }

// Height returns the pixel height of the expanded lane.
func (m *Model) Height() int { return m.rowCount * DefaultRowHeight }

// BindingLoopDest returns the enclosing range of the same type, or -1.
func (m *Model) BindingLoopDest(index int) int { return m.loopHeads[index] }

// RelativeHeight returns the bar height as a fraction of the lane height.
func (m *Model) RelativeHeight(index int) float64 { return m.heights[index] }

// Color returns the colour of the range at index, derived from its type.
func (m *Model) Color(index int) color.Color {
	return colorByHue(m.ranges[index].TypeID * selectionIDHueMultiplier)
}

func colorByHue(hue int) color.Color {
	hue %= 360
	if hue < 0 {
		hue += 360
	}

	r, g, b := colorful.Hsl(float64(hue), saturation, lightness).Clamped().RGB255()

	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// FirstIndex returns the index of the first range starting at or after t.
func (m *Model) FirstIndex(t int64) int {
	return sort.Search(len(m.ranges), func(i int) bool {
		return m.ranges[i].Start >= t
	})
}

// LastIndex returns the index of the last range starting before t, or -1.
func (m *Model) LastIndex(t int64) int {
	return m.FirstIndex(t) - 1
}
