package overview

// Surface describes the area being painted for one frame.
type Surface struct {
	Width  float64
	Height float64

	// Offset and Increment select the events drawn in this call: indices
	// Offset, Offset+Increment, Offset+2*Increment, and so on.
	Offset    int
	Increment int

	// Spacing is the number of pixels per nanosecond.
	Spacing float64

	// BlockHeight is the pixel height of one lane.
	BlockHeight float64

	// Bump is the vertical space reserved for the time ruler.
	Bump float64
}

// stride returns the normalized stride window of the surface.
func (s Surface) stride() (offset, increment int) {
	offset, increment = s.Offset, s.Increment
	if increment < 1 {
		increment = 1
	}

	if offset < 0 {
		offset = 0
	}

	return offset, increment
}
