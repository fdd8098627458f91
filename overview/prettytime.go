package overview

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// PrettyPrintTime formats a time given in nanoseconds, picking the largest
// unit that keeps the number below 1000. Milliseconds keep one truncated
// decimal; seconds and minutes are truncated to integers. Positive infinity
// prints as ∞.
func PrettyPrintTime(ns float64) string {
	if ns <= 0 || math.IsNaN(ns) {
		return "0"
	}

	if math.IsInf(ns, 1) {
		return "∞"
	}

	if ns < 1000 {
		return formatNumber(ns) + " ns"
	}

	us := ns / 1000
	if us < 1000 {
		return formatNumber(us) + " μs"
	}

	ms := math.Floor(us/100) / 10
	if ms < 1000 {
		return formatNumber(ms) + " ms"
	}

	s := math.Trunc(ms / 1000)
	if s < 60 {
		return fmt.Sprintf("%d s", int64(s))
	}

	return formatWhole(math.Trunc(s/60)) + "m" + formatWhole(math.Mod(s, 60)) + "s"
}

func formatWhole(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// FormatDuration is PrettyPrintTime for a time.Duration.
func FormatDuration(d time.Duration) string {
	return PrettyPrintTime(float64(d.Nanoseconds()))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
