// Package vmath holds the float64 vector and scalar helpers shared by physics and the renderers.
package vmath

import "math"

// IsFinite reports whether f is neither NaN nor ±Inf
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Fold mirrors v back into [lo, hi] as if it bounced off both ends.
// Returns the folded value and the number of reflections taken (always >= 0).
// Landing exactly on either end counts as a reflection off that end.
// Degenerate ranges (hi <= lo) return v unchanged with zero reflections.
func Fold(v, lo, hi float64) (float64, int) {
	span := hi - lo
	if span <= 0 {
		return v, 0
	}

	u := v - lo
	k := math.Floor(u / span)
	rem := u - k*span

	n := int(math.Abs(k))
	folded := hi - rem
	if n%2 == 0 {
		folded = lo + rem
	}

	// Travel ending on an end from below lo is not counted by k
	if rem == 0 && k <= 0 {
		n++
	}
	return folded, n
}
