package ui

import "golang.org/x/exp/constraints"

// Clamp restricts v to [lo, hi], used across layout and widget code (slider
// drag, window min/max size, scroll bounds) wherever the bound applies to
// more than one numeric type — int pixel sizes as well as float32 values —
// so the same helper serves both instead of a float-only and an int-only
// copy drifting apart.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
