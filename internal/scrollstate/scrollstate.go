// Package scrollstate implements the pure math behind horizontal pan and
// zoom. A State describes how a zoomed content strip sits inside a fixed-width
// container: Length is the zoomed content width in pixels, Offset is the
// horizontal displacement of the content origin relative to the container
// origin (always <= 0 once content is wider than the container).
//
// All functions are pure: they take a State by value and return a new one,
// never mutating the input. Every result is clamped, so callers can feed
// arbitrary (even NaN) proposals and get back a valid state.
package scrollstate

import "math"

// State is an immutable pan/zoom position.
type State struct {
	Offset float64
	Length float64
}

// clampValue projects v into [lo, hi]. NaN degrades to lo, so garbage input
// collapses to a valid bound instead of propagating.
func clampValue(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// minOffset returns the lowest legal offset for a content of the given length
// inside the given container. Content wider than the container may be dragged
// left until its right edge meets the container's right edge; content narrower
// than the container stays anchored to the left edge (offset pinned at 0).
func minOffset(length, containerLength float64) float64 {
	if containerLength-length < 0 {
		return containerLength - length
	}
	return 0
}

// Clamp projects the state's length into [minLength, maxLength] and its offset
// into the range that keeps the (re-lengthened) content validly positioned
// against the container.
func Clamp(s State, minLength, maxLength, containerLength float64) State {
	length := clampValue(s.Length, minLength, maxLength)
	return State{
		Offset: clampValue(s.Offset, minOffset(length, containerLength), 0),
		Length: length,
	}
}

// Translate shifts the offset by delta pixels, clamping against the bounds
// implied by the current length. Length is unchanged.
func Translate(s State, delta, containerLength float64) State {
	return State{
		Offset: clampValue(s.Offset+delta, minOffset(s.Length, containerLength), 0),
		Length: s.Length,
	}
}

// Zoom scales the length by multiplier and recomputes the offset so that
// fixedPoint (an x-coordinate in current zoomed content space, i.e.
// pointerX - s.Offset) stays under the same container position. The result is
// clamped to [minLength, maxLength] and the container bounds.
func Zoom(s State, multiplier, fixedPoint, minLength, maxLength, containerLength float64) State {
	if s.Length <= 0 {
		return Clamp(State{Offset: 0, Length: s.Length * multiplier}, minLength, maxLength, containerLength)
	}

	length := clampValue(s.Length*multiplier, minLength, maxLength)
	scale := length / s.Length

	// The fixed point's container position is s.Offset + fixedPoint. After
	// scaling, the same content point lives at fixedPoint*scale, so the new
	// offset is whatever keeps it put.
	offset := (s.Offset + fixedPoint) - fixedPoint*scale
	return State{
		Offset: clampValue(offset, minOffset(length, containerLength), 0),
		Length: length,
	}
}

// FitRange returns a state whose visible window covers [rangeStart, rangeEnd]
// of the intrinsic (unzoomed) content, bounded by the zoom limits. A
// degenerate range or content length leaves the state as-is, re-clamped.
func FitRange(s State, rangeStart, rangeEnd, contentLength, minLength, maxLength, containerLength float64) State {
	rangeLength := rangeEnd - rangeStart
	if rangeLength <= 0 || contentLength <= 0 {
		return Clamp(s, minLength, maxLength, containerLength)
	}

	length := clampValue(containerLength/rangeLength*contentLength, minLength, maxLength)
	offset := -rangeStart / contentLength * length
	return State{
		Offset: clampValue(offset, minOffset(length, containerLength), 0),
		Length: length,
	}
}

// Equal reports field-wise equality of two states.
func Equal(a, b State) bool {
	return a.Offset == b.Offset && a.Length == b.Length
}
