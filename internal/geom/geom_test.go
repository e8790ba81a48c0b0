package geom

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := MakeRect(10, 20, 100, 50)

	inside := []Point{
		MakePoint(10, 20),  // top-left corner is inside
		MakePoint(50, 40),  // interior
		MakePoint(109, 69), // just shy of the far edges
	}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Errorf("expected %v to be inside %v", p, r)
		}
	}

	outside := []Point{
		MakePoint(110, 40), // right edge is exclusive
		MakePoint(50, 70),  // bottom edge is exclusive
		MakePoint(9, 40),
		MakePoint(50, 19),
		MakePoint(-10, -10),
	}
	for _, p := range outside {
		if r.Contains(p) {
			t.Errorf("expected %v to be outside %v", p, r)
		}
	}
}

func TestAdjacentRectsPartition(t *testing.T) {
	// A point on the shared edge of two adjacent rects belongs to exactly one.
	left := MakeRect(0, 0, 50, 50)
	right := MakeRect(50, 0, 50, 50)
	p := MakePoint(50, 25)

	if left.Contains(p) {
		t.Errorf("expected %v to be outside the left rect", p)
	}
	if !right.Contains(p) {
		t.Errorf("expected %v to be inside the right rect", p)
	}
}

func TestRectIntersects(t *testing.T) {
	a := MakeRect(0, 0, 100, 100)
	if !a.Intersects(MakeRect(50, 50, 100, 100)) {
		t.Error("expected overlapping rects to intersect")
	}
	if a.Intersects(MakeRect(100, 0, 50, 50)) {
		t.Error("expected edge-adjacent rects not to intersect")
	}
	if a.Intersects(MakeRect(200, 200, 10, 10)) {
		t.Error("expected disjoint rects not to intersect")
	}
}

func TestRectEmpty(t *testing.T) {
	if MakeRect(0, 0, 100, 50).Empty() {
		t.Error("expected non-degenerate rect to be non-empty")
	}
	if !MakeRect(0, 0, 0, 50).Empty() {
		t.Error("expected zero-width rect to be empty")
	}
	if !MakeRect(0, 0, 100, -1).Empty() {
		t.Error("expected negative-height rect to be empty")
	}
}

func TestAffineMulPoint(t *testing.T) {
	translate := MakeAffine(1, 0, 10, 0, 1, 20)
	scale := MakeAffine(2, 0, 0, 0, 2, 0)

	p := translate.Mul(scale).MulPoint(MakePoint(3, 4)) // scale then translate
	if p.X != 16 || p.Y != 28 {
		t.Errorf("expected (16, 28), got (%v, %v)", p.X, p.Y)
	}
}

func TestDist(t *testing.T) {
	d := Dist(MakePoint(0, 0), MakePoint(3, 4))
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("expected distance 5, got %v", d)
	}
}
