package palette

import "testing"

func TestForCategoryStable(t *testing.T) {
	for _, cat := range []int{0, 1, 7, 100} {
		a := ForCategory(cat)
		b := ForCategory(cat)
		if a != b {
			t.Errorf("category %d produced different colors across calls: %v vs %v", cat, a, b)
		}
	}
}

func TestForCategoryDistinct(t *testing.T) {
	seen := map[[4]uint8]int{}
	for cat := 0; cat < 12; cat++ {
		c := ForCategory(cat)
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if prev, dup := seen[key]; dup {
			t.Errorf("categories %d and %d share color %v", prev, cat, c)
		}
		seen[key] = cat
	}
}

func TestForCategoryOpaque(t *testing.T) {
	if c := ForCategory(3); c.A != 255 {
		t.Errorf("expected opaque color, got alpha %d", c.A)
	}
	if c := ForCategory(-1); c.A != 255 {
		t.Errorf("expected opaque fallback color, got alpha %d", c.A)
	}
}

func TestDimmedKeepsAlpha(t *testing.T) {
	c := ForCategory(2)
	d := Dimmed(c)
	if d.A != c.A {
		t.Errorf("alpha changed from %d to %d", c.A, d.A)
	}
	if d == c {
		t.Error("expected dimmed color to differ from the original")
	}
}
