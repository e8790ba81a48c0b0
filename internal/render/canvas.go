package render

import (
	"image/color"

	"github.com/skimline/skimline/internal/geom"
)

// Canvas is the per-frame draw list views render into. It holds fill
// commands in submission order; the renderer tessellates them into triangles
// in one pass. A canvas is reused across frames via Reset to keep the op
// slice's backing array warm.
type Canvas struct {
	ops []fillOp
}

type fillOp struct {
	rect    geom.Rect    // valid when polygon is nil
	polygon []geom.Point // nil for rectangle fills
	color   color.RGBA
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Reset discards all recorded ops, keeping capacity.
func (c *Canvas) Reset() {
	c.ops = c.ops[:0]
}

// FillRect records an axis-aligned rectangle fill. Empty rectangles are
// dropped at recording time so the tessellator never sees them.
func (c *Canvas) FillRect(r geom.Rect, col color.RGBA) {
	if r.Empty() {
		return // nothing to do
	}
	c.ops = append(c.ops, fillOp{rect: r, color: col})
}

// FillPolygon records a filled polygon. The vertex order doesn't matter;
// polygons with fewer than three vertices are dropped. The caller keeps
// ownership of pts and must not mutate it before the next Prepare.
func (c *Canvas) FillPolygon(pts []geom.Point, col color.RGBA) {
	if len(pts) < 3 {
		return // degenerate
	}
	c.ops = append(c.ops, fillOp{polygon: pts, color: col})
}

// Len returns the number of recorded ops.
func (c *Canvas) Len() int { return len(c.ops) }
