// Package render turns the view tree's draw lists into OpenGL draw calls.
//
// Views emit rectangle and polygon fills into a Canvas; the Renderer
// tessellates those ops into one interleaved triangle stream (earcut for
// polygons), uploads it into a dynamic VBO, and draws it with a passthrough
// shader under a screen-to-NDC transform.
package render

import (
	"fmt"
	"time"

	"github.com/skimline/skimline/internal/geom"
)

// Renderer renders prepared canvases. It requires a current OpenGL context on
// the calling goroutine for its whole lifetime.
type Renderer struct {
	w, h int

	shaderManager *ShaderManager
	buffer        *vertexBuffer
	vertices      []float32 // scratch, reused across Prepare calls
	stats         Stats
}

// Stats tracks rendering performance metrics.
type Stats struct {
	LastPrepareTimeMs float64 // time spent in last Prepare() call in milliseconds
	LastDrawTimeUs    float64 // time spent in last Draw() call in microseconds
	VertexCount       int     // vertices uploaded by the last Prepare()
	OpCount           int     // canvas ops consumed by the last Prepare()
}

// NewRenderer creates a renderer with compiled shaders and an allocated
// vertex buffer.
func NewRenderer() *Renderer {
	return &Renderer{
		shaderManager: NewShaderManager(),
		buffer:        newVertexBuffer(),
	}
}

// SetView updates the framebuffer dimensions used for the NDC transform.
func (r *Renderer) SetView(w, h int) {
	r.w, r.h = w, h
}

// Prepare tessellates the canvas into triangles and uploads them to the GPU.
// Call it only when the surface produced a fresh draw list; Draw alone is
// enough for frames where nothing changed.
func (r *Renderer) Prepare(c *Canvas) error {
	startTime := time.Now()

	if r.w <= 0 || r.h <= 0 {
		return fmt.Errorf("cannot prepare renderer: invalid viewport dimensions %dx%d", r.w, r.h)
	}

	r.vertices = r.vertices[:0]
	for _, op := range c.ops {
		if op.polygon == nil {
			r.appendRect(op)
			continue
		}
		r.appendPolygon(op)
	}

	r.buffer.upload(r.vertices)
	r.stats.LastPrepareTimeMs = float64(time.Since(startTime).Microseconds()) / 1000.0
	r.stats.VertexCount = len(r.vertices) / floatsPerVertex
	r.stats.OpCount = c.Len()
	return nil
}

// Draw renders the last prepared geometry.
func (r *Renderer) Draw() {
	startTime := time.Now()

	r.shaderManager.SetTransform(r.computeTransformMatrix())
	r.buffer.draw()

	r.stats.LastDrawTimeUs = float64(time.Since(startTime).Microseconds())
}

// Stats returns the current performance statistics.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Destroy releases GPU resources.
func (r *Renderer) Destroy() {
	r.buffer.destroy()
	r.shaderManager.destroy()
}

func (r *Renderer) appendRect(op fillOp) {
	x0, y0 := op.rect.X, op.rect.Y
	x1, y1 := op.rect.X+op.rect.W, op.rect.Y+op.rect.H

	// Two triangles, counter-clockwise in screen space.
	r.appendVertex(x0, y0, op)
	r.appendVertex(x0, y1, op)
	r.appendVertex(x1, y1, op)

	r.appendVertex(x0, y0, op)
	r.appendVertex(x1, y1, op)
	r.appendVertex(x1, y0, op)
}

func (r *Renderer) appendPolygon(op fillOp) {
	triangles := earClip(op.polygon)
	for _, tri := range triangles {
		for v := 0; v < 3; v++ {
			r.appendVertex(tri[v].X, tri[v].Y, op)
		}
	}
}

func (r *Renderer) appendVertex(x, y float64, op fillOp) {
	r.vertices = append(r.vertices,
		float32(x), float32(y), // position
		float32(op.color.R)/255.0, float32(op.color.G)/255.0,
		float32(op.color.B)/255.0, float32(op.color.A)/255.0, // color
	)
}

// computeTransformMatrix converts screen coordinates (origin top-left, y
// down) to OpenGL NDC.
func (r *Renderer) computeTransformMatrix() [16]float32 {
	screenToNDC := geom.MakeAffine(
		2.0/float64(r.w), 0, -1,
		0, -2.0/float64(r.h), 1,
	)
	return affineToMatrix4(screenToNDC)
}

// affineToMatrix4 converts an affine transform to OpenGL 4x4 matrix format.
func affineToMatrix4(transform geom.Affine) [16]float32 {
	return [16]float32{
		float32(transform.A), float32(transform.B), 0, 0,
		float32(transform.D), float32(transform.E), 0, 0,
		0, 0, 1, 0,
		float32(transform.C), float32(transform.F), 0, 1,
	}
}
