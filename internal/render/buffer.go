package render

import (
	"io"
	"log"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var renderLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("SKIMLINE_DEBUG_RENDER") == "1" {
		renderLogger = log.New(os.Stdout, "[render] ", log.Ltime|log.Lmsgprefix)
	}
}

// Vertex layout: interleaved position (2 floats) + color (4 floats).
const floatsPerVertex = 6

// Initial VBO capacity in vertices. The buffer doubles on overflow, so the
// first few frames of a large trace settle the allocation quickly.
const initialVertexCapacity = 16384

// vertexBuffer owns one dynamic VAO/VBO pair that the whole frame's
// tessellated geometry is streamed into. When an upload exceeds the current
// capacity the buffer is reallocated at the next power-of-two size;
// otherwise the existing allocation is updated in place.
type vertexBuffer struct {
	vao            uint32
	vbo            uint32
	capacity       int // in vertices
	uploadedCount  int // vertices in the buffer right now
	reallocations  int
	bytesAllocated int64
}

// newVertexBuffer creates the GL objects and configures the vertex layout.
// Requires a current GL context.
func newVertexBuffer() *vertexBuffer {
	b := &vertexBuffer{capacity: initialVertexCapacity}

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	b.bytesAllocated = int64(b.capacity * floatsPerVertex * 4)
	gl.BufferData(gl.ARRAY_BUFFER, int(b.bytesAllocated), nil, gl.DYNAMIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return b
}

// upload replaces the buffer contents with the given interleaved vertex data.
func (b *vertexBuffer) upload(vertices []float32) {
	count := len(vertices) / floatsPerVertex
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	if count > b.capacity {
		for count > b.capacity {
			b.capacity *= 2
		}
		b.bytesAllocated = int64(b.capacity * floatsPerVertex * 4)
		gl.BufferData(gl.ARRAY_BUFFER, int(b.bytesAllocated), nil, gl.DYNAMIC_DRAW)
		b.reallocations++
		renderLogger.Printf("grew VBO to %d vertices (%.2f MiB, realloc #%d)",
			b.capacity, float64(b.bytesAllocated)/(1024.0*1024.0), b.reallocations)
	}

	if len(vertices) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	}
	b.uploadedCount = count
	gl.BindVertexArray(0)
}

// draw issues the triangle draw for the uploaded vertices.
func (b *vertexBuffer) draw() {
	if b.uploadedCount == 0 {
		return // nothing to do
	}
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(b.uploadedCount))
	gl.BindVertexArray(0)
}

// destroy releases the GL objects.
func (b *vertexBuffer) destroy() {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
}
