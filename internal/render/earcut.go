package render

import (
	"log"

	"github.com/rclancey/earcut"

	"github.com/skimline/skimline/internal/geom"
)

// earClip triangulates a polygon using the earcut algorithm. It takes a list
// of polygon vertices (winding order doesn't matter) and returns a slice of
// triangles, each represented as a [3]geom.Point. Degenerate polygons never
// reach here; FillPolygon drops them at recording time.
func earClip(polygonPoints []geom.Point) [][3]geom.Point {
	if len(polygonPoints) < 3 {
		log.Fatalf("Degenerate polygon (%d vertices < 3)", len(polygonPoints))
	}

	// Convert polygon points to the flat coordinate array earcut expects:
	// [x0, y0, x1, y1, ..., xn, yn]
	vertexCoords := make([]float64, len(polygonPoints)*2)
	for i, point := range polygonPoints {
		vertexCoords[i*2] = point.X
		vertexCoords[i*2+1] = point.Y
	}

	triangleIndices, err := earcut.Earcut(vertexCoords, nil /* holeIndices */, 2 /* dim */)
	if err != nil {
		log.Fatalf("Triangulation failed for %d-vertex polygon: %v", len(polygonPoints), err)
	}
	if len(triangleIndices)%3 != 0 {
		log.Fatalf("Invalid triangle count (indices: %d, not divisible by 3)", len(triangleIndices))
	}

	// Convert triangle indices back to geom.Point triangles.
	triangleCount := len(triangleIndices) / 3
	triangles := make([][3]geom.Point, triangleCount)
	for t := 0; t < triangleCount; t++ {
		i0 := triangleIndices[t*3]
		i1 := triangleIndices[t*3+1]
		i2 := triangleIndices[t*3+2]
		triangles[t] = [3]geom.Point{
			{X: vertexCoords[i0*2], Y: vertexCoords[i0*2+1]},
			{X: vertexCoords[i1*2], Y: vertexCoords[i1*2+1]},
			{X: vertexCoords[i2*2], Y: vertexCoords[i2*2+1]},
		}
	}
	return triangles
}
