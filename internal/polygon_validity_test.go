package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. There are n-2 triangles.
// 2. The set of points in the triangles equals the set of points in the polygon.
// 3. The polygon's edges are a subset of the triangles' edges.
// 4. Every triangle is clockwise, and none has zero area.
// 5. The sum of the areas of all triangles equals the area of the polygon.
// 6. Sampled points inside the polygon are in exactly one triangle.
// 7. Sampled points outside the polygon are in no triangle.
func AssertValidTriangulation(t *testing.T, polygon *Polygon, triangles []Triangle) {
	require.Greater(t, polygon.SignedArea(), 0.0, "polygon is not counterclockwise")
	points := polygon.Points
	require.Len(t, triangles, len(points)-2)

	used := make(map[int]struct{})
	var triangleArea float64
	segments := make(map[Edge]struct{})
	for _, tri := range triangles {
		for _, i := range tri.Indices() {
			require.True(t, i >= 0 && i < len(points), "index %d out of range", i)
			used[i] = struct{}{}
		}
		require.True(t, tri.A != tri.B && tri.B != tri.C && tri.A != tri.C, "triangle %v repeats a vertex", tri)

		area := tri.SignedArea(points)
		require.Less(t, area, 0.0, "triangle %v is not clockwise", tri)
		require.False(t, tri.IsDegenerate(points), "triangle %v has zero area", tri)
		triangleArea -= area

		for _, e := range tri.Edges() {
			segments[normalizedSegment(e)] = struct{}{}
		}
	}
	require.Len(t, used, len(points), "every point must be used by a triangle")

	for i := range points {
		e := Edge{i, CircularIndex(i+1, len(points))}
		_, ok := segments[normalizedSegment(e)]
		require.True(t, ok, "edge %v of the polygon is not an edge of any triangle", e)
	}

	require.InDelta(t, polygon.Area(), triangleArea, 1e-9, "sum of the areas of all triangles must equal the area of the polygon")

	validateCoverageBySampling(t, polygon, triangles)
}

func normalizedSegment(e Edge) Edge {
	if e.From > e.To {
		return e.Reverse()
	}
	return e
}

// Walk a grid over the polygon's bounding box, and check that points inside
// the polygon are covered by exactly one triangle. The grid is offset by an
// odd amount so that samples don't land on edges.
func validateCoverageBySampling(t *testing.T, polygon *Polygon, triangles []Triangle) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range polygon.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	step := math.Max(maxX-minX, maxY-minY) / 47

	for y := minY + 0.0123457; y <= maxY; y += step {
		for x := minX + 0.0276543; x <= maxX; x += step {
			p := Point{X: x, Y: y}
			count := 0
			for _, tri := range triangles {
				a, b, c := tri.Points(polygon.Points)
				if PointStrictlyInsideTriangle(a, b, c, p) {
					count++
				}
			}
			if polygon.ContainsPointByEvenOdd(p) {
				assert.Equal(t, 1, count, "point %v should be in exactly one triangle", p)
			} else {
				assert.Equal(t, 0, count, "point %v should not be in any triangle", p)
			}
		}
	}
}
