package internal

// Ear clipping triangulation of a simple polygon, which may be concave.
//
// The polygon must be counterclockwise. Nothing here corrects the winding: a
// clockwise polygon has its convex corners classified as concave, and
// clipping runs out of ears.
//
// Output triangles are clockwise, which is the front face convention of the
// meshes we build. For an ear v with neighbors p and n, the counterclockwise
// corner is (p, v, n), so we emit (v, p, n).
//
// This is O(n²): each clip re-classifies two vertices, and each ear test scans
// the concave vertices.

func TriangulateConcave(points []Point, warn WarnFunc) []Triangle {
	requirePolygon(len(points))

	triangles := make([]Triangle, 0, len(points)-2)
	emit := func(t Triangle) {
		if t.IsDegenerate(points) {
			warn.warnf(DegenerateGeometry, "zero area triangle (%d, %d, %d)", t.A, t.B, t.C)
		}
		triangles = append(triangles, t)
	}

	// A lone triangle only needs its winding flipped
	if len(points) == 3 {
		emit(Triangle{0, 2, 1})
		return triangles
	}

	g := NewVertexGraph(points, warn)

	// Concavity has to be known for every vertex before any ear test.
	for i := range g.Vertices {
		g.ClassifyConcavity(i)
	}

	// Ears are clipped in the order they were discovered, which makes the
	// output reproducible.
	var ears earQueue
	for i := range g.Vertices {
		g.ClassifyEar(i)
		if g.Vertices[i].IsEar {
			ears.push(i)
		}
	}

	for g.Count > 3 {
		if ears.empty() {
			fatal(ErrNoEar, "%d of %d vertices left; polygon must be simple and counterclockwise", g.Count, len(points))
		}
		ear := ears.shift()
		v := g.Vertices[ear]
		prev, next := v.Previous, v.Next

		emit(Triangle{v.Index, g.Vertices[prev].Index, g.Vertices[next].Index})
		g.Remove(ear)

		// Only the two neighbors have a different corner now.
		g.ClassifyConcavity(prev)
		g.ClassifyConcavity(next)
		ears.remove(prev)
		ears.remove(next)
		for _, neighbor := range [2]int{prev, next} {
			g.ClassifyEar(neighbor)
			if g.Vertices[neighbor].IsEar {
				ears.push(neighbor)
			}
		}
	}

	last := g.Vertices[g.Live()[0]]
	emit(Triangle{last.Index, g.Vertices[last.Previous].Index, g.Vertices[last.Next].Index})
	return triangles
}

// Fan triangulation from the first point. This is only valid for convex
// polygons, and produces overlapping triangles for concave ones, but skips
// all of the classification work.
func TriangulateConvex(points []Point) []Triangle {
	requirePolygon(len(points))
	triangles := make([]Triangle, 0, len(points)-2)
	for i := 2; i < len(points); i++ {
		triangles = append(triangles, Triangle{0, i, i - 1})
	}
	return triangles
}

// Whether every corner of the polygon turns the same way. Collinear corners
// are ignored.
func IsConvex(points []Point) bool {
	requirePolygon(len(points))
	var sign float64
	for i := range points {
		area := SignedArea(points[CircularIndex(i-1, len(points))], points[i], points[CircularIndex(i+1, len(points))])
		if Equal(area, 0) {
			continue
		}
		if sign == 0 {
			sign = area
		} else if (sign > 0) != (area > 0) {
			return false
		}
	}
	return true
}

// FIFO of ear vertex indices. Neighbors are pulled out and pushed to the back
// when they are re-classified.
type earQueue []int

func (q *earQueue) push(i int) {
	*q = append(*q, i)
}

func (q *earQueue) shift() int {
	i := (*q)[0]
	*q = (*q)[1:]
	return i
}

func (q *earQueue) remove(i int) {
	for j, e := range *q {
		if e == i {
			*q = append((*q)[:j], (*q)[j+1:]...)
			return
		}
	}
}

func (q *earQueue) empty() bool {
	return len(*q) == 0
}
