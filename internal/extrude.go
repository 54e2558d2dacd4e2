package internal

import "math"

// Extrusion of a flat triangulated mesh into a closed solid.
//
// The flat mesh is the front face. A copy of it, pushed back along Z by the
// depth, is the back face, with every triangle flipped so it faces away from
// the front. Every boundary edge of the front face then gets a quad (two
// triangles) joining it to its copy on the back.

type Solid struct {
	Mesh
	Depth float64
	// Vertices [0, FrontVertexCount) are the front face. Vertex i of the front
	// has its back face copy at i + FrontVertexCount.
	FrontVertexCount int
}

type ExtrudeOptions struct {
	// Drop zero area triangles before extruding. Their edges would otherwise
	// take part in boundary detection and produce spurious side walls.
	FilterDegenerate bool
	Warn             WarnFunc
}

// Build the flat mesh for a triangulated polygon. Triangle indices are used as
// is, so they must refer to points.
func NewBaseMesh(points []Point, triangles []Triangle) *Mesh {
	mesh := &Mesh{
		Vertices:  make([]Vector3, len(points)),
		Triangles: make([]int, 0, 3*len(triangles)),
	}
	for i, p := range points {
		mesh.Vertices[i] = p.Vector3()
	}
	for _, t := range triangles {
		mesh.AddTriangle(t.A, t.B, t.C)
	}
	return mesh
}

func Extrude(base *Mesh, depth float64, opts ExtrudeOptions) *Solid {
	if math.IsNaN(depth) || math.IsInf(depth, 0) || depth <= 0 {
		fatal(ErrInvalidInput, "extrusion depth must be positive and finite, got %g", depth)
	}
	if len(base.Vertices) < 3 {
		fatal(ErrInvalidInput, "a polygon needs at least 3 vertices, got %d", len(base.Vertices))
	}
	if len(base.Triangles)%3 != 0 {
		fatal(ErrInvalidInput, "triangle index count %d is not a multiple of 3", len(base.Triangles))
	}
	for _, index := range base.Triangles {
		if index < 0 || index >= len(base.Vertices) {
			fatal(ErrInvalidInput, "triangle index %d is outside of [0, %d)", index, len(base.Vertices))
		}
	}
	plane := base.Vertices[0].Z
	for i, v := range base.Vertices {
		if !Equal(v.Z, plane) {
			fatal(ErrInvalidInput, "vertex %d is at z=%g, off the plane z=%g", i, v.Z, plane)
		}
	}

	front := frontTriangles(base, opts)
	n := len(base.Vertices)

	solid := &Solid{
		Mesh: Mesh{
			Vertices:  make([]Vector3, 0, 2*n),
			Triangles: make([]int, 0, 2*len(front)+6*len(front)),
		},
		Depth:            depth,
		FrontVertexCount: n,
	}

	// Front
	solid.Vertices = append(solid.Vertices, base.Vertices...)
	solid.Triangles = append(solid.Triangles, front...)

	// Back
	for _, v := range base.Vertices {
		solid.Vertices = append(solid.Vertices, Vector3{X: v.X, Y: v.Y, Z: v.Z + depth})
	}
	for i := 0; i < len(front); i += 3 {
		t := Triangle{front[i] + n, front[i+1] + n, front[i+2] + n}
		// Swap the last two so the back face points away from the front.
		t.B, t.C = t.C, t.B
		solid.AddTriangle(t.A, t.B, t.C)
	}

	// Sides
	for _, e := range BoundaryEdges(front) {
		solid.AddTriangle(e.From, e.From+n, e.To)
		solid.AddTriangle(e.To, e.From+n, e.To+n)
	}
	return solid
}

func frontTriangles(base *Mesh, opts ExtrudeOptions) []int {
	if !opts.FilterDegenerate {
		return base.Triangles
	}
	front := make([]int, 0, len(base.Triangles))
	for i := 0; i < base.TriangleCount(); i++ {
		t := base.Triangle(i)
		area := SignedArea(base.Vertices[t.A].Point(), base.Vertices[t.B].Point(), base.Vertices[t.C].Point())
		if Equal(area, 0) {
			opts.Warn.warnf(DegenerateGeometry, "dropping zero area triangle %d (%d, %d, %d) before extrusion", i, t.A, t.B, t.C)
			continue
		}
		front = append(front, t.A, t.B, t.C)
	}
	return front
}

// The directed edges of a triangle list that are not shared with another
// triangle. An edge (a, b) and its reverse (b, a) cancel each other out. For a
// triangulated simple polygon without holes, what is left is exactly the
// outline of the polygon. Edges are returned in the order they were first
// seen.
func BoundaryEdges(triangles []int) []Edge {
	var edges []Edge
	position := make(map[Edge]int, len(triangles))
	cancelled := make(map[int]struct{})

	for i := 0; i+2 < len(triangles); i += 3 {
		t := Triangle{triangles[i], triangles[i+1], triangles[i+2]}
		for _, e := range t.Edges() {
			if j, ok := position[e.Reverse()]; ok {
				if _, done := cancelled[j]; !done {
					cancelled[j] = struct{}{}
					continue
				}
			}
			position[e] = len(edges)
			edges = append(edges, e)
		}
	}

	boundary := make([]Edge, 0, len(edges)-len(cancelled))
	for i, e := range edges {
		if _, ok := cancelled[i]; !ok {
			boundary = append(boundary, e)
		}
	}
	return boundary
}

func (s *Solid) HalfEdges() *HalfEdgeMesh {
	return NewHalfEdgeMesh(len(s.Vertices), s.Triangles)
}

// Whether the solid encloses its volume without gaps.
func (s *Solid) IsClosed() bool {
	return s.HalfEdges().IsClosed()
}

// Volume of the solid: the area of its front face swept over the depth.
func (s *Solid) Volume() float64 {
	var area float64
	for i := 0; i < s.TriangleCount(); i++ {
		t := s.Triangle(i)
		if t.A >= s.FrontVertexCount || t.B >= s.FrontVertexCount || t.C >= s.FrontVertexCount {
			continue
		}
		area += math.Abs(SignedArea(s.Vertices[t.A].Point(), s.Vertices[t.B].Point(), s.Vertices[t.C].Point()))
	}
	return area * s.Depth
}
