package internal

// Half edge records (https://en.wikipedia.org/wiki/Doubly_connected_edge_list)
// over a triangle index list. Each triangle owns three half edges linked in
// winding order. Two half edges running in opposite directions between the
// same vertices are each other's opposite; a half edge without an opposite is
// on the boundary of the mesh.

type HalfEdge struct {
	// The vertex the edge points to
	Vertex int
	// The vertex the edge starts from
	Origin   int
	Triangle int
	// Indices into HalfEdgeMesh.HalfEdges. Opposite is -1 on the boundary.
	Next, Previous, Opposite int
}

type HalfEdgeMesh struct {
	HalfEdges []HalfEdge
	// One half edge per triangle
	Faces []int
	// One outgoing half edge per vertex, or -1 for vertices no triangle uses
	Outgoing []int
	// Set when the same directed edge appears in more than one triangle
	NonManifold bool
}

func NewHalfEdgeMesh(vertexCount int, triangles []int) *HalfEdgeMesh {
	if len(triangles)%3 != 0 {
		fatalf("triangle index count %d is not a multiple of 3", len(triangles))
	}
	m := &HalfEdgeMesh{
		HalfEdges: make([]HalfEdge, 0, len(triangles)),
		Faces:     make([]int, 0, len(triangles)/3),
		Outgoing:  make([]int, vertexCount),
	}
	for i := range m.Outgoing {
		m.Outgoing[i] = -1
	}

	byEdge := make(map[Edge]int, len(triangles))
	for t := 0; t < len(triangles)/3; t++ {
		base := len(m.HalfEdges)
		m.Faces = append(m.Faces, base)
		for k := 0; k < 3; k++ {
			from := triangles[3*t+k]
			to := triangles[3*t+(k+1)%3]
			if from < 0 || from >= vertexCount || to < 0 || to >= vertexCount {
				fatalf("triangle %d refers to a vertex outside of [0, %d)", t, vertexCount)
			}
			m.HalfEdges = append(m.HalfEdges, HalfEdge{
				Vertex:   to,
				Origin:   from,
				Triangle: t,
				Next:     base + (k+1)%3,
				Previous: base + (k+2)%3,
				Opposite: -1,
			})
			if m.Outgoing[from] == -1 {
				m.Outgoing[from] = base + k
			}

			edge := Edge{from, to}
			if _, ok := byEdge[edge]; ok {
				m.NonManifold = true
				continue
			}
			byEdge[edge] = base + k
		}
	}

	for i := range m.HalfEdges {
		he := &m.HalfEdges[i]
		if opposite, ok := byEdge[Edge{he.Vertex, he.Origin}]; ok {
			he.Opposite = opposite
		}
	}
	return m
}

func (m *HalfEdgeMesh) Edge(i int) Edge {
	return Edge{m.HalfEdges[i].Origin, m.HalfEdges[i].Vertex}
}

// Half edges without an opposite, in triangle order.
func (m *HalfEdgeMesh) Boundary() []Edge {
	var boundary []Edge
	for i, he := range m.HalfEdges {
		if he.Opposite == -1 {
			boundary = append(boundary, m.Edge(i))
		}
	}
	return boundary
}

// A closed mesh has no boundary, and every edge is shared by exactly two
// triangles that traverse it in opposite directions.
func (m *HalfEdgeMesh) IsClosed() bool {
	return !m.NonManifold && len(m.HalfEdges) > 0 && len(m.Boundary()) == 0
}
