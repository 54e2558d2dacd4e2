package internal

type Point struct {
	X float64
	Y float64
}

type Vector3 struct {
	X, Y, Z float64
}

// Polygons are plain ordered point lists. Nothing about them is mutated by
// triangulation; the working state lives in a VertexGraph.
type Polygon struct {
	Points []Point
}

// Triangles refer to points by their index in the input, so that callers can
// map them back onto whatever vertex data they hold. The vertices are always
// distinct.
type Triangle struct {
	A, B, C int
}

// A directed edge between two vertex indices.
type Edge struct {
	From, To int
}

// Flat list of positions, and three indices per triangle.
type Mesh struct {
	Vertices  []Vector3
	Triangles []int
}

type Winding int

const (
	Clockwise Winding = iota
	CounterClockwise
)

func (w Winding) String() string {
	if w == CounterClockwise {
		return "counterclockwise"
	}
	return "clockwise"
}

func (p Point) Vector3() Vector3 {
	return Vector3{X: p.X, Y: p.Y}
}

func (v Vector3) Point() Point {
	return Point{X: v.X, Y: v.Y}
}

func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From}
}

// Change the orientation of the triangle from clockwise to counterclockwise or
// vice versa.
func (t *Triangle) Flip() {
	t.A, t.B = t.B, t.A
}

func (t Triangle) Indices() [3]int {
	return [3]int{t.A, t.B, t.C}
}

func (t Triangle) Points(points []Point) (a, b, c Point) {
	return points[t.A], points[t.B], points[t.C]
}

// The three directed edges of the triangle, in winding order.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (m *Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

func (m *Mesh) Triangle(i int) Triangle {
	return Triangle{m.Triangles[3*i], m.Triangles[3*i+1], m.Triangles[3*i+2]}
}

func (m *Mesh) AddTriangle(a, b, c int) {
	m.Triangles = append(m.Triangles, a, b, c)
}
