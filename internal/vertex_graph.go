package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polyextrude/internal/dbg"
	"github.com/pkg/errors"
)

// The vertex graph is the working polygon of ear clipping: a circular doubly
// linked list of vertices, stored in an arena and addressed by index. Clipping
// an ear splices its vertex out of the list in O(1), so the list shrinks as
// triangles are emitted. The arena itself never moves, so indices (and
// pointers into it) stay valid for the lifetime of the graph.

type Vertex struct {
	Position Vector3
	// Index of the point in the triangulation input
	Index int
	// Arena indices of the neighbors on the current polygon boundary
	Previous, Next int
	// Interior angle is larger than 180°. Collinear vertices count as concave.
	IsConcave bool
	IsEar     bool
	removed   bool
}

type VertexGraph struct {
	Vertices []Vertex
	// Number of vertices still linked into the polygon
	Count int
	warn  WarnFunc
}

func NewVertexGraph(points []Point, warn WarnFunc) *VertexGraph {
	n := len(points)
	g := &VertexGraph{
		Vertices: make([]Vertex, n),
		Count:    n,
		warn:     warn,
	}
	for i, p := range points {
		g.Vertices[i] = Vertex{
			Position: p.Vector3(),
			Index:    i,
			Previous: CircularIndex(i-1, n),
			Next:     CircularIndex(i+1, n),
		}
	}
	return g
}

func (v *Vertex) Pos2D() Point {
	return v.Position.Point()
}

// For debugging only. The name comes from dbg, which remembers every vertex it
// has named for the life of the process, so errors and diagnostics refer to
// vertices by index instead.
func (v *Vertex) String() string {
	var flags []string
	if v.IsConcave {
		flags = append(flags, aurora.Red("concave").String())
	}
	if v.IsEar {
		flags = append(flags, aurora.Green("ear").String())
	}
	return fmt.Sprintf("%s#%d(%g, %g)[%s]", dbg.Name(v), v.Index, v.Position.X, v.Position.Y, strings.Join(flags, " "))
}

// Take the vertex out of the list, linking its neighbors directly together.
func (g *VertexGraph) Remove(i int) {
	v := &g.Vertices[i]
	if v.removed {
		fatalf("vertex %d removed twice", v.Index)
	}
	g.Vertices[v.Previous].Next = v.Next
	g.Vertices[v.Next].Previous = v.Previous
	v.removed = true
	v.IsEar = false
	g.Count--
}

func (g *VertexGraph) IsRemoved(i int) bool {
	return g.Vertices[i].removed
}

// The linked vertices, in input order. The order never depends on the order
// in which ears were clipped.
func (g *VertexGraph) Live() []int {
	live := make([]int, 0, g.Count)
	for i := range g.Vertices {
		if !g.Vertices[i].removed {
			live = append(live, i)
		}
	}
	return live
}

// The triangle a vertex makes with its neighbors, as previous, self, next.
func (g *VertexGraph) corner(i int) (prev, self, next Point) {
	v := &g.Vertices[i]
	return g.Vertices[v.Previous].Pos2D(), v.Pos2D(), g.Vertices[v.Next].Pos2D()
}

// A vertex is concave (reflex) if the triangle with its neighbors is clockwise.
func (g *VertexGraph) ClassifyConcavity(i int) {
	prev, self, next := g.corner(i)
	g.Vertices[i].IsConcave = Orientation(prev, self, next) == Clockwise
}

// A convex vertex is an ear if no other concave vertex of the polygon lies
// inside the triangle with its neighbors, or on its edges. A concave vertex on
// the diagonal from prev to next would leave the clipped polygon touching
// itself. Concavity must be classified first.
func (g *VertexGraph) ClassifyEar(i int) {
	v := &g.Vertices[i]
	v.IsEar = false
	if v.IsConcave {
		return
	}

	prev, self, next := g.corner(i)
	if Equal(SignedArea(prev, self, next), 0) {
		g.warn.warnf(NumericInstability, "corner at vertex %d is nearly flat; containment tests are unreliable", v.Index)
	}

	for j := range g.Vertices {
		other := &g.Vertices[j]
		if other.removed || !other.IsConcave {
			continue
		}
		if PointInsideTriangle(prev, self, next, other.Pos2D()) {
			return
		}
	}
	v.IsEar = true
}

// Check that previous and next links agree for every live vertex, and that
// following Next visits exactly Count vertices. Only used for debugging and
// tests.
func (g *VertexGraph) Validate() error {
	live := g.Live()
	if len(live) != g.Count {
		return errors.Errorf("graph has %d live vertices but count %d", len(live), g.Count)
	}
	if g.Count == 0 {
		return nil
	}
	for _, i := range live {
		v := &g.Vertices[i]
		if g.Vertices[v.Next].Previous != i {
			return errors.Errorf("next of vertex %d does not point back", v.Index)
		}
		if g.Vertices[v.Previous].Next != i {
			return errors.Errorf("previous of vertex %d does not point back", v.Index)
		}
	}
	steps := 0
	for i := live[0]; ; i = g.Vertices[i].Next {
		steps++
		if g.Vertices[i].Next == live[0] {
			break
		}
		if steps > g.Count {
			return errors.Errorf("walking the graph from vertex %d does not return in %d steps", g.Vertices[live[0]].Index, g.Count)
		}
	}
	if steps != g.Count {
		return errors.Errorf("walking the graph visits %d vertices but count is %d", steps, g.Count)
	}
	return nil
}
