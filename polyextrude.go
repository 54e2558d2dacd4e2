// Ear clipping triangulation and extrusion of simple polygons.
//
// This package turns an ordered list of 2D points describing a simple polygon,
// which may be concave, into triangles that use only the original points. It
// can then extrude the triangulated polygon into a closed 3D solid: the
// polygon itself as the front face, a flipped copy as the back face, and a
// wall along every edge of the outline.
//
// Polygons with holes and self-intersecting polygons are not supported.
package polyextrude

import (
	"github.com/osuushi/polyextrude/internal"
)

type Point = internal.Point
type Vector3 = internal.Vector3
type Triangle = internal.Triangle
type Edge = internal.Edge
type Mesh = internal.Mesh
type Solid = internal.Solid
type Diagnostic = internal.Diagnostic
type DiagnosticKind = internal.DiagnosticKind

const (
	DegenerateGeometry = internal.DegenerateGeometry
	NumericInstability = internal.NumericInstability
)

var (
	// Fewer than three points, or an unusable extrusion depth.
	ErrInvalidInput = internal.ErrInvalidInput
	// The polygon ran out of ears. It is self-intersecting, or clockwise with
	// winding normalization turned off.
	ErrNoEar = internal.ErrNoEar
)

// Take the points of a simple polygon and convert them into triangles. Each
// triangle refers to points by index, and is wound clockwise when the polygon
// is counterclockwise.
//
// Polygons should be counterclockwise. Clockwise polygons are reversed before
// triangulating unless winding normalization is turned off, and the resulting
// triangles are still clockwise.
func Triangulate(points []Point, opts ...Option) (result []Triangle, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return triangulate(points, newOptions(opts)), nil
}

// Fan triangulation. This is faster than Triangulate, but only gives a valid
// result for convex polygons. The polygon is not checked for convexity.
func TriangulateConvex(points []Point) (result []Triangle, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.TriangulateConvex(points), nil
}

// Whether the polygon is wound clockwise. If the signed areas of the polygon
// cancel out, the answer is unreliable, and a DegenerateGeometry diagnostic is
// reported.
func IsClockwise(points []Point, opts ...Option) (result bool, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = false
			err = recoveredErr
		}
	}()
	o := newOptions(opts)
	return internal.PolygonIsClockwise(points, o.windingEpsilon, o.warn), nil
}

// Triangulate the polygon and extrude it by depth along Z. The front face lies
// at z=0 and the back face at z=depth. Vertex i of the solid is point i of the
// polygon, and vertex i+len(points) is its copy on the back face.
func Extrude(points []Point, depth float64, opts ...Option) (result *Solid, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return extrude(points, depth, newOptions(opts)), nil
}

// Extrude several independent polygons, such as the paths of a composite
// outline, with the same depth and options. Either every polygon succeeds or
// no solids are returned.
func ExtrudeAll(polygons [][]Point, depth float64, opts ...Option) (result []*Solid, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	o := newOptions(opts)
	result = make([]*Solid, 0, len(polygons))
	for _, points := range polygons {
		result = append(result, extrude(points, depth, o))
	}
	return result, nil
}

func triangulate(points []Point, o *options) []Triangle {
	work := points
	reversed := false
	if o.normalizeWinding && internal.PolygonIsClockwise(points, o.windingEpsilon, o.warn) {
		work = internal.Polygon{Points: points}.Reverse().Points
		reversed = true
	}

	var triangles []Triangle
	if o.convexFastPath && internal.IsConvex(work) {
		triangles = internal.TriangulateConvex(work)
	} else {
		triangles = internal.TriangulateConcave(work, o.warn)
	}

	if reversed {
		// Map indices back onto the caller's point order.
		last := len(points) - 1
		for i := range triangles {
			t := &triangles[i]
			t.A, t.B, t.C = last-t.A, last-t.B, last-t.C
		}
	}
	return triangles
}

func extrude(points []Point, depth float64, o *options) *Solid {
	triangles := triangulate(points, o)
	base := internal.NewBaseMesh(points, triangles)
	return internal.Extrude(base, depth, internal.ExtrudeOptions{
		FilterDegenerate: o.filterDegenerate,
		Warn:             o.warn,
	})
}
