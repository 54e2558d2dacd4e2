package internal

import "math"

const Tolerance = 1e-9

// Default threshold under which the winding sum of a polygon is considered to
// cancel out.
const DefaultWindingEpsilon = 1e-5

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Orientation of the triangle p1, p2, p3. Collinear points have a zero
// determinant and are reported as clockwise, so callers can never see a
// degenerate triple as counterclockwise.
func Orientation(p1, p2, p3 Point) Winding {
	determinant := p1.X*p2.Y + p3.X*p1.Y + p2.X*p3.Y - p1.X*p3.Y - p3.X*p2.Y - p2.X*p1.Y
	if determinant > 0 {
		return CounterClockwise
	}
	return Clockwise
}

// Barycentric point in triangle test. Only the strict interior counts; points
// on an edge or a corner are outside. A degenerate triangle contains nothing.
func PointStrictlyInsideTriangle(t1, t2, t3, p Point) bool {
	denominator := (t2.Y-t3.Y)*(t1.X-t3.X) + (t3.X-t2.X)*(t1.Y-t3.Y)
	if math.Abs(denominator) < Tolerance || math.IsNaN(denominator) || math.IsInf(denominator, 0) {
		return false
	}

	a := ((t2.Y-t3.Y)*(p.X-t3.X) + (t3.X-t2.X)*(p.Y-t3.Y)) / denominator
	b := ((t3.Y-t1.Y)*(p.X-t3.X) + (t1.X-t3.X)*(p.Y-t3.Y)) / denominator
	c := 1 - a - b

	return a > 0 && a < 1 && b > 0 && b < 1 && c > 0 && c < 1
}

// Whether p lies on the closed segment a-b, within Tolerance.
func PointOnSegment(a, b, p Point) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if math.Abs(cross) >= Tolerance {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-Tolerance && p.X <= math.Max(a.X, b.X)+Tolerance &&
		p.Y >= math.Min(a.Y, b.Y)-Tolerance && p.Y <= math.Max(a.Y, b.Y)+Tolerance
}

// Like PointStrictlyInsideTriangle, but points on an edge count as inside.
// Corners are still outside, so that a triangle never contains its own
// vertices.
func PointInsideTriangle(t1, t2, t3, p Point) bool {
	if p == t1 || p == t2 || p == t3 {
		return false
	}
	return PointStrictlyInsideTriangle(t1, t2, t3, p) ||
		PointOnSegment(t1, t2, p) || PointOnSegment(t2, t3, p) || PointOnSegment(t3, t1, p)
}

// Sum of (x2-x1)(y2+y1) over every edge. Positive means clockwise. This is
// twice the negated shoelace area.
func windingSum(points []Point) float64 {
	var sum float64
	for i, p1 := range points {
		p2 := points[CircularIndex(i+1, len(points))]
		sum += (p2.X - p1.X) * (p2.Y + p1.Y)
	}
	return sum
}

// Determine whether a simple polygon is wound clockwise. If the positive and
// negative areas cancel out (as in a figure eight), the answer is unreliable,
// and a DegenerateGeometry diagnostic is sent to warn.
func PolygonIsClockwise(points []Point, epsilon float64, warn WarnFunc) bool {
	requirePolygon(len(points))
	sum := windingSum(points)
	if math.Abs(sum) < epsilon {
		warn.warnf(DegenerateGeometry, "areas of polygon with %d points cancel out (winding sum %g); the polygon is probably self-intersecting or flat", len(points), sum)
	}
	return sum > 0
}

// Signed area using the shoelace formula. Counterclockwise is positive.
func SignedArea(points ...Point) float64 {
	return -windingSum(points) / 2
}

func (poly Polygon) SignedArea() float64 {
	return SignedArea(poly.Points...)
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

func (t Triangle) SignedArea(points []Point) float64 {
	a, b, c := t.Points(points)
	return SignedArea(a, b, c)
}

// A triangle is degenerate when its corners are (nearly) collinear.
func (t Triangle) IsDegenerate(points []Point) bool {
	return math.Abs(t.SignedArea(points)) < Tolerance
}

// Winding rule point-in-polygon, using the even-odd rule.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Casts a ray to the right of p.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}
