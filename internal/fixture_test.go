package internal

import (
	"embed"
	"log"
	"math"
)

// Fixtures are SVG files in the fixtures/ directory, loaded by name sans
// extension. Each holds a single polygon, which is returned counterclockwise.
// If anything goes wrong, the test binary exits.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{
	"arrow",
	"c_shape",
	"comb",
	"spiral",
	"zigzag",
}

func LoadFixture(name string) *Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	polygons, err := ReadSVGPolygons(fixture)
	if err != nil {
		log.Fatalf("Failed to read fixture %q: %v", name, err)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	result := polygons[0]

	// Ensure that the polygon is CCW
	if result.SignedArea() < 0 {
		result = result.Reverse()
	}
	return &result
}

// Some ad hoc code specified fixtures

func Square() *Polygon {
	return &Polygon{[]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}
}

func RegularPolygon(n int, radius float64) *Polygon {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return &Polygon{points}
}

// Arrow head pointing up, with a single reflex vertex at index 1.
func Arrow() *Polygon {
	return &Polygon{[]Point{
		{0, 0},
		{2, 1},
		{4, 0},
		{3.5, 2.5},
		{2, 4},
		{0.5, 2.5},
	}}
}

func SimpleStar() *Polygon {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return &Polygon{points}
}
