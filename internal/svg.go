package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This reads the <polygon> elements of an SVG document as polygons. It is not
// a full (or even correct) SVG reader: transforms, paths and every other shape
// are ignored. Points are taken as is, so the winding of each polygon is
// whatever the document used.
func ReadSVGPolygons(r io.Reader) ([]Polygon, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse svg")
	}

	elements := rootEl.FindAll("polygon")
	if len(elements) == 0 {
		return nil, errors.New("no polygons found in svg")
	}

	polygons := make([]Polygon, 0, len(elements))
	for i, el := range elements {
		points, err := parseSVGPoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygons = append(polygons, Polygon{Points: points})
	}
	return polygons, nil
}

// SVG point lists are numbers separated by whitespace and/or commas, taken in
// x, y pairs.
func parseSVGPoints(attribute string) ([]Point, error) {
	fields := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attribute)
	}

	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}
