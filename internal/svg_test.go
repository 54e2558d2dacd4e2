package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSVGPolygons(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <rect x="0" y="0" width="1" height="1"/>
  <polygon points="0,0 4,0 4,3"/>
  <g>
    <polygon points="1 1, 2 1,2 2
      1 2"/>
  </g>
</svg>`
	polygons, err := ReadSVGPolygons(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, polygons, 2)
	assert.Equal(t, []Point{{0, 0}, {4, 0}, {4, 3}}, polygons[0].Points)
	assert.Equal(t, []Point{{1, 1}, {2, 1}, {2, 2}, {1, 2}}, polygons[1].Points)
}

func TestReadSVGPolygonsErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"no polygons": `<svg><rect x="0" y="0" width="1" height="1"/></svg>`,
		"odd count":   `<svg><polygon points="0,0 1,0 1"/></svg>`,
		"bad number":  `<svg><polygon points="0,0 1,zero 1,1"/></svg>`,
	} {
		_, err := ReadSVGPolygons(strings.NewReader(doc))
		assert.Error(t, err, name)
	}
}

func TestFixturesLoadCounterclockwise(t *testing.T) {
	for _, name := range fixtureNames {
		poly := LoadFixture(name)
		assert.GreaterOrEqual(t, len(poly.Points), 4, name)
		assert.Greater(t, poly.SignedArea(), 0.0, name)
	}
}
