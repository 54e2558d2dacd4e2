package internal

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func assertVec3(t *testing.T, expected, actual mgl64.Vec3, msgAndArgs ...interface{}) {
	assert.True(t, expected.ApproxEqualThreshold(actual, 1e-9), append([]interface{}{"expected %v, got %v", expected, actual}, msgAndArgs...)...)
}

func TestFaceNormalsPointOutward(t *testing.T) {
	solid := extrudePolygon(Square(), 1, nil)

	// Front, then back
	for i := 0; i < 2; i++ {
		assertVec3(t, mgl64.Vec3{0, 0, -1}, solid.FaceNormal(i))
		assertVec3(t, mgl64.Vec3{0, 0, 1}, solid.FaceNormal(2+i))
	}

	// Walls, two triangles per edge, in boundary edge order: left, bottom, top,
	// right.
	for i, expected := range []mgl64.Vec3{{-1, 0, 0}, {0, -1, 0}, {0, 1, 0}, {1, 0, 0}} {
		assertVec3(t, expected, solid.FaceNormal(4+2*i))
		assertVec3(t, expected, solid.FaceNormal(5+2*i))
	}
}

func TestFaceNormalDegenerate(t *testing.T) {
	mesh := &Mesh{
		Vertices:  []Vector3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
		Triangles: []int{0, 1, 2},
	}
	assert.Equal(t, mgl64.Vec3{}, mesh.FaceNormal(0))
}

func TestSignedVolume(t *testing.T) {
	for _, name := range fixtureNames {
		poly := LoadFixture(name)
		solid := extrudePolygon(poly, 3, nil)
		assert.InDelta(t, solid.Volume(), solid.SignedVolume(), 1e-9, name)
	}

	// An open mesh can still be measured, but a flat one encloses nothing.
	flat := NewBaseMesh(Square().Points, TriangulateConcave(Square().Points, nil))
	assert.InDelta(t, 0, flat.SignedVolume(), 1e-12)
}
