package internal

import "github.com/go-gl/mathgl/mgl64"

func (v Vector3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Unit normal of triangle i, by the right hand rule. Clockwise triangles in
// the XY plane face -Z. Degenerate triangles have a zero normal.
func (m *Mesh) FaceNormal(i int) mgl64.Vec3 {
	t := m.Triangle(i)
	a, b, c := m.Vertices[t.A].Vec3(), m.Vertices[t.B].Vec3(), m.Vertices[t.C].Vec3()
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() < Tolerance {
		return mgl64.Vec3{}
	}
	return n.Normalize()
}

// Volume enclosed by the mesh by the divergence theorem. Only meaningful for
// closed meshes. It is positive when every face points outward, and negative
// when every face points inward.
func (m *Mesh) SignedVolume() float64 {
	var volume float64
	for i := 0; i < m.TriangleCount(); i++ {
		t := m.Triangle(i)
		a, b, c := m.Vertices[t.A].Vec3(), m.Vertices[t.B].Vec3(), m.Vertices[t.C].Vec3()
		volume += a.Dot(b.Cross(c))
	}
	return volume / 6
}
