package internal

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Minimal Wavefront OBJ output: one object per solid, positions and faces
// only. OBJ indices are 1-based and global to the file, so the writer keeps
// track of how many vertices it has written.
type OBJWriter struct {
	w        *bufio.Writer
	vertices int
	// Reverse face winding on output, for consumers that treat
	// counterclockwise as front facing.
	FlipWinding bool
}

func NewOBJWriter(w io.Writer) *OBJWriter {
	return &OBJWriter{w: bufio.NewWriter(w)}
}

func (o *OBJWriter) WriteMesh(name string, mesh *Mesh) error {
	if _, err := fmt.Fprintf(o.w, "o %s\n", name); err != nil {
		return errors.Wrap(err, "failed to write object")
	}
	for _, v := range mesh.Vertices {
		if _, err := fmt.Fprintf(o.w, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return errors.Wrap(err, "failed to write vertex")
		}
	}
	for i := 0; i < mesh.TriangleCount(); i++ {
		t := mesh.Triangle(i)
		if o.FlipWinding {
			t.Flip()
		}
		if _, err := fmt.Fprintf(o.w, "f %d %d %d\n", t.A+o.vertices+1, t.B+o.vertices+1, t.C+o.vertices+1); err != nil {
			return errors.Wrap(err, "failed to write face")
		}
	}
	o.vertices += len(mesh.Vertices)
	return nil
}

func (o *OBJWriter) Flush() error {
	return errors.Wrap(o.w.Flush(), "failed to flush obj output")
}
