package internal

import (
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the shape, in pixels
const drawPadding = 40

// Draw a triangulation: triangles filled and outlined, the polygon outline on
// top, and every input point labelled with its index. The context is flipped
// so the origin is at the bottom left, matching the polygon coordinates.
func DrawTriangulation(points []Point, triangles []Triangle, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Push()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, t := range triangles {
		a, b, cc := t.Points(points)
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(cc.X, cc.Y)
		c.ClosePath()
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 0)
		c.SetLineWidth(1 / scale)
		c.Stroke()
	}

	if len(points) > 0 {
		c.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2 / scale)
		c.Stroke()
	}

	// Work out label positions while the polygon transform is active, then
	// draw the text untransformed so it isn't mirrored.
	labels := make([][2]float64, len(points))
	for i, p := range points {
		x, y := c.TransformPoint(p.X, p.Y)
		labels[i] = [2]float64{x, y}
	}
	c.Pop()

	c.SetRGB(1, 1, 1)
	for i, l := range labels {
		c.DrawCircle(l[0], l[1], 2)
		c.Fill()
		c.DrawStringAnchored(strconv.Itoa(i), l[0]+4, l[1]-4, 0, 0)
	}
	return c
}

// Print the image inline in the terminal (iTerm only). The image goes through
// a temp file because that's what imgcat reads.
func PreviewInTerminal(c *gg.Context) error {
	path := filepath.Join(os.TempDir(), "polyextrude_preview.png")
	if err := c.SavePNG(path); err != nil {
		return errors.Wrap(err, "failed to write preview")
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
