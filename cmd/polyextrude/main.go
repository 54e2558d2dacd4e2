package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/osuushi/polyextrude"
	"github.com/osuushi/polyextrude/internal"
	"github.com/osuushi/polyextrude/internal/config"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of triangulation and extrusion. Input is either an SVG file, whose
// <polygon> elements are used, or newline separated points in the form "x y",
// with each polygon separated by an extra newline, read from a file or stdin.
//
// Polygons should be simple. Clockwise polygons are reversed unless
// --no-normalize is given. None of the other requirements are validated.
var (
	app        = kingpin.New("polyextrude", "Triangulate and extrude simple polygons.")
	configFile = app.Flag("config", "hjson config file.").String()
	noNormal   = app.Flag("no-normalize", "Do not reverse clockwise polygons.").Bool()
	convex     = app.Flag("convex", "Fan triangulate polygons that are convex.").Bool()
	epsilon    = app.Flag("winding-epsilon", "Warn when a polygon's winding sum is below this.").PlaceHolder("1e-5").String()

	triangulateCmd   = app.Command("triangulate", "Print triangles as index triples.")
	triangulateInput = triangulateCmd.Arg("input", "Points or SVG file. Defaults to stdin.").File()

	extrudeCmd      = app.Command("extrude", "Write a Wavefront OBJ of the extruded polygons.")
	extrudeInput    = extrudeCmd.Arg("input", "Points or SVG file. Defaults to stdin.").File()
	extrudeDepth    = extrudeCmd.Flag("depth", "Extrusion depth.").PlaceHolder("1").String()
	extrudeOutput   = extrudeCmd.Flag("output", "OBJ file. Defaults to stdout.").Short('o').String()
	extrudeKeepFlat = extrudeCmd.Flag("keep-degenerate", "Keep zero area triangles when extruding.").Bool()
	extrudeFlip     = extrudeCmd.Flag("ccw-faces", "Write faces counterclockwise.").Bool()

	renderCmd     = app.Command("render", "Draw the triangulation to a PNG.")
	renderInput   = renderCmd.Arg("input", "Points or SVG file. Defaults to stdin.").File()
	renderOutput  = renderCmd.Flag("output", "PNG file.").Short('o').Default("triangulation.png").String()
	renderScale   = renderCmd.Flag("scale", "Pixels per unit.").PlaceHolder("50").String()
	renderPreview = renderCmd.Flag("preview", "Also show the image in the terminal (iTerm).").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig()
	app.FatalIfError(err, "")

	switch command {
	case triangulateCmd.FullCommand():
		err = runTriangulate(cfg)
	case extrudeCmd.FullCommand():
		err = runExtrude(cfg)
	case renderCmd.FullCommand():
		err = runRender(cfg)
	}
	app.FatalIfError(err, command)
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return nil, err
		}
	}
	return cfg, applyOverrides(cfg, overrides{
		noNormalize:    *noNormal,
		convex:         *convex,
		keepDegenerate: *extrudeKeepFlat,
		windingEpsilon: *epsilon,
		depth:          *extrudeDepth,
		renderScale:    *renderScale,
	})
}

func options(cfg *config.Config) []polyextrude.Option {
	return []polyextrude.Option{
		polyextrude.WithWindingEpsilon(cfg.WindingEpsilon),
		polyextrude.WithWindingNormalization(cfg.NormalizeWinding),
		polyextrude.WithDegenerateFilter(cfg.FilterDegenerate),
		polyextrude.WithConvexFastPath(cfg.ConvexFastPath),
	}
}

func runTriangulate(cfg *config.Config) error {
	polygons, err := readInput(*triangulateInput)
	if err != nil {
		return err
	}
	fmt.Printf("Read %d polygons\n", len(polygons))
	for i, points := range polygons {
		triangles, err := polyextrude.Triangulate(points, options(cfg)...)
		if err != nil {
			return errors.Wrapf(err, "polygon %d", i)
		}
		fmt.Printf("polygon %d: %d points, %d triangles\n", i, len(points), len(triangles))
		for _, t := range triangles {
			fmt.Printf("%d %d %d\n", t.A, t.B, t.C)
		}
	}
	return nil
}

func runExtrude(cfg *config.Config) error {
	polygons, err := readInput(*extrudeInput)
	if err != nil {
		return err
	}
	solids, err := polyextrude.ExtrudeAll(polygons, cfg.Depth, options(cfg)...)
	if err != nil {
		return err
	}

	out := os.Stdout
	if *extrudeOutput != "" {
		if out, err = os.Create(*extrudeOutput); err != nil {
			return errors.Wrap(err, "failed to create output")
		}
		defer out.Close()
	}

	w := internal.NewOBJWriter(out)
	w.FlipWinding = *extrudeFlip
	for i, solid := range solids {
		if !solid.IsClosed() {
			internal.LogWarning(internal.Diagnostic{
				Kind:    internal.DegenerateGeometry,
				Message: fmt.Sprintf("solid %d is not closed", i),
			})
		} else if solid.SignedVolume() <= 0 {
			internal.LogWarning(internal.Diagnostic{
				Kind:    internal.DegenerateGeometry,
				Message: fmt.Sprintf("solid %d encloses no volume or faces inward", i),
			})
		}
		if err := w.WriteMesh(fmt.Sprintf("polygon%d", i), &solid.Mesh); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runRender(cfg *config.Config) error {
	polygons, err := readInput(*renderInput)
	if err != nil {
		return err
	}
	if len(polygons) != 1 {
		return errors.Errorf("render takes exactly one polygon, got %d", len(polygons))
	}
	points := polygons[0]
	triangles, err := polyextrude.Triangulate(points, options(cfg)...)
	if err != nil {
		return err
	}

	c := internal.DrawTriangulation(points, triangles, cfg.RenderScale)
	if err := c.SavePNG(*renderOutput); err != nil {
		return errors.Wrap(err, "failed to write png")
	}
	if *renderPreview {
		return internal.PreviewInTerminal(c)
	}
	return nil
}

func readInput(in *os.File) ([][]internal.Point, error) {
	if in == nil {
		return readPolygons(os.Stdin)
	}
	defer in.Close()
	if strings.HasSuffix(strings.ToLower(in.Name()), ".svg") {
		polygons, err := internal.ReadSVGPolygons(in)
		if err != nil {
			return nil, err
		}
		result := make([][]internal.Point, len(polygons))
		for i, poly := range polygons {
			result[i] = poly.Points
		}
		return result, nil
	}
	return readPolygons(in)
}
