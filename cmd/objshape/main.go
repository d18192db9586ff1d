package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/esimov/objshape"
	"github.com/esimov/objshape/projection"
	"github.com/esimov/objshape/utils"
)

var (
	// Shape flags
	shapeKind = flag.String("shape", "rectangle", "Shape type: rectangle, ellipse, circle, polygon, polyline")
	position  = flag.String("pos", "0,0", "Shape position as x,y")
	size      = flag.String("size", "64x64", "Rectangle or ellipse size as WxH")
	radius    = flag.Float64("radius", 32, "Circle radius")
	points    = flag.String("points", "", "Polygon or polyline points as \"x,y x,y ...\"")
	closed    = flag.Bool("closed", false, "Close the polyline")

	// Texture flags
	canvasSize  = flag.String("canvas", "256x256", "Canvas size as WxH")
	blendMode   = flag.String("mode", "normal", "Blend mode: set, normal, add, subtract, lighten-only, darken-only, multiply, screen")
	paintColor  = flag.String("color", "#FFFFFF", "Paint color as #RRGGBB or #RRGGBBAA")
	strokeWidth = flag.Float64("stroke", 1, "Outline width in pixels, 0 disables the outline")
	fill        = flag.Bool("fill", false, "Fill closed shapes")
	destination = flag.String("out", "", "Texture destination (.png, .bmp, .tiff)")
	preview     = flag.String("preview", "", "Optional reference rendering destination (.png)")

	// Mesh flags
	meshOnly    = flag.Bool("mesh", false, "Print the mesh instead of rendering a texture")
	orientation = flag.String("orientation", "orthogonal", "Map orientation: orthogonal, isometric, staggered, hexagonal")
	tileSize    = flag.String("tile", "32x32", "Tile size as WxH")
	tileLoc     = flag.String("at", "0,0", "Tile location of the mesh as col,row")
	mapHeight   = flag.Int("mapheight", 0, "Number of tile rows (isometric maps)")
	hexSide     = flag.Float64("hexside", 0, "Hex side length (hexagonal maps)")

	verbose = flag.Bool("v", false, "Verbose logging")
)

func main() {
	flag.Parse()

	if *verbose {
		objshape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	shape, err := parseShape()
	if err != nil {
		log.Fatalf("Unable to parse shape: %v", err)
	}

	if *meshOnly {
		if err := printMesh(os.Stdout, shape); err != nil {
			log.Fatalf("Error generating mesh: %v", err)
		}
		return
	}

	if len(*destination) == 0 {
		log.Fatal("Usage: objshape -shape ellipse -size 120x80 -out ellipse.png")
	}
	if err := renderTexture(shape); err != nil {
		log.Fatalf("Error rendering texture: %v", err)
	}
}

func renderTexture(shape objshape.Shape) (err error) {
	format, err := objshape.ParseFormat(filepath.Ext(*destination))
	if err != nil {
		return err
	}
	w, h, err := parseSize(*canvasSize)
	if err != nil {
		return err
	}
	mode, err := objshape.ParseBlendMode(*blendMode)
	if err != nil {
		return err
	}
	col, err := objshape.ParseColor(*paintColor)
	if err != nil {
		return err
	}
	opts := objshape.Options{
		Width:       int(w),
		Height:      int(h),
		Mode:        mode,
		Color:       col,
		StrokeWidth: *strokeWidth,
		Fill:        *fill,
	}

	colors := utils.IsTerminal(os.Stderr)
	var s *utils.Spinner
	if colors {
		s = utils.NewSpinner(os.Stderr)
		s.Start("Rasterizing shape...")
	}
	start := time.Now()
	canvas, err := objshape.Rasterize(shape, opts)
	if s != nil {
		s.Stop()
	}
	if err != nil {
		return err
	}

	out, err := os.Create(*destination)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(*destination)
		}
	}()

	if err := canvas.Encode(out, format); err != nil {
		return err
	}

	if len(*preview) > 0 {
		img, err := objshape.Preview(shape, opts)
		if err != nil {
			return err
		}
		pf, err := os.Create(*preview)
		if err != nil {
			return err
		}
		defer pf.Close()
		if err := png.Encode(pf, img); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "\nRendered in: %s\n", utils.Colorize(colors, utils.SuccessColor, utils.FormatTime(time.Since(start))))
	fmt.Fprintf(os.Stderr, "Saved as: %s %s\n\n", filepath.Base(*destination), utils.Colorize(colors, utils.SuccessColor, "✓"))
	return nil
}

// printMesh writes the mesh of the shape, placed at the requested tile, as plain text.
func printMesh(w io.Writer, shape objshape.Shape) error {
	mesh, err := objshape.BuildMesh(shape)
	if err != nil {
		return err
	}

	tw, th, err := parseSize(*tileSize)
	if err != nil {
		return err
	}
	col, row, err := parsePair(*tileLoc)
	if err != nil {
		return err
	}
	proj, err := projection.New(*orientation, float32(tw), float32(th), *mapHeight, float32(*hexSide))
	if err != nil {
		return err
	}
	// Meshes are y-up, screen locations are y-down.
	loc := proj.TileToScreen(int(col), int(row))
	mesh = mesh.Transform(mgl32.Translate3D(loc.X(), -loc.Y(), 0))

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "mode %s\n", mesh.Mode)
	for i, p := range mesh.Positions {
		n := mesh.Normals[i]
		t := mesh.TexCoords[i]
		fmt.Fprintf(bw, "v %g %g %g n %g %g %g t %g %g\n", p[0], p[1], p[2], n[0], n[1], n[2], t[0], t[1])
	}
	idx := make([]string, len(mesh.Indices))
	for i, v := range mesh.Indices {
		idx[i] = strconv.FormatUint(uint64(v), 10)
	}
	fmt.Fprintf(bw, "i %s\n", strings.Join(idx, " "))
	return bw.Flush()
}

func parseShape() (objshape.Shape, error) {
	x, y, err := parsePair(*position)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(*shapeKind) {
	case "rectangle", "rect":
		w, h, err := parseSize(*size)
		if err != nil {
			return nil, err
		}
		return objshape.Rectangle{X: x, Y: y, Width: w, Height: h}, nil
	case "ellipse":
		w, h, err := parseSize(*size)
		if err != nil {
			return nil, err
		}
		return objshape.Ellipse{X: x, Y: y, Width: w, Height: h}, nil
	case "circle":
		return objshape.NewCircle(x, y, *radius), nil
	case "polygon", "polyline":
		pts, err := parsePoints(*points)
		if err != nil {
			return nil, err
		}
		for i := range pts {
			pts[i] = pts[i].Add(objshape.Pt(x, y))
		}
		if strings.EqualFold(*shapeKind, "polygon") {
			return objshape.Polygon{Points: pts}, nil
		}
		return objshape.Polyline{Points: pts, Closed: *closed}, nil
	}
	return nil, fmt.Errorf("%w: %q", objshape.ErrUnknownShape, *shapeKind)
}

func parsePoints(s string) ([]objshape.Point, error) {
	var pts []objshape.Point
	for _, field := range strings.Fields(s) {
		x, y, err := parsePair(field)
		if err != nil {
			return nil, err
		}
		pts = append(pts, objshape.Pt(x, y))
	}
	return pts, nil
}

func parsePair(s string) (float64, float64, error) {
	return parseTuple(s, ",")
}

func parseSize(s string) (float64, float64, error) {
	return parseTuple(strings.ToLower(s), "x")
}

func parseTuple(s, sep string) (float64, float64, error) {
	parts := strings.SplitN(strings.TrimSpace(s), sep, 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid value %q, expected a%sb", s, sep)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return a, b, nil
}
