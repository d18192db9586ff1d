package objshape

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"time"

	"github.com/fogleman/gg"
)

// Options configures the rasterization of a single shape into a texture.
type Options struct {
	// Width and Height are the canvas dimensions in pixels.
	Width, Height int
	// Mode is the blend mode used for every painted pixel.
	Mode BlendMode
	// Color is the paint color for both fill and stroke.
	Color Color
	// StrokeWidth is the outline width in pixels. Zero disables the outline.
	StrokeWidth float64
	// Fill paints the interior of closed shapes.
	Fill bool
}

// DefaultOptions returns a 1 pixel opaque white outline on a 256x256 canvas,
// blended normally.
func DefaultOptions() Options {
	return Options{
		Width:       256,
		Height:      256,
		Mode:        ModeNormal,
		Color:       White,
		StrokeWidth: 1,
	}
}

// Rasterize paints the shape on a freshly allocated canvas according to opts.
// Shape coordinates are canvas pixel coordinates. The canvas is returned
// for the caller to materialize with Image, SavePNG or Encode.
func Rasterize(s Shape, opts Options) (*Canvas, error) {
	start := time.Now()

	c, err := NewCanvas(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	c.SetMode(opts.Mode)
	if err := c.Draw(s, opts.Color, opts.StrokeWidth, opts.Fill); err != nil {
		return nil, err
	}

	Logger().Debug("shape rasterized",
		slog.String("shape", fmt.Sprintf("%T", s)),
		slog.String("mode", opts.Mode.String()),
		slog.Duration("elapsed", time.Since(start)),
	)
	return c, nil
}

// Draw paints the shape onto an existing canvas with the current blend mode.
// Several shapes can be composed on one canvas by calling Draw repeatedly.
func (c *Canvas) Draw(s Shape, col Color, strokeWidth float64, fill bool) error {
	stroke := strokeWidth > 0

	switch shape := s.(type) {
	case Rectangle:
		if fill {
			c.PaintRect(round(shape.X), round(shape.Y), round(shape.Width), round(shape.Height), col)
		}
		if stroke {
			c.StrokePolyline(shape.Corners(), true, strokeWidth, col)
		}
	case Ellipse:
		center := shape.Center()
		rx, ry := shape.Radii()
		c.drawEllipse(center, rx, ry, col, strokeWidth, fill)
	case Circle:
		c.drawEllipse(shape.Center(), shape.Radius, shape.Radius, col, strokeWidth, fill)
	case Polygon:
		if len(shape.Points) < 3 {
			return fmt.Errorf("%w: polygon needs at least 3 points, got %d", ErrInvalidGeometry, len(shape.Points))
		}
		if fill {
			c.FillPolygon(shape.Points, col)
		}
		if stroke {
			c.StrokePolyline(shape.Points, true, strokeWidth, col)
		}
	case Polyline:
		if len(shape.Points) < 2 {
			return fmt.Errorf("%w: polyline needs at least 2 points, got %d", ErrInvalidGeometry, len(shape.Points))
		}
		if fill && shape.Closed {
			c.FillPolygon(shape.Points, col)
		}
		if stroke {
			c.StrokePolyline(shape.Points, shape.Closed, strokeWidth, col)
		}
	default:
		return fmt.Errorf("%w: %T", ErrUnknownShape, s)
	}
	return nil
}

// drawEllipse uses the midpoint tracer for hairline outlines and a sampled
// polygon for wider strokes.
func (c *Canvas) drawEllipse(center Point, rx, ry float64, col Color, strokeWidth float64, fill bool) {
	xc, yc := round(center.X), round(center.Y)
	if fill {
		c.FillEllipse(xc, yc, round(rx), round(ry), col)
	}
	switch {
	case strokeWidth <= 0:
	case strokeWidth <= 1:
		c.PaintEllipse(xc, yc, round(rx), round(ry), col)
	default:
		c.StrokePolyline(sampleEllipse(center, rx, ry), true, strokeWidth, col)
	}
}

// sampleEllipse approximates the ellipse boundary with a polygon whose
// segments are a few pixels long, never using fewer than ellipseSegments points.
func sampleEllipse(center Point, rx, ry float64) []Point {
	// Ramanujan's approximation of the perimeter.
	h := (rx - ry) * (rx - ry) / ((rx + ry) * (rx + ry))
	perimeter := math.Pi * (rx + ry) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
	if math.IsNaN(perimeter) {
		perimeter = 0
	}
	n := Max(ellipseSegments, int(perimeter/4))

	points := make([]Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range points {
		a := float64(i) * step
		points[i] = Point{X: center.X + math.Cos(a)*rx, Y: center.Y + math.Sin(a)*ry}
	}
	return points
}

// Preview renders the shape with a general purpose anti-aliased vector
// renderer. It is meant as a visual reference for Rasterize output and
// ignores the blend mode.
func Preview(s Shape, opts Options) (image.Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: preview size %dx%d", ErrInvalidGeometry, opts.Width, opts.Height)
	}

	ctx := gg.NewContext(opts.Width, opts.Height)
	ctx.SetRGBA(opts.Color.R, opts.Color.G, opts.Color.B, opts.Color.A)
	ctx.SetLineWidth(opts.StrokeWidth)

	closed := true
	switch shape := s.(type) {
	case Rectangle:
		ctx.DrawRectangle(shape.X, shape.Y, shape.Width, shape.Height)
	case Ellipse:
		center := shape.Center()
		rx, ry := shape.Radii()
		ctx.DrawEllipse(center.X, center.Y, rx, ry)
	case Circle:
		ctx.DrawCircle(shape.X, shape.Y, shape.Radius)
	case Polygon:
		tracePath(ctx, shape.Points, true)
	case Polyline:
		tracePath(ctx, shape.Points, shape.Closed)
		closed = shape.Closed
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownShape, s)
	}

	if opts.Fill && closed {
		ctx.FillPreserve()
	}
	if opts.StrokeWidth > 0 {
		ctx.StrokePreserve()
	}
	ctx.ClearPath()

	return ctx.Image(), nil
}

func tracePath(ctx *gg.Context, points []Point, closed bool) {
	for i, p := range points {
		if i == 0 {
			ctx.MoveTo(p.X, p.Y)
			continue
		}
		ctx.LineTo(p.X, p.Y)
	}
	if closed {
		ctx.ClosePath()
	}
}
