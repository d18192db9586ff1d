package objshape

import (
	"image"
	"image/draw"
	"log/slog"
	"math"

	"golang.org/x/image/vector"
)

// FillPolygon fills the interior of the polygon through the current blend mode.
// Coverage is accumulated scanline by scanline; partially covered edge pixels
// are painted with the color alpha scaled by their coverage.
// Polygons with fewer than three points paint nothing.
func (c *Canvas) FillPolygon(points []Point, col Color) {
	if len(points) < 3 {
		Logger().Warn("polygon fill skipped", slog.Int("points", len(points)))
		return
	}

	b := boundsOf(points)
	clip := image.Rect(
		int(math.Floor(b.MinX)), int(math.Floor(b.MinY)),
		int(math.Ceil(b.MaxX)), int(math.Ceil(b.MaxY)),
	).Intersect(image.Rect(0, 0, c.width, c.height))
	if clip.Empty() {
		return
	}

	r := vector.NewRasterizer(c.width, c.height)
	r.DrawOp = draw.Src
	r.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, c.width, c.height))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			cov := mask.AlphaAt(x, y).A
			if cov == 0 {
				continue
			}
			c.PaintPixel(x, y, col.WithAlpha(col.A*float64(cov)/0xff))
		}
	}
}

// StrokePolyline paints a line of the given width along consecutive points,
// returning to the first point when closed is set.
func (c *Canvas) StrokePolyline(points []Point, closed bool, width float64, col Color) {
	n := len(points)
	if n < 2 {
		return
	}
	segment := func(a, b Point) {
		c.PaintLine(round(a.X), round(a.Y), round(b.X), round(b.Y), width, col)
	}
	for i := 1; i < n; i++ {
		segment(points[i-1], points[i])
	}
	if closed {
		segment(points[n-1], points[0])
	}
}
