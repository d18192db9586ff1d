package objshape

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Canvas is an addressable RGBA pixel buffer with float channels.
// Every paint operation composites through the selected blend mode and
// silently drops pixels outside [0, width) × [0, height).
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pix    []Color
	mode   BlendMode
}

// NewCanvas allocates a fully transparent canvas. The blend mode starts as ModeSet.
// It fails with ErrInvalidGeometry for non-positive dimensions.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas size %dx%d", ErrInvalidGeometry, width, height)
	}
	Logger().Debug("canvas allocated", slog.Int("width", width), slog.Int("height", height))

	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
		mode:   ModeSet,
	}, nil
}

// NewCanvasFromImage creates a canvas seeded with the pixels of img.
func NewCanvasFromImage(img image.Image) (*Canvas, error) {
	src := toNRGBA(img)
	c, err := NewCanvas(src.Bounds().Dx(), src.Bounds().Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.pix[y*c.width+x] = FromColor(src.NRGBAAt(x, y))
		}
	}
	return c, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Mode returns the blend mode used by paint operations.
func (c *Canvas) Mode() BlendMode { return c.mode }

// SetMode selects the blend mode used by subsequent paint operations.
func (c *Canvas) SetMode(m BlendMode) { c.mode = m }

// At returns the raw (unclamped) color stored at (x, y).
// Coordinates outside the canvas yield Transparent.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Transparent
	}
	return c.pix[y*c.width+x]
}

// Pixels returns a copy of the raw pixel buffer in row-major order.
func (c *Canvas) Pixels() []Color {
	return append([]Color(nil), c.pix...)
}

// Clear resets every pixel to col, bypassing the blend mode.
func (c *Canvas) Clear(col Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// PaintPixel composites col into the pixel at (x, y) using the current blend mode.
// A color with alpha <= 0 is a no-op.
func (c *Canvas) PaintPixel(x, y int, col Color) {
	if col.A <= 0 {
		return
	}
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := y*c.width + x

	var dst Color
	if c.mode.NeedsOriginal(col.A) {
		dst = c.pix[i]
	}
	c.pix[i] = c.mode.Apply(dst, col.R, col.G, col.B, col.A)
}

// PaintRect paints the given area with col. The rectangle is clipped to the canvas.
func (c *Canvas) PaintRect(startX, startY, width, height int, col Color) {
	endX := Min(startX+width, c.width)
	endY := Min(startY+height, c.height)
	startX = Max(startX, 0)
	startY = Max(startY, 0)

	for y := startY; y < endY; y++ {
		for x := startX; x < endX; x++ {
			c.PaintPixel(x, y, col)
		}
	}
}

// Image materializes the canvas into an 8 bit image. This is the single place
// where out of range channel values are clamped to [0, 1].
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		row := c.pix[y*c.width : (y+1)*c.width]
		for x, col := range row {
			img.SetNRGBA(x, y, col.NRGBA())
		}
	}
	return img
}

// SavePNG writes the materialized canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return gg.SavePNG(path, c.Image())
}

// ParseFormat normalizes an image format name or file extension
// (".png", "BMP", "tif", ...) to one of "png", "bmp" or "tiff".
func ParseFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimPrefix(format, ".")); f {
	case "png", "bmp":
		return f, nil
	case "tif", "tiff":
		return "tiff", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Encode writes the materialized canvas to w in one of the formats
// accepted by ParseFormat.
func (c *Canvas) Encode(w io.Writer, format string) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	img := c.Image()

	switch f {
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return png.Encode(w, img)
}
