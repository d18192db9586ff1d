package objshape

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewCanvasRejectsEmptySize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := NewCanvas(size[0], size[1]); !errors.Is(err, ErrInvalidGeometry) {
			t.Fatalf("NewCanvas(%d, %d) error = %v, want ErrInvalidGeometry", size[0], size[1], err)
		}
	}
}

func TestPaintPixelZeroAlphaIsNoop(t *testing.T) {
	for _, mode := range BlendModes() {
		c, err := NewCanvas(8, 8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c.SetMode(mode)
		before := c.Image().Pix

		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				c.PaintPixel(x, y, Color{R: 1, G: 1, B: 1, A: 0})
			}
		}
		if after := c.Image().Pix; !bytes.Equal(before, after) {
			t.Fatalf("%v: zero alpha paint modified the canvas", mode)
		}
	}
}

func TestPaintPixelOutOfBoundsIsClipped(t *testing.T) {
	c, err := NewCanvas(4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.PaintPixel(-1, 0, Red)
	c.PaintPixel(0, 4, Red)
	c.PaintPixel(4, 0, Red)
	for _, p := range c.Pixels() {
		if p != Transparent {
			t.Fatalf("expected untouched canvas, found %+v", p)
		}
	}
}

func TestPaintRectSetMode(t *testing.T) {
	c, err := NewCanvas(10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.SetMode(ModeSet)
	c.PaintRect(2, 2, 4, 4, Color{R: 1, G: 0, B: 0, A: 1})

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			got := c.At(x, y)
			inside := x >= 2 && x <= 5 && y >= 2 && y <= 5
			if inside && got != Red {
				t.Fatalf("pixel (%d,%d) = %+v, want opaque red", x, y, got)
			}
			if !inside && got != Transparent {
				t.Fatalf("pixel (%d,%d) = %+v, want transparent", x, y, got)
			}
		}
	}
}

func TestPaintRectIsClipped(t *testing.T) {
	c, err := NewCanvas(5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.PaintRect(-3, -3, 5, 5, White)
	c.PaintRect(4, 4, 100, 100, White)

	var painted int
	for _, p := range c.Pixels() {
		if p.A > 0 {
			painted++
		}
	}
	// 2x2 in the top-left corner and the single bottom-right pixel.
	if painted != 5 {
		t.Fatalf("painted %d pixels, want 5", painted)
	}
}

func TestCanvasClampsOnlyOnMaterialization(t *testing.T) {
	c, err := NewCanvas(2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.SetMode(ModeAdd)
	c.PaintPixel(0, 0, White)
	c.PaintPixel(0, 0, White)
	c.SetMode(ModeSubtract)
	c.PaintPixel(1, 0, White)

	if got := c.At(0, 0); got.R != 2 || got.A != 2 {
		t.Fatalf("raw pixel = %+v, want unclamped 2", got)
	}
	if got := c.At(1, 0); got.R != -1 {
		t.Fatalf("raw pixel = %+v, want unclamped -1", got)
	}

	img := c.Image()
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("materialized pixel = %+v, want clamped white", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{A: 255}) {
		t.Fatalf("materialized pixel = %+v, want clamped black", got)
	}
}

func TestNewCanvasFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 13, 12))
	src.Set(11, 11, color.RGBA{R: 255, A: 255})

	c, err := NewCanvasFromImage(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Width() != 3 || c.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", c.Width(), c.Height())
	}
	if got := c.At(1, 1); got != Red {
		t.Fatalf("pixel = %+v, want red", got)
	}
	if got := c.At(0, 0); got != Transparent {
		t.Fatalf("pixel = %+v, want transparent", got)
	}
}

func TestCanvasEncode(t *testing.T) {
	c, err := NewCanvas(3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Clear(Red)

	for _, format := range []string{"png", ".bmp", "TIFF"} {
		var buf bytes.Buffer
		if err := c.Encode(&buf, format); err != nil {
			t.Fatalf("%s: unexpected error: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("%s: empty output", format)
		}
	}
	if err := c.Encode(&bytes.Buffer{}, "gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("error = %v, want ErrUnknownFormat", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]string{
		".png": "png",
		"BMP":  "bmp",
		".tif": "tiff",
		"tiff": "tiff",
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v, want %q", in, got, err, want)
		}
	}
	for _, in := range []string{"", ".gif", "jpeg"} {
		if _, err := ParseFormat(in); !errors.Is(err, ErrUnknownFormat) {
			t.Fatalf("ParseFormat(%q) error = %v, want ErrUnknownFormat", in, err)
		}
	}
}
