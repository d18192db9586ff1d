package objshape

import (
	"math"
	"testing"
	"time"
)

func newTestCanvas(t *testing.T, w, h int, mode BlendMode) *Canvas {
	t.Helper()
	c, err := NewCanvas(w, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.SetMode(mode)
	return c
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPaintLineHorizontalAntialiasedEdges(t *testing.T) {
	c := newTestCanvas(t, 12, 12, ModeSet)
	c.PaintLine(2, 5, 8, 5, 1, Red)

	for x := 2; x < 8; x++ {
		if a := c.At(x, 4).A; !near(a, 0.5) {
			t.Fatalf("upper edge at x=%d has alpha %v, want 0.5", x, a)
		}
		if a := c.At(x, 5).A; !near(a, 0.5) {
			t.Fatalf("lower edge at x=%d has alpha %v, want 0.5", x, a)
		}
	}
	// The end point is not painted and the ends are not capped.
	if a := c.At(8, 5).A; a != 0 {
		t.Fatalf("end pixel alpha = %v, want 0", a)
	}
	if a := c.At(1, 5).A; a != 0 {
		t.Fatalf("pixel before the start has alpha %v, want 0", a)
	}
}

func TestPaintLineWideStrokeHasSolidCore(t *testing.T) {
	c := newTestCanvas(t, 12, 12, ModeSet)
	c.PaintLine(0, 5, 6, 5, 3, Red)

	want := map[int]float64{2: 0, 3: 0.5, 4: 1, 5: 1, 6: 0.5, 7: 0}
	for y, a := range want {
		if got := c.At(3, y).A; !near(got, a) {
			t.Fatalf("alpha at (3,%d) = %v, want %v", y, got, a)
		}
	}
}

func TestPaintLineVertical(t *testing.T) {
	c := newTestCanvas(t, 12, 12, ModeSet)
	c.PaintLine(5, 9, 5, 1, 3, Red)

	want := map[int]float64{2: 0, 3: 0.5, 4: 1, 5: 1, 6: 0.5, 7: 0}
	for x, a := range want {
		if got := c.At(x, 4).A; !near(got, a) {
			t.Fatalf("alpha at (%d,4) = %v, want %v", x, got, a)
		}
	}
	if a := c.At(5, 1).A; a != 0 {
		t.Fatalf("end pixel alpha = %v, want 0", a)
	}
}

func TestPaintLineDiagonal(t *testing.T) {
	c := newTestCanvas(t, 12, 12, ModeSet)
	c.PaintLine(0, 0, 10, 10, 2, Red)

	if a := c.At(5, 5).A; !near(a, 1) {
		t.Fatalf("alpha on the diagonal = %v, want 1", a)
	}
	if a := c.At(9, 1).A; a != 0 {
		t.Fatalf("alpha far from the line = %v, want 0", a)
	}
}

func TestPaintLineDegenerateAndClipped(t *testing.T) {
	c := newTestCanvas(t, 8, 8, ModeNormal)
	c.PaintLine(3, 3, 3, 3, 4, Red)
	for _, p := range c.Pixels() {
		if p != Transparent {
			t.Fatalf("zero length line painted %+v", p)
		}
	}

	// Must not panic when the stroke leaves the canvas.
	c.PaintLine(-20, -5, 30, 12, 6, Red)
	c.PaintLine(4, -100, 4, 100, 0.5, Red)
}

func TestPaintLineClipsToCanvas(t *testing.T) {
	c := newTestCanvas(t, 16, 16, ModeSet)

	start := time.Now()
	c.PaintLine(0, 8, 15, 8, 2e8, Red)

	// The huge stroke covers the whole canvas except the end column.
	for y := 0; y < 16; y++ {
		for x := 0; x < 15; x++ {
			if a := c.At(x, y).A; a != 1 {
				t.Fatalf("pixel (%d,%d) alpha = %v, want 1", x, y, a)
			}
		}
	}

	c.PaintLine(-1e8, 4, 1e8, 6, 2, Red)
	c.PaintLine(8, 1e8, 9, -1e8, 3, Red)
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("painting oversized lines took %v", elapsed)
	}
}

func TestPaintLineStartingOffCanvas(t *testing.T) {
	c := newTestCanvas(t, 12, 12, ModeSet)
	c.PaintLine(-20, 5, 8, 5, 1, Red)

	for x := 0; x < 8; x++ {
		if a := c.At(x, 5).A; !near(a, 0.5) {
			t.Fatalf("pixel (%d,5) alpha = %v, want 0.5", x, a)
		}
	}
	if a := c.At(8, 5).A; a != 0 {
		t.Fatalf("end point alpha = %v, want 0", a)
	}
}
