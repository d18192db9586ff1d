package objshape

import (
	"log/slog"
	"math"
)

// PaintLine paints a straight line of the given width between two points.
// It copes with lines in any direction including negative x and y.
//
// The two long edges of the line are anti-aliased and non-integer widths
// (even below 1, with dotty results) are accepted. The ends are not capped:
// the line is cut off vertically or horizontally at its last step, and the
// end point itself is not painted.
func (c *Canvas) PaintLine(x1, y1, x2, y2 int, width float64, col Color) {
	xWidth := x2 - x1
	yHeight := y2 - y1
	if xWidth == 0 && yHeight == 0 {
		Logger().Warn("zero length line skipped", slog.Int("x", x1), slog.Int("y", y1))
		return
	}

	// Is the line more horizontal or more vertical?
	if abs(xWidth) > abs(yHeight) {
		yStep := float64(yHeight) / float64(xWidth)
		// Project the width on the vertical axis. atan is enough here,
		// the sign of the angle is irrelevant.
		rotatedHeight := width / math.Sin(math.Pi/2+math.Atan(yStep))

		xStep := 1
		if xWidth < 0 {
			xStep = -1
		}
		y := float64(y1) - rotatedHeight*0.5

		lo, hi := clipSteps(x1, xStep, abs(xWidth), c.width)
		for k := lo; k < hi; k++ {
			c.paintSpan(x1+k*xStep, y+float64(k)*yStep, rotatedHeight, col, false)
		}
		return
	}

	xStep := 0.0
	if yHeight != 0 {
		xStep = float64(xWidth) / float64(yHeight)
	}
	rotatedWidth := width / math.Sin(math.Pi/2+math.Atan(xStep))

	yStep := 1
	if yHeight < 0 {
		yStep = -1
	}
	x := float64(x1) - rotatedWidth*0.5

	lo, hi := clipSteps(y1, yStep, abs(yHeight), c.height)
	for k := lo; k < hi; k++ {
		c.paintSpan(y1+k*yStep, x+float64(k)*xStep, rotatedWidth, col, true)
	}
}

// clipSteps returns the range [lo, hi) of the n steps start+k*step that
// land inside [0, size).
func clipSteps(start, step, n, size int) (lo, hi int) {
	lo, hi = 0, n
	if step > 0 {
		lo = Max(lo, -start)
		hi = Min(hi, size-start)
	} else {
		lo = Max(lo, start-size+1)
		hi = Min(hi, start+1)
	}
	return lo, hi
}

// paintSpan paints one cross section of a line. major is the coordinate on
// the dominant axis, start and extent describe the section on the other axis.
// The two edge pixels receive alpha proportional to their coverage, the
// pixels strictly between them are painted at full alpha.
// When vertical is set, major is y and the span runs along x.
func (c *Canvas) paintSpan(major int, start, extent float64, col Color, vertical bool) {
	plot := func(minor int, a float64) {
		if vertical {
			c.PaintPixel(minor, major, col.WithAlpha(a))
		} else {
			c.PaintPixel(major, minor, col.WithAlpha(a))
		}
	}

	first := math.Floor(start)
	// Leading edge pixel at partial opacity.
	plot(int(first), col.A*(1-(start-first)))

	end := start + extent
	last := math.Floor(end)

	size := c.height
	if vertical {
		size = c.width
	}
	from := Max(first+1, 0)
	to := Min(last, float64(size))
	for m := int(from); m < int(to); m++ {
		plot(m, col.A)
	}

	// Narrow lines (extent < 1) can hit the same pixel twice, which makes
	// the line look a little dotty.
	plot(int(last), col.A*(end-last))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
