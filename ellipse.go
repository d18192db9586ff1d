package objshape

import "math"

// PaintEllipse traces the outline of the ellipse centered at (xc, yc) with
// radii rx and ry using the integer midpoint algorithm. Each point found in
// the first quadrant is mirrored into the other three.
// Points on the axes have fewer distinct mirrors and are painted once, which
// matters for accumulating modes such as ModeAdd and ModeSubtract.
func (c *Canvas) PaintEllipse(xc, yc, rx, ry int, col Color) {
	rx, ry = abs(rx), abs(ry)

	switch {
	case rx == 0 && ry == 0:
		c.PaintPixel(xc, yc, col)
		return
	case ry == 0:
		c.paintRow(yc, xc-rx, xc+rx, col)
		return
	case rx == 0:
		if xc < 0 || xc >= c.width {
			return
		}
		for y := Max(yc-ry, 0); y <= Min(yc+ry, c.height-1); y++ {
			c.PaintPixel(xc, y, col)
		}
		return
	}

	rx2, ry2 := rx*rx, ry*ry
	x, y := 0, ry

	// Region 1: the slope magnitude is below 1, step along x.
	c.plotEllipsePoints(xc, yc, x, y, col)
	p1 := round(float64(ry2) - float64(rx2*ry) + 0.25*float64(rx2))
	for ry2*x <= rx2*y {
		if p1 <= 0 {
			p1 += ry2 * (2*x + 3)
			x++
		} else {
			p1 += ry2*(2*x+3) + rx2*(2-2*y)
			x++
			y--
		}
		c.plotEllipsePoints(xc, yc, x, y, col)
	}

	// Region 2: step along y down to the major axis.
	fx := float64(x) + 0.5
	p2 := round(float64(ry2)*fx*fx + float64(rx2*(y-1)*(y-1)) - float64(rx2*ry2))
	for y > 0 {
		if p2 <= 0 {
			p2 += ry2*(2*x+2) + rx2*(3-2*y)
			x++
			y--
		} else {
			p2 += rx2 * (3 - 2*y)
			y--
		}
		c.plotEllipsePoints(xc, yc, x, y, col)
	}
}

// plotEllipsePoints paints the four mirror images of the offset (x, y),
// skipping the duplicates that occur on the axes.
func (c *Canvas) plotEllipsePoints(xc, yc, x, y int, col Color) {
	c.PaintPixel(xc+x, yc+y, col)
	if x != 0 {
		c.PaintPixel(xc-x, yc+y, col)
	}
	if y != 0 {
		c.PaintPixel(xc+x, yc-y, col)
		if x != 0 {
			c.PaintPixel(xc-x, yc-y, col)
		}
	}
}

// FillEllipse paints the interior of the ellipse centered at (xc, yc) one
// horizontal span per row. Every covered pixel is painted exactly once.
func (c *Canvas) FillEllipse(xc, yc, rx, ry int, col Color) {
	rx, ry = abs(rx), abs(ry)
	if ry == 0 {
		c.paintRow(yc, xc-rx, xc+rx, col)
		return
	}

	// Only rows and columns inside the canvas are visited.
	for dy := Max(-ry, -yc); dy <= Min(ry, c.height-1-yc); dy++ {
		t := float64(dy) / float64(ry)
		half := round(float64(rx) * math.Sqrt(Max(0, 1-t*t)))
		c.paintRow(yc+dy, xc-half, xc+half, col)
	}
}

// paintRow paints the pixels x0..x1 (inclusive) of row y, clipped to the canvas.
func (c *Canvas) paintRow(y, x0, x1 int, col Color) {
	if y < 0 || y >= c.height {
		return
	}
	for x := Max(x0, 0); x <= Min(x1, c.width-1); x++ {
		c.PaintPixel(x, y, col)
	}
}
