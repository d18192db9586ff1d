package objshape

// Shape is one of Circle, Rectangle, Ellipse, Polygon or Polyline.
// The set is closed: only types of this package implement it.
type Shape interface {
	Bounds() Bounds
	isShape()
}

// Rectangle is an axis aligned rectangle with its top-left corner at (X, Y).
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Bounds returns the bounding box of the rectangle.
func (r Rectangle) Bounds() Bounds {
	return Bounds{MinX: r.X, MinY: r.Y, MaxX: r.X + r.Width, MaxY: r.Y + r.Height}
}

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Overlaps reports whether the two rectangles share interior area.
func (r Rectangle) Overlaps(o Rectangle) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X && r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}

// Corners returns the top-left, top-right, bottom-right and bottom-left corners.
func (r Rectangle) Corners() []Point {
	return []Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

func (Rectangle) isShape() {}

// Ellipse is the ellipse inscribed in the box with its top-left corner at (X, Y).
type Ellipse struct {
	X, Y          float64
	Width, Height float64
}

// Bounds returns the bounding box of the ellipse.
func (e Ellipse) Bounds() Bounds {
	return Bounds{MinX: e.X, MinY: e.Y, MaxX: e.X + e.Width, MaxY: e.Y + e.Height}
}

// Center returns the center of the ellipse.
func (e Ellipse) Center() Point {
	return Point{X: e.X + e.Width*0.5, Y: e.Y + e.Height*0.5}
}

// Radii returns the horizontal and vertical semi-axes.
func (e Ellipse) Radii() (rx, ry float64) {
	return e.Width * 0.5, e.Height * 0.5
}

// Contains reports whether (x, y) lies inside the ellipse, boundary included.
func (e Ellipse) Contains(x, y float64) bool {
	rx, ry := e.Radii()
	if rx <= 0 || ry <= 0 {
		return false
	}
	c := e.Center()
	dx := (x - c.X) / rx
	dy := (y - c.Y) / ry
	return dx*dx+dy*dy <= 1
}

func (Ellipse) isShape() {}

// Polygon is a closed shape given by its ordered vertices.
// The last point connects back to the first; it must not be repeated.
type Polygon struct {
	Points []Point
}

// Bounds returns the bounding box of the polygon.
func (p Polygon) Bounds() Bounds {
	return boundsOf(p.Points)
}

// Area returns the signed area of the polygon. In screen space (y down)
// a clockwise winding yields a positive value.
func (p Polygon) Area() float64 {
	return signedArea(p.Points)
}

// Contains reports whether (x, y) lies inside the polygon using the even-odd rule.
func (p Polygon) Contains(x, y float64) bool {
	var inside bool
	n := len(p.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Points[i], p.Points[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

func (Polygon) isShape() {}

// Polyline is an open sequence of connected segments, unless Closed is set.
type Polyline struct {
	Points []Point
	Closed bool
}

// Bounds returns the bounding box of the polyline.
func (p Polyline) Bounds() Bounds {
	return boundsOf(p.Points)
}

// Length returns the total length of all segments.
func (p Polyline) Length() float64 {
	var l float64
	for i := 1; i < len(p.Points); i++ {
		l += p.Points[i-1].Dist(p.Points[i])
	}
	if p.Closed && len(p.Points) > 1 {
		l += p.Points[len(p.Points)-1].Dist(p.Points[0])
	}
	return l
}

func (Polyline) isShape() {}

// signedArea computes the shoelace area of a point list.
func signedArea(points []Point) float64 {
	var a float64
	n := len(points)
	for p, q := n-1, 0; q < n; p, q = q, q+1 {
		a += points[p].X*points[q].Y - points[q].X*points[p].Y
	}
	return a * 0.5
}
