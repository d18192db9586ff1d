package objshape

import "math"

// Point holds a 2d coordinate value. X increases to the right and
// Y increases down, following the map (screen space) convention.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist2 returns the squared distance between p and q.
func (p Point) Dist2(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Sqrt(p.Dist2(q))
}

// FlipY mirrors the point over the x axis, converting between
// screen space (y down) and world space (y up).
func (p Point) FlipY() Point {
	return Point{X: p.X, Y: -p.Y}
}

// Bounds is an axis aligned bounding box.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Dx returns the width of the box.
func (b Bounds) Dx() float64 { return b.MaxX - b.MinX }

// Dy returns the height of the box.
func (b Bounds) Dy() float64 { return b.MaxY - b.MinY }

// boundsOf accumulates the bounding box of a point list.
func boundsOf(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		b.MinX = Min(b.MinX, p.X)
		b.MinY = Min(b.MinY, p.Y)
		b.MaxX = Max(b.MaxX, p.X)
		b.MaxY = Max(b.MaxY, p.Y)
	}
	return b
}
