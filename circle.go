package objshape

import (
	"fmt"
	"math"
)

// Circle is a circle given by its center and radius.
// Circles are compared with exact floating point equality on all three fields.
type Circle struct {
	X, Y   float64
	Radius float64
}

// NewCircle constructs a circle. A negative radius is stored as its absolute value.
func NewCircle(x, y, radius float64) Circle {
	return Circle{X: x, Y: y, Radius: math.Abs(radius)}
}

// NewCircleFromEdge creates a circle in terms of its center and any point on its edge.
func NewCircleFromEdge(center, edge Point) Circle {
	return Circle{X: center.X, Y: center.Y, Radius: center.Dist(edge)}
}

// Center returns the center of the circle.
func (c Circle) Center() Point {
	return Point{X: c.X, Y: c.Y}
}

// WithPosition returns a copy of c moved to (x, y).
func (c Circle) WithPosition(x, y float64) Circle {
	c.X, c.Y = x, y
	return c
}

// WithRadius returns a copy of c with the given radius.
func (c Circle) WithRadius(radius float64) Circle {
	c.Radius = math.Abs(radius)
	return c
}

// Contains reports whether the point (x, y) lies inside the circle.
// Points on the circumference are inside.
func (c Circle) Contains(x, y float64) bool {
	x = c.X - x
	y = c.Y - y
	return x*x+y*y <= c.Radius*c.Radius
}

// ContainsPoint is like Contains but takes a Point.
func (c Circle) ContainsPoint(p Point) bool {
	return c.Contains(p.X, p.Y)
}

// ContainsCircle reports whether o lies entirely within c.
func (c Circle) ContainsCircle(o Circle) bool {
	radiusDiff := c.Radius - o.Radius
	if radiusDiff < 0 {
		// Can't contain a bigger circle.
		return false
	}
	dx := c.X - o.X
	dy := c.Y - o.Y
	dst := dx*dx + dy*dy
	radiusSum := c.Radius + o.Radius

	return !(radiusDiff*radiusDiff < dst) && dst < radiusSum*radiusSum
}

// Overlaps reports whether the two circles share any interior area.
func (c Circle) Overlaps(o Circle) bool {
	dx := c.X - o.X
	dy := c.Y - o.Y
	distance := dx*dx + dy*dy
	radiusSum := c.Radius + o.Radius

	return distance < radiusSum*radiusSum
}

// Circumference returns 2πr.
func (c Circle) Circumference() float64 {
	return c.Radius * 2 * math.Pi
}

// Area returns πr².
func (c Circle) Area() float64 {
	return c.Radius * c.Radius * math.Pi
}

// Equals reports whether both circles have identical center and radius.
func (c Circle) Equals(o Circle) bool {
	return c.X == o.X && c.Y == o.Y && c.Radius == o.Radius
}

// Hash returns a hash over (x, y, radius) consistent with Equals.
func (c Circle) Hash() uint64 {
	const prime = 41
	var result uint64 = 1
	result = prime*result + hashBits(c.Radius)
	result = prime*result + hashBits(c.X)
	result = prime*result + hashBits(c.Y)
	return result
}

// hashBits folds -0 into +0 since the two compare equal.
func hashBits(v float64) uint64 {
	if v == 0 {
		v = 0
	}
	return math.Float64bits(v)
}

// String returns the circle in the form x,y,radius.
func (c Circle) String() string {
	return fmt.Sprintf("%v,%v,%v", c.X, c.Y, c.Radius)
}

// Bounds returns the bounding box of the circle.
func (c Circle) Bounds() Bounds {
	return Bounds{MinX: c.X - c.Radius, MinY: c.Y - c.Radius, MaxX: c.X + c.Radius, MaxY: c.Y + c.Radius}
}

func (Circle) isShape() {}
