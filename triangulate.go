package objshape

import (
	"fmt"
	"log/slog"
)

// epsilon is the smallest doubled triangle area accepted as an ear.
const epsilon = 1e-10

// Triangulator decomposes a simple polygon into triangles by ear clipping.
// The output indices reference the input points, three per triangle.
//
// Usage mirrors the builder style of the rest of the package:
//
//	indices := (&Triangulator{}).Init(points).Process().Indices()
//
// Self-intersecting input is not validated. When no valid ear can be found
// (collinear, duplicated or crossing vertices) the current candidate is clipped
// anyway, so the result always has 3·(n−2) indices.
type Triangulator struct {
	points     []Point
	indices    []int
	ears       []int
	degenerate int
}

// Init resets the triangulator with a new polygon contour.
func (t *Triangulator) Init(points []Point) *Triangulator {
	t.points = points
	t.indices = nil
	t.ears = nil
	t.degenerate = 0

	return t
}

// Process runs the ear clipping over the contour given to Init.
func (t *Triangulator) Process() *Triangulator {
	n := len(t.points)
	if n < 3 {
		return t
	}

	// Keep a counter-clockwise working order (in y-up terms) of vertex indices.
	v := make([]int, n)
	if signedArea(t.points) > 0 {
		for i := range v {
			v[i] = i
		}
	} else {
		for i := range v {
			v[i] = n - 1 - i
		}
	}

	t.indices = make([]int, 0, 3*(n-2))
	nv := n
	count := 2 * nv

	for cur := nv - 1; nv > 2; {
		forced := false
		if count <= 0 {
			// No ear found in a full sweep: probably a non-simple polygon.
			forced = true
		}
		count--

		u := cur
		if nv <= u {
			u = 0
		}
		cur = u + 1
		if nv <= cur {
			cur = 0
		}
		w := cur + 1
		if nv <= w {
			w = 0
		}

		if forced || t.snip(u, cur, w, nv, v) {
			if forced {
				t.degenerate++
			}
			t.indices = append(t.indices, v[u], v[cur], v[w])
			t.ears = append(t.ears, v[cur])

			// Remove the ear tip from the working list.
			copy(v[cur:], v[cur+1:nv])
			nv--
			count = 2 * nv
		}
	}

	if t.degenerate > 0 {
		Logger().Warn("polygon triangulated with degenerate ears",
			slog.Int("points", n),
			slog.Int("forced", t.degenerate),
		)
	}
	return t
}

// Indices returns the flat triangle index list.
func (t *Triangulator) Indices() []int {
	return t.indices
}

// Degenerate returns the number of triangles clipped without a valid ear.
func (t *Triangulator) Degenerate() int {
	return t.degenerate
}

// snip reports whether the triangle u,v,w of the working list is an ear:
// convex, with a non-zero area and no other vertex inside it.
func (t *Triangulator) snip(u, v, w, n int, list []int) bool {
	a := t.points[list[u]]
	b := t.points[list[v]]
	c := t.points[list[w]]

	if epsilon > (b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X) {
		return false
	}
	for p := 0; p < n; p++ {
		if p == u || p == v || p == w {
			continue
		}
		if insideTriangle(a, b, c, t.points[list[p]]) {
			return false
		}
	}
	return true
}

// insideTriangle reports whether p lies inside the counter-clockwise
// triangle a,b,c, edges included.
func insideTriangle(a, b, c, p Point) bool {
	ax, ay := c.X-b.X, c.Y-b.Y
	bx, by := a.X-c.X, a.Y-c.Y
	cx, cy := b.X-a.X, b.Y-a.Y
	apx, apy := p.X-a.X, p.Y-a.Y
	bpx, bpy := p.X-b.X, p.Y-b.Y
	cpx, cpy := p.X-c.X, p.Y-c.Y

	aCROSSbp := ax*bpy - ay*bpx
	cCROSSap := cx*apy - cy*apx
	bCROSScp := bx*cpy - by*cpx

	return aCROSSbp >= 0 && bCROSScp >= 0 && cCROSSap >= 0
}

// Triangulate returns the triangle indices of a simple polygon.
// It fails with ErrInvalidGeometry when fewer than three points are given.
func Triangulate(points []Point) ([]int, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 points, got %d", ErrInvalidGeometry, len(points))
	}
	return (&Triangulator{}).Init(points).Process().Indices(), nil
}
