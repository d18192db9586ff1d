package objshape

import (
	"errors"
	"math"
	"testing"
)

func regularPolygon(n int, r float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return pts
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func triangleArea(a, b, c Point) float64 {
	return math.Abs((b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X)) * 0.5
}

func TestTriangulateConvexPolygons(t *testing.T) {
	for n := 3; n <= 12; n++ {
		for _, pts := range [][]Point{regularPolygon(n, 10), reversed(regularPolygon(n, 10))} {
			indices, err := Triangulate(pts)
			if err != nil {
				t.Fatalf("n=%d: unexpected error: %v", n, err)
			}
			if len(indices) != 3*(n-2) {
				t.Fatalf("n=%d: got %d indices, want %d", n, len(indices), 3*(n-2))
			}

			seen := make(map[int]bool)
			for _, idx := range indices {
				if idx < 0 || idx >= n {
					t.Fatalf("n=%d: index %d out of range", n, idx)
				}
				seen[idx] = true
			}
			if len(seen) != n {
				t.Fatalf("n=%d: only %d of the vertices are referenced", n, len(seen))
			}
		}
	}
}

func TestTriangulateConcavePolygonCoversArea(t *testing.T) {
	pts := []Point{{0, 0}, {4, 0}, {4, 4}, {2, 2}, {0, 4}}
	indices, err := Triangulate(pts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(indices) != 9 {
		t.Fatalf("got %d indices, want 9", len(indices))
	}

	var sum float64
	for i := 0; i < len(indices); i += 3 {
		sum += triangleArea(pts[indices[i]], pts[indices[i+1]], pts[indices[i+2]])
	}
	if want := math.Abs(signedArea(pts)); math.Abs(sum-want) > 1e-9 {
		t.Fatalf("triangles cover %v, polygon area is %v", sum, want)
	}
}

func TestTriangulateTooFewPoints(t *testing.T) {
	for _, pts := range [][]Point{nil, {{0, 0}}, {{0, 0}, {1, 1}}} {
		if _, err := Triangulate(pts); !errors.Is(err, ErrInvalidGeometry) {
			t.Fatalf("Triangulate(%v) error = %v, want ErrInvalidGeometry", pts, err)
		}
	}
}

func TestTriangulateDegenerateInputTerminates(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	tr := (&Triangulator{}).Init(pts).Process()

	if got := len(tr.Indices()); got != 6 {
		t.Fatalf("got %d indices for collinear input, want 6", got)
	}
	if tr.Degenerate() == 0 {
		t.Fatal("expected collinear input to report degenerate triangles")
	}
}
