package objshape

import (
	"math"
	"testing"
)

func TestCircleOverlapsIsSymmetric(t *testing.T) {
	circles := []Circle{
		{X: 0, Y: 0, Radius: 5},
		{X: 3, Y: 4, Radius: 1},
		{X: 10, Y: 0, Radius: 5},
		{X: -7, Y: 2, Radius: 0},
		{X: 1, Y: 1, Radius: 20},
	}
	for _, a := range circles {
		for _, b := range circles {
			if a.Overlaps(b) != b.Overlaps(a) {
				t.Fatalf("overlap not symmetric for %v and %v", a, b)
			}
		}
	}
}

func TestCircleOverlapsTouchingIsFalse(t *testing.T) {
	a := Circle{X: 0, Y: 0, Radius: 5}
	b := Circle{X: 10, Y: 0, Radius: 5}
	if a.Overlaps(b) {
		t.Fatalf("touching circles %v and %v should not overlap", a, b)
	}
	if !a.Overlaps(b.WithPosition(9.5, 0)) {
		t.Fatalf("expected %v to overlap %v", a, b.WithPosition(9.5, 0))
	}
}

func TestCircleEqualContainsItself(t *testing.T) {
	a := NewCircle(2, 3, 4)
	b := Circle{X: 2, Y: 3, Radius: 4}

	if !a.Equals(b) {
		t.Fatalf("expected %v to equal %v", a, b)
	}
	if !a.ContainsCircle(b) {
		t.Fatalf("expected %v to contain %v", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("equal circles must hash equally: %d != %d", a.Hash(), b.Hash())
	}
	if a.Equals(b.WithRadius(4.0000001)) {
		t.Fatal("equality must be exact")
	}
}

func TestCircleContainsPointBoundaryInclusive(t *testing.T) {
	c := Circle{X: 0, Y: 0, Radius: 5}

	if !c.Contains(1, 1) {
		t.Fatal("expected interior point to be contained")
	}
	if !c.Contains(3, 4) {
		t.Fatal("expected point on the circumference to be contained")
	}
	if !c.ContainsPoint(Pt(-5, 0)) {
		t.Fatal("expected point on the circumference to be contained")
	}
	if c.Contains(4, 4) {
		t.Fatal("expected exterior point to be rejected")
	}
}

func TestCircleContainsCircle(t *testing.T) {
	big := Circle{X: 0, Y: 0, Radius: 10}

	tests := []struct {
		name  string
		other Circle
		want  bool
	}{
		{"inside", Circle{X: 2, Y: 0, Radius: 3}, true},
		{"crossing the edge", Circle{X: 8, Y: 0, Radius: 3}, false},
		{"outside", Circle{X: 30, Y: 0, Radius: 3}, false},
		{"bigger", Circle{X: 0, Y: 0, Radius: 11}, false},
		{"internally tangent", Circle{X: 7, Y: 0, Radius: 3}, true},
	}
	for _, tt := range tests {
		if got := big.ContainsCircle(tt.other); got != tt.want {
			t.Errorf("%s: ContainsCircle(%v) = %v, want %v", tt.name, tt.other, got, tt.want)
		}
	}
}

func TestCircleMeasures(t *testing.T) {
	c := NewCircleFromEdge(Pt(0, 0), Pt(3, 4))
	if c.Radius != 5 {
		t.Fatalf("radius from edge = %v, want 5", c.Radius)
	}
	if got, want := c.Circumference(), 10*math.Pi; math.Abs(got-want) > 1e-12 {
		t.Fatalf("circumference = %v, want %v", got, want)
	}
	if got, want := c.Area(), 25*math.Pi; math.Abs(got-want) > 1e-12 {
		t.Fatalf("area = %v, want %v", got, want)
	}
	if got := NewCircle(1, 2, -3).String(); got != "1,2,3" {
		t.Fatalf("String() = %q, want %q", got, "1,2,3")
	}
}

func TestCircleHashSignedZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	a := Circle{}
	b := Circle{X: negZero, Y: negZero, Radius: negZero}

	if !a.Equals(b) {
		t.Fatal("expected circles with signed zeros to be equal")
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("equal circles must hash equally: %d != %d", a.Hash(), b.Hash())
	}
}
