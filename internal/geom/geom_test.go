package geom

import (
	"math"
	"testing"
)

func TestLineThroughPoints_Horizontal(t *testing.T) {
	l := LineThroughPoints(NewPoint(0, 5), NewPoint(10, 5))
	if !l.IsHorizontal() {
		t.Fatal("expected horizontal line")
	}
	if got := l.CalcY(100); got != 5 {
		t.Fatalf("CalcY(100) = %v, want 5", got)
	}
}

func TestLineThroughPoints_Vertical(t *testing.T) {
	l := LineThroughPoints(NewPoint(3, 0), NewPoint(3, 10))
	if !l.IsVertical() {
		t.Fatal("expected vertical line")
	}
}

func TestIntersect_BothVertical_NoIntersection(t *testing.T) {
	a := LineThroughPoints(NewPoint(1, 0), NewPoint(1, 5))
	b := LineThroughPoints(NewPoint(2, 0), NewPoint(2, 5))
	if _, ok := a.Intersect(b); ok {
		t.Fatal("two vertical lines should never intersect")
	}
}

func TestIntersect_Parallel_NoIntersection(t *testing.T) {
	a := LineThroughPoints(NewPoint(0, 0), NewPoint(10, 10))
	b := LineThroughPoints(NewPoint(0, 1), NewPoint(10, 11))
	if _, ok := a.Intersect(b); ok {
		t.Fatal("parallel lines should never intersect")
	}
}

func TestIntersect_OneVertical(t *testing.T) {
	vertical := LineThroughPoints(NewPoint(5, 0), NewPoint(5, 10))
	horizontal := LineThroughPoints(NewPoint(0, 3), NewPoint(10, 3))
	p, ok := vertical.Intersect(horizontal)
	if !ok {
		t.Fatal("expected intersection")
	}
	if p.X != 5 || p.Y != 3 {
		t.Fatalf("got %+v, want (5,3)", p)
	}
}

func TestIntersect_GeneralCase(t *testing.T) {
	a := LineThroughPoints(NewPoint(0, 0), NewPoint(10, 10)) // y = x
	b := LineThroughPoints(NewPoint(0, 10), NewPoint(10, 0)) // y = -x + 10
	p, ok := a.Intersect(b)
	if !ok {
		t.Fatal("expected intersection")
	}
	if math.Abs(p.X-5) > 1e-9 || math.Abs(p.Y-5) > 1e-9 {
		t.Fatalf("got %+v, want (5,5)", p)
	}
}

func TestCircleIntersections_Miss(t *testing.T) {
	c := Circle{Center: NewPoint(0, 0), Radius: 1}
	line := LineThroughPoints(NewPoint(-10, 5), NewPoint(10, 5))
	if _, _, ok := c.Intersections(line); ok {
		t.Fatal("line far from circle should not intersect")
	}
}

func TestCircleIntersections_ThroughCenter(t *testing.T) {
	c := Circle{Center: NewPoint(0, 0), Radius: 5}
	line := LineThroughPoints(NewPoint(-10, 0), NewPoint(10, 0))
	a, b, ok := c.Intersections(line)
	if !ok {
		t.Fatal("expected two intersections")
	}
	if math.Abs(a.Point.Distance(c.Center)-5) > 1e-9 {
		t.Fatalf("intersection %+v not on circle", a)
	}
	if math.Abs(b.Point.Distance(c.Center)-5) > 1e-9 {
		t.Fatalf("intersection %+v not on circle", b)
	}
}

func TestCircleIntersections_OffsetChord(t *testing.T) {
	c := Circle{Center: NewPoint(0, 0), Radius: 10}
	line := LineThroughPoints(NewPoint(-20, 6), NewPoint(20, 6))
	a, b, ok := c.Intersections(line)
	if !ok {
		t.Fatal("expected two intersections")
	}
	for _, pt := range []Point{a.Point, b.Point} {
		if math.Abs(pt.Distance(c.Center)-10) > 1e-9 {
			t.Fatalf("intersection %+v not on circle boundary", pt)
		}
		if math.Abs(pt.Y-6) > 1e-9 {
			t.Fatalf("intersection %+v not on chord line", pt)
		}
	}
	if a.Angle > math.Pi || a.Angle <= -math.Pi {
		t.Fatalf("first angle %v not normalized to (-pi, pi]", a.Angle)
	}
}

func TestPerpendicularThrough(t *testing.T) {
	l := LineThroughPoints(NewPoint(0, 0), NewPoint(10, 0)) // horizontal
	perp := l.PerpendicularThrough(NewPoint(3, 3))
	if !perp.IsVertical() {
		t.Fatalf("perpendicular of horizontal line should be vertical, got m=%v", perp.M)
	}
}
