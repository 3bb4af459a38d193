package geom

import "math"

// parallelEpsilon is the slope-difference threshold below which two lines
// are treated as parallel (no intersection). Distinct on purpose from the
// sweep's own distance tie epsilon (1e-4).
const parallelEpsilon = 5e-8

// Line is an infinite line in slope-intercept form, y = M*x + B, anchored at
// P1 (the point it was constructed from or through). Vertical lines carry
// M = +Inf or -Inf (the sign depends on the order of the points) and ignore
// B; use P1.X as the vertical line's x coordinate.
type Line struct {
	M, B float64
	P1   Point
}

// NewLine builds a line directly from slope, intercept, and anchor.
func NewLine(m, b float64, p1 Point) Line {
	return Line{M: m, B: b, P1: p1}
}

// LineThroughPoints builds the infinite line through p1 and p2.
func LineThroughPoints(p1, p2 Point) Line {
	m := (p1.Y - p2.Y) / (p1.X - p2.X)
	b := p1.Y - m*p1.X
	return Line{M: m, B: b, P1: p1}
}

// LineFromPointAndAngle builds the infinite line through p1 heading along
// angle (radians, same convention as the sweep: 0 = +X axis).
func LineFromPointAndAngle(p1 Point, angle float64) Line {
	p2 := Point{X: p1.X - math.Cos(angle), Y: p1.Y - math.Sin(angle)}
	return LineThroughPoints(p1, p2)
}

// IsVertical reports whether the line has infinite slope.
func (l Line) IsVertical() bool {
	return math.IsInf(l.M, 0)
}

// IsHorizontal reports whether the line has zero slope.
func (l Line) IsHorizontal() bool {
	return l.M == 0
}

// CalcY evaluates the line at x. Undefined (NaN/Inf) for vertical lines.
func (l Line) CalcY(x float64) float64 {
	return l.M*x + l.B
}

// CalcX evaluates the line at y, inverted. Undefined for horizontal lines.
func (l Line) CalcX(y float64) float64 {
	return (y - l.B) / l.M
}

// pointFromX builds the point (x, l.CalcY(x)).
func pointFromX(l Line, x float64) Point {
	return Point{X: x, Y: l.CalcY(x)}
}

// Intersect returns the intersection of l and other, or ok=false if the
// lines are parallel (including both-vertical).
func (l Line) Intersect(other Line) (Point, bool) {
	if l.IsVertical() && other.IsVertical() {
		return Point{}, false
	}
	if math.Abs(l.M-other.M) < parallelEpsilon {
		return Point{}, false
	}
	if l.IsVertical() || other.IsVertical() {
		vertical, regular := l, other
		if !l.IsVertical() {
			vertical, regular = other, l
		}
		return pointFromX(regular, vertical.P1.X), true
	}
	// x*m1 + b1 = x*m2 + b2  =>  x = (b1 - b2) / (m2 - m1)
	x := (l.B - other.B) / (other.M - l.M)
	if math.Abs(l.M) < math.Abs(other.M) {
		return pointFromX(l, x), true
	}
	return pointFromX(other, x), true
}

// PerpendicularThrough returns the line through p perpendicular to l.
func (l Line) PerpendicularThrough(p Point) Line {
	m := -1.0 / l.M
	b := p.Y - m*p.X
	return Line{M: m, B: b, P1: p}
}
