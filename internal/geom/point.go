// Package geom provides the small geometry kernel the vision sweep is built
// on: points, infinite lines, and circles, with the intersection routines
// the sweep needs. It knows nothing about walls, origins, or angles in the
// vision-sweep sense — that belongs to package sweep.
package geom

import "math"

// Point is a 2D point. Two Points compare equal (==, and as map keys) only
// on exact floating-point equality of their coordinates, the identity the
// sweep relies on for endpoint interning. This is not bit-pattern equality:
// +0 and -0 compare equal, and a NaN coordinate equals nothing.
type Point struct {
	X, Y float64
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// SameAs reports whether p and other are within epsilon of each other in
// both coordinates. Used where exact bit-pattern equality is too strict
// (comparing a freshly computed intersection against a stored vertex).
func (p Point) SameAs(other Point, epsilon float64) bool {
	return math.Abs(p.X-other.X) < epsilon && math.Abs(p.Y-other.Y) < epsilon
}
