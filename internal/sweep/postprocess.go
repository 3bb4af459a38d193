package sweep

import (
	"math"

	"github.com/Garsondee/vision-sweep/internal/geom"
)

// circleEdgeCrossing returns the point where segment [a, b] crosses
// circle's boundary, preferring whichever of the circle's (up to two)
// intersections with the infinite line through a, b actually lies on the
// segment.
func circleEdgeCrossing(circle geom.Circle, a, b geom.Point) (geom.Point, bool) {
	if a == b {
		return geom.Point{}, false
	}
	line := geom.LineThroughPoints(a, b)
	p1, p2, ok := circle.Intersections(line)
	if !ok {
		return geom.Point{}, false
	}
	if onSegmentEps(p1.Point, a, b, 1e-6) {
		return p1.Point, true
	}
	if onSegmentEps(p2.Point, a, b, 1e-6) {
		return p2.Point, true
	}
	return geom.Point{}, false
}

// clampToCircle projects the point at angle onto circle's boundary.
func clampToCircle(circle geom.Circle, angle float64) geom.Point {
	return geom.Point{
		X: circle.Center.X + circle.Radius*math.Cos(angle),
		Y: circle.Center.Y + circle.Radius*math.Sin(angle),
	}
}

// calculateFov clips the raw line-of-sight vertex sequence to circle,
// inserting a boundary vertex wherever an edge crosses from inside the
// circle to outside (or vice versa), and projecting any vertex whose
// whole edge lies outside the circle straight onto the boundary at its own
// angle. Vertices pulled onto the boundary are marked Gap so fillGaps
// knows to bridge them with an arc.
func calculateFov(points []FovPoint, circle geom.Circle) []FovPoint {
	if len(points) == 0 {
		return points
	}
	n := len(points)
	out := make([]FovPoint, 0, n+4)

	for i := 0; i < n; i++ {
		curr := points[i]
		prev := points[(i-1+n)%n]

		currIn := circle.Center.Distance(curr.Point) <= circle.Radius
		prevIn := circle.Center.Distance(prev.Point) <= circle.Radius

		if !prevIn && currIn {
			if cp, ok := circleEdgeCrossing(circle, prev.Point, curr.Point); ok {
				out = append(out, FovPoint{Point: cp, Angle: angleAt(circle.Center, cp)})
			}
		}

		switch {
		case currIn:
			out = append(out, curr)
		case prevIn:
			if cp, ok := circleEdgeCrossing(circle, prev.Point, curr.Point); ok {
				out = append(out, FovPoint{Point: cp, Angle: angleAt(circle.Center, cp), Gap: true})
			} else {
				out = append(out, FovPoint{Point: clampToCircle(circle, curr.Angle), Angle: curr.Angle, Gap: true})
			}
		default:
			out = append(out, FovPoint{Point: clampToCircle(circle, curr.Angle), Angle: curr.Angle, Gap: true})
		}
	}
	return out
}
