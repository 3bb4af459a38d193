package geom

import "math"

// Circle is centered at Center with the given Radius.
type Circle struct {
	Center Point
	Radius float64
}

// CircleIntersection is one of the (up to two) points where a line crosses
// a circle, together with its angle from the circle's center.
type CircleIntersection struct {
	Point Point
	Angle float64
}

// Intersections returns the two points where line crosses c, or ok=false if
// the line misses the circle or is merely tangent to it (tangent points are
// not interesting to the sweep and are deliberately dropped). The returned
// angles are normalized so the first lies in (-pi, pi] and the second in
// [-pi, pi).
func (c Circle) Intersections(line Line) (first, second CircleIntersection, ok bool) {
	perpendicular := line.PerpendicularThrough(c.Center)
	closest, hasClosest := perpendicular.Intersect(line)
	if !hasClosest {
		return CircleIntersection{}, CircleIntersection{}, false
	}

	closestDistance := c.Center.Distance(closest)
	if closestDistance >= c.Radius {
		return CircleIntersection{}, CircleIntersection{}, false
	}

	var angle1, angle2 float64
	if closestDistance > 0.0 {
		perpendicularAngle := math.Atan2(c.Center.Y-closest.Y, c.Center.X-closest.X)
		toPerpendicular := math.Acos(closestDistance / c.Radius)
		angle1 = perpendicularAngle + toPerpendicular
		angle2 = perpendicularAngle - toPerpendicular
	} else {
		// The line passes through the circle's center: fall back to the
		// angle of a non-center point on the line. line.P1 must not be the
		// center itself for this to be well defined.
		if line.P1 == c.Center {
			panic("geom: circle-line intersection through center with anchor at center")
		}
		angle1 = math.Atan2(c.Center.Y-line.P1.Y, c.Center.X-line.P1.X)
		angle2 = angle1 + math.Pi
		if angle2 >= math.Pi {
			angle2 -= 2 * math.Pi
		}
	}

	p1 := Point{
		X: c.Center.X - math.Cos(angle1)*c.Radius,
		Y: c.Center.Y - math.Sin(angle1)*c.Radius,
	}
	// Mirror p1 across the closest point to find the second intersection.
	p2 := Point{
		X: closest.X - (p1.X - closest.X),
		Y: closest.Y - (p1.Y - closest.Y),
	}

	if angle1 > math.Pi {
		angle1 -= 2 * math.Pi
	}
	if angle2 < -math.Pi {
		angle2 += 2 * math.Pi
	}

	first = CircleIntersection{Point: p1, Angle: angle1}
	second = CircleIntersection{Point: p2, Angle: angle2}
	return first, second, true
}
