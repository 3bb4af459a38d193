package sweep

import (
	"math"

	"github.com/Garsondee/vision-sweep/internal/geom"
)

// segment is a clipped wall fragment in point space, still unresolved to a
// wall index.
type segment struct {
	P1, P2 geom.Point
}

// angleAt returns the angle of p as seen from origin, in (-pi, pi].
func angleAt(origin, p geom.Point) float64 {
	return math.Atan2(p.Y-origin.Y, p.X-origin.X)
}

// continuousSpan returns a1 = angleAt(origin, p1) and a companion a2 for
// p2 such that the straight walk of angle from a1 to a2 as a point travels
// along the segment p1->p2 is continuous (no artificial jump at the
// +/-pi seam). It does this by checking whether the ray at angle pi
// (equivalently -pi) crosses the segment; if it does, a2 is shifted by a
// full turn so the numeric interval [a1, a2] (or [a2, a1]) reflects the
// true monotonic angular sweep.
func continuousSpan(origin, p1, p2 geom.Point) (a1, a2 float64) {
	a1 = angleAt(origin, p1)
	a2 = angleAt(origin, p2)

	segLine := geom.LineThroughPoints(p1, p2)
	if segLine.IsVertical() && p1.X == origin.X {
		// Degenerate: wall collinear with the seam ray's vertical anchor
		// case is astronomically unlikely with real scene data; treat as
		// not seam-crossing and fall through to the ordinary case.
		return a1, a2
	}

	seamRay := geom.LineFromPointAndAngle(origin, math.Pi)
	cross, ok := seamRay.Intersect(segLine)
	if !ok {
		return a1, a2
	}
	if !onSegment(cross, p1, p2) {
		return a1, a2
	}
	if !sameDirection(origin, cross, math.Pi) {
		return a1, a2
	}

	// The segment crosses the seam: whichever of a2-2pi, a2, a2+2pi lands
	// closest to a1 is the continuous companion (the true angular span of
	// a real wall, as seen from outside it, is always well under a full
	// turn).
	best := a2
	bestDist := math.Abs(a2 - a1)
	for _, cand := range [2]float64{a2 - 2*math.Pi, a2 + 2*math.Pi} {
		if d := math.Abs(cand - a1); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return a1, best
}

// onSegment reports whether p lies on the closed segment [p1, p2],
// assuming p is already known to be collinear with it.
func onSegment(p, p1, p2 geom.Point) bool {
	return between(p.X, p1.X, p2.X) && between(p.Y, p1.Y, p2.Y)
}

// sameDirection reports whether point p lies on the ray from origin at
// angle (as opposed to the opposite ray).
func sameDirection(origin, p geom.Point, angle float64) bool {
	dx, dy := math.Cos(angle), math.Sin(angle)
	return (p.X-origin.X)*dx+(p.Y-origin.Y)*dy > 0
}

// pointAtAngle returns the point where the ray from origin at angle meets
// wallLine.
func pointAtAngle(origin geom.Point, wallLine geom.Line, angle float64) (geom.Point, bool) {
	ray := geom.LineFromPointAndAngle(origin, angle)
	return ray.Intersect(wallLine)
}

// wedgeInterval returns the wedge's angular span normalized to a single
// [lo, hi] interval with hi - lo in (0, 2*pi]. A non-straddling wedge
// (Start <= End) is [Start, End]; a straddling one is [Start, End+2*pi].
func wedgeInterval(va VisionAngle) (lo, hi float64) {
	if va.Start <= va.End {
		return va.Start, va.End
	}
	return va.Start, va.End + 2*math.Pi
}

// ClipWallToWedge restricts wall segment [p1, p2] (as seen from origin) to
// the visible span of va. There are four cases: the wall may be entirely
// outside the wedge (rejected),
// entirely inside (kept unchanged), partly outside on one end (shortened),
// or — when the wedge itself straddles the +/-pi seam and the wall's
// angular span crosses back into view on the far side — split into two
// disjoint visible fragments.
func ClipWallToWedge(va VisionAngle, origin geom.Point, p1, p2 geom.Point) []segment {
	a1, a2 := continuousSpan(origin, p1, p2)
	segLo, segHi := a1, a2
	ptLo, ptHi := p1, p2
	if segLo > segHi {
		segLo, segHi = segHi, segLo
		ptLo, ptHi = ptHi, ptLo
	}

	wedgeLo, wedgeHi := wedgeInterval(va)
	wallLine := geom.LineThroughPoints(p1, p2)

	var out []segment
	for k := -1; k <= 1; k++ {
		lo := wedgeLo + 2*math.Pi*float64(k)
		hi := wedgeHi + 2*math.Pi*float64(k)

		overlapLo := math.Max(lo, segLo)
		overlapHi := math.Min(hi, segHi)
		if overlapLo >= overlapHi {
			continue
		}

		start := ptLo
		if overlapLo > segLo+1e-9 {
			if p, ok := pointAtAngle(origin, wallLine, overlapLo); ok {
				start = p
			}
		}
		end := ptHi
		if overlapHi < segHi-1e-9 {
			if p, ok := pointAtAngle(origin, wallLine, overlapHi); ok {
				end = p
			}
		}
		out = append(out, segment{P1: start, P2: end})
	}
	return out
}
