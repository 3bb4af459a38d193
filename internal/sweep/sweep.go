package sweep

import (
	"math"
	"sort"

	"github.com/Garsondee/vision-sweep/internal/geom"
)

// tieEpsilon is the distance tolerance below which two candidate wall hits
// along the same ray are treated as equidistant; the tiebreaker then
// favors whichever wall's far endpoint comes first angularly, falling back
// to insertion order for genuinely indistinguishable ties (see DESIGN.md).
const tieEpsilon = 1e-4

// onSegmentEps is onSegment with slack, needed because wedge-clipped
// endpoints can be a few ULPs off the true boundary.
func onSegmentEps(p, p1, p2 geom.Point, eps float64) bool {
	return p.X >= math.Min(p1.X, p2.X)-eps && p.X <= math.Max(p1.X, p2.X)+eps &&
		p.Y >= math.Min(p1.Y, p2.Y)-eps && p.Y <= math.Max(p1.Y, p2.Y)+eps
}

// wallBlocksFromAngle reports whether w blocks a ray arriving at angle,
// honoring its Direction restriction. BOTH always blocks. For LEFT/RIGHT,
// the wall blocks only when the ray approaches from the named side of the
// P1->P2 direction, determined by the sign of the cross product between
// the wall's direction vector and the ray's direction vector.
func wallBlocksFromAngle(w wallRec, origin geom.Point, angle float64) bool {
	if w.direction == DirBoth {
		return true
	}
	dx := w.p2.X - w.p1.X
	dy := w.p2.Y - w.p1.Y
	rayDx, rayDy := math.Cos(angle), math.Sin(angle)
	cross := dx*rayDy - dy*rayDx
	if w.direction == DirLeft {
		return cross > 0
	}
	return cross < 0
}

// closestWall is one candidate hit along a ray: idx == -1 is the "nothing
// hit" sentinel.
type closestWall struct {
	idx  int
	hit  geom.Point
	dist float64
}

func (c closestWall) valid() bool { return c.idx != -1 }

var noClosest = closestWall{idx: -1}

// candidateIter abstracts over "every wall currently in the active set" and
// "just this slice of walls" (the tiebreaker's restricted re-scan).
type candidateIter func(func(int) bool)

func sliceIter(ids []int) candidateIter {
	return func(fn func(int) bool) {
		for _, id := range ids {
			if !fn(id) {
				return
			}
		}
	}
}

// scanClosest walks iter once, computing each blocking candidate's distance
// along the ray from origin at angle, and sorts candidates into a winner, a
// runner-up, and (unless isTiebreaker) the sets of walls tied with each at
// tieEpsilon. isTiebreaker disables tie accumulation because the
// tiebreaker's own re-scan is meant to produce a single decisive answer,
// not another tie to resolve.
func scanClosest(walls []wallRec, origin geom.Point, angle float64, iter candidateIter, isTiebreaker bool) (best, second closestWall, ties, secondTies []int) {
	best, second = noClosest, noClosest
	ray := geom.LineFromPointAndAngle(origin, angle)

	iter(func(idx int) bool {
		w := walls[idx]
		if !wallBlocksFromAngle(w, origin, angle) {
			return true
		}
		p, intersects := ray.Intersect(w.line)
		if !intersects || !sameDirection(origin, p, angle) || !onSegmentEps(p, w.p1, w.p2, 1e-7) {
			return true
		}
		d := origin.Distance(p)
		cand := closestWall{idx: idx, hit: p, dist: d}

		switch {
		case !best.valid():
			best = cand
		case math.Abs(d-best.dist) < tieEpsilon:
			if !isTiebreaker {
				ties = append(ties, idx)
			}
		case d < best.dist:
			second = best
			secondTies = ties
			ties = nil
			best = cand
		case second.valid() && math.Abs(d-second.dist) < tieEpsilon:
			if !isTiebreaker {
				secondTies = append(secondTies, idx)
			}
		case second.valid() && d < second.dist:
			second = cand
			secondTies = nil
		case !second.valid():
			second = cand
		}
		return true
	})

	return best, second, ties, secondTies
}

// tiebreak picks, among ties, whichever wall's far endpoint comes first
// angularly (ccw from origin's current sweep angle), falling back to
// insertion order in the active set when two walls' far endpoints are
// angularly indistinguishable. It then re-scans only ties, from a ray aimed
// at the winner's far endpoint, so the final answer reflects an actual
// intersection rather than just the tiebreak criterion itself.
func tiebreak(set *activeSet, walls []wallRec, origin geom.Point, ties []int) closestWall {
	winner := ties[0]
	for _, idx := range ties[1:] {
		switch {
		case isSmallerRelative(walls[idx].endAngle, walls[winner].endAngle):
			winner = idx
		case isSmallerRelative(walls[winner].endAngle, walls[idx].endAngle):
			// winner remains strictly earlier; nothing to do.
		case set.insertedBefore(idx, winner):
			winner = idx
		}
	}

	rayAngle := angleAt(origin, walls[winner].endPoint)
	best, _, _, _ := scanClosest(walls, origin, rayAngle, sliceIter(ties), true)
	return best
}

// findClosestWall casts a ray from origin at angle through the active set,
// resolving exact ties by far-endpoint angle (tiebreak) and replacing a
// LIMITED-sense winner with the next-closest wall, since a LIMITED wall
// lets sight continue past it rather than terminating the ray (spec §3,
// §4.5).
func findClosestWall(set *activeSet, walls []wallRec, origin geom.Point, angle float64) closestWall {
	best, second, ties, secondTies := scanClosest(walls, origin, angle, set.ascend, false)
	return resolveClosest(set, walls, origin, best, second, ties, secondTies)
}

func resolveClosest(set *activeSet, walls []wallRec, origin geom.Point, best, second closestWall, ties, secondTies []int) closestWall {
	if len(ties) > 0 {
		ties = append(ties, best.idx)
		best = tiebreak(set, walls, origin, ties)
	}

	if best.valid() && walls[best.idx].sense == SenseLimited {
		switch {
		case len(ties) > 0:
			remainder := make([]int, 0, len(ties))
			for _, idx := range ties {
				if idx != best.idx {
					remainder = append(remainder, idx)
				}
			}
			if len(remainder) > 0 {
				best = tiebreak(set, walls, origin, remainder)
			} else {
				best = second
			}
		case len(secondTies) > 0:
			best = second
			if best.valid() {
				secondTies = append(secondTies, best.idx)
				best = tiebreak(set, walls, origin, secondTies)
			}
		default:
			best = second
		}
	}

	return best
}

// occluded reports whether candidate, a wall just becoming active, is
// already fully hidden behind the current closest wall and so need not be
// inserted into the active set at all (spec §4.5 step 2). A LIMITED
// closest never fully hides anything behind it. Otherwise candidate is
// occluded only if its far endpoint comes angularly before closest's (so
// candidate ends while closest still covers the ray), the two
// walls' segments do not actually cross (so candidate never steps back in
// front), and candidate's far endpoint is farther from origin than
// closest's.
func occluded(origin geom.Point, candidate, closest wallRec) bool {
	if closest.sense == SenseLimited {
		return false
	}
	if !isSmallerRelative(candidate.endAngle, closest.endAngle) {
		return false
	}
	a := segmentLine{candidate.p1, candidate.p2, candidate.line}
	b := segmentLine{closest.p1, closest.p2, closest.line}
	if _, ok := strictIntersection(a, b); ok {
		return false
	}
	return squaredDist(origin, candidate.endPoint) > squaredDist(origin, closest.endPoint)
}

func squaredDist(a, b geom.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// calculateLOS is the core event-driven sweep: it walks the arena's
// endpoints in angular order, maintaining the active-wall set and a single
// persistent notion of "the current closest wall", and emits a
// line-of-sight vertex whenever that notion changes. startGapLOS is true
// when the ray at the sweep's starting angle hits no wall at all;
// startGapFOV is also true when that hit lies at or beyond radius, since a
// wall beyond radius does not bound the field-of-view polygon.
func calculateLOS(a *arena, radius float64) (points []FovPoint, startGapLOS, startGapFOV bool) {
	set := newActiveSet()

	initial := append([]int(nil), a.initialActive...)
	sort.Ints(initial)
	for _, w := range initial {
		set.insert(w)
	}

	closest := findClosestWall(set, a.walls, a.origin, a.sweepStart)
	startGapLOS = !closest.valid()
	startGapFOV = !closest.valid() || closest.dist >= radius

	endpoints := append([]endpointRec(nil), a.endpoints...)
	sort.Slice(endpoints, func(i, j int) bool { return endpoints[i].angle < endpoints[j].angle })

	for epIdx, ep := range endpoints {
		closestCouldChange := ep.isIntersection

		for _, w := range ep.ends {
			set.remove(w)
			closestCouldChange = true
		}

		for _, w := range ep.stars {
			wr := a.walls[w]
			if !wallBlocksFromAngle(wr, a.origin, ep.angle) {
				continue
			}
			if closest.valid() && occluded(a.origin, wr, a.walls[closest.idx]) {
				continue
			}
			set.insert(w)
			closestCouldChange = true
		}

		// Several walls can share an exact angle (a T-junction, or two
		// clipped fragments meeting at the wedge boundary). Defer
		// emission until the last endpoint at this angle has applied its
		// inserts/removes, but make sure that final endpoint still
		// recomputes even if it itself inserted/removed nothing.
		if epIdx+1 < len(endpoints) && endpoints[epIdx+1].angle == ep.angle {
			continue
		}
		if epIdx > 0 && endpoints[epIdx-1].angle == ep.angle {
			closestCouldChange = true
		}

		if !closestCouldChange {
			continue
		}

		newClosest := findClosestWall(set, a.walls, a.origin, ep.angle)
		if newClosest.idx == closest.idx {
			continue
		}

		if closest.valid() {
			ray := geom.LineFromPointAndAngle(a.origin, ep.angle)
			if oldHit, ok := ray.Intersect(a.walls[closest.idx].line); ok {
				if !newClosest.valid() || oldHit != newClosest.hit {
					points = append(points, FovPoint{Point: oldHit, Angle: ep.angle})
				}
			}
		}
		if newClosest.valid() {
			points = append(points, FovPoint{Point: newClosest.hit, Angle: ep.angle})
		} else if len(points) > 0 {
			points[len(points)-1].Gap = true
		}

		closest = newClosest
	}

	return points, startGapLOS, startGapFOV
}
