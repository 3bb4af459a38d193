package sweep

import (
	"math"
	"sort"

	"github.com/Garsondee/vision-sweep/internal/geom"
)

// wallRec is an arena-resident wall, already filtered for sense/door state
// and (if a wedge is active) already clipped to it. All angles are
// expressed relative to the sweep's reference angle (sweepStart), i.e. they
// lie in [sweepStart, sweepStart + 2*pi).
type wallRec struct {
	p1, p2 geom.Point
	line   geom.Line

	sense     Sense
	direction Direction
	sourceIdx int // index into the original WallBase slice this came from

	startAngle, endAngle float64
	startPoint, endPoint geom.Point

	initiallyActive bool // true: this wall is a member of the sweep's starting active set
}

// endpointRec is an arena-resident, interned vertex: every wallRec that
// touches a given geometric point shares exactly one endpointRec.
type endpointRec struct {
	point geom.Point
	angle float64 // in [sweepStart, sweepStart + 2*pi)
	ends  []int   // wallRec indices for which this point is the end
	stars []int   // wallRec indices for which this point is the start ("stars" avoids the keyword "starts" colliding with a field name elsewhere)

	// isIntersection marks a point folded in purely because two (possibly
	// otherwise unrelated) walls cross there — spec §4.4's final step. No
	// wall starts or ends at such a point; the sweep forces a closest-wall
	// recompute there anyway, since that is exactly where two active
	// walls' near/far order can flip.
	isIntersection bool
}

// arena is the per-call working set built by prepare and consumed by the
// sweep proper.
type arena struct {
	origin     geom.Point
	sweepStart float64

	walls     []wallRec
	endpoints []endpointRec
	byPoint   map[geom.Point]int
	bySource  map[int][]int // original WallBase index -> arena wallRec indices

	initialActive []int // wallRec indices active at sweepStart
}

func ccwDist(from, angle float64) float64 {
	d := angle - from
	twoPi := 2 * math.Pi
	for d < 0 {
		d += twoPi
	}
	for d >= twoPi {
		d -= twoPi
	}
	return d
}

func (a *arena) internEndpoint(p geom.Point) int {
	if idx, ok := a.byPoint[p]; ok {
		return idx
	}
	idx := len(a.endpoints)
	a.endpoints = append(a.endpoints, endpointRec{
		point: p,
		angle: a.sweepStart + ccwDist(a.sweepStart, angleAt(a.origin, p)),
	})
	a.byPoint[p] = idx
	return idx
}

// pointEpsilon is the distance below which a wall endpoint is treated as
// coincident with the origin and the whole wall is dropped (a ray has no
// defined angle at zero distance). Per spec §4.4 step 1 / scenario
// "origin_on_wall_endpoint", this drops only the offending wall — it never
// aborts the call.
const pointEpsilon = 1e-9

// angleZeroEps is the tolerance used by addWall's zero-angular-width check:
// a wall whose two endpoints subtend the same angle from origin, or angles
// exactly pi apart (the wall's line passes straight through origin), has no
// angular width and can never occlude anything — interning it as an
// occluder would make a ray along that exact line see a phantom corner.
const angleZeroEps = 1e-9

// addWall files one finished (post-wedge-clip) segment into the arena,
// resolving its start/end ordering and initial-active status.
func (a *arena) addWall(p1, p2 geom.Point, sense Sense, direction Direction, sourceIdx int) {
	if p1.Distance(a.origin) < pointEpsilon || p2.Distance(a.origin) < pointEpsilon {
		return
	}

	a1 := angleAt(a.origin, p1)
	a2 := angleAt(a.origin, p2)
	diff := a2 - a1
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}
	if math.Abs(diff) < angleZeroEps || math.Abs(math.Abs(diff)-math.Pi) < angleZeroEps {
		return
	}

	line := geom.LineThroughPoints(p1, p2)
	active := segmentCrossesRay(a.origin, a.sweepStart, p1, p2)

	d1 := ccwDist(a.sweepStart, a1)
	d2 := ccwDist(a.sweepStart, a2)

	rec := wallRec{
		p1: p1, p2: p2, line: line,
		sense: sense, direction: direction, sourceIdx: sourceIdx,
		initiallyActive: active,
	}

	if active {
		if d1 < d2 {
			rec.endAngle = a.sweepStart + d1
			rec.endPoint = p1
			rec.startAngle = a.sweepStart + d2
			rec.startPoint = p2
		} else {
			rec.endAngle = a.sweepStart + d2
			rec.endPoint = p2
			rec.startAngle = a.sweepStart + d1
			rec.startPoint = p1
		}
	} else {
		if d1 < d2 {
			rec.startAngle, rec.startPoint = a.sweepStart+d1, p1
			rec.endAngle, rec.endPoint = a.sweepStart+d2, p2
		} else {
			rec.startAngle, rec.startPoint = a.sweepStart+d2, p2
			rec.endAngle, rec.endPoint = a.sweepStart+d1, p1
		}
	}

	wallIdx := len(a.walls)
	a.walls = append(a.walls, rec)
	a.bySource[sourceIdx] = append(a.bySource[sourceIdx], wallIdx)

	startEp := a.internEndpoint(rec.startPoint)
	endEp := a.internEndpoint(rec.endPoint)

	if active {
		a.initialActive = append(a.initialActive, wallIdx)
		a.endpoints[startEp].stars = append(a.endpoints[startEp].stars, wallIdx)
		a.endpoints[endEp].ends = append(a.endpoints[endEp].ends, wallIdx)
	} else {
		a.endpoints[startEp].stars = append(a.endpoints[startEp].stars, wallIdx)
		a.endpoints[endEp].ends = append(a.endpoints[endEp].ends, wallIdx)
	}
}

// segmentCrossesRay reports whether the ray from origin at angle crosses
// segment [p1, p2].
func segmentCrossesRay(origin geom.Point, angle float64, p1, p2 geom.Point) bool {
	line := geom.LineThroughPoints(p1, p2)
	p, ok := pointAtAngle(origin, line, angle)
	if !ok {
		return false
	}
	if !onSegment(p, p1, p2) {
		return false
	}
	return sameDirection(origin, p, angle)
}

// doorBlocks reports whether a door-bearing wall currently blocks vision:
// open doors (of either kind) are fully transparent regardless of their
// stored sense.
func doorBlocks(base WallBase) bool {
	if base.Door == DoorNone {
		return true
	}
	return base.DoorState != DoorOpen
}

// prepare builds the arena for a single Compute call: it resolves each
// wall's sense for polygonType, drops walls that don't block at all or
// don't span lightHeight, clips the survivors to the optional vision
// wedge, indexes the result by angle, and folds in every wall-wall
// intersection the cache already knows about as its own endpoint (spec
// §4.4's final step).
func prepare(cache *Cache, origin geom.Point, sweepStart float64, polygonType PolygonType, wedge *VisionAngle, lightHeight float64) *arena {
	a := &arena{
		origin:     origin,
		sweepStart: sweepStart,
		byPoint:    make(map[geom.Point]int),
		bySource:   make(map[int][]int),
	}

	roofOccluded := func(r RoofRef) bool { return cache.IsRoofOccluded(r.TileID) }

	for idx, base := range cache.Walls() {
		sense := base.currentSense(polygonType, roofOccluded)
		if sense == SenseNone {
			continue
		}
		if !doorBlocks(base) {
			continue
		}
		if !base.Height.Includes(lightHeight) {
			continue
		}

		if wedge == nil {
			a.addWall(base.P1, base.P2, sense, base.Direction, idx)
			continue
		}
		for _, seg := range ClipWallToWedge(*wedge, origin, base.P1, base.P2) {
			a.addWall(seg.P1, seg.P2, sense, base.Direction, idx)
		}
	}

	foldIntersections(a, cache, lightHeight)

	return a
}

// foldIntersections folds every cached wall-wall intersection between two
// source walls that both survived prepare's filtering into its own
// endpoint, marked isIntersection. The cache's table is built from the
// original, unclipped wall geometry, so each candidate crossing is
// re-checked against the arena's (possibly wedge-clipped) segments before
// being folded in — a crossing the wedge clipped away must not resurface
// as a phantom event.
func foldIntersections(a *arena, cache *Cache, lightHeight float64) {
	sources := make([]int, 0, len(a.bySource))
	for idx := range a.bySource {
		sources = append(sources, idx)
	}
	sort.Ints(sources)

	for ii := 0; ii < len(sources); ii++ {
		for jj := ii + 1; jj < len(sources); jj++ {
			i, j := sources[ii], sources[jj]
			p, height, ok := cache.Intersection(i, j)
			if !ok || !height.Includes(lightHeight) {
				continue
			}
			for _, wi := range a.bySource[i] {
				if !onSegmentEps(p, a.walls[wi].p1, a.walls[wi].p2, 1e-7) {
					continue
				}
				for _, wj := range a.bySource[j] {
					if !onSegmentEps(p, a.walls[wj].p1, a.walls[wj].p2, 1e-7) {
						continue
					}
					epIdx := a.internEndpoint(p)
					a.endpoints[epIdx].isIntersection = true
				}
			}
		}
	}
}
