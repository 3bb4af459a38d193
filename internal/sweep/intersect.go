package sweep

import (
	"math"

	"github.com/Garsondee/vision-sweep/internal/geom"
)

// segmentLine bundles a segment's endpoints with its precomputed infinite
// line, the minimal shape strictIntersection needs from either a wallRec or
// a WallBase.
type segmentLine struct {
	p1, p2 geom.Point
	line   geom.Line
}

// strictIntersection returns the point where a's and b's infinite lines
// cross, if that point lies strictly between both a's and b's own endpoints
// (never coincident with an endpoint). A crossing of the infinite lines
// well outside either segment's actual extent is not a real wall-wall
// intersection (spec §4.2, §4.4's final folding step).
func strictIntersection(a, b segmentLine) (geom.Point, bool) {
	p, ok := a.line.Intersect(b.line)
	if !ok {
		return geom.Point{}, false
	}
	if !strictlyOnSegment(p, a) || !strictlyOnSegment(p, b) {
		return geom.Point{}, false
	}
	return p, true
}

// strictlyOnSegment projects p onto whichever axis better separates s's
// endpoints (Y for a vertical or steep line, X otherwise — spec's |m| > 1
// rule) and reports whether it falls strictly between them.
func strictlyOnSegment(p geom.Point, s segmentLine) bool {
	if s.line.IsVertical() || math.Abs(s.line.M) > 1.0 {
		return betweenExclusive(p.Y, s.p1.Y, s.p2.Y)
	}
	return betweenExclusive(p.X, s.p1.X, s.p2.X)
}
