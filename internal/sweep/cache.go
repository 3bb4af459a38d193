package sweep

import (
	"math"

	"github.com/Garsondee/vision-sweep/internal/geom"
)

// Cache holds a fixed set of walls plus two things worth paying for once
// and reusing across many Compute calls against the same scene: the full
// O(N^2) table of pairwise wall-wall intersections (consulted when prepare
// folds each crossing in as its own endpoint, spec §4.4's final step), and
// the mutable roof-occlusion registry that PolygonSight currentSense
// resolution reads in O(1).
//
// Mutating roof state does not invalidate the pairwise intersection table:
// that table depends only on wall geometry, never on sense.
type Cache struct {
	walls []WallBase

	// pairXY[i][j], j>i, holds the strict-segment intersection of wall i
	// and wall j (both unclipped, as originally handed to NewCache), if
	// one exists within both walls' own extents. pairHeight[i][j] is the
	// combined height band a crossing at that point is visible within.
	pairXY     [][]geom.Point
	pairOK     [][]bool
	pairHeight [][]WallHeight

	roofOccluded map[string]bool
}

// NewCache builds a Cache over walls, eagerly computing the pairwise
// intersection table.
func NewCache(walls []WallBase) *Cache {
	c := &Cache{
		walls:        append([]WallBase(nil), walls...),
		roofOccluded: make(map[string]bool),
	}
	c.buildIntersections()
	return c
}

// buildIntersections precomputes, for every pair of walls, the point where
// their infinite lines cross — but only retains pairs where that point
// lies strictly between both walls' own endpoints. An infinite-line
// crossing well outside either wall's actual extent is not a real
// wall-wall intersection, so storing it unfiltered would let prepare fold
// in a bogus endpoint no ray could ever actually reach along both walls.
func (c *Cache) buildIntersections() {
	n := len(c.walls)
	c.pairXY = make([][]geom.Point, n)
	c.pairOK = make([][]bool, n)
	c.pairHeight = make([][]WallHeight, n)
	for i := range c.pairXY {
		c.pairXY[i] = make([]geom.Point, n)
		c.pairOK[i] = make([]bool, n)
		c.pairHeight[i] = make([]WallHeight, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			wi, wj := c.walls[i], c.walls[j]
			p, ok := strictIntersection(
				segmentLine{wi.P1, wi.P2, wi.Line},
				segmentLine{wj.P1, wj.P2, wj.Line},
			)
			if !ok {
				continue
			}
			c.pairXY[i][j] = p
			c.pairOK[i][j] = true
			// The crossing is only relevant to a light at a height both
			// walls actually occupy there: the overlap of their ranges.
			c.pairHeight[i][j] = WallHeight{
				Top:    math.Min(wi.Height.Top, wj.Height.Top),
				Bottom: math.Max(wi.Height.Bottom, wj.Height.Bottom),
			}
		}
	}
}

// Walls returns the cache's wall set. Callers must not mutate the result.
func (c *Cache) Walls() []WallBase {
	return c.walls
}

// Intersection returns wall i's and wall j's precomputed strict-segment
// intersection point and the height band it is visible within, if their
// segments cross at all. Order of i, j does not matter.
func (c *Cache) Intersection(i, j int) (geom.Point, WallHeight, bool) {
	if i == j {
		return geom.Point{}, WallHeight{}, false
	}
	if i > j {
		i, j = j, i
	}
	return c.pairXY[i][j], c.pairHeight[i][j], c.pairOK[i][j]
}

// SetRoofOccluded sets the occlusion state of the named roof tile. O(1).
func (c *Cache) SetRoofOccluded(tileID string, occluded bool) {
	c.roofOccluded[tileID] = occluded
}

// IsRoofOccluded reports the occlusion state of the named roof tile.
// Unregistered tile IDs are treated as occluded (the conservative default:
// a roof nobody has opened yet still blocks sight).
func (c *Cache) IsRoofOccluded(tileID string) bool {
	occluded, known := c.roofOccluded[tileID]
	if !known {
		return true
	}
	return occluded
}
