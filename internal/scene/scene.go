// Package scene stands in for a real scene editor: it is the producer
// side of the data contract internal/sweep consumes (sweep.WallBase
// records plus a roof-occlusion registry), used to generate demo layouts
// for internal/replay and cmd/visionview. A production host would read
// this data from its own scene graph instead.
package scene

import (
	"fmt"
	"math/rand"

	"github.com/Garsondee/vision-sweep/internal/sweep"
)

// SceneOptions controls GenerateDemoWalls's output.
type SceneOptions struct {
	Width, Height float64
	BuildingCount int
	RoadCount     int
}

// DefaultSceneOptions returns a modest demo scene: a handful of buildings
// scattered over a square plot with a couple of roads running through it.
func DefaultSceneOptions() SceneOptions {
	return SceneOptions{Width: 400, Height: 400, BuildingCount: 6, RoadCount: 2}
}

// RoofRegistry tracks which roof tiles currently occlude sight, and
// (once Bind is called) mirrors updates straight into a live Cache so a
// host can flip a roof open/closed without rebuilding the sweep's wall
// set — the O(1) update spec §4.2 requires.
type RoofRegistry struct {
	occluded map[string]bool
	cache    *sweep.Cache
}

// NewRoofRegistry returns an empty, unbound registry.
func NewRoofRegistry() *RoofRegistry {
	return &RoofRegistry{occluded: make(map[string]bool)}
}

// Bind attaches cache to the registry, pushing every already-registered
// tile's state into it immediately. Subsequent SetOccluded calls update
// both the registry and cache together.
func (r *RoofRegistry) Bind(cache *sweep.Cache) {
	r.cache = cache
	for tileID, occ := range r.occluded {
		cache.SetRoofOccluded(tileID, occ)
	}
}

// Register records a roof tile's initial occlusion state.
func (r *RoofRegistry) Register(tileID string, occluded bool) {
	r.occluded[tileID] = occluded
	if r.cache != nil {
		r.cache.SetRoofOccluded(tileID, occluded)
	}
}

// SetOccluded is Register's post-build counterpart: flips an already
// known tile's state.
func (r *RoofRegistry) SetOccluded(tileID string, occluded bool) {
	r.Register(tileID, occluded)
}

// IsOccluded reports tileID's last-known occlusion state.
func (r *RoofRegistry) IsOccluded(tileID string) bool {
	return r.occluded[tileID]
}

// GenerateDemoWalls lays out a random scene of rectangular buildings
// (perimeter walls with door gaps, some interior partitions, roofed),
// plus a small road network whose shoulders are LIMITED-sense terrain
// walls. The roof registry returned starts every roof occluded (closed).
func GenerateDemoWalls(rng *rand.Rand, opts SceneOptions) ([]sweep.WallBase, *RoofRegistry) {
	var walls []sweep.WallBase
	registry := NewRoofRegistry()

	placed := make([]rect, 0, opts.BuildingCount)
	for i := 0; i < opts.BuildingCount; i++ {
		r, ok := placeBuilding(rng, opts, placed)
		if !ok {
			continue
		}
		placed = append(placed, r)

		roofID := fmt.Sprintf("building-%d-roof", i)
		registry.Register(roofID, true)

		walls = append(walls, buildingWalls(rng, r, roofID)...)
	}

	for i := 0; i < opts.RoadCount; i++ {
		walls = append(walls, roadShoulderWalls(rng, opts, i)...)
	}

	return walls, registry
}

type rect struct {
	x, y, w, h float64
}

func (r rect) overlaps(other rect) bool {
	return r.x < other.x+other.w && r.x+r.w > other.x &&
		r.y < other.y+other.h && r.y+r.h > other.y
}

// buildingSizePool is a weighted building-size table: more small
// buildings than large ones, so generated towns don't read as
// uniform-grid sterile.
var buildingSizePool = []struct {
	w, h   float64
	weight int
}{
	{w: 20, h: 16, weight: 5},
	{w: 28, h: 22, weight: 3},
	{w: 40, h: 30, weight: 1},
}

func pickBuildingSize(rng *rand.Rand) (w, h float64) {
	total := 0
	for _, s := range buildingSizePool {
		total += s.weight
	}
	n := rng.Intn(total)
	for _, s := range buildingSizePool {
		if n < s.weight {
			return s.w, s.h
		}
		n -= s.weight
	}
	last := buildingSizePool[len(buildingSizePool)-1]
	return last.w, last.h
}

// placeBuilding tries a handful of random positions, rejecting any that
// overlap an already-placed building, and gives up (ok=false) rather than
// looping forever on a crowded plot.
func placeBuilding(rng *rand.Rand, opts SceneOptions, placed []rect) (rect, bool) {
	const attempts = 20
	w, h := pickBuildingSize(rng)
	for attempt := 0; attempt < attempts; attempt++ {
		x := rng.Float64()*(opts.Width-w-10) + 5
		y := rng.Float64()*(opts.Height-h-10) + 5
		candidate := rect{x: x, y: y, w: w, h: h}

		clear := true
		for _, p := range placed {
			if candidate.overlaps(grow(p, 6)) {
				clear = false
				break
			}
		}
		if clear {
			return candidate, true
		}
	}
	return rect{}, false
}

func grow(r rect, margin float64) rect {
	return rect{x: r.x - margin, y: r.y - margin, w: r.w + 2*margin, h: r.h + 2*margin}
}
