// Package replay runs a fixed battery of named scenario seeds (plus,
// optionally, randomly generated ones) through internal/sweep.Compute and
// aggregates per-scenario statistics, the same shape as aggregating
// per-tick battle stats into a summary report. cmd/visionbench is its
// headless CLI frontend.
package replay

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Garsondee/vision-sweep/internal/geom"
	"github.com/Garsondee/vision-sweep/internal/scene"
	"github.com/Garsondee/vision-sweep/internal/sweep"
)

// Seed is one named, reproducible scenario: a wall layout plus a single
// Compute request against it. WantErr scenarios are expected to fail
// Compute outright — the seed exists to confirm that failure is clean, not
// a panic.
type Seed struct {
	Name    string
	Build   func() sweep.Request
	WantErr bool
}

// Report is one seed's outcome: either the aggregate stats of a successful
// Compute call, split between its LOS and FOV polygons, or the error it
// returned. LOS vertices are not circle-clipped (real wall hits can sit
// anywhere out to Distance along a clear sightline), so only FOVMaxDist is
// checked against the radius bound in CheckInvariants.
type Report struct {
	SeedName string
	Err      error

	LOSVertexCount int
	LOSMinDist     float64
	LOSMaxDist     float64
	LOSMeanDist    float64

	FOVVertexCount int
	FOVMinDist     float64
	FOVMaxDist     float64
	FOVMeanDist    float64
}

// NamedSeeds is the fixed battery of regression scenarios. Each one
// targets a specific edge case the sweep has to handle without panicking
// or silently producing a degenerate polygon.
func NamedSeeds() []Seed {
	return []Seed{
		{Name: "zero_width_walls", Build: seedZeroWidthWalls},
		{Name: "four_directional_walls", Build: seedFourDirectionalWalls},
		{Name: "t_junction", Build: seedTJunction},
		{Name: "zero_length_walls", Build: seedZeroLengthWalls},
		{Name: "overflow_wall_not_overflowing_in_fov", Build: seedOverflowWallNotOverflowingInFov},
		{Name: "overflow_wall_top_point_seen", Build: seedOverflowWallTopPointSeen},
		{Name: "old_closest_wall_parallel_to_ray_line", Build: seedClosestWallParallelToRay},
		{Name: "origin_on_wall_endpoint", Build: seedOriginOnWallEndpoint},
		{Name: "limited_vision_angle_overflow_both_visible", Build: seedLimitedVisionAngleOverflowBothVisible},
	}
}

// RandomSeed builds an ad hoc scenario from internal/scene's demo
// generator, for fuzz-ish coverage beyond the fixed battery.
func RandomSeed(rng *rand.Rand) Seed {
	return Seed{
		Name: fmt.Sprintf("random_%d", rng.Int63()),
		Build: func() sweep.Request {
			walls, registry := scene.GenerateDemoWalls(rng, scene.DefaultSceneOptions())
			cache := sweep.NewCache(walls)
			registry.Bind(cache)
			opts := scene.DefaultSceneOptions()
			origin := geom.NewPoint(opts.Width/2, opts.Height/2)
			return sweep.Request{Cache: cache, Origin: origin, Distance: opts.Width, Radius: opts.Width, PolygonType: sweep.PolygonSight}
		},
	}
}

// RunAll runs every seed and returns one Report each, in order.
func RunAll(seeds []Seed) []Report {
	reports := make([]Report, 0, len(seeds))
	for _, s := range seeds {
		reports = append(reports, run(s))
	}
	return reports
}

func run(s Seed) Report {
	req := s.Build()
	res, err := sweep.Compute(req)
	if err != nil {
		return Report{SeedName: s.Name, Err: err}
	}
	if s.WantErr {
		return Report{SeedName: s.Name, Err: fmt.Errorf("expected Compute to fail but it succeeded with %d LOS vertices", len(res.LOS))}
	}

	r := Report{SeedName: s.Name, LOSVertexCount: len(res.LOS), FOVVertexCount: len(res.FOV)}
	r.LOSMinDist, r.LOSMaxDist, r.LOSMeanDist = distStats(res.LOS, req.Origin)
	r.FOVMinDist, r.FOVMaxDist, r.FOVMeanDist = distStats(res.FOV, req.Origin)
	return r
}

func distStats(points []geom.Point, origin geom.Point) (min, max, mean float64) {
	if len(points) == 0 {
		return 0, 0, 0
	}
	sum := 0.0
	min = math.Inf(1)
	for _, p := range points {
		d := p.Distance(origin)
		sum += d
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max, sum / float64(len(points))
}

// CheckInvariants applies spec's universal invariants to a successful
// report and returns one string per violation (an empty slice means the
// report is clean). WantErr reports are checked separately by the caller
// (their "invariant" is simply that Err is non-nil).
func CheckInvariants(report Report, radius float64) []string {
	var violations []string
	if report.Err != nil {
		violations = append(violations, fmt.Sprintf("%s: unexpected error: %v", report.SeedName, report.Err))
		return violations
	}
	if report.LOSVertexCount == 0 {
		violations = append(violations, fmt.Sprintf("%s: LOS polygon has no vertices", report.SeedName))
	}
	if report.FOVVertexCount == 0 {
		violations = append(violations, fmt.Sprintf("%s: FOV polygon has no vertices", report.SeedName))
	}
	if len(violations) > 0 {
		return violations
	}
	const slack = 1e-6
	if report.FOVMaxDist > radius+slack {
		violations = append(violations, fmt.Sprintf("%s: FOV vertex at distance %v exceeds radius %v", report.SeedName, report.FOVMaxDist, radius))
	}
	if math.IsNaN(report.LOSMeanDist) || math.IsInf(report.LOSMeanDist, 0) {
		violations = append(violations, fmt.Sprintf("%s: LOS mean distance is not finite (%v)", report.SeedName, report.LOSMeanDist))
	}
	if math.IsNaN(report.FOVMeanDist) || math.IsInf(report.FOVMeanDist, 0) {
		violations = append(violations, fmt.Sprintf("%s: FOV mean distance is not finite (%v)", report.SeedName, report.FOVMeanDist))
	}
	return violations
}
