// Command visionbench runs the named scenario-seed battery (plus, if
// requested, a batch of random scenes) through internal/replay and prints
// a summary table, exiting non-zero if any invariant check fails. The
// headless, CI-friendly counterpart to cmd/visionview.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/Garsondee/vision-sweep/internal/replay"
)

func main() {
	seedsFlag := flag.String("seeds", "named", "which seeds to run: \"named\", \"random:N\", or \"all:N\"")
	radius := flag.Float64("radius", 50, "radius bound used for the invariant distance check")
	asJSON := flag.Bool("json", false, "emit the report as JSON instead of a text table")
	flag.Parse()

	seeds, err := resolveSeeds(*seedsFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "visionbench:", err)
		os.Exit(2)
	}

	reports := replay.RunAll(seeds)

	failed := 0
	var violationsBySeed = make(map[string][]string, len(reports))
	for _, r := range reports {
		v := replay.CheckInvariants(r, *radius)
		if len(v) > 0 {
			violationsBySeed[r.SeedName] = v
			failed++
		}
	}

	if *asJSON {
		printJSON(reports, violationsBySeed)
	} else {
		printTable(reports, violationsBySeed)
	}

	if failed > 0 {
		slog.Error("invariant violations found", "failed_scenarios", failed, "total", len(reports))
		os.Exit(1)
	}
}

func resolveSeeds(spec string) ([]replay.Seed, error) {
	switch {
	case spec == "named":
		return replay.NamedSeeds(), nil
	case strings.HasPrefix(spec, "random:"):
		n, err := parseCount(spec, "random:")
		if err != nil {
			return nil, err
		}
		return randomSeeds(n), nil
	case strings.HasPrefix(spec, "all:"):
		n, err := parseCount(spec, "all:")
		if err != nil {
			return nil, err
		}
		return append(replay.NamedSeeds(), randomSeeds(n)...), nil
	default:
		return nil, fmt.Errorf("unrecognized -seeds value %q", spec)
	}
}

func parseCount(spec, prefix string) (int, error) {
	var n int
	_, err := fmt.Sscanf(strings.TrimPrefix(spec, prefix), "%d", &n)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid count in %q", spec)
	}
	return n, nil
}

func randomSeeds(n int) []replay.Seed {
	rng := rand.New(rand.NewSource(1))
	seeds := make([]replay.Seed, n)
	for i := range seeds {
		seeds[i] = replay.RandomSeed(rng)
	}
	return seeds
}

func printTable(reports []replay.Report, violations map[string][]string) {
	var b strings.Builder
	fmt.Fprintf(&b, "%-48s %6s %6s %6s %6s %6s %6s %6s %6s %8s\n",
		"SEED", "LOSV", "LOSMIN", "LOSMAX", "LOSAVG", "FOVV", "FOVMIN", "FOVMAX", "FOVAVG", "STATUS")
	for _, r := range reports {
		status := "ok"
		if r.Err != nil {
			status = "error: " + r.Err.Error()
		} else if v, bad := violations[r.SeedName]; bad {
			status = fmt.Sprintf("FAIL (%d)", len(v))
		}
		fmt.Fprintf(&b, "%-48s %6d %6.2f %6.2f %6.2f %6d %6.2f %6.2f %6.2f %8s\n",
			r.SeedName, r.LOSVertexCount, r.LOSMinDist, r.LOSMaxDist, r.LOSMeanDist,
			r.FOVVertexCount, r.FOVMinDist, r.FOVMaxDist, r.FOVMeanDist, status)
	}
	for name, v := range violations {
		for _, line := range v {
			fmt.Fprintf(&b, "  %s: %s\n", name, line)
		}
	}
	fmt.Print(b.String())
}

func printJSON(reports []replay.Report, violations map[string][]string) {
	type jsonReport struct {
		Seed           string   `json:"seed"`
		Error          string   `json:"error,omitempty"`
		LOSVertexCount int      `json:"los_vertex_count"`
		LOSMinDist     float64  `json:"los_min_dist"`
		LOSMaxDist     float64  `json:"los_max_dist"`
		LOSMeanDist    float64  `json:"los_mean_dist"`
		FOVVertexCount int      `json:"fov_vertex_count"`
		FOVMinDist     float64  `json:"fov_min_dist"`
		FOVMaxDist     float64  `json:"fov_max_dist"`
		FOVMeanDist    float64  `json:"fov_mean_dist"`
		Violations     []string `json:"violations,omitempty"`
	}

	out := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		jr := jsonReport{
			Seed:           r.SeedName,
			LOSVertexCount: r.LOSVertexCount, LOSMinDist: r.LOSMinDist, LOSMaxDist: r.LOSMaxDist, LOSMeanDist: r.LOSMeanDist,
			FOVVertexCount: r.FOVVertexCount, FOVMinDist: r.FOVMinDist, FOVMaxDist: r.FOVMaxDist, FOVMeanDist: r.FOVMeanDist,
			Violations: violations[r.SeedName],
		}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		slog.Error("encoding report as JSON", "error", err)
	}
}
