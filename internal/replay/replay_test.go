package replay

import "testing"

func TestRunAll_NamedSeedsAllRun(t *testing.T) {
	seeds := NamedSeeds()
	reports := RunAll(seeds)
	if len(reports) != len(seeds) {
		t.Fatalf("got %d reports, want %d", len(reports), len(seeds))
	}
	for i, r := range reports {
		if r.SeedName != seeds[i].Name {
			t.Fatalf("report %d name = %q, want %q", i, r.SeedName, seeds[i].Name)
		}
	}
}

func TestRunAll_OriginOnWallEndpointSkipsTheOffendingWall(t *testing.T) {
	reports := RunAll([]Seed{{Name: "origin_on_wall_endpoint", Build: seedOriginOnWallEndpoint}})
	r := reports[0]
	if r.Err != nil {
		t.Fatalf("expected the degenerate wall to be skipped and Compute to succeed, got %v", r.Err)
	}
	if r.LOSVertexCount == 0 {
		t.Fatal("expected a non-empty LOS polygon once the degenerate wall is dropped")
	}
}

func TestCheckInvariants_CleanReportHasNoViolations(t *testing.T) {
	reports := RunAll([]Seed{{Name: "four_directional_walls", Build: seedFourDirectionalWalls}})
	violations := CheckInvariants(reports[0], 50)
	if len(violations) != 0 {
		t.Fatalf("unexpected violations: %v", violations)
	}
}

func TestCheckInvariants_FlagsUnexpectedError(t *testing.T) {
	r := Report{SeedName: "broken", Err: errString("boom")}
	violations := CheckInvariants(r, 10)
	if len(violations) != 1 {
		t.Fatalf("expected exactly one violation, got %v", violations)
	}
}

type errString string

func (e errString) Error() string { return string(e) }

func TestNamedSeeds_AllPass(t *testing.T) {
	for _, s := range NamedSeeds() {
		reports := RunAll([]Seed{s})
		r := reports[0]
		if s.WantErr {
			continue
		}
		if violations := CheckInvariants(r, 50); len(violations) != 0 {
			t.Fatalf("seed %s: %v", s.Name, violations)
		}
	}
}
