package sweep

import (
	"math"
	"testing"

	"github.com/Garsondee/vision-sweep/internal/geom"
)

func TestClipWallToWedge_FullyInsideIsKept(t *testing.T) {
	origin := geom.NewPoint(0, 0)
	wedge := NewVisionAngle(origin, -math.Pi/2, math.Pi/2)
	segs := ClipWallToWedge(wedge, origin, geom.NewPoint(5, -1), geom.NewPoint(5, 1))
	if len(segs) != 1 {
		t.Fatalf("expected exactly one kept segment, got %d", len(segs))
	}
}

func TestClipWallToWedge_FullyOutsideIsRejected(t *testing.T) {
	origin := geom.NewPoint(0, 0)
	wedge := NewVisionAngle(origin, -math.Pi/4, math.Pi/4)
	segs := ClipWallToWedge(wedge, origin, geom.NewPoint(-5, 4), geom.NewPoint(-5, 6))
	if len(segs) != 0 {
		t.Fatalf("expected the wall to be rejected, got %d segments", len(segs))
	}
}

func TestClipWallToWedge_StraddlingIsShortened(t *testing.T) {
	origin := geom.NewPoint(0, 0)
	wedge := NewVisionAngle(origin, -math.Pi/4, math.Pi/4)
	// Wall extends past both wedge rays, so both of its ends are cut back.
	segs := ClipWallToWedge(wedge, origin, geom.NewPoint(5, -10), geom.NewPoint(5, 10))
	if len(segs) != 1 {
		t.Fatalf("expected exactly one shortened segment, got %d", len(segs))
	}
	seg := segs[0]
	a1 := angleAt(origin, seg.P1)
	a2 := angleAt(origin, seg.P2)
	lo, hi := math.Min(a1, a2), math.Max(a1, a2)
	if lo < wedge.Start-1e-6 || hi > wedge.End+1e-6 {
		t.Fatalf("clipped segment angles [%v,%v] escape wedge [%v,%v]", lo, hi, wedge.Start, wedge.End)
	}
}

func TestAngleAt_Cardinal(t *testing.T) {
	origin := geom.NewPoint(0, 0)
	if got := angleAt(origin, geom.NewPoint(1, 0)); math.Abs(got) > 1e-12 {
		t.Fatalf("angle to +X = %v, want 0", got)
	}
	if got := angleAt(origin, geom.NewPoint(0, 1)); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("angle to +Y = %v, want pi/2", got)
	}
}

func TestCcwDist_WrapsForward(t *testing.T) {
	d := ccwDist(math.Pi-0.1, -math.Pi+0.05)
	if d <= 0 || d > 2*math.Pi {
		t.Fatalf("ccwDist out of range: %v", d)
	}
	if d > 0.2 {
		t.Fatalf("expected a small forward wrap distance, got %v", d)
	}
}
