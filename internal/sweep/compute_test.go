package sweep

import (
	"math"
	"testing"

	"github.com/Garsondee/vision-sweep/internal/geom"
)

func squareRoom(size float64) []WallBase {
	h := size / 2
	corners := []geom.Point{
		geom.NewPoint(-h, -h),
		geom.NewPoint(h, -h),
		geom.NewPoint(h, h),
		geom.NewPoint(-h, h),
	}
	var walls []WallBase
	for i := 0; i < len(corners); i++ {
		p1 := corners[i]
		p2 := corners[(i+1)%len(corners)]
		walls = append(walls, NewWallBase(p1, p2, SenseNormal, SenseNormal, DoorNone, DoorClosed, DirBoth, DefaultWallHeight(), RoofRef{}))
	}
	return walls
}

func TestCompute_EmptyScene_ProducesCircle(t *testing.T) {
	cache := NewCache(nil)
	res, err := Compute(Request{Cache: cache, Origin: geom.NewPoint(0, 0), Distance: 10, Radius: 10, PolygonType: PolygonSight})
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	if len(res.FOV) < 100 {
		t.Fatalf("expected a densely sampled circle, got %d vertices", len(res.FOV))
	}
	for _, p := range res.FOV {
		d := p.Distance(geom.NewPoint(0, 0))
		if math.Abs(d-10) > 1e-6 {
			t.Fatalf("vertex %+v not on radius-10 circle (d=%v)", p, d)
		}
	}
}

func TestCompute_SquareRoom_OriginAtCenter(t *testing.T) {
	walls := squareRoom(10)
	cache := NewCache(walls)
	res, err := Compute(Request{Cache: cache, Origin: geom.NewPoint(0, 0), Distance: 100, Radius: 100, PolygonType: PolygonSight})
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	if len(res.LOS) == 0 {
		t.Fatal("expected a non-empty LOS polygon")
	}
	if len(res.FOV) == 0 {
		t.Fatal("expected a non-empty FOV polygon")
	}
	for _, p := range res.LOS {
		if math.Abs(p.X) > 5.0001 || math.Abs(p.Y) > 5.0001 {
			t.Fatalf("LOS vertex %+v escapes the 10x10 room", p)
		}
	}
	for _, p := range res.FOV {
		if math.Abs(p.X) > 5.0001 || math.Abs(p.Y) > 5.0001 {
			t.Fatalf("FOV vertex %+v escapes the 10x10 room", p)
		}
	}
}

func TestCompute_SenseNoneWallIsIgnored(t *testing.T) {
	p1, p2 := geom.NewPoint(-1, 5), geom.NewPoint(1, 5)
	wall := NewWallBase(p1, p2, SenseNone, SenseNone, DoorNone, DoorClosed, DirBoth, DefaultWallHeight(), RoofRef{})
	cache := NewCache([]WallBase{wall})
	res, err := Compute(Request{Cache: cache, Origin: geom.NewPoint(0, 0), Distance: 10, Radius: 10, PolygonType: PolygonSight})
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	for _, p := range res.FOV {
		d := p.Distance(geom.NewPoint(0, 0))
		if math.Abs(d-10) > 1e-6 {
			t.Fatalf("a SenseNone wall should not restrict vision, got vertex %+v at d=%v", p, d)
		}
	}
}

func TestCompute_OpenDoorIsTransparent(t *testing.T) {
	p1, p2 := geom.NewPoint(-1, 5), geom.NewPoint(1, 5)
	wall := NewWallBase(p1, p2, SenseNormal, SenseNormal, DoorRegular, DoorOpen, DirBoth, DefaultWallHeight(), RoofRef{})
	cache := NewCache([]WallBase{wall})
	res, err := Compute(Request{Cache: cache, Origin: geom.NewPoint(0, 0), Distance: 10, Radius: 10, PolygonType: PolygonSight})
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	for _, p := range res.FOV {
		d := p.Distance(geom.NewPoint(0, 0))
		if math.Abs(d-10) > 1e-6 {
			t.Fatalf("an open door should not restrict vision, got vertex %+v at d=%v", p, d)
		}
	}
}

func TestCompute_WedgeRestrictsToForwardCone(t *testing.T) {
	cache := NewCache(nil)
	wedge := NewVisionAngle(geom.NewPoint(0, 0), -math.Pi/4, math.Pi/4)
	res, err := Compute(Request{Cache: cache, Origin: geom.NewPoint(0, 0), Distance: 10, Radius: 10, PolygonType: PolygonSight, Wedge: &wedge})
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	foundApex := false
	for _, p := range res.FOV {
		if p.X == 0 && p.Y == 0 {
			foundApex = true
		}
		if p.X < -0.01 {
			t.Fatalf("vertex %+v lies behind the wedge's forward cone", p)
		}
	}
	if !foundApex {
		t.Fatal("expected the stitched FOV polygon to include the origin apex")
	}
	for _, p := range res.LOS {
		if p.X < -0.01 {
			t.Fatalf("LOS vertex %+v lies behind the wedge's forward cone", p)
		}
	}
}

func TestCompute_RejectsNonPositiveRadius(t *testing.T) {
	cache := NewCache(nil)
	if _, err := Compute(Request{Cache: cache, Origin: geom.NewPoint(0, 0), Distance: 10, Radius: 0}); err == nil {
		t.Fatal("expected an error for zero radius")
	}
}

func TestCompute_RejectsRadiusBeyondDistance(t *testing.T) {
	cache := NewCache(nil)
	if _, err := Compute(Request{Cache: cache, Origin: geom.NewPoint(0, 0), Distance: 5, Radius: 10}); err == nil {
		t.Fatal("expected an error when radius exceeds distance")
	}
}

func TestCompute_RejectsNilCache(t *testing.T) {
	if _, err := Compute(Request{Cache: nil, Origin: geom.NewPoint(0, 0), Distance: 10, Radius: 10}); err == nil {
		t.Fatal("expected an error for nil cache")
	}
}
