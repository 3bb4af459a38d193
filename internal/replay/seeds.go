package replay

import (
	"math"

	"github.com/Garsondee/vision-sweep/internal/geom"
	"github.com/Garsondee/vision-sweep/internal/sweep"
)

func wallAt(p1, p2 geom.Point) sweep.WallBase {
	return sweep.NewWallBase(p1, p2, sweep.SenseNormal, sweep.SenseNormal,
		sweep.DoorNone, sweep.DoorClosed, sweep.DirBoth, sweep.DefaultWallHeight(), sweep.RoofRef{})
}

func requestFor(origin geom.Point, radius float64, walls ...sweep.WallBase) sweep.Request {
	return sweep.Request{Cache: sweep.NewCache(walls), Origin: origin, Distance: radius, Radius: radius, PolygonType: sweep.PolygonSight}
}

// seedZeroWidthWalls stacks two coincident, overlapping walls on top of
// each other — a degenerate but not-invalid layout a map editor's undo
// history can easily produce. The sweep should treat them as one wall for
// visibility purposes, not double-count or crash on the exact overlap.
func seedZeroWidthWalls() sweep.Request {
	p1, p2 := geom.NewPoint(-5, 10), geom.NewPoint(5, 10)
	return requestFor(geom.NewPoint(0, 0), 50, wallAt(p1, p2), wallAt(p1, p2))
}

// seedFourDirectionalWalls places one short wall on each cardinal side of
// the origin, none of them touching, exercising four independent active-
// set insert/remove cycles per sweep.
func seedFourDirectionalWalls() sweep.Request {
	walls := []sweep.WallBase{
		wallAt(geom.NewPoint(-2, 10), geom.NewPoint(2, 10)),
		wallAt(geom.NewPoint(10, -2), geom.NewPoint(10, 2)),
		wallAt(geom.NewPoint(-2, -10), geom.NewPoint(2, -10)),
		wallAt(geom.NewPoint(-10, -2), geom.NewPoint(-10, 2)),
	}
	return requestFor(geom.NewPoint(0, 0), 50, walls...)
}

// seedTJunction joins three walls at a single shared endpoint, so one
// endpoint event must fire three starts/ends together rather than the
// usual one or two.
func seedTJunction() sweep.Request {
	joint := geom.NewPoint(0, 10)
	walls := []sweep.WallBase{
		wallAt(geom.NewPoint(-10, 10), joint),
		wallAt(joint, geom.NewPoint(10, 10)),
		wallAt(joint, geom.NewPoint(5, 20)),
	}
	return requestFor(geom.NewPoint(0, 0), 50, walls...)
}

// seedZeroLengthWalls mixes a degenerate zero-length wall (both endpoints
// identical) in among real ones. Its derived Line carries NaN slope and
// intercept; prepare drops the wall before the sweep (both endpoints
// subtend the same angle from the origin), so it cannot corrupt the sweep
// around it.
func seedZeroLengthWalls() sweep.Request {
	degenerate := wallAt(geom.NewPoint(3, 3), geom.NewPoint(3, 3))
	real := wallAt(geom.NewPoint(-5, 10), geom.NewPoint(5, 10))
	return requestFor(geom.NewPoint(0, 0), 50, degenerate, real)
}

// seedOverflowWallNotOverflowingInFov places a long wall that lies
// entirely beyond the FOV radius (its nearest point is at distance 20,
// the radius is 15), checking that the FOV polygon follows the circle and
// picks up no vertex from the wall.
func seedOverflowWallNotOverflowingInFov() sweep.Request {
	wall := wallAt(geom.NewPoint(-100, 20), geom.NewPoint(100, 20))
	return requestFor(geom.NewPoint(0, 0), 15, wall)
}

// seedOverflowWallTopPointSeen is the mirror case: a wall one endpoint of
// which is just inside the radius, the other well outside, checking the
// circle-edge crossing point lands on the correct side.
func seedOverflowWallTopPointSeen() sweep.Request {
	wall := wallAt(geom.NewPoint(-3, 9), geom.NewPoint(-3, 30))
	return requestFor(geom.NewPoint(0, 0), 10, wall)
}

// seedClosestWallParallelToRay places two vertical walls on either side of
// the origin, each the closest wall for part of the sweep. Every sweep
// event lies at +/-45 or +/-135 degrees, so the sweep ray is never
// parallel to either wall; this layout does not reach the case where the
// previous closest wall runs parallel to the ray.
func seedClosestWallParallelToRay() sweep.Request {
	wall := wallAt(geom.NewPoint(5, -5), geom.NewPoint(5, 5)) // vertical wall
	blocker := wallAt(geom.NewPoint(-5, -5), geom.NewPoint(-5, 5))
	return requestFor(geom.NewPoint(0, 0), 50, wall, blocker)
}

// seedOriginOnWallEndpoint puts the origin exactly on a wall's endpoint — a
// ray has no defined angle at zero distance, so that one wall is dropped
// during preparation instead of used as an occluder; the rest of the
// computation proceeds normally and sees an open scene.
func seedOriginOnWallEndpoint() sweep.Request {
	origin := geom.NewPoint(0, 0)
	wall := wallAt(origin, geom.NewPoint(10, 0))
	return requestFor(origin, 50, wall)
}

// seedLimitedVisionAngleOverflowBothVisible gives a reflex (>180 degree)
// wedge — Start > End, so its visible span wraps through the +/-pi seam —
// and places a wall directly behind the origin, straddling that seam
// itself. The wedge's excluded slice is the narrow arc facing forward
// (near angle 0), so the whole rear wall stays visible; this exercises
// ClipWallToWedge's seam-unwrapping path without the wall ever touching
// the wedge boundary.
func seedLimitedVisionAngleOverflowBothVisible() sweep.Request {
	origin := geom.NewPoint(0, 0)
	wedge := sweep.NewVisionAngle(origin, math.Pi*0.1, -math.Pi*0.1) // reflex: excludes only a narrow forward slice
	wall := wallAt(geom.NewPoint(-20, -5), geom.NewPoint(-20, 5))

	req := requestFor(origin, 50, wall)
	req.Wedge = &wedge
	return req
}
