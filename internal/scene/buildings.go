package scene

import (
	"math/rand"

	"github.com/Garsondee/vision-sweep/internal/geom"
	"github.com/Garsondee/vision-sweep/internal/sweep"
)

// coverKind classifies a generated obstacle by how strongly it blocks
// sight: a three-tier taxonomy (tall wall / chest-high wall / rubble)
// repurposed here for vision blocking instead of damage mitigation.
type coverKind uint8

const (
	coverTall coverKind = iota
	coverChest
	coverRubble
)

func (k coverKind) sense() sweep.Sense {
	switch k {
	case coverTall:
		return sweep.SenseNormal
	case coverChest:
		return sweep.SenseLimited
	default:
		return sweep.SenseNone
	}
}

// face names one side of a building's rectangular footprint, used to pick
// which wall segment gets the door gap.
type face uint8

const (
	faceNorth face = iota
	faceEast
	faceSouth
	faceWest
)

// buildingWalls lays out r's four perimeter walls, cutting a door gap into
// one randomly chosen face (occasionally two, for larger buildings) and
// adding at most one interior partition wall (none when the partition
// rolls as rubble). Every perimeter wall is tagged with
// roofID so RoofRegistry can toggle the whole building's sight-blocking
// roof on and off without touching its walls.
func buildingWalls(rng *rand.Rand, r rect, roofID string) []sweep.WallBase {
	corners := [4]geom.Point{
		geom.NewPoint(r.x, r.y),
		geom.NewPoint(r.x+r.w, r.y),
		geom.NewPoint(r.x+r.w, r.y+r.h),
		geom.NewPoint(r.x, r.y+r.h),
	}

	faces := []face{faceNorth, faceEast, faceSouth, faceWest}
	rng.Shuffle(len(faces), func(i, j int) { faces[i], faces[j] = faces[j], faces[i] })
	doorFaces := map[face]bool{faces[0]: true}
	if r.w > 30 || r.h > 30 {
		doorFaces[faces[1]] = true
	}

	var walls []sweep.WallBase
	for f := faceNorth; f <= faceWest; f++ {
		p1, p2 := corners[f], corners[(f+1)%4]
		roof := sweep.RoofRef{TileID: roofID}

		if doorFaces[f] {
			walls = append(walls, perimeterWithDoor(rng, p1, p2, roof)...)
			continue
		}

		if hasWindow := rng.Float64() < 0.35; hasWindow {
			walls = append(walls, perimeterWithWindow(p1, p2, roof)...)
			continue
		}

		walls = append(walls, sweep.NewWallBase(p1, p2, sweep.SenseNormal, sweep.SenseNormal,
			sweep.DoorNone, sweep.DoorClosed, sweep.DirBoth, sweep.DefaultWallHeight(), roof))
	}

	walls = append(walls, interiorPartition(rng, r)...)

	return walls
}

// perimeterWithDoor splits [p1, p2] into two flanking wall segments and a
// door segment in the middle. The door is secret roughly one time in six.
// A regular door starts open, closed or locked at random; a secret door
// starts closed or locked (never open — that would defeat the point of
// being secret).
func perimeterWithDoor(rng *rand.Rand, p1, p2 geom.Point, roof sweep.RoofRef) []sweep.WallBase {
	gapStart := 0.4 + rng.Float64()*0.1
	gapEnd := gapStart + 0.15

	mid1 := lerp(p1, p2, gapStart)
	mid2 := lerp(p1, p2, gapEnd)

	kind := sweep.DoorRegular
	if rng.Float64() < 1.0/6.0 {
		kind = sweep.DoorSecret
	}
	state := sweep.DoorClosed
	if kind == sweep.DoorRegular {
		switch rng.Intn(3) {
		case 0:
			state = sweep.DoorOpen
		case 1:
			state = sweep.DoorLocked
		}
	} else if rng.Float64() < 0.5 {
		state = sweep.DoorLocked
	}

	return []sweep.WallBase{
		sweep.NewWallBase(p1, mid1, sweep.SenseNormal, sweep.SenseNormal, sweep.DoorNone, sweep.DoorClosed, sweep.DirBoth, sweep.DefaultWallHeight(), roof),
		sweep.NewWallBase(mid1, mid2, sweep.SenseNormal, sweep.SenseNormal, kind, state, sweep.DirBoth, sweep.DefaultWallHeight(), roof),
		sweep.NewWallBase(mid2, p2, sweep.SenseNormal, sweep.SenseNormal, sweep.DoorNone, sweep.DoorClosed, sweep.DirBoth, sweep.DefaultWallHeight(), roof),
	}
}

// perimeterWithWindow splits [p1, p2] the same way as a door, but the
// middle segment is a LIMITED-sense wall (glass: blocks movement in the
// host's world, but only partially matters for sight the way spec §3's
// LIMITED sense is meant to be consulted) rather than a door.
func perimeterWithWindow(p1, p2 geom.Point, roof sweep.RoofRef) []sweep.WallBase {
	mid1 := lerp(p1, p2, 0.3)
	mid2 := lerp(p1, p2, 0.7)
	return []sweep.WallBase{
		sweep.NewWallBase(p1, mid1, sweep.SenseNormal, sweep.SenseNormal, sweep.DoorNone, sweep.DoorClosed, sweep.DirBoth, sweep.DefaultWallHeight(), roof),
		sweep.NewWallBase(mid1, mid2, sweep.SenseLimited, sweep.SenseNormal, sweep.DoorNone, sweep.DoorClosed, sweep.DirBoth, sweep.DefaultWallHeight(), roof),
		sweep.NewWallBase(mid2, p2, sweep.SenseNormal, sweep.SenseNormal, sweep.DoorNone, sweep.DoorClosed, sweep.DirBoth, sweep.DefaultWallHeight(), roof),
	}
}

// interiorPartition adds a single internal dividing wall roughly through
// the middle of the footprint, oriented along whichever axis is longer so
// it reads as a believable room split rather than a sliver.
func interiorPartition(rng *rand.Rand, r rect) []sweep.WallBase {
	kind := coverKind(rng.Intn(3))
	if kind == coverRubble {
		// A collapsed partition blocks nothing; skip emitting a wall at
		// all rather than emitting a NONE-sense no-op.
		return nil
	}

	var p1, p2 geom.Point
	if r.w >= r.h {
		x := r.x + r.w/2
		p1 = geom.NewPoint(x, r.y+2)
		p2 = geom.NewPoint(x, r.y+r.h-2)
	} else {
		y := r.y + r.h/2
		p1 = geom.NewPoint(r.x+2, y)
		p2 = geom.NewPoint(r.x+r.w-2, y)
	}

	sense := kind.sense()
	return []sweep.WallBase{
		sweep.NewWallBase(p1, p2, sense, sense, sweep.DoorNone, sweep.DoorClosed, sweep.DirBoth, sweep.DefaultWallHeight(), sweep.RoofRef{}),
	}
}

func lerp(a, b geom.Point, t float64) geom.Point {
	return geom.NewPoint(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
}
