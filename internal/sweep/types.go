// Package sweep implements the angular sweep engine: the event-driven
// computation that walks wall endpoints in angular order around an origin,
// maintains an active-wall set, resolves the closest wall per ray,
// generates line-of-sight vertices at transitions, clips the result against
// a circular field-of-view boundary, and fills angular gaps with arc
// samples.
package sweep

import (
	"math"

	"github.com/Garsondee/vision-sweep/internal/geom"
)

// Sense controls whether a wall is considered at all for a given polygon
// type, and if so, how strongly it blocks.
type Sense uint8

const (
	SenseNone Sense = iota
	SenseNormal
	SenseLimited
)

// DoorKind classifies a wall as a plain wall, a door, or a secret door.
type DoorKind uint8

const (
	DoorNone DoorKind = iota
	DoorRegular
	DoorSecret
)

// DoorState is the current state of a door-bearing wall.
type DoorState uint8

const (
	DoorClosed DoorState = iota
	DoorOpen
	DoorLocked
)

// Direction restricts which side of a wall blocks vision. BOTH blocks from
// either side; LEFT/RIGHT make the wall transparent from one heading.
type Direction uint8

const (
	DirBoth Direction = iota
	DirLeft
	DirRight
)

// PolygonType selects which of a wall's two senses (sight or sound) is
// consulted, and whether the roof-occlusion override applies (SIGHT only).
type PolygonType uint8

const (
	PolygonSight PolygonType = iota
	PolygonSound
)

// ParsePolygonType maps a host-supplied tag to a PolygonType. "light" is the
// documented SIGHT alias. Unknown tags default to SIGHT; callers that care
// about the fallback should log it themselves — default to SIGHT and warn
// via the host log rather than reject the request outright.
func ParsePolygonType(tag string) (PolygonType, bool) {
	switch tag {
	case "sight", "light":
		return PolygonSight, true
	case "sound":
		return PolygonSound, true
	default:
		return PolygonSight, false
	}
}

// WallHeight is an inclusive [Bottom, Top] elevation range. The zero value
// is invalid; use DefaultWallHeight for "unbounded".
type WallHeight struct {
	Top    float64
	Bottom float64
}

// DefaultWallHeight spans the full height range, used when a host record
// omits wallHeight.
func DefaultWallHeight() WallHeight {
	return WallHeight{Top: math.Inf(1), Bottom: math.Inf(-1)}
}

// Includes reports whether height falls within [Bottom, Top].
func (h WallHeight) Includes(height float64) bool {
	return height <= h.Top && height >= h.Bottom
}

// RoofRef names the roof tile (if any) whose occlusion state can promote
// this wall's sense for SIGHT polygons. Zero value (TileID == "") means the
// wall has no roof association.
type RoofRef struct {
	TileID string
}

// WallBase is the immutable input wall record a host hands the Cache. Its
// derived Line is computed once at construction and never mutated.
type WallBase struct {
	P1, P2 geom.Point
	Line   geom.Line

	Sense Sense // sight sense
	Sound Sense // sound sense, independent of Sense

	Door      DoorKind
	DoorState DoorState
	Direction Direction

	Height WallHeight
	Roof   RoofRef
}

// NewWallBase builds a WallBase, deriving its Line from P1/P2.
func NewWallBase(p1, p2 geom.Point, sense, sound Sense, door DoorKind, doorState DoorState, dir Direction, height WallHeight, roof RoofRef) WallBase {
	return WallBase{
		P1: p1, P2: p2, Line: geom.LineThroughPoints(p1, p2),
		Sense: sense, Sound: sound,
		Door: door, DoorState: doorState, Direction: dir,
		Height: height, Roof: roof,
	}
}

// currentSense resolves the wall's sense for polygonType, applying the
// roof-occlusion override: a SIGHT wall under a non-occluded roof is
// promoted to NORMAL regardless of its stored sense (spec §6, §8). SOUND is
// never affected by roof occlusion (open Question in spec §9, resolved
// that way).
func (w WallBase) currentSense(polygonType PolygonType, roofOccluded func(RoofRef) bool) Sense {
	switch polygonType {
	case PolygonSound:
		return w.Sound
	default:
		if w.Roof.TileID != "" && roofOccluded != nil && !roofOccluded(w.Roof) {
			return SenseNormal
		}
		return w.Sense
	}
}

// FovPoint is an internal vertex produced by the sweep/postprocess/gap-fill
// stages. Gap means "the angular range from this vertex to the next is not
// bounded by any wall" — the polygon follows the bounding arc there.
type FovPoint struct {
	Point geom.Point
	Angle float64
	Gap   bool
}

// VisionAngle describes an optional angular wedge restricting vision to a
// cone. Start < End means the wedge does not straddle the +/-pi seam;
// Start > End means it does (the visible arc is (Start, pi] U [-pi, End]).
type VisionAngle struct {
	Start, End         float64
	StartRay, EndRay   geom.Line
}

// NewVisionAngle builds a wedge spanning [start, end] (radians, already in
// the sweep's angle convention) centered implicitly by the caller's choice
// of start/end.
func NewVisionAngle(origin geom.Point, start, end float64) VisionAngle {
	return VisionAngle{
		Start: start, End: end,
		StartRay: geom.LineFromPointAndAngle(origin, start),
		EndRay:   geom.LineFromPointAndAngle(origin, end),
	}
}

// VisionAngleFromRotation builds a wedge from a Foundry-style
// rotation/angle pair in degrees: the wedge is centered on rotation and
// spans angle degrees total. angle >= 360 or <= 0 disables the wedge
// (ok=false). This follows original_source's
// VisionAngle::from_rotation_and_angle convention exactly: Foundry's 0
// degrees is "down", this package's 0 radians is "+X (right)", so rotation
// is adjusted by -90 degrees before conversion.
func VisionAngleFromRotation(origin geom.Point, rotationDeg, angleDeg float64) (VisionAngle, bool) {
	if angleDeg >= 360.0 || angleDeg <= 0.0 {
		return VisionAngle{}, false
	}

	rotation := (rotationDeg - 90.0) * math.Pi / 180.0
	angle := angleDeg * math.Pi / 180.0

	rotation -= 2 * math.Pi * math.Trunc(rotation/(2*math.Pi))
	if rotation > math.Pi {
		rotation -= 2 * math.Pi
	}

	offset := angle / 2.0
	start := rotation - offset
	end := rotation + offset
	if start < -math.Pi {
		start += 2 * math.Pi
	} else if end > math.Pi {
		end -= 2 * math.Pi
	}

	return NewVisionAngle(origin, start, end), true
}

// isSmallerRelative reports whether angle1 is smaller than angle2 when
// walking counter-clockwise around the circle, handling the +/-pi wrap.
func isSmallerRelative(angle1, angle2 float64) bool {
	d := angle2 - angle1
	if math.Abs(d) > math.Pi {
		d = -d
	}
	return d > 0.0
}

// between reports whether num lies within [min(a,b), max(a,b)], inclusive.
func between(num, a, b float64) bool {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return num >= lo && num <= hi
}

// betweenExclusive is between with both endpoints excluded.
func betweenExclusive(num, a, b float64) bool {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return num > lo && num < hi
}
