package sweep

import (
	"math"

	"github.com/Garsondee/vision-sweep/internal/geom"
)

// stitchAngleEps is the tolerance used when deciding whether a real
// line-of-sight vertex sits exactly on the wedge's start or end ray, so the
// stitched apex doesn't introduce a spurious gap-filled sliver right next
// to a real wall hit that already closes the seam.
const stitchAngleEps = 1e-9

// stitchWedge closes a wedge-restricted line-of-sight sequence into a
// proper pie slice: an apex vertex at origin for the wedge's start ray,
// followed by every point the sweep produced, followed by an apex vertex
// for the end ray. points is already expressed entirely within
// [sweepStart, shiftedEnd] (the arena shifts every angle onto that range,
// so unlike the source algorithm this never needs a separate
// seam-straddling case — the shift already removed the seam).
//
// The start apex is marked Gap unless a real vertex already sits exactly
// at sweepStart (nothing to bridge); the last real vertex has its own Gap
// flag cleared if it sits exactly at shiftedEnd, so fillGaps doesn't insert
// a zero-width arc between it and the end apex.
func stitchWedge(points []FovPoint, origin geom.Point, sweepStart, shiftedEnd float64) []FovPoint {
	n := len(points)

	if n > 0 && math.Abs(points[n-1].Angle-shiftedEnd) < stitchAngleEps {
		points[n-1].Gap = false
	}

	entryGap := true
	if n > 0 && math.Abs(points[0].Angle-sweepStart) < stitchAngleEps {
		entryGap = false
	}

	out := make([]FovPoint, 0, n+2)
	out = append(out, FovPoint{Point: origin, Angle: sweepStart, Gap: entryGap})
	out = append(out, points...)
	out = append(out, FovPoint{Point: origin, Angle: shiftedEnd, Gap: false})
	return out
}
