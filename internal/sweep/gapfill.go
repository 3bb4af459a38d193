package sweep

import (
	"math"

	"github.com/Garsondee/vision-sweep/internal/geom"
)

// DefaultGapStep is the angular sampling density used by fillGaps when the
// caller does not request a finer one. One degree is fine enough that the
// arc reads as round at any reasonable render scale without generating an
// unreasonable vertex count for a full circle (360 samples).
const DefaultGapStep = math.Pi / 180.0

// fillGaps replaces every angular span following a Gap-marked vertex with
// evenly spaced samples along circle's boundary, starting at the Gap
// vertex's own angle and ending with one boundary sample at exactly the next
// vertex's angle, wrapping from the last vertex back to the first to
// close the loop. An empty points sequence (nothing visible anywhere, no
// wedge in play) is treated as one continuous gap spanning the whole
// circle. step must be positive; callers should clamp it away from zero
// themselves (Compute does, via DefaultGapStep).
//
// startGap overrides the last vertex's own Gap flag before the main pass,
// unless that vertex sits at circle's center (the wedge-stitched apex,
// whose own Gap flag already means something else and must not be
// clobbered): the wraparound from the sweep's last angular state back to
// its first must reflect whether anything was visible at the very start,
// not whatever the last processed event happened to leave behind.
func fillGaps(points []FovPoint, startGap bool, circle geom.Circle, step float64) []FovPoint {
	if len(points) == 0 {
		var out []FovPoint
		for a := -math.Pi; a < math.Pi; a += step {
			out = append(out, FovPoint{Point: clampToCircle(circle, a), Angle: a, Gap: true})
		}
		return out
	}

	n := len(points)
	if points[n-1].Point != circle.Center {
		points[n-1].Gap = startGap
	}

	out := make([]FovPoint, 0, n*2)
	for i := 0; i < n; i++ {
		curr := points[i]
		var prev FovPoint
		if i == 0 {
			prev = points[n-1]
		} else {
			prev = points[i-1]
		}

		if prev.Gap {
			prevAngle := prev.Angle
			if prevAngle > curr.Angle {
				prevAngle -= 2 * math.Pi
			}
			for a := prevAngle; a < curr.Angle; a += step {
				out = append(out, FovPoint{Point: clampToCircle(circle, a), Angle: a, Gap: true})
			}
			out = append(out, FovPoint{Point: clampToCircle(circle, curr.Angle), Angle: curr.Angle, Gap: true})
		}
		out = append(out, curr)
	}
	return out
}
