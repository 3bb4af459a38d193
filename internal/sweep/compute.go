package sweep

import (
	"log/slog"
	"math"

	"github.com/Garsondee/vision-sweep/internal/geom"
)

// Request describes a single visibility-polygon computation: a light or
// vision source at Origin, consulting Cache's walls under PolygonType
// rules. Distance bounds the line-of-sight polygon (LOS); Radius further
// bounds the field-of-view polygon (FOV) and must not exceed Distance.
// LightHeight selects which height-banded walls are consulted (spec §4.4,
// §6): a wall whose [Bottom, Top] range excludes LightHeight is skipped
// entirely, as if it didn't exist for this call.
type Request struct {
	Cache       *Cache
	Origin      geom.Point
	Distance    float64
	Radius      float64
	LightHeight float64
	PolygonType PolygonType
	Wedge       *VisionAngle // nil disables wedge restriction (full 360 degrees)
	GapStep     float64      // angular sampling density for arcs; 0 uses DefaultGapStep
	Logger      *slog.Logger // nil uses slog.Default()
}

// Result holds the two polygons a single Compute call produces. LOS is the
// line-of-sight polygon: its real wall-hit vertices are never hard-clipped
// by a circle, only its open angular gaps are arc-filled out to Distance.
// FOV is LOS further clipped to the Radius circle, the shape a renderer
// actually lights. Both are closed loops of points in angular order.
type Result struct {
	LOS []geom.Point
	FOV []geom.Point
}

// Compute runs the full pipeline: prepare (filter, height-band, wedge-clip,
// index), sweep (event-driven closest-wall walk), wedge stitching (if a
// wedge was given, closing the pie slice at the origin), FOV postprocess
// (circular clip at Radius), and gap fill (arc sampling) for each of LOS
// (bounded at Distance) and FOV (bounded at Radius).
func Compute(req Request) (Result, error) {
	if req.Cache == nil {
		return Result{}, ErrNilCache
	}
	if req.Distance <= 0 {
		return Result{}, ErrInvalidDistance
	}
	if req.Radius <= 0 || req.Radius > req.Distance+1e-9 {
		return Result{}, ErrInvalidRadius
	}

	logger := req.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sweepStart := -math.Pi
	shiftedEnd := sweepStart + 2*math.Pi
	if req.Wedge != nil {
		sweepStart = req.Wedge.Start
		shiftedEnd = sweepStart + ccwDist(sweepStart, req.Wedge.End)
	}

	a := prepare(req.Cache, req.Origin, sweepStart, req.PolygonType, req.Wedge, req.LightHeight)
	logger.Debug("vision sweep prepared", "walls", len(a.walls), "endpoints", len(a.endpoints), "initial_active", len(a.initialActive))

	points, startGapLOS, startGapFOV := calculateLOS(a, req.Radius)

	if req.Wedge != nil {
		points = stitchWedge(points, req.Origin, sweepStart, shiftedEnd)
	}

	radiusCircle := geom.Circle{Center: req.Origin, Radius: req.Radius}
	distanceCircle := geom.Circle{Center: req.Origin, Radius: req.Distance}

	fovPoints := calculateFov(points, radiusCircle)

	step := req.GapStep
	if step <= 0 {
		step = DefaultGapStep
	}

	los := toPolygon(fillGaps(points, startGapLOS, distanceCircle, step))
	fov := toPolygon(fillGaps(fovPoints, startGapFOV, radiusCircle, step))

	logger.Debug("vision sweep complete", "los_vertices", len(los), "fov_vertices", len(fov))
	return Result{LOS: los, FOV: fov}, nil
}

func toPolygon(points []FovPoint) []geom.Point {
	polygon := make([]geom.Point, len(points))
	for i, p := range points {
		polygon[i] = p.Point
	}
	return polygon
}
