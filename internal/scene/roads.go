package scene

import (
	"math/rand"

	"github.com/Garsondee/vision-sweep/internal/geom"
	"github.com/Garsondee/vision-sweep/internal/sweep"
)

// roadShoulderWidth is the half-width of the generated road's shoulders.
const roadShoulderWidth = 6.0

// roadShoulderWalls lays out one road crossing the plot (alternating
// horizontal/vertical by index), represented only by its two shoulder
// walls — LIMITED sense, matching spec §3's "partial/terrain" blocking
// tier, since a road's edge (a curb, a hedgerow) softens sight rather than
// cutting it outright the way a building wall does.
func roadShoulderWalls(rng *rand.Rand, opts SceneOptions, index int) []sweep.WallBase {
	horizontal := index%2 == 0

	if horizontal {
		y := opts.Height * (float64(index%4+1) / 5)
		return []sweep.WallBase{
			shoulder(geom.NewPoint(0, y-roadShoulderWidth), geom.NewPoint(opts.Width, y-roadShoulderWidth)),
			shoulder(geom.NewPoint(0, y+roadShoulderWidth), geom.NewPoint(opts.Width, y+roadShoulderWidth)),
		}
	}

	x := opts.Width * (float64(index%4+1) / 5)
	return []sweep.WallBase{
		shoulder(geom.NewPoint(x-roadShoulderWidth, 0), geom.NewPoint(x-roadShoulderWidth, opts.Height)),
		shoulder(geom.NewPoint(x+roadShoulderWidth, 0), geom.NewPoint(x+roadShoulderWidth, opts.Height)),
	}
}

func shoulder(p1, p2 geom.Point) sweep.WallBase {
	return sweep.NewWallBase(p1, p2, sweep.SenseLimited, sweep.SenseNormal,
		sweep.DoorNone, sweep.DoorClosed, sweep.DirBoth, sweep.DefaultWallHeight(), sweep.RoofRef{})
}
