package carve

import (
	"github.com/zyedidia/generic/mapset"

	"mapforge/pkg/engine/grid"
	"mapforge/pkg/engine/noise"
)

// Water decoration tuning. The low sampling frequency is what makes
// pools come out as contiguous blobs instead of scattered single cells.
const (
	waterFrequency = 0.12
	waterThreshold = 0.32
)

// DecorateWater reclassifies floor cells to water where the fractal
// noise field crosses the threshold. Stair cells are excluded and
// walls/doors are never touched.
func DecorateWater(g *grid.Grid, table *noise.Table, stairs []grid.Stair) {
	reserved := mapset.New[[2]int]()
	for _, s := range stairs {
		reserved.Put([2]int{s.X, s.Y})
	}

	g.ForEachCell(func(x, y int, c grid.CellType) {
		if c != grid.CellFloor {
			return
		}
		if reserved.Has([2]int{x, y}) {
			return
		}
		v := table.FBM(float64(x)*waterFrequency, float64(y)*waterFrequency,
			noise.DefaultOctaves, noise.DefaultLacunarity, noise.DefaultPersistence)
		if v > waterThreshold {
			g.Set(x, y, grid.CellWater)
		}
	})
}
