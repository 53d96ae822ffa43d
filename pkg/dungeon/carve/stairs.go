package carve

import (
	"github.com/zyedidia/generic/mapset"

	"mapforge/pkg/engine/grid"
	"mapforge/pkg/engine/rng"
)

// attemptsPerFloorCell bounds stair rejection sampling relative to the
// available floor capacity, so placement always terminates.
const attemptsPerFloorCell = 10

// PlaceStairs places the requested number of up and down stairs on
// distinct floor cells by rejection sampling. Stair cells stay
// CellFloor in the grid; occupancy is tracked in the returned list.
// Returns PlacementExhaustedError if the counts cannot be satisfied.
func PlaceStairs(g *grid.Grid, up, down int, src *rng.Source) ([]grid.Stair, error) {
	requested := up + down
	if requested == 0 {
		return nil, nil
	}

	floorCells := g.Count(grid.CellFloor)
	if requested > floorCells {
		return nil, &PlacementExhaustedError{
			Stage:      "stairs",
			Attempts:   0,
			FloorCells: floorCells,
			Placed:     0,
			Requested:  requested,
		}
	}

	budget := floorCells * attemptsPerFloorCell
	occupied := mapset.New[[2]int]()
	stairs := make([]grid.Stair, 0, requested)
	attempts := 0

	for i := 0; i < requested; i++ {
		kind := grid.StairUp
		if i >= up {
			kind = grid.StairDown
		}

		placed := false
		for attempts < budget {
			attempts++
			x := src.Intn(g.Width())
			y := src.Intn(g.Height())
			if g.Get(x, y) != grid.CellFloor {
				continue
			}
			if occupied.Has([2]int{x, y}) {
				continue
			}
			occupied.Put([2]int{x, y})
			stairs = append(stairs, grid.Stair{X: x, Y: y, Kind: kind})
			placed = true
			break
		}

		if !placed {
			// Rejection sampling gets slow once most floor cells are
			// taken. Fall back to drawing from the remaining free floor
			// cells directly, so placement only fails when capacity is
			// genuinely exhausted.
			candidates := freeFloorCells(g, occupied)
			if len(candidates) == 0 {
				return nil, &PlacementExhaustedError{
					Stage:      "stairs",
					Attempts:   attempts,
					FloorCells: floorCells,
					Placed:     len(stairs),
					Requested:  requested,
				}
			}
			pick := candidates[src.Intn(len(candidates))]
			occupied.Put(pick)
			stairs = append(stairs, grid.Stair{X: pick[0], Y: pick[1], Kind: kind})
		}
	}

	return stairs, nil
}

// freeFloorCells lists floor cells not yet holding a stair, in row
// order so the fallback draw stays deterministic.
func freeFloorCells(g *grid.Grid, occupied mapset.Set[[2]int]) [][2]int {
	var cells [][2]int
	g.ForEachCell(func(x, y int, c grid.CellType) {
		if c == grid.CellFloor && !occupied.Has([2]int{x, y}) {
			cells = append(cells, [2]int{x, y})
		}
	})
	return cells
}
