// Package ascii renders a generation result as a text map dump:
// metadata, legend, and the grid with stairs overlaid. The format is
// meant for debugging and quick inspection, one character per cell.
package ascii

import (
	"fmt"
	"io"

	"mapforge/pkg/dungeon"
	"mapforge/pkg/engine/grid"
)

// Renderer writes text map dumps.
type Renderer struct{}

// New creates an ascii renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the renderer name.
func (r *Renderer) Name() string {
	return "ascii"
}

// Render writes the dump: a metadata section, the cell legend, and the
// map itself with stair markers overlaid on their floor cells.
func (r *Renderer) Render(res *dungeon.Result, w io.Writer) error {
	overlay := make(map[[2]int]rune, len(res.Stairs))
	for _, s := range res.Stairs {
		symbol := grid.CellStairsUp.Rune()
		if s.Kind == grid.StairDown {
			symbol = grid.CellStairsDown.Rune()
		}
		overlay[[2]int{s.X, s.Y}] = symbol
	}

	if _, err := fmt.Fprintf(w, "seed: %d\nmask: %s\nsize: %dx%d\nrooms: %d\nfloor_cells: %d\nwater_cells: %d\ndoors: %d\nstairs: %d\n\n",
		res.Seed, res.Mask, res.Width, res.Height,
		res.RoomCount, res.FloorCount, res.WaterCount, res.DoorCount, len(res.Stairs)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "legend: %c wall  %c floor  %c door  %c water  %c stairs up  %c stairs down\n\n",
		grid.CellWall.Rune(), grid.CellFloor.Rune(), grid.CellDoor.Rune(),
		grid.CellWater.Rune(), grid.CellStairsUp.Rune(), grid.CellStairsDown.Rune()); err != nil {
		return err
	}

	line := make([]rune, res.Width)
	for y := 0; y < res.Height; y++ {
		for x := 0; x < res.Width; x++ {
			if symbol, ok := overlay[[2]int{x, y}]; ok {
				line[x] = symbol
				continue
			}
			line[x] = res.Grid.Get(x, y).Rune()
		}
		if _, err := fmt.Fprintln(w, string(line)); err != nil {
			return err
		}
	}
	return nil
}
