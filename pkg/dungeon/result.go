package dungeon

import (
	"mapforge/pkg/dungeon/mask"
	"mapforge/pkg/engine/grid"
)

// Result is the artifact a generation run hands downstream. Ownership
// transfers to the caller; the pipeline keeps no reference to it.
type Result struct {
	Grid   *grid.Grid
	Stairs []grid.Stair

	// Run metadata.
	Seed     int64
	Width    int
	Height   int
	Mask     mask.Type
	GridSize int

	// Cell counts captured after decoration.
	RoomCount  int
	FloorCount int
	WaterCount int
	DoorCount  int
}
