package dungeon

import (
	"mapforge/pkg/dungeon/carve"
	"mapforge/pkg/dungeon/mask"
	"mapforge/pkg/engine/grid"
	"mapforge/pkg/engine/noise"
	"mapforge/pkg/engine/rng"
)

// Carve tuning shared by all size tiers. The attempt budget is per
// room target unit so larger tiers get proportionally more tries.
const (
	minRoomSize     = 4
	maxRoomSize     = 9
	attemptsPerRoom = 60
	doorChance      = 20
)

// Generate validates the configuration and runs the full pipeline:
// mask selection, room/corridor carving, stair placement, and water
// decoration. On any error no partial result is returned.
func Generate(cfg Config) (*Result, error) {
	v, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	src := rng.New(v.seed)
	table := noise.NewTable(v.seed)
	m := mask.New(v.maskType, v.tier.width, v.tier.height, table)
	g := grid.New(v.tier.width, v.tier.height)

	rooms, err := carve.Carve(g, m, src, carve.Params{
		RoomTarget:    v.tier.roomTarget,
		MinRooms:      v.tier.minRooms,
		MinRoomSize:   minRoomSize,
		MaxRoomSize:   maxRoomSize,
		AttemptBudget: v.tier.roomTarget * attemptsPerRoom,
		DoorChance:    doorChance,
	})
	if err != nil {
		return nil, err
	}

	stairs, err := carve.PlaceStairs(g, v.stairs.Up, v.stairs.Down, src)
	if err != nil {
		return nil, err
	}

	carve.DecorateWater(g, table, stairs)

	return &Result{
		Grid:       g,
		Stairs:     stairs,
		Seed:       v.seed,
		Width:      v.tier.width,
		Height:     v.tier.height,
		Mask:       v.maskType,
		GridSize:   v.gridSize,
		RoomCount:  len(rooms),
		FloorCount: g.Count(grid.CellFloor),
		WaterCount: g.Count(grid.CellWater),
		DoorCount:  g.Count(grid.CellDoor),
	}, nil
}
