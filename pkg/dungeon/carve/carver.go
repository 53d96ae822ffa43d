// Package carve turns an all-wall grid into a dungeon layout: it carves
// rooms and corridors inside a boundary mask, places stairs, and applies
// noise-driven decoration. All random decisions flow through a single
// rng.Source so a seed reproduces the layout exactly.
package carve

import (
	"mapforge/pkg/dungeon/mask"
	"mapforge/pkg/engine/grid"
	"mapforge/pkg/engine/rng"
)

// Room is a carved rectangular room.
type Room struct {
	X, Y          int
	Width, Height int
}

// Center returns the room's center cell.
func (r Room) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// contains reports whether (x, y) lies inside the room rectangle.
func (r Room) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Params tunes the carver for a size tier.
type Params struct {
	// RoomTarget is the number of rooms the carver aims for.
	RoomTarget int
	// MinRooms is the floor below which carving counts as failed.
	MinRooms int
	// MinRoomSize and MaxRoomSize bound proposed room dimensions.
	MinRoomSize int
	MaxRoomSize int
	// AttemptBudget caps total room proposals so carving terminates on
	// hard-to-fill masks.
	AttemptBudget int
	// DoorChance is the percent chance a corridor gets a door.
	DoorChance int
}

// Carve proposes rooms until the target count is reached or the attempt
// budget runs out. A room is committed only if every cell it touches
// lies inside the mask and off the grid perimeter; committed rooms are
// connected to their predecessor with an L-shaped corridor clipped to
// the mask. Returns PlacementExhaustedError if fewer than MinRooms
// could be placed.
func Carve(g *grid.Grid, m mask.Mask, src *rng.Source, p Params) ([]Room, error) {
	var rooms []Room
	attempts := 0

	for len(rooms) < p.RoomTarget && attempts < p.AttemptBudget {
		attempts++

		room := proposeRoom(g, src, p)
		if !fitsMask(room, m) {
			continue
		}

		carveRoom(g, room)
		if len(rooms) > 0 {
			prev := rooms[len(rooms)-1]
			connectRooms(g, m, src, prev, room, p.DoorChance)
		}
		rooms = append(rooms, room)
	}

	if len(rooms) < p.MinRooms {
		return nil, &PlacementExhaustedError{
			Stage:      "carve",
			Attempts:   attempts,
			FloorCells: g.Count(grid.CellFloor),
			Placed:     len(rooms),
			Requested:  p.RoomTarget,
		}
	}

	// Rooms and corridors carved later can open up the walls around an
	// earlier door. Demote any door that no longer sits in a doorway.
	g.ForEachCell(func(x, y int, c grid.CellType) {
		if c != grid.CellDoor {
			return
		}
		g.Set(x, y, grid.CellFloor)
		if isDoorway(g, x, y) {
			g.Set(x, y, grid.CellDoor)
		}
	})

	return rooms, nil
}

// proposeRoom draws a random room size and position. Positions leave a
// one-cell wall border at the grid edge.
func proposeRoom(g *grid.Grid, src *rng.Source, p Params) Room {
	w := p.MinRoomSize + src.Intn(p.MaxRoomSize-p.MinRoomSize+1)
	h := p.MinRoomSize + src.Intn(p.MaxRoomSize-p.MinRoomSize+1)
	if w > g.Width()-2 {
		w = g.Width() - 2
	}
	if h > g.Height()-2 {
		h = g.Height() - 2
	}
	x := 1 + src.Intn(g.Width()-w-1)
	y := 1 + src.Intn(g.Height()-h-1)
	return Room{X: x, Y: y, Width: w, Height: h}
}

// fitsMask checks that every cell of the room lies inside the mask.
func fitsMask(r Room, m mask.Mask) bool {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if !m.Contains(x, y) {
				return false
			}
		}
	}
	return true
}

func carveRoom(g *grid.Grid, r Room) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			g.Set(x, y, grid.CellFloor)
		}
	}
}

// connectRooms carves an L-shaped corridor between two room centers,
// horizontal-first or vertical-first at random, then occasionally hangs
// a door where the corridor crosses a room boundary. Corridor cells
// outside the mask or on the perimeter are skipped rather than carved,
// so the silhouette is never violated.
func connectRooms(g *grid.Grid, m mask.Mask, src *rng.Source, a, b Room, doorChance int) {
	ax, ay := a.Center()
	bx, by := b.Center()

	path := corridorPath(ax, ay, bx, by, src.Intn(2) == 0)
	for _, c := range path {
		carveCorridorCell(g, m, c[0], c[1])
	}

	if src.Intn(100) < doorChance {
		placeDoor(g, path, a, b)
	}
}

// corridorPath lists the cells of an L-corridor from (ax, ay) to
// (bx, by) in walking order, corner included once.
func corridorPath(ax, ay, bx, by int, horizontalFirst bool) [][2]int {
	if horizontalFirst {
		path := lineCells(ax, ay, bx, ay)
		return append(path, lineCells(bx, ay, bx, by)[1:]...)
	}
	path := lineCells(ax, ay, ax, by)
	return append(path, lineCells(ax, by, bx, by)[1:]...)
}

// lineCells lists a straight horizontal or vertical run of cells,
// endpoints included, in walking order.
func lineCells(x1, y1, x2, y2 int) [][2]int {
	dx, dy := 0, 0
	switch {
	case x2 > x1:
		dx = 1
	case x2 < x1:
		dx = -1
	case y2 > y1:
		dy = 1
	case y2 < y1:
		dy = -1
	}
	cells := [][2]int{{x1, y1}}
	for x, y := x1, y1; x != x2 || y != y2; {
		x += dx
		y += dy
		cells = append(cells, [2]int{x, y})
	}
	return cells
}

// placeDoor puts a door where the corridor crosses a room boundary:
// first choice is the corridor cell just outside the destination room,
// fallback is the one just outside the origin room. A cell only takes a
// door if it is shaped like a doorway.
func placeDoor(g *grid.Grid, path [][2]int, a, b Room) {
	for i := 1; i < len(path); i++ {
		if b.contains(path[i][0], path[i][1]) && !b.contains(path[i-1][0], path[i-1][1]) {
			if setDoor(g, path[i-1][0], path[i-1][1]) {
				return
			}
			break
		}
	}
	for i := len(path) - 2; i >= 0; i-- {
		if a.contains(path[i][0], path[i][1]) && !a.contains(path[i+1][0], path[i+1][1]) {
			setDoor(g, path[i+1][0], path[i+1][1])
			return
		}
	}
}

func setDoor(g *grid.Grid, x, y int) bool {
	if !isDoorway(g, x, y) {
		return false
	}
	g.Set(x, y, grid.CellDoor)
	return true
}

// isDoorway reports whether (x, y) is a floor cell flanked by wall on
// at least two sides, the shape a door can hang in.
func isDoorway(g *grid.Grid, x, y int) bool {
	if !g.InBounds(x, y) || g.Get(x, y) != grid.CellFloor {
		return false
	}
	walls := 0
	for _, d := range grid.AllDirections() {
		dx, dy := d.Delta()
		nx, ny := x+dx, y+dy
		if !g.InBounds(nx, ny) || g.Get(nx, ny) == grid.CellWall {
			walls++
		}
	}
	return walls >= 2
}

// carveCorridorCell floors a wall cell if it is inside the mask and off
// the perimeter. Doors and existing floor are left alone.
func carveCorridorCell(g *grid.Grid, m mask.Mask, x, y int) {
	if x < 1 || x >= g.Width()-1 || y < 1 || y >= g.Height()-1 {
		return
	}
	if !m.Contains(x, y) {
		return
	}
	if g.Get(x, y) == grid.CellWall {
		g.Set(x, y, grid.CellFloor)
	}
}
