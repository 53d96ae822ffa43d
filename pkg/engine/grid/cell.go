// Package grid provides the typed cell matrix shared by the generation
// pipeline and its renderers. These are engine-level constructs with no
// knowledge of how a layout gets carved.
package grid

// CellType is the closed set of cell kinds a grid cell can hold.
type CellType int

const (
	// CellWall is solid rock; the whole grid starts as wall.
	CellWall CellType = iota
	// CellFloor is walkable carved space.
	CellFloor
	// CellDoor sits where a corridor meets a room.
	CellDoor
	// CellWater is a noise-decorated floor cell.
	CellWater
	// CellStairsUp and CellStairsDown are reserved marker kinds for
	// renderers. The pipeline keeps stair cells as CellFloor and tracks
	// stairs in a separate list, so these never appear in a generated
	// grid itself.
	CellStairsUp
	CellStairsDown
)

// String returns the cell type name.
func (c CellType) String() string {
	switch c {
	case CellWall:
		return "Wall"
	case CellFloor:
		return "Floor"
	case CellDoor:
		return "Door"
	case CellWater:
		return "Water"
	case CellStairsUp:
		return "StairsUp"
	case CellStairsDown:
		return "StairsDown"
	default:
		return "Unknown"
	}
}

// Rune returns the single-character map symbol for the cell type.
func (c CellType) Rune() rune {
	switch c {
	case CellWall:
		return '#'
	case CellFloor:
		return '.'
	case CellDoor:
		return '+'
	case CellWater:
		return '~'
	case CellStairsUp:
		return '<'
	case CellStairsDown:
		return '>'
	default:
		return '?'
	}
}

// IsWalkable returns true for cell types a token can occupy.
func (c CellType) IsWalkable() bool {
	return c != CellWall
}

// StairKind distinguishes up and down stairs.
type StairKind int

const (
	StairUp StairKind = iota
	StairDown
)

// String returns the stair kind name.
func (k StairKind) String() string {
	switch k {
	case StairUp:
		return "up"
	case StairDown:
		return "down"
	default:
		return "unknown"
	}
}

// Stair is a placed staircase. The referenced cell is always CellFloor.
type Stair struct {
	X    int
	Y    int
	Kind StairKind
}
