package grid

// Direction is a cardinal step between neighboring cells. The carver
// and BFS-style traversals use it to enumerate a cell's orthogonal
// neighbors.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns the four cardinal directions in a fixed order,
// so iteration over neighbors stays deterministic.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid reports whether d is one of the four cardinal directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction. Y grows
// downwards, matching grid storage order.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
