package grid

import "fmt"

// Grid is a fixed-size matrix of typed cells. A freshly built grid is
// all wall; the generation pipeline carves it in place and the result
// is treated as read-only once handed to a renderer.
type Grid struct {
	cells  [][]CellType
	width  int
	height int
}

// New creates a grid of the given dimensions with every cell set to
// CellWall. Panics on non-positive dimensions; callers validate
// configuration before building a grid.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: dimensions must be positive, got %dx%d", width, height))
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([][]CellType, height),
	}
	for y := range g.cells {
		g.cells[y] = make([]CellType, width)
	}
	return g
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if an x/y position is within grid bounds.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell type at (x, y). Out-of-bounds access is a
// programming error and panics; it never clamps or defaults.
func (g *Grid) Get(x, y int) CellType {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: Get(%d, %d) out of bounds for %dx%d grid", x, y, g.width, g.height))
	}
	return g.cells[y][x]
}

// Set writes the cell type at (x, y). Panics out of bounds, same
// contract as Get.
func (g *Grid) Set(x, y int, c CellType) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: Set(%d, %d) out of bounds for %dx%d grid", x, y, g.width, g.height))
	}
	g.cells[y][x] = c
}

// ForEachCell iterates over all cells in row order, calling the
// provided function for each.
func (g *Grid) ForEachCell(fn func(x, y int, c CellType)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y][x])
		}
	}
}

// Count returns the number of cells of the given type.
func (g *Grid) Count(c CellType) int {
	n := 0
	g.ForEachCell(func(x, y int, cell CellType) {
		if cell == c {
			n++
		}
	})
	return n
}
