// Package mask defines the boundary silhouettes a layout is carved
// inside. A mask is a stateless predicate over grid coordinates; the
// carver rejects any carve that would touch a cell outside it.
package mask

import (
	"fmt"

	"mapforge/pkg/engine/noise"
)

// Type is the closed set of supported silhouette shapes.
type Type int

const (
	// Rectangle is the full bounding box.
	Rectangle Type = iota
	// Round is the ellipse inscribed in the bounding box.
	Round
	// Cross is the union of the horizontal and vertical middle thirds.
	Cross
	// Cavernous is a noise-perturbed blob around the grid center.
	Cavernous
	// Keep is a fortress silhouette: an outer curtain-wall band plus a
	// central keep square.
	Keep
)

// String returns the mask type name as accepted by ParseType.
func (t Type) String() string {
	switch t {
	case Rectangle:
		return "rectangle"
	case Round:
		return "round"
	case Cross:
		return "cross"
	case Cavernous:
		return "cavernous"
	case Keep:
		return "keep"
	default:
		return "unknown"
	}
}

// Types returns all supported mask types.
func Types() []Type {
	return []Type{Rectangle, Round, Cross, Cavernous, Keep}
}

// ParseType resolves a mask name. Unknown names are an error, never a
// silent fallback to rectangle.
func ParseType(name string) (Type, error) {
	for _, t := range Types() {
		if t.String() == name {
			return t, nil
		}
	}
	return Rectangle, fmt.Errorf("unknown mask type %q", name)
}

// Mask is a boundary predicate bound to concrete grid dimensions.
type Mask struct {
	kind   Type
	width  int
	height int
	table  *noise.Table
}

// New creates a mask for the given shape and dimensions. The noise
// table is only sampled by Cavernous; it may be nil for other shapes.
func New(kind Type, width, height int, table *noise.Table) Mask {
	if kind == Cavernous && table == nil {
		panic("mask: cavernous mask requires a noise table")
	}
	return Mask{kind: kind, width: width, height: height, table: table}
}

// Kind returns the mask's shape type.
func (m Mask) Kind() Type {
	return m.kind
}

// Contains reports whether the cell at (x, y) lies inside the
// silhouette. Coordinates outside the bounding box are never inside.
func (m Mask) Contains(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}

	switch m.kind {
	case Rectangle:
		return true
	case Round:
		return m.insideEllipse(x, y)
	case Cross:
		return m.insideCross(x, y)
	case Cavernous:
		return m.insideCavern(x, y)
	case Keep:
		return m.insideKeep(x, y)
	default:
		return false
	}
}

// normalized maps a cell center onto [-1, 1] coordinates relative to
// the grid center.
func (m Mask) normalized(x, y int) (nx, ny float64) {
	nx = (float64(x) + 0.5 - float64(m.width)/2) / (float64(m.width) / 2)
	ny = (float64(y) + 0.5 - float64(m.height)/2) / (float64(m.height) / 2)
	return nx, ny
}

func (m Mask) insideEllipse(x, y int) bool {
	nx, ny := m.normalized(x, y)
	return nx*nx+ny*ny <= 1
}

func (m Mask) insideCross(x, y int) bool {
	hBand := y >= m.height/3 && y < m.height-m.height/3
	vBand := x >= m.width/3 && x < m.width-m.width/3
	return hBand || vBand
}

// insideCavern perturbs a radial falloff with fractal noise. The center
// is always inside (falloff 1 dominates any noise value), so a carvable
// region exists for every seed.
func (m Mask) insideCavern(x, y int) bool {
	const (
		frequency = 0.09
		weight    = 0.55
		threshold = 0.35
	)
	nx, ny := m.normalized(x, y)
	falloff := 1 - (nx*nx + ny*ny)
	v := m.table.FBM(float64(x)*frequency, float64(y)*frequency,
		noise.DefaultOctaves, noise.DefaultLacunarity, noise.DefaultPersistence)
	return falloff+v*weight > threshold
}

func (m Mask) insideKeep(x, y int) bool {
	short := m.width
	if m.height < short {
		short = m.height
	}
	margin := short / 10
	band := short / 5

	// Distance from the nearest grid edge.
	edge := x
	if y < edge {
		edge = y
	}
	if m.width-1-x < edge {
		edge = m.width - 1 - x
	}
	if m.height-1-y < edge {
		edge = m.height - 1 - y
	}

	if edge >= margin && edge < margin+band {
		return true
	}

	// Central keep square.
	cx := m.width / 2
	cy := m.height / 2
	return abs(x-cx) <= m.width/6 && abs(y-cy) <= m.height/6
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
