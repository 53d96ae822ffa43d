// Package dungeon is the generation entry point: it validates a
// configuration, runs the carve/stairs/decoration pipeline over a fresh
// grid, and returns the result with its metadata. Each Generate call
// owns its grid, random source, and noise table for the whole run.
package dungeon

import (
	"mapforge/pkg/dungeon/mask"
)

// DefaultSeed is used when a configuration leaves the seed unset, so
// the default invocation is reproducible.
const DefaultSeed = 1977

// DefaultGridSize is the default cell edge in pixels, consumed only by
// the raster renderer.
const DefaultGridSize = 16

// StairRequest holds the requested vertical connectivity counts.
type StairRequest struct {
	Up   int
	Down int
}

// Config holds the recognized generation options.
type Config struct {
	// Size is a named tier: "small", "medium", or "large".
	Size string
	// Mask names the boundary silhouette; see the mask package.
	Mask string
	// GridSize is the cell edge in pixels for rasterization. Zero
	// selects DefaultGridSize.
	GridSize int
	// Stairs requests up/down stair counts.
	Stairs StairRequest
	// Seed drives every random decision. Zero selects DefaultSeed.
	Seed int64
}

// sizeTier maps a named size to canonical dimensions and carve tuning.
type sizeTier struct {
	width, height int
	roomTarget    int
	minRooms      int
}

var sizeTiers = map[string]sizeTier{
	"small":  {width: 40, height: 30, roomTarget: 7, minRooms: 2},
	"medium": {width: 60, height: 45, roomTarget: 10, minRooms: 3},
	"large":  {width: 80, height: 60, roomTarget: 14, minRooms: 4},
}

// SizeNames returns the recognized size tier names.
func SizeNames() []string {
	return []string{"small", "medium", "large"}
}

// validated is a config with names resolved and defaults applied.
type validated struct {
	tier     sizeTier
	maskType mask.Type
	gridSize int
	stairs   StairRequest
	seed     int64
}

// validate resolves names and rejects impossible requests before any
// carving starts.
func (c Config) validate() (validated, error) {
	v := validated{}

	tier, ok := sizeTiers[c.Size]
	if !ok {
		return v, &InvalidConfigError{Field: "size", Value: c.Size, Reason: "unknown size tier"}
	}
	v.tier = tier

	maskType, err := mask.ParseType(c.Mask)
	if err != nil {
		return v, &InvalidConfigError{Field: "mask", Value: c.Mask, Reason: "unknown mask type"}
	}
	v.maskType = maskType

	if c.Stairs.Up < 0 || c.Stairs.Down < 0 {
		return v, &InvalidConfigError{Field: "stairs", Value: "", Reason: "stair counts must not be negative"}
	}
	v.stairs = c.Stairs

	if c.GridSize < 0 {
		return v, &InvalidConfigError{Field: "gridSize", Value: "", Reason: "grid size must not be negative"}
	}
	v.gridSize = c.GridSize
	if v.gridSize == 0 {
		v.gridSize = DefaultGridSize
	}

	v.seed = c.Seed
	if v.seed == 0 {
		v.seed = DefaultSeed
	}

	return v, nil
}
