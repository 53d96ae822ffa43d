// Package dungeon tests cover the generation contract end to end:
// determinism per seed, stair invariants, mask containment, and the
// failure modes for bad configurations and impossible requests.
package dungeon

import (
	"errors"
	"testing"

	"mapforge/pkg/dungeon/carve"
	"mapforge/pkg/dungeon/mask"
	"mapforge/pkg/engine/grid"
)

func TestGenerate_Medium(t *testing.T) {
	res, err := Generate(Config{
		Size:   "medium",
		Mask:   "rectangle",
		Stairs: StairRequest{Up: 1, Down: 2},
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if res.Width != 60 || res.Height != 45 {
		t.Errorf("medium dimensions = %dx%d, want 60x45", res.Width, res.Height)
	}
	if res.Grid.Width() != res.Width || res.Grid.Height() != res.Height {
		t.Error("grid dimensions disagree with result metadata")
	}
	if res.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want DefaultSeed %d when unset", res.Seed, DefaultSeed)
	}
	if res.GridSize != DefaultGridSize {
		t.Errorf("GridSize = %d, want default %d", res.GridSize, DefaultGridSize)
	}
	if res.FloorCount == 0 {
		t.Error("generated result has no floor cells")
	}
	if res.RoomCount == 0 {
		t.Error("generated result has no rooms")
	}
}

func TestGenerate_StairCounts(t *testing.T) {
	res, err := Generate(Config{
		Size:   "medium",
		Mask:   "rectangle",
		Stairs: StairRequest{Up: 1, Down: 2},
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	ups, downs := 0, 0
	for _, s := range res.Stairs {
		switch s.Kind {
		case grid.StairUp:
			ups++
		case grid.StairDown:
			downs++
		}
	}
	if ups != 1 {
		t.Errorf("up stairs = %d, want exactly 1", ups)
	}
	if downs != 2 {
		t.Errorf("down stairs = %d, want exactly 2", downs)
	}
}

func TestGenerate_StairsOnFloorAndUnique(t *testing.T) {
	for _, maskName := range []string{"rectangle", "round", "cross", "cavernous", "keep"} {
		res, err := Generate(Config{
			Size:   "large",
			Mask:   maskName,
			Stairs: StairRequest{Up: 2, Down: 2},
			Seed:   8,
		})
		if err != nil {
			t.Fatalf("Generate(mask=%s) returned error: %v", maskName, err)
		}
		seen := map[[2]int]bool{}
		for _, s := range res.Stairs {
			if got := res.Grid.Get(s.X, s.Y); got != grid.CellFloor {
				t.Errorf("mask=%s: stair at (%d,%d) on %v, want Floor", maskName, s.X, s.Y, got)
			}
			key := [2]int{s.X, s.Y}
			if seen[key] {
				t.Errorf("mask=%s: duplicate stair at (%d,%d)", maskName, s.X, s.Y)
			}
			seen[key] = true
		}
	}
}

func TestGenerate_SameSeedSameResult(t *testing.T) {
	cfg := Config{
		Size:   "medium",
		Mask:   "cavernous",
		Stairs: StairRequest{Up: 1, Down: 1},
		Seed:   12345,
	}
	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	a.Grid.ForEachCell(func(x, y int, c grid.CellType) {
		if b.Grid.Get(x, y) != c {
			t.Fatalf("grids diverge at (%d,%d): %v != %v", x, y, c, b.Grid.Get(x, y))
		}
	})
	if len(a.Stairs) != len(b.Stairs) {
		t.Fatalf("stair counts differ: %d != %d", len(a.Stairs), len(b.Stairs))
	}
	for i := range a.Stairs {
		if a.Stairs[i] != b.Stairs[i] {
			t.Errorf("stair %d differs: %+v != %+v", i, a.Stairs[i], b.Stairs[i])
		}
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a, err := Generate(Config{Size: "medium", Mask: "rectangle", Seed: 1})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	b, err := Generate(Config{Size: "medium", Mask: "rectangle", Seed: 2})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	same := true
	a.Grid.ForEachCell(func(x, y int, c grid.CellType) {
		if b.Grid.Get(x, y) != c {
			same = false
		}
	})
	if same {
		t.Error("seeds 1 and 2 produced identical grids")
	}
}

func TestGenerate_RoundMaskContainment(t *testing.T) {
	res, err := Generate(Config{Size: "medium", Mask: "round", Seed: 6})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	m := mask.New(mask.Round, res.Width, res.Height, nil)
	res.Grid.ForEachCell(func(x, y int, c grid.CellType) {
		if c != grid.CellWall && !m.Contains(x, y) {
			t.Errorf("non-wall cell (%d,%d)=%v outside round silhouette", x, y, c)
		}
	})
}

func TestGenerate_ExhaustionOnExcessiveStairs(t *testing.T) {
	_, err := Generate(Config{
		Size:   "small",
		Mask:   "rectangle",
		Stairs: StairRequest{Up: 1000, Down: 1000},
	})
	var exhausted *carve.PlacementExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Generate error = %v, want PlacementExhaustedError", err)
	}
	if exhausted.Requested != 2000 {
		t.Errorf("Requested = %d, want 2000", exhausted.Requested)
	}
	if exhausted.FloorCells >= 2000 {
		t.Errorf("FloorCells = %d, expected small grid capacity below request", exhausted.FloorCells)
	}
}

func TestGenerate_InvalidConfigurations(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"unknown size", Config{Size: "gigantic", Mask: "rectangle"}},
		{"unknown mask", Config{Size: "medium", Mask: "hexagon"}},
		{"empty mask", Config{Size: "medium", Mask: ""}},
		{"negative up stairs", Config{Size: "medium", Mask: "rectangle", Stairs: StairRequest{Up: -1}}},
		{"negative down stairs", Config{Size: "medium", Mask: "rectangle", Stairs: StairRequest{Down: -2}}},
		{"negative grid size", Config{Size: "medium", Mask: "rectangle", GridSize: -4}},
	}
	for _, tc := range cases {
		_, err := Generate(tc.cfg)
		var invalid *InvalidConfigError
		if !errors.As(err, &invalid) {
			t.Errorf("%s: Generate error = %v, want InvalidConfigError", tc.name, err)
		}
	}
}

func TestGenerate_NoMaskFallback(t *testing.T) {
	// An unknown mask must fail, never silently carve a rectangle.
	res, err := Generate(Config{Size: "small", Mask: "rectangel"})
	if err == nil {
		t.Fatalf("misspelled mask generated a %v layout instead of failing", res.Mask)
	}
}

func TestGenerate_FreshStatePerCall(t *testing.T) {
	// Interleaving other generations must not disturb a seed's output.
	cfg := Config{Size: "small", Mask: "round", Seed: 99, Stairs: StairRequest{Up: 1, Down: 1}}
	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := Generate(Config{Size: "large", Mask: "cavernous", Seed: 555}); err != nil {
		t.Fatalf("interleaved Generate returned error: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	a.Grid.ForEachCell(func(x, y int, c grid.CellType) {
		if b.Grid.Get(x, y) != c {
			t.Fatalf("interleaved generation disturbed seed %d at (%d,%d)", cfg.Seed, x, y)
		}
	})
}
