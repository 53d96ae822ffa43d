package ascii

import (
	"strings"
	"testing"

	"mapforge/pkg/dungeon"
)

func generateFixture(t *testing.T) *dungeon.Result {
	t.Helper()
	res, err := dungeon.Generate(dungeon.Config{
		Size:   "small",
		Mask:   "rectangle",
		Stairs: dungeon.StairRequest{Up: 1, Down: 2},
		Seed:   3,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	return res
}

func TestRender_MapDimensions(t *testing.T) {
	res := generateFixture(t)
	var buf strings.Builder
	if err := New().Render(res, &buf); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	mapLines := lines[len(lines)-res.Height:]
	if len(mapLines) != res.Height {
		t.Fatalf("map has %d lines, want %d", len(mapLines), res.Height)
	}
	for i, line := range mapLines {
		if len([]rune(line)) != res.Width {
			t.Errorf("map line %d has %d cells, want %d", i, len([]rune(line)), res.Width)
		}
	}
}

func TestRender_MetadataAndLegend(t *testing.T) {
	res := generateFixture(t)
	var buf strings.Builder
	if err := New().Render(res, &buf); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"seed: 3", "mask: rectangle", "size: 40x30", "legend:"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q", want)
		}
	}
}

func TestRender_StairOverlay(t *testing.T) {
	res := generateFixture(t)
	var buf strings.Builder
	if err := New().Render(res, &buf); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	out := buf.String()
	mapPart := out[strings.LastIndex(out, "\n\n")+2:]
	ups := strings.Count(mapPart, "<")
	downs := strings.Count(mapPart, ">")
	if ups != 1 || downs != 2 {
		t.Errorf("stair markers = %d up / %d down, want 1/2", ups, downs)
	}
}

func TestName(t *testing.T) {
	if New().Name() != "ascii" {
		t.Errorf("Name() = %q, want \"ascii\"", New().Name())
	}
}
