package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mapforge/pkg/dungeon"
	"mapforge/pkg/dungeon/carve"
	"mapforge/pkg/dungeon/mask"
	"mapforge/pkg/engine/terminal"
	"mapforge/pkg/render"
	"mapforge/pkg/render/ascii"
	"mapforge/pkg/render/preview"
	"mapforge/pkg/render/raster"
)

var (
	ColorHeading color.Style
	ColorValue   color.Style
	ColorError   color.Style
	ColorSubtle  color.Style
)

// initColors initializes the color styles. Color is disabled entirely
// when stdout is not a terminal (piped or redirected output).
func initColors() {
	if !terminal.IsInteractive() {
		color.Disable()
	}
	ColorHeading = color.Style{color.FgMagenta, color.OpBold}
	ColorValue = color.Style{color.FgCyan}
	ColorError = color.Style{color.FgRed, color.OpBold}
	ColorSubtle = color.Style{color.FgGray}
}

func initGettext() {
	gotext.Configure("po", "en_GB.utf8", "default")
}

// maskNames returns the accepted -mask values for usage text.
func maskNames() string {
	var names []string
	for _, t := range mask.Types() {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}

func main() {
	size := flag.String("size", "medium", "map size tier: "+strings.Join(dungeon.SizeNames(), ", "))
	maskName := flag.String("mask", "rectangle", "boundary mask: "+maskNames())
	seed := flag.Int64("seed", 0, "generation seed (0 uses the fixed default seed)")
	up := flag.Int("up", 1, "number of up stairs")
	down := flag.Int("down", 1, "number of down stairs")
	gridSize := flag.Int("grid-size", 0, "cell edge in pixels for PNG output (0 uses the default)")
	out := flag.String("out", "dungeon.png", "PNG output path (empty disables)")
	dump := flag.String("dump", "", "text map dump path, or - for stdout (empty disables)")
	runPreview := flag.Bool("preview", false, "open a window showing the map; press R for the next seed")
	flag.Parse()

	initGettext()
	initColors()

	cfg := dungeon.Config{
		Size:     *size,
		Mask:     *maskName,
		GridSize: *gridSize,
		Stairs:   dungeon.StairRequest{Up: *up, Down: *down},
		Seed:     *seed,
	}

	res, err := dungeon.Generate(cfg)
	if err != nil {
		reportError(err)
		os.Exit(1)
	}

	if *out != "" {
		if err := renderToFile(raster.New(), res, *out); err != nil {
			ColorError.Println(err)
			os.Exit(1)
		}
	}

	if *dump == "-" {
		if terminal.IsInteractive() && res.Width > terminal.Width() {
			ColorSubtle.Println(gotext.Get("Map is wider than the terminal; rows will wrap."))
		}
		if err := ascii.New().Render(res, os.Stdout); err != nil {
			ColorError.Println(err)
			os.Exit(1)
		}
	} else if *dump != "" {
		if err := renderToFile(ascii.New(), res, *dump); err != nil {
			ColorError.Println(err)
			os.Exit(1)
		}
	}

	printSummary(res, *out, *dump)

	if *runPreview {
		// The previewer re-generates from the same config, so the
		// window shows exactly the map written to disk.
		if err := preview.Run(cfg); err != nil {
			reportError(err)
			os.Exit(1)
		}
	}
}

// renderToFile runs a renderer into a freshly created file.
func renderToFile(r render.Renderer, res *dungeon.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s output: %w", r.Name(), err)
	}
	defer f.Close()

	if err := r.Render(res, f); err != nil {
		return fmt.Errorf("%s output: %w", r.Name(), err)
	}
	return f.Sync()
}

// reportError prints a generation failure with its diagnostics.
func reportError(err error) {
	var invalid *dungeon.InvalidConfigError
	if errors.As(err, &invalid) {
		ColorError.Println(gotext.Get("Invalid configuration"))
		fmt.Println(" ", err)
		ColorSubtle.Println(gotext.Get("Run with -h for accepted values."))
		return
	}

	var exhausted *carve.PlacementExhaustedError
	if errors.As(err, &exhausted) {
		ColorError.Println(gotext.Get("Generation failed: placement exhausted"))
		fmt.Printf("  stage: %s\n", exhausted.Stage)
		fmt.Printf("  placed: %d of %d\n", exhausted.Placed, exhausted.Requested)
		fmt.Printf("  attempts: %d\n", exhausted.Attempts)
		fmt.Printf("  floor cells available: %d\n", exhausted.FloorCells)
		ColorSubtle.Println(gotext.Get("Try a larger size, a different mask, or another seed."))
		return
	}

	ColorError.Println(err)
}

// printSummary prints the generation metadata.
func printSummary(res *dungeon.Result, out, dump string) {
	ColorHeading.Println(gotext.Get("Dungeon generated"))
	fmt.Printf("  %s %s\n", gotext.Get("seed:"), ColorValue.Sprintf("%d", res.Seed))
	fmt.Printf("  %s %s\n", gotext.Get("mask:"), ColorValue.Sprint(res.Mask))
	fmt.Printf("  %s %s\n", gotext.Get("size:"), ColorValue.Sprintf("%dx%d cells", res.Width, res.Height))
	fmt.Printf("  %s %s\n", gotext.Get("rooms:"), ColorValue.Sprintf("%d", res.RoomCount))
	fmt.Printf("  %s %s\n", gotext.Get("floor:"), ColorValue.Sprintf("%d cells (%d water, %d doors)", res.FloorCount, res.WaterCount, res.DoorCount))
	fmt.Printf("  %s %s\n", gotext.Get("stairs:"), ColorValue.Sprintf("%d", len(res.Stairs)))
	if out != "" {
		fmt.Printf("  %s %s\n", gotext.Get("image:"), ColorValue.Sprint(out))
	}
	if dump != "" && dump != "-" {
		fmt.Printf("  %s %s\n", gotext.Get("dump:"), ColorValue.Sprint(dump))
	}
}
