// Package preview opens an Ebiten window showing the rendered map.
// It is a viewer for finished results: each keypress runs a complete
// new generation, nothing is generated incrementally.
package preview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mapforge/pkg/dungeon"
	"mapforge/pkg/render/raster"
)

// Previewer displays generation results and regenerates on demand:
// R advances to the next seed, Escape closes the window.
type Previewer struct {
	cfg   dungeon.Config
	res   *dungeon.Result
	image *ebiten.Image
}

// Run generates the configured map, opens the window, and blocks until
// the window closes.
func Run(cfg dungeon.Config) error {
	p := &Previewer{cfg: cfg}
	if err := p.regenerate(); err != nil {
		return err
	}

	ebiten.SetWindowSize(p.res.Width*p.res.GridSize, p.res.Height*p.res.GridSize)
	p.setTitle()
	return ebiten.RunGame(p)
}

// regenerate runs a fresh generation and rasterizes it.
func (p *Previewer) regenerate() error {
	res, err := dungeon.Generate(p.cfg)
	if err != nil {
		return err
	}
	p.res = res
	p.image = ebiten.NewImageFromImage(raster.Image(res))
	return nil
}

func (p *Previewer) setTitle() {
	ebiten.SetWindowTitle(fmt.Sprintf("mapforge - %s %s seed %d", p.cfg.Size, p.res.Mask, p.res.Seed))
}

// Update handles input (Ebiten interface).
func (p *Previewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.cfg.Seed = p.res.Seed + 1
		if err := p.regenerate(); err != nil {
			return err
		}
		p.setTitle()
	}
	return nil
}

// Draw renders the current map image (Ebiten interface).
func (p *Previewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(p.image, nil)
}

// Layout reports the logical screen size (Ebiten interface).
func (p *Previewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.res.Width * p.res.GridSize, p.res.Height * p.res.GridSize
}
