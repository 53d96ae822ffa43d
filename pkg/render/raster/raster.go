// Package raster renders a generation result to a PNG image for
// virtual-tabletop use: one square of GridSize pixels per cell, with a
// subtle grid line and stair glyph squares overlaid.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"mapforge/pkg/dungeon"
	"mapforge/pkg/engine/grid"
)

// Cell and overlay colors.
var (
	colorWall      = color.RGBA{R: 38, G: 34, B: 30, A: 255}
	colorFloor     = color.RGBA{R: 189, G: 174, B: 147, A: 255}
	colorDoor      = color.RGBA{R: 133, G: 94, B: 66, A: 255}
	colorWater     = color.RGBA{R: 64, G: 108, B: 165, A: 255}
	colorStairUp   = color.RGBA{R: 240, G: 240, B: 235, A: 255}
	colorStairDown = color.RGBA{R: 20, G: 20, B: 24, A: 255}
	colorGridLine  = color.RGBA{R: 0, G: 0, B: 0, A: 40}
)

// Renderer writes PNG images.
type Renderer struct{}

// New creates a raster renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the renderer name.
func (r *Renderer) Name() string {
	return "png"
}

// Render encodes the result as a PNG to w.
func (r *Renderer) Render(res *dungeon.Result, w io.Writer) error {
	return png.Encode(w, Image(res))
}

// Image draws the result into a new RGBA image of
// (Width*GridSize) x (Height*GridSize) pixels.
func Image(res *dungeon.Result) *image.RGBA {
	cell := res.GridSize
	img := image.NewRGBA(image.Rect(0, 0, res.Width*cell, res.Height*cell))

	res.Grid.ForEachCell(func(x, y int, c grid.CellType) {
		fillCell(img, x, y, cell, cellColor(c))
		if c != grid.CellWall {
			drawGridLine(img, x, y, cell)
		}
	})

	// Stairs render as an inset square on their floor cell.
	for _, s := range res.Stairs {
		overlay := colorStairUp
		if s.Kind == grid.StairDown {
			overlay = colorStairDown
		}
		inset := cell / 4
		fillRect(img, s.X*cell+inset, s.Y*cell+inset, cell-2*inset, cell-2*inset, overlay)
	}

	return img
}

func cellColor(c grid.CellType) color.RGBA {
	switch c {
	case grid.CellFloor:
		return colorFloor
	case grid.CellDoor:
		return colorDoor
	case grid.CellWater:
		return colorWater
	default:
		return colorWall
	}
}

func fillCell(img *image.RGBA, x, y, cell int, col color.RGBA) {
	fillRect(img, x*cell, y*cell, cell, cell, col)
}

func fillRect(img *image.RGBA, px, py, w, h int, col color.RGBA) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			img.SetRGBA(px+dx, py+dy, col)
		}
	}
}

// drawGridLine draws the top and left edge of a cell, giving carved
// space the familiar VTT grid without doubling line thickness.
func drawGridLine(img *image.RGBA, x, y, cell int) {
	for d := 0; d < cell; d++ {
		blend(img, x*cell+d, y*cell)
		blend(img, x*cell, y*cell+d)
	}
}

func blend(img *image.RGBA, px, py int) {
	existing := img.RGBAAt(px, py)
	a := int(colorGridLine.A)
	existing.R = uint8((int(existing.R)*(255-a) + int(colorGridLine.R)*a) / 255)
	existing.G = uint8((int(existing.G)*(255-a) + int(colorGridLine.G)*a) / 255)
	existing.B = uint8((int(existing.B)*(255-a) + int(colorGridLine.B)*a) / 255)
	img.SetRGBA(px, py, existing)
}
