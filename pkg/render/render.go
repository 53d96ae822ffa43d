// Package render defines the interface for renderer collaborators that
// consume a generation result. The generation core never imports this
// package or any of its implementations; rendering is strictly
// downstream of the returned result.
package render

import (
	"io"

	"mapforge/pkg/dungeon"
)

// Renderer turns a generation result into an output artifact.
// Implementations include ascii (text map dump) and raster (PNG).
type Renderer interface {
	// Render writes the rendered form of the result to w.
	Render(res *dungeon.Result, w io.Writer) error

	// Name returns a short name for renderer selection.
	Name() string
}
