// Package draw defines the drawing targets entities render onto and the
// terminal implementation of them.
package draw

import "errors"

// ErrUnsupported is returned by a Surface that cannot provide layers.
var ErrUnsupported = errors.New("draw: surface not supported")

// Target is one independently addressable drawing layer. Coordinates are
// logical units; the implementation scales them to its own resolution.
type Target interface {
	DrawImage(img *Image, x, y float64)
	ClearRect(x, y, w, h float64)
	FillText(s string, x, y float64)
	Width() float64
	Height() float64
}

// Layers are the three targets the game draws on. Erasing on one layer
// never disturbs the others.
type Layers struct {
	Background Target
	Ship       Target
	Main       Target
}

// Surface provides layers and shows them.
type Surface interface {
	// Layers returns fresh, blank layers. It fails with an error wrapping
	// ErrUnsupported when the surface cannot render the game.
	Layers() (Layers, error)
	// Present makes the current layer contents visible.
	Present() error
}
