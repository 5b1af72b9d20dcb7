package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/skyshooter/internal/draw"
)

// skyColor fills the window behind the background layer.
var skyColor = color.RGBA{R: 8, G: 8, B: 24, A: 255}

// Surface hands out window layers and composites them onto the screen.
// Present is a no-op: ebiten shows the composite every frame from Draw.
type Surface struct {
	width, height int
	cache         *SpriteCache

	background, ship, main *Layer
}

// Compile-time check that Surface implements draw.Surface.
var _ draw.Surface = (*Surface)(nil)

func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height, cache: NewSpriteCache()}
}

// Size returns the logical size, which is also the window's layout size.
func (s *Surface) Size() (int, int) { return s.width, s.height }

// Layers allocates three blank layers, releasing the previous set.
func (s *Surface) Layers() (draw.Layers, error) {
	for _, l := range []*Layer{s.background, s.ship, s.main} {
		if l != nil {
			l.img.Deallocate()
		}
	}

	s.background = NewLayer(s.width, s.height, s.cache)
	s.ship = NewLayer(s.width, s.height, s.cache)
	s.main = NewLayer(s.width, s.height, s.cache)
	return draw.Layers{Background: s.background, Ship: s.ship, Main: s.main}, nil
}

func (s *Surface) Present() error { return nil }

// Composite draws background, main and ship layers onto screen in order.
func (s *Surface) Composite(screen *ebiten.Image) {
	screen.Fill(skyColor)
	for _, l := range []*Layer{s.background, s.main, s.ship} {
		if l != nil {
			screen.DrawImage(l.img, nil)
		}
	}
}
