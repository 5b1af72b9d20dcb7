package object

import (
	"github.com/tomz197/skyshooter/internal/asset"
	"github.com/tomz197/skyshooter/internal/draw"
)

// Backdrops provides the background images by index.
type Backdrops interface {
	Background(i int) *draw.Image
}

// Background pans a backdrop to the left. The image is drawn twice, one
// viewport apart, so the scroll wraps without a gap.
type Background struct {
	bind      Binding
	backdrops Backdrops
	level     *Level

	x, y  float64
	speed float64
}

// Compile-time check that Background implements Drawable.
var _ Drawable = (*Background)(nil)

// NewBackground creates a background at x, y scrolling at the level's speed.
func NewBackground(bind Binding, backdrops Backdrops, level *Level, x, y float64) *Background {
	return &Background{
		bind:      bind,
		backdrops: backdrops,
		level:     level,
		x:         x,
		y:         y,
		speed:     level.Speed(),
	}
}

// Draw pans by the current speed and redraws the backdrop for the level.
// Once a full viewport has scrolled past, the position snaps back to 0.
func (b *Background) Draw() bool {
	b.x -= b.speed
	img := b.backdrops.Background(b.level.Value() % asset.BackgroundCount)

	// Art has transparent gaps; clear so earlier positions do not linger.
	b.bind.Target.ClearRect(0, 0, b.bind.Width, b.bind.Height)
	b.bind.Target.DrawImage(img, b.x, b.y)
	b.bind.Target.DrawImage(img, b.x+b.bind.Width, b.y)

	if b.x+b.bind.Width <= 0 {
		b.x = 0
	}
	return false
}

// Move is a no-op; the background only pans in Draw.
func (b *Background) Move() {}

// SetSpeed changes the pan speed.
func (b *Background) SetSpeed(speed float64) { b.speed = speed }

// Position returns the pan offset.
func (b *Background) Position() (x, y float64) { return b.x, b.y }

// Size returns the viewport size.
func (b *Background) Size() (w, h float64) { return b.bind.Width, b.bind.Height }

// Speed returns the pan speed per frame.
func (b *Background) Speed() float64 { return b.speed }
