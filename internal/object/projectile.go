package object

import (
	"github.com/tomz197/skyshooter/internal/draw"
)

// Projectile is a cloud scrolling toward the ship. Projectiles live in a
// Pool and are reused rather than allocated per shot.
type Projectile struct {
	bind   Binding
	sprite *draw.Image

	x, y          float64
	width, height float64
	speed         float64
	alive         bool
}

// Compile-time check that Projectile implements Drawable.
var _ Drawable = (*Projectile)(nil)

// newProjectile creates a dead projectile at the origin sized to sprite.
func newProjectile(sprite *draw.Image, bind Binding) *Projectile {
	return &Projectile{
		bind:   bind,
		sprite: sprite,
		width:  sprite.Width(),
		height: sprite.Height(),
	}
}

// Spawn places the projectile and marks it alive. The pool only spawns dead
// projectiles.
func (p *Projectile) Spawn(x, y, speed float64) {
	p.x = x
	p.y = y
	p.speed = speed
	p.alive = true
}

// Draw erases the previous footprint and moves the projectile left by its
// speed. Once it is past the left edge it reports the exit instead of
// drawing.
func (p *Projectile) Draw() bool {
	p.bind.Target.ClearRect(p.x, p.y, p.width, p.height)
	p.x -= p.speed
	// Compared against the height, not the width; sprites are wider than
	// tall so the tail is still on screen for a few frames.
	if p.x <= -p.height {
		return true
	}
	p.bind.Target.DrawImage(p.sprite, p.x, p.y)
	return false
}

// Move is a no-op; projectiles move in Draw.
func (p *Projectile) Move() {}

// Clear resets position and speed and marks the projectile dead.
func (p *Projectile) Clear() {
	p.x = 0
	p.y = 0
	p.speed = 0
	p.alive = false
}

// Alive reports whether the projectile is in use.
func (p *Projectile) Alive() bool { return p.alive }

// Position returns the top-left corner.
func (p *Projectile) Position() (x, y float64) { return p.x, p.y }

// Size returns the sprite size.
func (p *Projectile) Size() (w, h float64) { return p.width, p.height }

// Speed returns the leftward speed per frame.
func (p *Projectile) Speed() float64 { return p.speed }
