// Package object holds the game entities: the scrolling background, the
// player ship and the pooled projectiles.
package object

import (
	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/physics"
)

// Drawable is the capability every entity shares. Each entity owns its own
// state; there is no common base value.
type Drawable interface {
	Position() (x, y float64)
	Size() (w, h float64)
	Speed() float64

	// Draw renders the entity onto its layer. It returns true when the
	// entity has left the viewport and should be released.
	Draw() bool

	// Move applies per-frame input and cadence logic.
	Move()
}

// Binding ties an entity kind to its layer and the layer's logical size.
// It is assigned once at construction and never changed.
type Binding struct {
	Target draw.Target
	Width  float64
	Height float64
}

// Bind creates a Binding for t.
func Bind(t draw.Target) Binding {
	return Binding{Target: t, Width: t.Width(), Height: t.Height()}
}

// Collision insets trim the transparent margins of the sprites so only the
// visible bodies collide.
const (
	shipInsetX  = 10 // ship box is shifted left by this much
	shipInsetY  = 10
	cloudInsetX = 20
	cloudInsetT = 10
	cloudInsetB = 5
)

// ShipHitbox returns the collision box of a ship at x, y with size w, h.
func ShipHitbox(x, y, w, h float64) physics.Rect {
	return physics.NewRect(x, y, w, h).
		Offset(-shipInsetX, 0).
		Inset(0, shipInsetY, 0, shipInsetY)
}

// ProjectileHitbox returns the collision box of a projectile at x, y with
// size w, h.
func ProjectileHitbox(x, y, w, h float64) physics.Rect {
	return physics.NewRect(x, y, w, h).Inset(cloudInsetX, cloudInsetT, cloudInsetX, cloudInsetB)
}
