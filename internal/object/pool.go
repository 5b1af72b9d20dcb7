package object

import (
	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/physics"
)

// Pool is a fixed set of projectiles. Alive projectiles always form a
// prefix of the slice and dead ones the suffix; Acquire and Animate keep
// that order by rotating entries, so the slice never grows or shrinks.
type Pool struct {
	items         []*Projectile
	width, height float64
}

// NewPool allocates capacity dead projectiles sized to sprite, all drawing
// through bind.
func NewPool(capacity int, sprite *draw.Image, bind Binding) *Pool {
	items := make([]*Projectile, max(capacity, 0))
	for i := range items {
		items[i] = newProjectile(sprite, bind)
	}
	return &Pool{
		items:  items,
		width:  sprite.Width(),
		height: sprite.Height(),
	}
}

// Acquire spawns the projectile at the free end and moves it to the front.
// When the last slot is alive the pool is full and the request is dropped.
func (p *Pool) Acquire(x, y, speed float64) bool {
	last := len(p.items) - 1
	if last < 0 || p.items[last].alive {
		return false
	}

	e := p.items[last]
	e.Spawn(x, y, speed)
	copy(p.items[1:], p.items[:last])
	p.items[0] = e
	return true
}

// AcquireTwo spawns two projectiles or none: both free-end slots must be
// dead before either is used.
func (p *Pool) AcquireTwo(x1, y1, speed1, x2, y2, speed2 float64) bool {
	n := len(p.items)
	if n < 2 || p.items[n-1].alive || p.items[n-2].alive {
		return false
	}
	p.Acquire(x1, y1, speed1)
	p.Acquire(x2, y2, speed2)
	return true
}

// Animate draws every alive projectile, stopping at the first dead one.
// A projectile that leaves the viewport is cleared and moved to the end;
// the entry that slides into its index is drawn in the same pass.
func (p *Pool) Animate() {
	for i := 0; i < len(p.items); {
		e := p.items[i]
		if !e.alive {
			return
		}
		if !e.Draw() {
			i++
			continue
		}
		e.Clear()
		copy(p.items[i:], p.items[i+1:])
		p.items[len(p.items)-1] = e
	}
}

// IsAlive reports whether slot i holds a live projectile.
func (p *Pool) IsAlive(i int) bool { return p.items[i].alive }

// X returns the x position of slot i.
func (p *Pool) X(i int) float64 { return p.items[i].x }

// Y returns the y position of slot i.
func (p *Pool) Y(i int) float64 { return p.items[i].y }

// SetSpeed sets the speed of slot i.
func (p *Pool) SetSpeed(i int, speed float64) { p.items[i].speed = speed }

// Hitbox returns the collision box of slot i.
func (p *Pool) Hitbox(i int) physics.Rect {
	e := p.items[i]
	return ProjectileHitbox(e.x, e.y, e.width, e.height)
}

// At returns the projectile in slot i.
func (p *Pool) At(i int) *Projectile { return p.items[i] }

// Cap returns the number of slots.
func (p *Pool) Cap() int { return len(p.items) }

// Active returns the length of the alive prefix.
func (p *Pool) Active() int {
	n := 0
	for n < len(p.items) && p.items[n].alive {
		n++
	}
	return n
}

// Width returns the projectile sprite width.
func (p *Pool) Width() float64 { return p.width }

// Height returns the projectile sprite height.
func (p *Pool) Height() float64 { return p.height }
