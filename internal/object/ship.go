package object

import (
	"math/rand"
	"strconv"

	"github.com/tomz197/skyshooter/internal/audio"
	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/input"
	"github.com/tomz197/skyshooter/internal/physics"
)

// fireCadenceFactor stretches the configured fire interval into frames.
const fireCadenceFactor = 7.5

// ShipOptions wires a ship to its collaborators and tuning.
type ShipOptions struct {
	Sprite *draw.Image
	Pool   *Pool
	Level  *Level
	Keys   input.KeyStatus
	Sound  audio.Player
	Rand   *rand.Rand

	FireInterval    float64    // frames between shots at level 1, before fireCadenceFactor
	AscendThreshold float64    // the ship can only jump while y >= this
	JumpSpeed       float64    // vertical speed after a jump, negative is up
	FloorMargin     float64    // gap between the lowest ship position and the bottom
	MuzzleX         float64    // x where projectiles appear
	MuzzleLanes     [2]float64 // y lanes projectiles appear on
}

// Ship is the player. It only moves vertically: a jump sets an upward speed
// and gravity pulls it back to the floor. It also drives the fire cadence
// that feeds the projectile pool.
type Ship struct {
	bind Binding
	opts ShipOptions

	x, y          float64
	width, height float64
	speed         float64 // vertical, positive is down

	counter int // frames since the last shot
	score   int
}

// Compile-time check that Ship implements Drawable.
var _ Drawable = (*Ship)(nil)

// NewShip creates a ship at x, y drawing through bind.
func NewShip(bind Binding, x, y float64, opts ShipOptions) *Ship {
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	return &Ship{
		bind:   bind,
		opts:   opts,
		x:      x,
		y:      y,
		width:  opts.Sprite.Width(),
		height: opts.Sprite.Height(),
	}
}

// Move reads the keys once per frame. Holding up near the floor starts a
// jump. Down, left and right only erase the sprite footprint; they do not
// move the ship. Every frame also advances the fire cadence, which gets
// shorter as the level rises.
func (s *Ship) Move() {
	s.counter++

	keys := s.opts.Keys
	up := keys.Held(input.KeyUp)
	if up || keys.Held(input.KeyDown) || keys.Held(input.KeyLeft) || keys.Held(input.KeyRight) {
		s.bind.Target.ClearRect(s.x, s.y, s.width, s.height)

		if up && s.y >= s.opts.AscendThreshold {
			s.opts.Sound.Jump()
			s.speed = s.opts.JumpSpeed
		}
	}

	if float64(s.counter) >= s.opts.FireInterval*fireCadenceFactor/float64(s.opts.Level.Value()) {
		s.Fire()
		s.counter = 0
	}
}

// Fire requests one projectile on a random lane at the level's speed. A
// full pool drops the shot.
func (s *Ship) Fire() {
	lane := s.opts.MuzzleLanes[1]
	if s.opts.Rand.Intn(10)+1 > 5 {
		lane = s.opts.MuzzleLanes[0]
	}
	s.opts.Pool.Acquire(s.opts.MuzzleX, lane, s.opts.Level.Speed())
}

// Draw clears the whole ship layer, writes the score and level and draws
// the sprite.
func (s *Ship) Draw() bool {
	t := s.bind.Target
	t.ClearRect(0, 0, s.bind.Width, s.bind.Height)
	t.FillText("Score: "+strconv.Itoa(s.score), 10, 40)
	t.FillText("Level: "+strconv.Itoa(s.opts.Level.Value()), 10, 80)
	t.DrawImage(s.opts.Sprite, s.x, s.y)
	return false
}

// Fall applies one physics step: accelerate by accel, move by the speed and
// stop at the floor.
func (s *Ship) Fall(accel float64) {
	s.speed += accel
	s.y += s.speed
	if floor := s.Floor(); s.y >= floor {
		s.y = floor
	}
}

// Floor returns the lowest y the ship can reach.
func (s *Ship) Floor() float64 {
	return s.bind.Height - s.height - s.opts.FloorMargin
}

// Hitbox returns the ship's collision box.
func (s *Ship) Hitbox() physics.Rect {
	return ShipHitbox(s.x, s.y, s.width, s.height)
}

// AddScore adds n points. Score never decreases.
func (s *Ship) AddScore(n int) int {
	if n > 0 {
		s.score += n
	}
	return s.score
}

// Score returns the current score.
func (s *Ship) Score() int { return s.score }

// Pool returns the ship's projectile pool.
func (s *Ship) Pool() *Pool { return s.opts.Pool }

// Position returns the top-left corner.
func (s *Ship) Position() (x, y float64) { return s.x, s.y }

// Size returns the sprite size.
func (s *Ship) Size() (w, h float64) { return s.width, s.height }

// Speed returns the vertical speed.
func (s *Ship) Speed() float64 { return s.speed }
