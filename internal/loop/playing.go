package loop

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/skyshooter/internal/object"
)

// renderFrame draws one frame: background, ship input, projectiles, ship.
func (g *Game) renderFrame(_ time.Time) {
	g.deps.Input.Poll()
	if g.deps.Input.Quit() {
		g.finish(ErrQuit)
		return
	}

	g.background.Draw()
	g.ship.Move()
	g.pool.Animate()
	g.ship.Draw()

	if err := g.deps.Surface.Present(); err != nil {
		g.finish(fmt.Errorf("loop: present frame: %w", err))
	}
}

// physicsTick applies gravity to the ship and checks it against every
// alive projectile.
func (g *Game) physicsTick(_ time.Time) {
	g.ship.Fall(object.Gravity(g.level.Value(), g.cfg.Game.Gravity))

	if i, hit := g.checkCollision(); hit {
		g.collide(i)
	}
}

// scoreTick adds a point and raises the level each time the score passes
// ScorePerLevel times the current level. Alive projectiles and the
// background pick up the new speed immediately.
func (g *Game) scoreTick(_ time.Time) {
	score := g.ship.AddScore(1)
	if score <= g.cfg.Game.ScorePerLevel*g.level.Value() {
		return
	}

	level := g.level.Advance()
	speed := g.level.Speed()
	for i := 0; i < g.pool.Cap(); i++ {
		if g.pool.IsAlive(i) {
			g.pool.SetSpeed(i, speed)
		}
	}
	g.background.SetSpeed(speed)

	g.log.Debug("level up", zap.Int("level", level), zap.Int("score", score))
}
