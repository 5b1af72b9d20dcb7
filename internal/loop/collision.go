package loop

import (
	"go.uber.org/zap"
)

// checkCollision returns the index of the first alive projectile touching
// the ship. Only the alive prefix of the pool is scanned.
func (g *Game) checkCollision() (int, bool) {
	box := g.ship.Hitbox()
	for i := 0; i < g.pool.Cap() && g.pool.IsAlive(i); i++ {
		if box.Overlaps(g.pool.Hitbox(i)) {
			return i, true
		}
	}
	return -1, false
}

// collide ends the game: death cue, theme paused, final score shown, then a
// restart is requested.
func (g *Game) collide(i int) {
	g.deps.Audio.Death()
	g.deps.Audio.PauseTheme()

	g.state = StateTerminated
	g.reason = ReasonCollision

	x, y := g.ship.Position()
	g.log.Info("ship hit",
		zap.Int("score", g.ship.Score()),
		zap.Int("level", g.level.Value()),
		zap.Float64("ship_x", x),
		zap.Float64("ship_y", y),
		zap.Float64("projectile_x", g.pool.X(i)),
		zap.Float64("projectile_y", g.pool.Y(i)),
	)

	g.deps.Notifier.GameOver(g.ctx, g.ship.Score())
	g.finish(ErrRestart)
}
