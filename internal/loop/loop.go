// Package loop runs the game: it binds entities to drawing layers and drives
// the render, physics and score tasks from one scheduler.
package loop

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/skyshooter/internal/asset"
	"github.com/tomz197/skyshooter/internal/audio"
	"github.com/tomz197/skyshooter/internal/config"
	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/input"
)

var (
	// ErrUnsupportedSurface is returned by Init when the surface cannot
	// render the game. The game must not be started.
	ErrUnsupportedSurface = errors.New("loop: unsupported drawing surface")

	// ErrRestart is returned by Start after a collision once the player has
	// seen the final score. Hosts build a fresh Game.
	ErrRestart = errors.New("loop: game over, restart")

	// ErrQuit is returned by Start when the player asks to leave.
	ErrQuit = errors.New("loop: player quit")
)

// Deps are the collaborators a Game draws, reads and plays through.
type Deps struct {
	Surface  draw.Surface
	Assets   *asset.Repository
	Input    input.Source
	Audio    audio.Player
	Notifier Notifier
	Logger   *zap.Logger
	Rand     *rand.Rand
	Clock    func() time.Time
}

// Run plays games back to back until the player quits or ctx is done.
// Each round after a collision starts from level 1 with an empty pool. No
// new round is built once ctx is done.
func Run(ctx context.Context, deps Deps, cfg *config.Config) error {
	deps = deps.withDefaults(cfg)
	log := deps.Logger

	for round := 1; ; round++ {
		g := New(deps, cfg)
		if err := g.Init(); err != nil {
			return err
		}

		err := g.Start(ctx)
		switch {
		case errors.Is(err, ErrRestart):
			// The session may have ended while the final score was shown.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			log.Info("restarting game", zap.Int("round", round), zap.Int("score", g.Score()))
			continue
		case errors.Is(err, ErrQuit):
			log.Info("player quit", zap.Int("round", round), zap.Int("score", g.Score()))
			return nil
		case err != nil:
			return err
		default:
			return nil
		}
	}
}

// withDefaults fills optional dependencies.
func (d Deps) withDefaults(cfg *config.Config) Deps {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Audio == nil {
		d.Audio = audio.Nop{}
	}
	if d.Notifier == nil {
		d.Notifier = nopNotifier{}
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.Rand == nil {
		seed := cfg.Game.Seed
		if seed == 0 {
			seed = d.Clock().UnixNano()
		}
		d.Rand = rand.New(rand.NewSource(seed))
	}
	return d
}

// check reports missing required dependencies.
func (d Deps) check() error {
	switch {
	case d.Surface == nil:
		return errors.New("loop: no drawing surface")
	case d.Assets == nil:
		return errors.New("loop: no assets")
	case d.Input == nil:
		return errors.New("loop: no input source")
	}
	return nil
}
