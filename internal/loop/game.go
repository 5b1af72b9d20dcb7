package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/skyshooter/internal/config"
	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/object"
)

// Game owns one play session: the entities, the shared level and the
// scheduler that drives them.
type Game struct {
	deps Deps
	cfg  *config.Config
	log  *zap.Logger
	ctx  context.Context

	state  State
	reason Reason
	sched  *Scheduler
	err    error // why the scheduler was stopped

	level      *object.Level
	background *object.Background
	ship       *object.Ship
	pool       *object.Pool
}

// New creates an uninitialized game.
func New(deps Deps, cfg *config.Config) *Game {
	deps = deps.withDefaults(cfg)
	return &Game{
		deps:  deps,
		cfg:   cfg,
		log:   deps.Logger,
		ctx:   context.Background(),
		sched: NewScheduler(deps.Clock),
	}
}

// Init acquires the three layers, builds the entities and registers the
// physics and score tasks. A surface that cannot render the game yields an
// error wrapping ErrUnsupportedSurface.
func (g *Game) Init() error {
	if g.state != StateUninitialized {
		return fmt.Errorf("loop: Init called in state %s", g.state)
	}
	if err := g.deps.check(); err != nil {
		return err
	}

	layers, err := g.deps.Surface.Layers()
	if err != nil {
		if errors.Is(err, draw.ErrUnsupported) {
			return fmt.Errorf("%w: %w", ErrUnsupportedSurface, err)
		}
		return fmt.Errorf("loop: acquire layers: %w", err)
	}

	gc := g.cfg.Game
	assets := g.deps.Assets
	bgBind := object.Bind(layers.Background)
	shipBind := object.Bind(layers.Ship)
	mainBind := object.Bind(layers.Main)

	g.level = object.NewLevel()
	g.background = object.NewBackground(bgBind, assets, g.level, 0, 0)
	g.pool = object.NewPool(gc.PoolCapacity, assets.Bullet(), mainBind)

	sprite := assets.Ship()
	startX := shipBind.Width/4 - sprite.Width()
	startY := shipBind.Height - shipStartLift - 2*sprite.Height()
	g.ship = object.NewShip(shipBind, startX, startY, object.ShipOptions{
		Sprite:          sprite,
		Pool:            g.pool,
		Level:           g.level,
		Keys:            g.deps.Input,
		Sound:           g.deps.Audio,
		Rand:            g.deps.Rand,
		FireInterval:    gc.FireInterval,
		AscendThreshold: gc.AscendThreshold,
		JumpSpeed:       gc.JumpSpeed,
		FloorMargin:     gc.FloorMargin,
		MuzzleX:         gc.MuzzleX,
		MuzzleLanes:     gc.MuzzleLanes,
	})

	g.sched.Add(taskPhysics, g.cfg.Timing.PhysicsInterval, g.physicsTick)
	g.sched.Add(taskScore, g.cfg.Timing.ScoreInterval, g.scoreTick)

	g.state = StateInitialized
	g.log.Info("game initialized",
		zap.Int("pool_capacity", g.pool.Cap()),
		zap.Float64("ship_x", startX),
		zap.Float64("ship_y", startY),
	)
	return nil
}

// Begin registers the render task and starts the theme. Hosts that drive
// the game with Step call it once instead of Start.
func (g *Game) Begin() error {
	if g.state != StateInitialized {
		return fmt.Errorf("loop: Begin called in state %s", g.state)
	}
	g.sched.Add(taskRender, g.cfg.Timing.FrameInterval(), g.renderFrame)
	g.deps.Audio.PlayTheme()
	g.state = StateRunning
	g.log.Debug("game running", zap.Duration("frame_interval", g.cfg.Timing.FrameInterval()))
	return nil
}

// Start begins the render loop and blocks until the game ends. It returns
// ErrRestart after a collision, ErrQuit when the player leaves and ctx.Err()
// when ctx is done; context cancellation is a teardown and leaves the state
// unchanged.
func (g *Game) Start(ctx context.Context) error {
	if err := g.Begin(); err != nil {
		return err
	}
	g.ctx = ctx
	defer func() { g.ctx = context.Background() }()

	if err := g.sched.Run(ctx); err != nil {
		return err
	}
	return g.err
}

// Step runs every task due at now. It returns a non-nil error once the game
// has ended, with the same values as Start.
func (g *Game) Step(now time.Time) error {
	if g.err == nil {
		g.sched.Step(now)
	}
	return g.err
}

// finish stops the scheduler with err as the outcome.
func (g *Game) finish(err error) {
	if g.err == nil {
		g.err = err
	}
	g.sched.Stop()
}

// State returns the lifecycle phase.
func (g *Game) State() State { return g.state }

// Reason returns why the game terminated.
func (g *Game) Reason() Reason { return g.reason }

// Score returns the ship's score, or 0 before Init.
func (g *Game) Score() int {
	if g.ship == nil {
		return 0
	}
	return g.ship.Score()
}

// Level returns the difficulty level, or 0 before Init.
func (g *Game) Level() int {
	if g.level == nil {
		return 0
	}
	return g.level.Value()
}

// Ship returns the player ship.
func (g *Game) Ship() *object.Ship { return g.ship }

// Pool returns the projectile pool.
func (g *Game) Pool() *object.Pool { return g.pool }

// Background returns the background scroller.
func (g *Game) Background() *object.Background { return g.background }
