package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/tomz197/skyshooter/internal/config"
	"github.com/tomz197/skyshooter/internal/loop"
)

// panelColor shades the game-over box.
var panelColor = color.RGBA{R: 0, G: 0, B: 0, A: 200}

// Host adapts the game loop to ebiten.Game. Update steps the scheduler with
// the wall clock; after a collision the host waits for Space before
// starting the next round.
type Host struct {
	surface *Surface
	deps    loop.Deps
	cfg     *config.Config
	log     *zap.Logger
	now     func() time.Time

	game  *loop.Game
	round int
	over  bool
	score int
}

// Compile-time checks that Host implements ebiten.Game and loop.Notifier.
var (
	_ ebiten.Game   = (*Host)(nil)
	_ loop.Notifier = (*Host)(nil)
)

// NewHost wires deps to the window: Surface, Input and Notifier are
// replaced by the window's own.
func NewHost(surface *Surface, deps loop.Deps, cfg *config.Config) *Host {
	h := &Host{surface: surface, cfg: cfg, log: deps.Logger, now: deps.Clock}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	if h.now == nil {
		h.now = time.Now
	}

	deps.Surface = surface
	deps.Input = Keys{}
	deps.Notifier = h
	h.deps = deps
	return h
}

// TPS returns the update rate needed to run every physics tick.
func TPS(t config.TimingConfig) int {
	if t.PhysicsInterval <= 0 {
		return ebiten.DefaultTPS
	}
	return max(int(math.Ceil(float64(time.Second)/float64(t.PhysicsInterval))), ebiten.DefaultTPS)
}

// start builds and begins a fresh game.
func (h *Host) start() error {
	g := loop.New(h.deps, h.cfg)
	if err := g.Init(); err != nil {
		return err
	}
	if err := g.Begin(); err != nil {
		return err
	}

	h.round++
	h.game = g
	h.over = false
	h.log.Info("round started", zap.Int("round", h.round))
	return nil
}

func (h *Host) Update() error {
	if h.game == nil {
		return h.start()
	}

	if h.over {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeySpace):
			return h.start()
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
			return ebiten.Termination
		}
		return nil
	}

	err := h.game.Step(h.now())
	switch {
	case errors.Is(err, loop.ErrRestart):
		h.over = true
		return nil
	case errors.Is(err, loop.ErrQuit):
		h.log.Info("player quit", zap.Int("round", h.round), zap.Int("score", h.game.Score()))
		return ebiten.Termination
	}
	return err
}

func (h *Host) Draw(screen *ebiten.Image) {
	h.surface.Composite(screen)
	if !h.over {
		return
	}

	w, ht := h.surface.Size()
	bx, by := float32(w)/2-150, float32(ht)/2-40
	vector.DrawFilledRect(screen, bx, by, 300, 80, panelColor, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("You died! Your score was: %d", h.score), int(bx)+20, int(by)+16)
	ebitenutil.DebugPrintAt(screen, "Space to play again, Esc to quit", int(bx)+20, int(by)+44)
}

func (h *Host) Layout(_, _ int) (int, int) {
	return h.surface.Size()
}

// GameOver records the score for the overlay. It does not block; Update
// waits for the player instead.
func (h *Host) GameOver(_ context.Context, score int) {
	h.score = score
	h.over = true
}

// Over reports whether the game-over overlay is showing.
func (h *Host) Over() bool { return h.over }

// Score returns the last reported final score.
func (h *Host) Score() int { return h.score }
