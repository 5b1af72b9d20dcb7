package loop

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/input"
)

// Notifier shows the final score when the ship is hit. Terminal
// implementations block until the player acknowledges it.
type Notifier interface {
	GameOver(ctx context.Context, score int)
}

// nopNotifier shows nothing.
type nopNotifier struct{}

func (nopNotifier) GameOver(context.Context, int) {}

// TerminalNotifier draws a message box on a terminal and waits for a key.
type TerminalNotifier struct {
	Term   *draw.Terminal
	Keys   *input.Tracker
	Logger *zap.Logger
}

// Compile-time check that TerminalNotifier implements Notifier.
var _ Notifier = (*TerminalNotifier)(nil)

// GameOver shows the score and blocks until a key is pressed, the input
// closes or ctx is done.
func (n *TerminalNotifier) GameOver(ctx context.Context, score int) {
	log := n.Logger
	if log == nil {
		log = zap.NewNop()
	}

	err := n.Term.Notice(
		fmt.Sprintf("You died! Your score was: %d", score),
		"",
		"Press Space to play again, Q to quit",
	)
	if err != nil {
		log.Warn("draw game over notice", zap.Error(err))
	}

	if err := n.Keys.WaitKey(ctx); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		log.Warn("wait for key", zap.Error(err))
	}
}
