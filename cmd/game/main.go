package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tomz197/skyshooter/internal/asset"
	"github.com/tomz197/skyshooter/internal/audio"
	"github.com/tomz197/skyshooter/internal/config"
	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/input"
	"github.com/tomz197/skyshooter/internal/logging"
	"github.com/tomz197/skyshooter/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.GetEnv("SKYSHOOTER_CONFIG", config.DefaultPath))
	if err != nil {
		return err
	}
	// Log lines would tear the frame, so a terminal session always logs to a file.
	if cfg.Logging.File == "" {
		cfg.Logging.File = "skyshooter.log"
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	assets, err := asset.Load()
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	var player audio.Player = audio.Nop{}
	if cfg.Audio.Enabled {
		b, err := audio.NewBeep(cfg.Audio)
		if err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		} else {
			player = b
		}
	}
	defer player.Close()

	surface := draw.NewTerminal(os.Stdout, draw.DefaultTermSizeFunc, draw.TerminalOptions{
		LogicalWidth:  cfg.Game.Width,
		LogicalHeight: cfg.Game.Height,
		MinCols:       cfg.Terminal.MinCols,
		MinRows:       cfg.Terminal.MinRows,
		MaxCols:       cfg.Terminal.MaxCols,
		MaxRows:       cfg.Terminal.MaxRows,
	})
	defer func() { _ = surface.Close() }()

	keys := input.NewTracker(input.StartStream(bufio.NewReader(os.Stdin)), cfg.Terminal.HoldDuration)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting terminal game")
	err = loop.Run(ctx, loop.Deps{
		Surface:  surface,
		Assets:   assets,
		Input:    keys,
		Audio:    player,
		Notifier: &loop.TerminalNotifier{Term: surface, Keys: keys, Logger: logger},
		Logger:   logger,
	}, cfg)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
