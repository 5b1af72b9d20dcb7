package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/tomz197/skyshooter/internal/asset"
	"github.com/tomz197/skyshooter/internal/audio"
	"github.com/tomz197/skyshooter/internal/config"
	"github.com/tomz197/skyshooter/internal/logging"
	"github.com/tomz197/skyshooter/internal/loop"
	"github.com/tomz197/skyshooter/internal/window"
)

// windowScale enlarges the logical viewport on screen.
const windowScale = 2

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
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	assets, err := asset.Load()
	if err != nil {
		return err
	}

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

	width, height := int(cfg.Game.Width), int(cfg.Game.Height)
	host := window.NewHost(window.NewSurface(width, height), loop.Deps{
		Assets: assets,
		Audio:  player,
		Logger: logger,
	}, cfg)

	ebiten.SetWindowTitle("Sky Shooter")
	ebiten.SetWindowSize(width*windowScale, height*windowScale)
	ebiten.SetTPS(window.TPS(cfg.Timing))

	logger.Info("starting desktop game", zap.Int("tps", ebiten.TPS()))
	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
