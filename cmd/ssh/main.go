package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"go.uber.org/zap"

	"github.com/tomz197/skyshooter/internal/asset"
	"github.com/tomz197/skyshooter/internal/config"
	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/input"
	applog "github.com/tomz197/skyshooter/internal/logging"
	"github.com/tomz197/skyshooter/internal/loop"
)

func main() {
	cfg, err := config.Load(config.GetEnv("SKYSHOOTER_CONFIG", config.DefaultPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := applog.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	assets, err := asset.Load()
	if err != nil {
		logger.Fatal("load assets", zap.Error(err))
	}

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("get working directory", zap.Error(workErr))
	}
	logger.Info("ssh config",
		zap.String("host", cfg.SSH.Host),
		zap.String("port", cfg.SSH.Port),
		zap.String("host_key_path", cfg.SSH.HostKeyPath),
		zap.String("working_dir", workingDir),
	)

	h := &handler{cfg: cfg, assets: assets, log: logger}
	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSH.Host, cfg.SSH.Port)),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.SSH.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSH.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("create server", zap.Error(err))
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", zap.String("addr", net.JoinHostPort(cfg.SSH.Host, cfg.SSH.Port)))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-done
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", zap.Error(err))
	}
}

// handler runs one independent game per SSH session.
type handler struct {
	cfg    *config.Config
	assets *asset.Repository
	log    *zap.Logger
}

// middleware handles SSH sessions and runs the game until the player quits
// or disconnects.
func (h *handler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		log := h.log.With(zap.String("user", sess.User()), zap.String("remote", sess.RemoteAddr().String()))
		log.Info("new game session",
			zap.String("terminal", pty.Term),
			zap.Int("width", pty.Window.Width),
			zap.Int("height", pty.Window.Height),
		)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		surface := draw.NewTerminal(sess, sizeTracker.getSize, draw.TerminalOptions{
			LogicalWidth:  h.cfg.Game.Width,
			LogicalHeight: h.cfg.Game.Height,
			MinCols:       h.cfg.Terminal.MinCols,
			MinRows:       h.cfg.Terminal.MinRows,
			MaxCols:       h.cfg.Terminal.MaxCols,
			MaxRows:       h.cfg.Terminal.MaxRows,
		})
		keys := input.NewTracker(input.StartStream(bufio.NewReader(sess)), h.cfg.Terminal.HoldDuration)

		// Sound plays on the server, so remote sessions stay silent.
		err := loop.Run(sess.Context(), loop.Deps{
			Surface:  surface,
			Assets:   h.assets,
			Input:    keys,
			Notifier: &loop.TerminalNotifier{Term: surface, Keys: keys, Logger: log},
			Logger:   log,
		}, h.cfg)

		switch {
		case errors.Is(err, loop.ErrUnsupportedSurface):
			fmt.Fprintf(sess, "Your terminal is too small. Resize to at least %dx%d and reconnect.\r\n",
				h.cfg.Terminal.MinCols, h.cfg.Terminal.MinRows)
		case err != nil && !errors.Is(err, context.Canceled):
			log.Error("game error", zap.Error(err))
		}
		_ = surface.Close()

		log.Info("session ended")
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
