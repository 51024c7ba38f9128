// Package terminal runs pong in a text terminal through tcell.
package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/pong/pong"
)

// DefaultReleaseWindow outlasts common terminal auto-repeat delays.
const DefaultReleaseWindow = 500 * time.Millisecond

type Options struct {
	ReleaseWindow time.Duration
}

// Game binds a pong.Game to an initialised tcell screen.
type Game struct {
	screen  tcell.Screen
	game    *pong.Game
	release time.Duration
	logger  *slog.Logger
}

// NewGame builds the world on screen. The caller owns screen's lifecycle.
func NewGame(screen tcell.Screen, cfg pong.Config, opts Options, logger *slog.Logger) *Game {
	release := opts.ReleaseWindow
	if release <= 0 {
		release = DefaultReleaseWindow
	}
	screen.HideCursor()
	return &Game{
		screen:  screen,
		game:    pong.NewGame(cfg, NewSurface(screen, cfg.Width, cfg.Height), logger),
		release: release,
		logger:  logger,
	}
}

// World returns the underlying game.
func (g *Game) World() *pong.Game {
	return g.game
}

// Run drives the loop until a close key, a quit key or ctx cancellation.
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go pump(ctx, g.screen, events)

	source := newSource(events, g.screen.Sync, g.release, g.logger)
	cols, rows := g.screen.Size()
	g.logger.Info("terminal backend started", "cols", cols, "rows", rows, "release_window", g.release)
	return g.game.Loop.Run(ctx, source)
}

// Run opens the controlling terminal, plays until stopped and restores it.
func Run(ctx context.Context, cfg pong.Config, opts Options, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	defer screen.Fini()

	return NewGame(screen, cfg, opts, logger).Run(ctx)
}
