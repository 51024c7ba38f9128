// Package window runs pong in a desktop window through ebiten.
package window

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/debugui"
	"github.com/plus3/pong/pong"
)

// Options configures the window backend beyond the game config.
type Options struct {
	// Debug enables the ImGui overlay, toggled with ToggleKey.
	Debug     bool
	ToggleKey pong.Key
}

// Game adapts a pong.Game to ebiten.Game. ebiten paces Update at the tick
// rate, so each Update is exactly one loop iteration.
type Game struct {
	game    *pong.Game
	surface *Surface
	input   Input
	overlay *debugui.Overlay
	width   int
	height  int
	logger  *slog.Logger
}

// NewGame builds the world on a fresh window surface. The overlay, if any,
// is attached by Run once the ImGui context exists.
func NewGame(cfg pong.Config, logger *slog.Logger) *Game {
	width, height := int(cfg.Width), int(cfg.Height)
	surface := NewSurface(width, height)
	return &Game{
		game:    pong.NewGame(cfg, surface, logger),
		surface: surface,
		width:   width,
		height:  height,
		logger:  logger,
	}
}

// World returns the underlying game.
func (g *Game) World() *pong.Game {
	return g.game
}

func (g *Game) Update() error {
	events := g.input.Poll()

	if g.overlay != nil {
		g.overlay.BeginFrame()
		defer g.overlay.EndFrame()
		events = g.overlay.Filter(events)
	}

	if g.game.Loop.Step(events) == pong.Stopped {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Front(), nil)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

// Run opens the window and blocks until the game stops. A close request or
// quit key returns nil.
func Run(cfg pong.Config, opts Options, logger *slog.Logger) error {
	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowClosingHandled(true)

	game := NewGame(cfg, logger)
	if opts.Debug {
		backend := debugui.NewBackend(cfg.Title, int(cfg.Width), int(cfg.Height))
		game.overlay = debugui.NewOverlay(game.game, backend, opts.ToggleKey)
		logger.Info("debug overlay enabled", "toggle", opts.ToggleKey)
	}

	logger.Info("window backend started",
		"width", cfg.Width,
		"height", cfg.Height,
		"tps", cfg.TickRate)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
