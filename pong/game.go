package pong

import (
	"log/slog"

	"github.com/plus3/pong/ecs"
)

// RegisterComponents adds the game's component types to registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Drawable](registry)
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Paddle](registry)
}

// Game is a fully wired world: storage, the two paddles, systems and loop.
type Game struct {
	Config    Config
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler
	Paddles   [2]ecs.EntityId
	Input     *InputHandler
	Loop      *Loop
}

// NewGame spawns the paddles and registers movement before draw. cfg must
// already be valid.
func NewGame(cfg Config, surface Surface, logger *slog.Logger) *Game {
	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	paddles := [2]ecs.EntityId{
		spawnPaddle(storage, cfg, 1, cfg.PaddleWidth+cfg.PaddleMargin),
		spawnPaddle(storage, cfg, 2, cfg.Width-cfg.PaddleWidth*2-cfg.PaddleMargin),
	}

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&MovementSystem{Bounds: cfg.Bounds()})
	scheduler.Register(&DrawSystem{
		Surface:    surface,
		Background: cfg.Background,
		Foreground: cfg.Foreground,
	})

	input := NewInputHandler(storage, paddles, cfg, logger)

	logger.Debug("world ready",
		"paddles", len(paddles),
		"bounds", cfg.Bounds(),
		"keyup_policy", cfg.KeyUpPolicy)

	return &Game{
		Config:    cfg,
		Storage:   storage,
		Scheduler: scheduler,
		Paddles:   paddles,
		Input:     input,
		Loop:      NewLoop(scheduler, input, cfg, logger),
	}
}

func spawnPaddle(storage *ecs.Storage, cfg Config, player int, x float64) ecs.EntityId {
	return storage.Spawn(
		Paddle{Player: player},
		Drawable{Visible: true},
		Velocity{},
		Position{
			X:      x,
			Y:      cfg.Height/2 - cfg.PaddleHeight/2,
			Width:  cfg.PaddleWidth,
			Height: cfg.PaddleHeight,
		},
	)
}

// Position returns the live position of player's paddle (1 or 2).
func (g *Game) Position(player int) *Position {
	return ecs.ReadComponent[Position](g.Storage, g.Paddles[player-1])
}

// Velocity returns the live velocity of player's paddle (1 or 2).
func (g *Game) Velocity(player int) *Velocity {
	return ecs.ReadComponent[Velocity](g.Storage, g.Paddles[player-1])
}
