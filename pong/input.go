package pong

import (
	"log/slog"

	"github.com/kamstrup/intmap"
	"github.com/plus3/pong/ecs"
)

type control struct {
	paddle    int
	direction float64
}

// InputHandler turns key events into velocity changes on the two paddles.
type InputHandler struct {
	storage  *ecs.Storage
	paddles  [2]ecs.EntityId
	controls *intmap.Map[Key, control]
	speed    float64
	policy   KeyUpPolicy
	logger   *slog.Logger
}

// NewInputHandler binds cfg's player keys to paddles[0] and paddles[1].
func NewInputHandler(storage *ecs.Storage, paddles [2]ecs.EntityId, cfg Config, logger *slog.Logger) *InputHandler {
	controls := intmap.New[Key, control](4)
	controls.Put(cfg.Player1.Up, control{paddle: 0, direction: -1})
	controls.Put(cfg.Player1.Down, control{paddle: 0, direction: 1})
	controls.Put(cfg.Player2.Up, control{paddle: 1, direction: -1})
	controls.Put(cfg.Player2.Down, control{paddle: 1, direction: 1})

	return &InputHandler{
		storage:  storage,
		paddles:  paddles,
		controls: controls,
		speed:    cfg.PaddleSpeed,
		policy:   cfg.KeyUpPolicy,
		logger:   logger,
	}
}

// Policy returns the active key-up policy.
func (h *InputHandler) Policy() KeyUpPolicy {
	return h.policy
}

// Handle applies one key event. Close events are the loop's business and are
// ignored here.
func (h *InputHandler) Handle(ev Event) {
	switch ev.Kind {
	case EventKeyDown:
		c, ok := h.controls.Get(ev.Key)
		if !ok {
			h.logger.Debug("unbound key", "key", ev.Key)
			return
		}
		h.setVelocityY(c.paddle, c.direction*h.speed)

	case EventKeyUp:
		if h.policy == KeyUpLegacy {
			h.setVelocityY(0, 0)
			h.setVelocityY(1, 0)
			return
		}
		if c, ok := h.controls.Get(ev.Key); ok {
			h.setVelocityY(c.paddle, 0)
		}
	}
}

func (h *InputHandler) setVelocityY(paddle int, y float64) {
	vel := ecs.ReadComponent[Velocity](h.storage, h.paddles[paddle])
	if vel == nil {
		h.logger.Warn("paddle has no velocity", "paddle", paddle+1)
		return
	}
	vel.Y = y
}
