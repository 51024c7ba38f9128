package pong

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/plus3/pong/ecs"
)

// State is the loop's lifecycle. Stopped is terminal.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Loop dispatches events and ticks the scheduler.
type Loop struct {
	scheduler *ecs.Scheduler
	input     *InputHandler
	quitKeys  []Key
	tick      time.Duration
	state     State
	ticks     uint64
	logger    *slog.Logger
}

// NewLoop creates a running loop.
func NewLoop(scheduler *ecs.Scheduler, input *InputHandler, cfg Config, logger *slog.Logger) *Loop {
	return &Loop{
		scheduler: scheduler,
		input:     input,
		quitKeys:  cfg.QuitKeys,
		tick:      cfg.TickDuration(),
		logger:    logger,
	}
}

// State returns the current state.
func (l *Loop) State() State {
	return l.state
}

// Ticks returns how many ticks have run.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Stop moves the loop to Stopped. It is idempotent.
func (l *Loop) Stop(reason string) {
	if l.state == Stopped {
		return
	}
	l.state = Stopped
	l.logger.Info("loop stopped", "reason", reason, "ticks", l.ticks)
}

// Step runs one iteration: every event is dispatched in order, then, unless
// an event stopped the loop, the systems run once. Events after a stop are
// dropped.
func (l *Loop) Step(events []Event) State {
	for _, ev := range events {
		if l.state == Stopped {
			break
		}
		switch {
		case ev.Kind == EventClose:
			l.Stop("close event")
		case ev.Kind == EventKeyDown && slices.Contains(l.quitKeys, ev.Key):
			l.Stop("quit key " + ev.Key.String())
		default:
			l.input.Handle(ev)
		}
	}

	if l.state == Stopped {
		return l.state
	}

	l.scheduler.Once(l.tick.Seconds())
	l.ticks++
	return l.state
}

// Run drives Step from source once per tick until the loop stops or ctx is
// cancelled. Cancellation is a normal stop and returns nil.
func (l *Loop) Run(ctx context.Context, source EventSource) error {
	ticker := time.NewTicker(l.tick)
	defer ticker.Stop()

	l.logger.Info("loop started", "tick", l.tick)
	for l.Step(source.Poll()) == Running {
		select {
		case <-ctx.Done():
			l.Stop(context.Cause(ctx).Error())
		case <-ticker.C:
		}
	}
	return nil
}
