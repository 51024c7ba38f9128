package main

import (
	"errors"
	"image/color"
	"log/slog"
	"math/rand"
	"runtime"
	"time"

	"github.com/plus3/pong/pong"
)

// countingSurface discards pixels and keeps per-frame counts.
type countingSurface struct {
	frames int
	rects  int
}

func (s *countingSurface) Clear(color.Color)                          {}
func (s *countingSurface) FillRect(x, y, w, h float64, c color.Color) { s.rects++ }
func (s *countingSurface) Present()                                   { s.frames++ }

// keyScript produces seeded random key presses and releases over the keys
// both paddles listen to.
type keyScript struct {
	rng  *rand.Rand
	keys []pong.Key
	held map[pong.Key]bool
}

func newKeyScript(seed int64, cfg pong.Config) *keyScript {
	return &keyScript{
		rng:  rand.New(rand.NewSource(seed)),
		keys: []pong.Key{cfg.Player1.Up, cfg.Player1.Down, cfg.Player2.Up, cfg.Player2.Down},
		held: make(map[pong.Key]bool),
	}
}

// next returns up to maxEvents events for one tick.
func (k *keyScript) next(maxEvents int) []pong.Event {
	n := k.rng.Intn(maxEvents + 1)
	events := make([]pong.Event, 0, n)
	for range n {
		key := k.keys[k.rng.Intn(len(k.keys))]
		if k.held[key] {
			events = append(events, pong.KeyUp(key))
		} else {
			events = append(events, pong.KeyDown(key))
		}
		k.held[key] = !k.held[key]
	}
	return events
}

type soakConfig struct {
	Duration  time.Duration
	MaxTicks  int64
	Seed      int64
	MaxEvents int
	Game      pong.Config
}

func (sc soakConfig) validate() error {
	switch {
	case sc.Duration <= 0:
		return errors.New("duration must be positive")
	case sc.MaxTicks < 0:
		return errors.New("ticks must not be negative")
	case sc.MaxEvents < 0:
		return errors.New("events must not be negative")
	}
	return sc.Game.Validate()
}

// soak runs the game headless as fast as it will go and checks after every
// tick that both paddles are still inside the arena.
func soak(sc soakConfig, logger *slog.Logger) *Report {
	surface := &countingSurface{}
	game := pong.NewGame(sc.Game, surface, logger)
	script := newKeyScript(sc.Seed, sc.Game)
	bounds := sc.Game.Bounds()

	report := &Report{
		Duration:    sc.Duration,
		Seed:        sc.Seed,
		KeyUpPolicy: sc.Game.KeyUpPolicy.String(),
		UpdateTime:  Stats{Samples: make([]time.Duration, 0, 1024)},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	start := time.Now()
	deadline := start.Add(sc.Duration)
	for time.Now().Before(deadline) && (sc.MaxTicks <= 0 || report.TotalTicks < sc.MaxTicks) {
		events := script.next(sc.MaxEvents)
		report.TotalEvents += int64(len(events))

		updateStart := time.Now()
		game.Loop.Step(events)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.TotalTicks++

		for player := 1; player <= 2; player++ {
			if !inside(game.Position(player), bounds) {
				report.Violations++
			}
		}
	}

	report.TotalTime = time.Since(start)
	report.UpdateTime.Finalize()
	report.Frames = surface.frames
	report.Rects = surface.rects
	report.Systems = game.Scheduler.Stats().Systems
	report.Final = [2]pong.Position{*game.Position(1), *game.Position(2)}
	runtime.ReadMemStats(&report.MemStatsEnd)
	return report
}

func inside(p *pong.Position, b pong.Bounds) bool {
	return p.X >= b.MinX && p.X+p.Width <= b.MaxX && p.Y >= b.MinY && p.Y+p.Height <= b.MaxY
}
