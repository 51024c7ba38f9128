package pong_test

import (
	"fmt"
	"image/color"
	"log/slog"
	"testing"

	"github.com/plus3/pong/pong"
	"github.com/stretchr/testify/require"
)

// recordingSurface logs every draw call as a string.
type recordingSurface struct {
	calls []string
}

func (s *recordingSurface) Clear(c color.Color) {
	r, g, b, _ := c.RGBA()
	s.calls = append(s.calls, fmt.Sprintf("clear %d,%d,%d", r>>8, g>>8, b>>8))
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.calls = append(s.calls, fmt.Sprintf("rect %g,%g %gx%g", x, y, w, h))
}

func (s *recordingSurface) Present() {
	s.calls = append(s.calls, "present")
}

func (s *recordingSurface) reset() {
	s.calls = s.calls[:0]
}

// scriptedSource returns one batch per Poll, then nothing.
type scriptedSource struct {
	batches [][]pong.Event
	polls   int
}

func (s *scriptedSource) Poll() []pong.Event {
	s.polls++
	if len(s.batches) == 0 {
		return nil
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestGame(t *testing.T, mutate ...func(*pong.Config)) (*pong.Game, *recordingSurface) {
	t.Helper()
	cfg := pong.DefaultConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	require.NoError(t, cfg.Validate())

	surface := &recordingSurface{}
	return pong.NewGame(cfg, surface, discardLogger()), surface
}
