package pong_test

import (
	"testing"

	"github.com/plus3/pong/pong"
	"github.com/stretchr/testify/assert"
)

func TestDrawSystemFrame(t *testing.T) {
	game, surface := newTestGame(t)

	game.Loop.Step(nil)

	assert.Equal(t, []string{
		"clear 0,0,0",
		"rect 48,268 16x64",
		"rect 736,268 16x64",
		"present",
	}, surface.calls)
}

func TestDrawSystemSkipsHidden(t *testing.T) {
	game, surface := newTestGame(t)

	game.Storage.Spawn(pong.Drawable{Visible: false}, pong.Position{X: 1, Y: 1, Width: 8, Height: 8})
	game.Storage.Spawn(pong.Drawable{Visible: true}, pong.Position{X: 400, Y: 300, Width: 8, Height: 8})
	game.Loop.Step(nil)

	assert.Equal(t, []string{
		"clear 0,0,0",
		"rect 48,268 16x64",
		"rect 736,268 16x64",
		"rect 400,300 8x8",
		"present",
	}, surface.calls)
}

func TestDrawSeesMovementOfSameTick(t *testing.T) {
	game, surface := newTestGame(t)

	game.Loop.Step([]pong.Event{pong.KeyDown(pong.KeyRight)})

	assert.Contains(t, surface.calls, "rect 736,276 16x64")
}
