package terminal

import (
	"image/color"
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

type nopSurface struct{}

func (nopSurface) Clear(color.Color)                          {}
func (nopSurface) FillRect(x, y, w, h float64, c color.Color) {}
func (nopSurface) Present()                                   {}

func nopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func background(t *testing.T, screen tcell.Screen, x, y int) tcell.Color {
	t.Helper()
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}
