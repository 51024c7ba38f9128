package window

import (
	"image/color"
	"log/slog"
)

type nopSurface struct{}

func (nopSurface) Clear(color.Color)                          {}
func (nopSurface) FillRect(x, y, w, h float64, c color.Color) {}
func (nopSurface) Present()                                   {}

func nopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
