package terminal

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestCellSpan(t *testing.T) {
	tests := []struct {
		name               string
		start, length      float64
		cell               float64
		limit              int
		wantFirst, wantEnd int
	}{
		{"paddle column", 48, 16, 10, 80, 5, 6},
		{"paddle rows", 268, 64, 25, 24, 11, 13},
		{"right paddle", 736, 16, 10, 80, 74, 75},
		{"narrower than a cell", 41, 2, 10, 80, 4, 4},
		{"clipped", -30, 1000, 10, 80, 0, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, end := cellSpan(tt.start, tt.length, tt.cell, tt.limit)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestSurfaceFillRect(t *testing.T) {
	screen := newScreen(t)
	surface := NewSurface(screen, 800, 600)

	surface.Clear(color.Black)
	surface.FillRect(48, 268, 16, 64, color.White)
	surface.Present()

	white := tcell.FromImageColor(color.White)
	black := tcell.FromImageColor(color.Black)

	assert.Equal(t, white, background(t, screen, 5, 11))
	assert.Equal(t, white, background(t, screen, 5, 12))
	assert.Equal(t, black, background(t, screen, 5, 10))
	assert.Equal(t, black, background(t, screen, 5, 13))
	assert.Equal(t, black, background(t, screen, 4, 11))
	assert.Equal(t, black, background(t, screen, 6, 11))
}
