package pong

import (
	"image/color"

	"github.com/plus3/pong/ecs"
)

// Surface is the frame buffer a backend hands to the draw system.
type Surface interface {
	Clear(c color.Color)
	FillRect(x, y, width, height float64, c color.Color)
	Present()
}

// DrawSystem clears the surface, fills one rectangle per visible entity and
// presents the frame.
type DrawSystem struct {
	Surface    Surface
	Background color.Color
	Foreground color.Color
	Sprites    ecs.Query[struct {
		*Drawable
		*Position
	}]
}

func (s *DrawSystem) Execute(frame *ecs.UpdateFrame) {
	s.Surface.Clear(s.Background)
	for sprite := range s.Sprites.Values() {
		if !sprite.Drawable.Visible {
			continue
		}
		p := sprite.Position
		s.Surface.FillRect(p.X, p.Y, p.Width, p.Height, s.Foreground)
	}
	s.Surface.Present()
}
