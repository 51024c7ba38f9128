package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is a double-buffered pong.Surface. Systems draw into the back
// buffer during Update; Present flips, and Draw shows the front buffer.
type Surface struct {
	front *ebiten.Image
	back  *ebiten.Image
}

func NewSurface(width, height int) *Surface {
	return &Surface{
		front: ebiten.NewImage(width, height),
		back:  ebiten.NewImage(width, height),
	}
}

func (s *Surface) Clear(c color.Color) {
	s.back.Fill(c)
}

func (s *Surface) FillRect(x, y, width, height float64, c color.Color) {
	vector.DrawFilledRect(s.back, float32(x), float32(y), float32(width), float32(height), c, false)
}

func (s *Surface) Present() {
	s.front, s.back = s.back, s.front
}

// Front returns the last presented frame.
func (s *Surface) Front() *ebiten.Image {
	return s.front
}
