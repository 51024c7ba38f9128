package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Surface paints the arena onto a terminal cell grid. The arena is stretched
// to the screen, and a cell belongs to a rectangle when its centre does.
type Surface struct {
	screen      tcell.Screen
	arenaWidth  float64
	arenaHeight float64
}

func NewSurface(screen tcell.Screen, arenaWidth, arenaHeight float64) *Surface {
	return &Surface{
		screen:      screen,
		arenaWidth:  arenaWidth,
		arenaHeight: arenaHeight,
	}
}

func (s *Surface) Clear(c color.Color) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(tcell.FromImageColor(c)))
}

func (s *Surface) FillRect(x, y, width, height float64, c color.Color) {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(tcell.FromImageColor(c))

	col0, col1 := cellSpan(x, width, s.arenaWidth/float64(cols), cols)
	row0, row1 := cellSpan(y, height, s.arenaHeight/float64(rows), rows)
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (s *Surface) Present() {
	s.screen.Show()
}

// cellSpan returns the half-open range of cells of size cell whose centres
// fall in [start, start+length), clipped to [0, limit).
func cellSpan(start, length, cell float64, limit int) (int, int) {
	first := int(math.Ceil(start/cell - 0.5))
	end := int(math.Ceil((start+length)/cell - 0.5))
	return max(first, 0), min(end, limit)
}
