package pong

import "github.com/plus3/pong/ecs"

// Bounds is the inclusive arena a rectangle's top-left corner is clamped to,
// after accounting for the rectangle's own size.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Step moves pos by vel and clamps it into b. The lower bound is applied
// before the upper one, so an arena narrower than the rectangle pins it to
// the upper bound.
func (b Bounds) Step(pos *Position, vel Velocity) {
	pos.X += vel.X
	pos.Y += vel.Y

	pos.X = max(b.MinX, pos.X)
	pos.Y = max(b.MinY, pos.Y)
	pos.X = min(b.MaxX-pos.Width, pos.X)
	pos.Y = min(b.MaxY-pos.Height, pos.Y)
}

// MovementSystem integrates velocity into position once per tick.
type MovementSystem struct {
	Bounds Bounds
	Movers ecs.Query[struct {
		*Position
		*Velocity
	}]
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	for m := range s.Movers.Values() {
		s.Bounds.Step(m.Position, *m.Velocity)
	}
}
