package pong

// Drawable marks an entity for the draw system.
type Drawable struct {
	Visible bool
}

// Position is the top-left corner of an entity's rectangle. Width and Height
// are fixed when the entity is spawned.
type Position struct {
	X, Y          float64
	Width, Height float64
}

// Velocity is the per-tick displacement. Only the input handler writes it.
type Velocity struct {
	X, Y float64
}

// Paddle tags the entity controlled by Player (1 or 2).
type Paddle struct {
	Player int
}
