package pong

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

// KeyUpPolicy decides which paddles stop when a key is released.
type KeyUpPolicy int

const (
	// KeyUpStrict stops a paddle only when one of its own control keys is
	// released.
	KeyUpStrict KeyUpPolicy = iota
	// KeyUpLegacy stops both paddles on every key release, whatever the key.
	KeyUpLegacy
)

func (p KeyUpPolicy) String() string {
	switch p {
	case KeyUpStrict:
		return "strict"
	case KeyUpLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("KeyUpPolicy(%d)", int(p))
	}
}

// Bindings are the two control keys of one paddle.
type Bindings struct {
	Up   Key
	Down Key
}

// Config holds every tunable of the game. DefaultConfig is the classic
// 800x600 layout.
type Config struct {
	Title         string
	Width, Height float64
	TickRate      int

	ArenaInset   float64
	PaddleWidth  float64
	PaddleHeight float64
	PaddleMargin float64
	PaddleSpeed  float64

	Player1     Bindings
	Player2     Bindings
	QuitKeys    []Key
	KeyUpPolicy KeyUpPolicy

	Background color.RGBA
	Foreground color.RGBA
}

func DefaultConfig() Config {
	return Config{
		Title:        "Pong!",
		Width:        800,
		Height:       600,
		TickRate:     30,
		ArenaInset:   16,
		PaddleWidth:  16,
		PaddleHeight: 64,
		PaddleMargin: 32,
		PaddleSpeed:  8,
		Player1:      Bindings{Up: KeyA, Down: KeyD},
		Player2:      Bindings{Up: KeyLeft, Down: KeyRight},
		QuitKeys:     []Key{KeyEscape},
		KeyUpPolicy:  KeyUpStrict,
		Background:   color.RGBA{A: 0xff},
		Foreground:   color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid resolution %vx%v", c.Width, c.Height)
	case c.TickRate <= 0:
		return fmt.Errorf("invalid tick rate %d", c.TickRate)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return fmt.Errorf("invalid paddle size %vx%v", c.PaddleWidth, c.PaddleHeight)
	case c.ArenaInset < 0 || 2*c.ArenaInset >= min(c.Width, c.Height):
		return fmt.Errorf("arena inset %v leaves no room in %vx%v", c.ArenaInset, c.Width, c.Height)
	case c.PaddleSpeed < 0:
		return errors.New("paddle speed must not be negative")
	case c.KeyUpPolicy != KeyUpStrict && c.KeyUpPolicy != KeyUpLegacy:
		return fmt.Errorf("unknown key-up policy %v", c.KeyUpPolicy)
	}

	bindings := []struct {
		name string
		key  Key
	}{
		{"player 1 up", c.Player1.Up},
		{"player 1 down", c.Player1.Down},
		{"player 2 up", c.Player2.Up},
		{"player 2 down", c.Player2.Down},
	}
	seen := map[Key]string{}
	for _, b := range bindings {
		if b.key == KeyUnknown {
			return fmt.Errorf("%s is unbound", b.name)
		}
		if other, ok := seen[b.key]; ok {
			return fmt.Errorf("%s and %s share key %v", b.name, other, b.key)
		}
		seen[b.key] = b.name
	}
	return nil
}

// TickDuration is the wall-clock budget of one tick.
func (c Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Bounds is the arena, inset from the screen edges.
func (c Config) Bounds() Bounds {
	return Bounds{
		MinX: c.ArenaInset,
		MaxX: c.Width - c.ArenaInset,
		MinY: c.ArenaInset,
		MaxY: c.Height - c.ArenaInset,
	}
}

// ParseKeyUpPolicy accepts "strict" or "legacy".
func ParseKeyUpPolicy(s string) (KeyUpPolicy, error) {
	switch s {
	case "strict":
		return KeyUpStrict, nil
	case "legacy":
		return KeyUpLegacy, nil
	default:
		return 0, fmt.Errorf("unknown key-up policy %q", s)
	}
}
