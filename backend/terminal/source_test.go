package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/pong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestSource(events chan tcell.Event) (*Source, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := newSource(events, nil, 500*time.Millisecond, nopLogger())
	s.now = clock.now
	return s, clock
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTranslateKey(t *testing.T) {
	assert.Equal(t, pong.KeyA, TranslateKey(runeKey('a')))
	assert.Equal(t, pong.KeyA, TranslateKey(runeKey('A')))
	assert.Equal(t, pong.KeyD, TranslateKey(runeKey('d')))
	assert.Equal(t, pong.KeyLeft, TranslateKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.Equal(t, pong.KeyEscape, TranslateKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.Equal(t, pong.KeyUnknown, TranslateKey(runeKey('z')))
}

func TestSourceSynthesisesKeyUp(t *testing.T) {
	events := make(chan tcell.Event, 8)
	s, clock := newTestSource(events)

	events <- runeKey('a')
	assert.Equal(t, []pong.Event{pong.KeyDown(pong.KeyA)}, s.Poll())

	clock.advance(300 * time.Millisecond)
	events <- runeKey('a')
	assert.Equal(t, []pong.Event{pong.KeyDown(pong.KeyA)}, s.Poll(), "auto-repeat extends the hold")

	clock.advance(400 * time.Millisecond)
	assert.Empty(t, s.Poll())

	clock.advance(100 * time.Millisecond)
	assert.Equal(t, []pong.Event{pong.KeyUp(pong.KeyA)}, s.Poll())
	assert.Empty(t, s.Poll())
}

func TestSourcePressReleasesPreviousKey(t *testing.T) {
	events := make(chan tcell.Event, 8)
	s, clock := newTestSource(events)

	events <- tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
	events <- runeKey('a')
	assert.Equal(t, []pong.Event{
		pong.KeyDown(pong.KeyRight),
		pong.KeyUp(pong.KeyRight),
		pong.KeyDown(pong.KeyA),
	}, s.Poll())

	clock.advance(time.Second)
	assert.Equal(t, []pong.Event{pong.KeyUp(pong.KeyA)}, s.Poll())
}

func TestSourceSwitchingDirectionKeepsPaddleMoving(t *testing.T) {
	events := make(chan tcell.Event, 8)
	s, clock := newTestSource(events)
	game := pong.NewGame(pong.DefaultConfig(), nopSurface{}, nopLogger())

	const step = 10 * time.Millisecond
	for elapsed := time.Duration(0); elapsed <= time.Second; elapsed += step {
		switch {
		case elapsed <= 250*time.Millisecond && elapsed%(50*time.Millisecond) == 0:
			events <- runeKey('a')
		case elapsed >= 300*time.Millisecond && elapsed%(50*time.Millisecond) == 0:
			events <- runeKey('d')
		}

		game.Loop.Step(s.Poll())

		switch {
		case elapsed <= 250*time.Millisecond:
			require.Equal(t, -8.0, game.Velocity(1).Y, "holding A at +%s", elapsed)
		case elapsed >= 300*time.Millisecond:
			require.Equal(t, 8.0, game.Velocity(1).Y, "holding D at +%s", elapsed)
		}
		clock.advance(step)
	}
}

func TestSourceCloseKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
		{"q", runeKey('q')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := make(chan tcell.Event, 1)
			s, _ := newTestSource(events)
			events <- tt.ev
			assert.Equal(t, []pong.Event{pong.Close()}, s.Poll())
		})
	}
}

func TestSourceClosedChannel(t *testing.T) {
	events := make(chan tcell.Event)
	s, _ := newTestSource(events)
	close(events)

	assert.Equal(t, []pong.Event{pong.Close()}, s.Poll())
	assert.Empty(t, s.Poll())
}

func TestSourceResync(t *testing.T) {
	events := make(chan tcell.Event, 1)
	s, _ := newTestSource(events)
	synced := 0
	s.onSync = func() { synced++ }

	events <- tcell.NewEventResize(100, 30)
	assert.Empty(t, s.Poll())
	assert.Equal(t, 1, synced)
}

func TestSourceIgnoresUnknownKeys(t *testing.T) {
	events := make(chan tcell.Event, 1)
	s, _ := newTestSource(events)

	events <- runeKey('z')
	assert.Empty(t, s.Poll())
}
