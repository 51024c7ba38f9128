package terminal

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/pong/pong"
)

var keymap = map[tcell.Key]pong.Key{
	tcell.KeyUp:     pong.KeyArrowUp,
	tcell.KeyDown:   pong.KeyArrowDown,
	tcell.KeyLeft:   pong.KeyLeft,
	tcell.KeyRight:  pong.KeyRight,
	tcell.KeyEscape: pong.KeyEscape,
	tcell.KeyF1:     pong.KeyF1,
}

var runemap = map[rune]pong.Key{
	'a': pong.KeyA,
	'd': pong.KeyD,
	's': pong.KeyS,
	'w': pong.KeyW,
}

// TranslateKey maps a tcell key event to a pong key, KeyUnknown if unmapped.
// Letters match either case.
func TranslateKey(ev *tcell.EventKey) pong.Key {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return runemap[r]
	}
	return keymap[ev.Key()]
}

func isCloseKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// Source implements pong.EventSource over a tcell event channel. Terminals
// report presses and auto-repeats only, so a key counts as held until it
// has been silent for the release window. Only the most recent key
// auto-repeats, so a fresh press releases whatever was held before it, and
// every repeat is reported as another key-down.
type Source struct {
	events  <-chan tcell.Event
	onSync  func()
	window  time.Duration
	now     func() time.Time
	held    *intmap.Map[pong.Key, time.Time]
	expired []pong.Key
	out     []pong.Event
	closed  bool
	logger  *slog.Logger
}

func newSource(events <-chan tcell.Event, onSync func(), release time.Duration, logger *slog.Logger) *Source {
	return &Source{
		events: events,
		onSync: onSync,
		window: release,
		now:    time.Now,
		held:   intmap.New[pong.Key, time.Time](8),
		logger: logger,
	}
}

// pump forwards screen events until the screen is finalised or ctx ends.
func pump(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Poll drains every pending terminal event without blocking, then emits
// key-ups for keys whose release window has passed.
func (s *Source) Poll() []pong.Event {
	s.out = s.out[:0]
	now := s.now()

drain:
	for !s.closed {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.closed = true
				s.out = append(s.out, pong.Close())
				break drain
			}
			s.handle(ev, now)
		default:
			break drain
		}
	}

	s.release(func(last time.Time) bool {
		return now.Sub(last) >= s.window
	})
	return s.out
}

// release emits key-ups, in key order, for every held key whose last press
// satisfies done.
func (s *Source) release(done func(last time.Time) bool) {
	s.expired = s.expired[:0]
	s.held.ForEach(func(k pong.Key, last time.Time) bool {
		if done(last) {
			s.expired = append(s.expired, k)
		}
		return true
	})
	slices.Sort(s.expired)
	for _, k := range s.expired {
		s.held.Del(k)
		s.out = append(s.out, pong.KeyUp(k))
	}
}

func (s *Source) handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isCloseKey(ev) {
			s.out = append(s.out, pong.Close())
			return
		}
		k := TranslateKey(ev)
		if k == pong.KeyUnknown {
			s.logger.Debug("ignoring terminal key", "key", ev.Name())
			return
		}
		if !s.held.Has(k) {
			s.release(func(time.Time) bool { return true })
		}
		s.out = append(s.out, pong.KeyDown(k))
		s.held.Put(k, now)
	case *tcell.EventResize:
		if s.onSync != nil {
			s.onSync()
		}
	}
}
