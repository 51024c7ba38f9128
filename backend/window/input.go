package window

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/pong/pong"
)

var keymap = map[ebiten.Key]pong.Key{
	ebiten.KeyA:          pong.KeyA,
	ebiten.KeyD:          pong.KeyD,
	ebiten.KeyS:          pong.KeyS,
	ebiten.KeyW:          pong.KeyW,
	ebiten.KeyQ:          pong.KeyQ,
	ebiten.KeyArrowUp:    pong.KeyArrowUp,
	ebiten.KeyArrowDown:  pong.KeyArrowDown,
	ebiten.KeyArrowLeft:  pong.KeyLeft,
	ebiten.KeyArrowRight: pong.KeyRight,
	ebiten.KeyEscape:     pong.KeyEscape,
	ebiten.KeyF1:         pong.KeyF1,
}

// TranslateKey maps an ebiten key to a pong key, KeyUnknown if unmapped.
func TranslateKey(k ebiten.Key) pong.Key {
	return keymap[k]
}

// Input turns ebiten's per-tick key state into a pong event queue.
type Input struct {
	pressed  []ebiten.Key
	released []ebiten.Key
	events   []pong.Event
}

// Poll implements pong.EventSource. It must be called from Update.
func (in *Input) Poll() []pong.Event {
	in.pressed = inpututil.AppendJustPressedKeys(in.pressed[:0])
	in.released = inpututil.AppendJustReleasedKeys(in.released[:0])
	in.events = appendKeyEvents(in.events[:0], in.pressed, in.released)

	if ebiten.IsWindowBeingClosed() {
		in.events = append(in.events, pong.Close())
	}
	return in.events
}

// appendKeyEvents orders one tick of key changes: releases first so that
// switching from one key to another within a tick ends on the new key, then
// presses, then the releases of keys tapped within the same tick.
func appendKeyEvents(events []pong.Event, pressed, released []ebiten.Key) []pong.Event {
	for _, k := range released {
		if !slices.Contains(pressed, k) {
			events = append(events, pong.KeyUp(TranslateKey(k)))
		}
	}
	for _, k := range pressed {
		events = append(events, pong.KeyDown(TranslateKey(k)))
	}
	for _, k := range released {
		if slices.Contains(pressed, k) {
			events = append(events, pong.KeyUp(TranslateKey(k)))
		}
	}
	return events
}
