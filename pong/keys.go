package pong

import "fmt"

// Key is a backend-neutral key code. Backends translate their native codes
// into Key and report anything they cannot translate as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyD
	KeyS
	KeyW
	KeyQ
	KeyArrowUp
	KeyArrowDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyF1
)

var keyNames = map[Key]string{
	KeyUnknown:   "Unknown",
	KeyA:         "A",
	KeyD:         "D",
	KeyS:         "S",
	KeyW:         "W",
	KeyQ:         "Q",
	KeyArrowUp:   "Up",
	KeyArrowDown: "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyEscape:    "Escape",
	KeyF1:        "F1",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// EventKind distinguishes the events a backend can report.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventClose
)

func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventClose:
		return "close"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one entry of a backend's event queue. Key is unset for EventClose.
type Event struct {
	Kind EventKind
	Key  Key
}

func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }
func KeyUp(k Key) Event   { return Event{Kind: EventKeyUp, Key: k} }
func Close() Event        { return Event{Kind: EventClose} }

// EventSource is drained once per tick. Poll must not block.
type EventSource interface {
	Poll() []Event
}
