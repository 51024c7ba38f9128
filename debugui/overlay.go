package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/pong"
)

// Backend wraps the Ebiten implementation of the Dear ImGui backend.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the ImGui context for a window of the given size.
func NewBackend(title string, width, height int) *Backend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Backend{EbitenBackend: b}
}

// Overlay owns the overlay's visibility and decides which game events reach
// the input handler while it is shown.
type Overlay struct {
	backend *Backend
	state   *ecs.Singleton[OverlayState]
	toggle  pong.Key
}

// NewOverlay installs the debug panels into game and returns a hidden
// overlay toggled by toggle. backend may be nil when nothing is rendered.
func NewOverlay(game *pong.Game, backend *Backend, toggle pong.Key) *Overlay {
	return &Overlay{
		backend: backend,
		state:   Install(game.Storage, game.Scheduler),
		toggle:  toggle,
	}
}

func (o *Overlay) Visible() bool {
	return o.state.Get().Visible
}

func (o *Overlay) Toggle() {
	state := o.state.Get()
	state.Visible = !state.Visible
}

// Filter consumes toggle key events and, while ImGui has keyboard focus,
// drops the remaining key-downs. Key-ups and close events always pass, so a
// key released while typing into a panel still stops its paddle.
func (o *Overlay) Filter(events []pong.Event) []pong.Event {
	state := o.state.Get()
	kept := events[:0]
	for _, ev := range events {
		if ev.Key == o.toggle && ev.Kind != pong.EventClose {
			if ev.Kind == pong.EventKeyDown {
				o.Toggle()
			}
			continue
		}
		if ev.Kind == pong.EventKeyDown && state.Visible && state.WantCaptureKeyboard {
			continue
		}
		kept = append(kept, ev)
	}
	return kept
}

func (o *Overlay) BeginFrame() {
	if o.backend != nil {
		o.backend.BeginFrame()
	}
}

func (o *Overlay) EndFrame() {
	if o.backend != nil {
		o.backend.EndFrame()
	}
}

// Draw renders the ImGui draw data on top of screen when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.backend != nil && o.Visible() {
		o.backend.Draw(screen)
	}
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	if o.backend != nil {
		o.backend.Layout(outsideWidth, outsideHeight)
	}
}
