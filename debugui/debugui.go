// Package debugui is an optional Dear ImGui overlay that inspects and edits
// the live ECS world. Panels are entities carrying an ImguiItem; ImguiSystem
// queues their render functions so they run after the frame's systems.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/ecs"
)

// ImguiItem holds a render function to call once per visible frame.
type ImguiItem struct {
	Render func()
}

// OverlayState is a singleton shared between the overlay and ImguiSystem.
type OverlayState struct {
	Visible             bool
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem records ImGui's capture flags and defers every ImguiItem's
// render function to the end of the frame.
type ImguiSystem struct {
	Items ecs.Query[struct{ *ImguiItem }]
	State ecs.Singleton[OverlayState]
}

func (s *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	if state == nil {
		return
	}
	if !state.Visible {
		state.WantCaptureMouse = false
		state.WantCaptureKeyboard = false
		return
	}

	io := imgui.CurrentIO()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for item := range s.Items.Values() {
		frame.Commands.Defer(item.ImguiItem.Render)
	}
}

// RegisterComponents adds the overlay's component types to registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}
