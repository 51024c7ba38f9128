package debugui

import "github.com/plus3/pong/ecs"

const frameHistorySize = 120

// Install registers the overlay components, spawns the inspector and
// scheduler panels and appends ImguiSystem to scheduler. It returns the
// overlay state handle, hidden by default.
func Install(storage *ecs.Storage, scheduler *ecs.Scheduler) *ecs.Singleton[OverlayState] {
	RegisterComponents(storage.Registry())

	inspector := &EntityInspector{storage: storage}
	panel := &SchedulerPanel{scheduler: scheduler, history: NewFrameHistory(frameHistorySize)}
	storage.Spawn(ImguiItem{Render: inspector.Render})
	storage.Spawn(ImguiItem{Render: panel.Render})

	state := ecs.NewSingleton[OverlayState](storage)
	scheduler.Register(&ImguiSystem{})
	return state
}
