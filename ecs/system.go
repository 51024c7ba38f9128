package ecs

// System is a unit of per-frame behaviour. Exported Query and Singleton
// fields on a system struct are bound to the scheduler's storage when the
// system is registered.
type System interface {
	Execute(frame *UpdateFrame)
}
