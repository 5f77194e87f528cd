package ecs

// System represents a behavior that operates on entities with specific components.
// User-defined systems should implement this interface and can hold views for
// accessing entities, as well as custom state fields that persist between frames.
// C is the per-pass context the scheduler hands to every system (input, render target).
type System[C any] interface {
	Execute(frame *UpdateFrame[C])
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc[C any] func(frame *UpdateFrame[C])

// Execute calls f(frame).
func (f SystemFunc[C]) Execute(frame *UpdateFrame[C]) {
	f(frame)
}
