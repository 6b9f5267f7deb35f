package ecs

// System represents a behavior that runs once per frame over one or more arenas.
// Systems can include Arena and Singleton fields, which the Scheduler binds on
// registration, as well as custom state fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
