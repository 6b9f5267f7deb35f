package ecs

// Commands buffers work that must run after every system of a frame has
// executed, such as overlay draw calls that read the finished frame state.
// The population of a scene is fixed, so structural commands do not exist.
type Commands struct {
	defers []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.defers)
}

// Flush runs every queued function in order, resetting the buffer state
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i].fn()
	}
	clear(c.defers)
	c.defers = c.defers[:0]
}
