package ecs_test

import (
	"testing"

	"github.com/plus3/backdrop/ecs"
	"github.com/stretchr/testify/assert"
)

func TestCommandsDeferOrder(t *testing.T) {
	scheduler := ecs.NewScheduler(ecs.NewStorage())
	commands := scheduler.Commands()

	var order []int
	for i := range 3 {
		commands.Defer(func() { order = append(order, i) })
	}
	assert.Equal(t, 3, commands.Pending())
	assert.Empty(t, order)

	scheduler.Flush()
	assert.Equal(t, []int{0, 1, 2}, order)
	assert.Zero(t, commands.Pending())

	scheduler.Flush()
	assert.Equal(t, []int{0, 1, 2}, order, "flush must not replay commands")
}

func TestCommandsFlushRunsNestedDefers(t *testing.T) {
	storage := ecs.NewStorage()
	scheduler := ecs.NewScheduler(storage)
	commands := scheduler.Commands()

	var order []int
	commands.Defer(func() {
		order = append(order, 1)
		commands.Defer(func() { order = append(order, 3) })
	})
	commands.Defer(func() { order = append(order, 2) })

	scheduler.Flush()
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 0, commands.Pending())
}

func TestCommandsSharedAcrossFrames(t *testing.T) {
	storage := ecs.NewStorage()
	scheduler := ecs.NewScheduler(storage)

	var frames []*ecs.UpdateFrame
	scheduler.Register(&frameRecorder{frames: &frames})

	scheduler.Once(1)
	scheduler.Once(2)

	assert.Len(t, frames, 2)
	assert.Same(t, frames[0].Commands, frames[1].Commands)
	assert.Same(t, scheduler.Commands(), frames[0].Commands)
	assert.Same(t, storage, frames[0].Storage)
}

type frameRecorder struct {
	frames *[]*ecs.UpdateFrame
}

func (r *frameRecorder) Execute(frame *ecs.UpdateFrame) {
	*r.frames = append(*r.frames, frame)
}
