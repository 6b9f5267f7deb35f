package ecs_test

import (
	"testing"
	"time"

	"github.com/plus3/backdrop/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Entities     ecs.Query[Position]
	Velocities   ecs.Query[Velocity]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for i, pos := range s.Entities.Iter() {
		vel := s.Velocities.At(i)
		pos.X += vel.DX * float32(frame.DeltaTime)
		pos.Y += vel.DY * float32(frame.DeltaTime)
	}
}

type ClockSystem struct {
	Clock        ecs.Singleton[WorldClock]
	ExecuteCount int
}

func (s *ClockSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	s.Clock.Get().Elapsed = frame.Elapsed
}

type orderRecorder struct {
	name  string
	order *[]string
}

func (s *orderRecorder) Execute(frame *ecs.UpdateFrame) {
	*s.order = append(*s.order, s.name)
}

func newMovementStorage() *ecs.Storage {
	storage := ecs.NewStorage()
	positions := ecs.NewArena[Position](storage, 2)
	velocities := ecs.NewArena[Velocity](storage, 2)
	positions.Spawn(Position{X: 0, Y: 0})
	velocities.Spawn(Velocity{DX: 1, DY: 2})
	ecs.NewSingleton(storage, WorldClock{})
	storage.Seal()
	return storage
}

func TestScheduler(t *testing.T) {
	t.Run("system execution and field binding", func(t *testing.T) {
		storage := newMovementStorage()
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		clock := &ClockSystem{}
		scheduler.Register(movement)
		scheduler.Register(clock)

		scheduler.Once(1.0)
		scheduler.Once(3.0)

		assert.Equal(t, 2, movement.ExecuteCount)
		assert.Equal(t, 2, clock.ExecuteCount)

		pos := ecs.ArenaOf[Position](storage).At(0)
		assert.InDelta(t, 3.0, pos.X, 1e-6)
		assert.InDelta(t, 6.0, pos.Y, 1e-6)

		worldClock, ok := ecs.ReadSingleton[WorldClock](storage)
		require.True(t, ok)
		assert.Equal(t, 3.0, worldClock.Elapsed)
	})

	t.Run("registration order is execution order", func(t *testing.T) {
		scheduler := ecs.NewScheduler(ecs.NewStorage())
		var order []string
		scheduler.Register(&orderRecorder{name: "a", order: &order})
		scheduler.Register(&orderRecorder{name: "b", order: &order})
		scheduler.Register(&orderRecorder{name: "c", order: &order})

		scheduler.Once(0)
		assert.Equal(t, []string{"a", "b", "c"}, order)
	})

	t.Run("unregistered query panics on register", func(t *testing.T) {
		scheduler := ecs.NewScheduler(ecs.NewStorage())
		assert.Panics(t, func() {
			scheduler.Register(&MovementSystem{})
		})
	})

	t.Run("deferred commands run on flush", func(t *testing.T) {
		scheduler := ecs.NewScheduler(ecs.NewStorage())
		ran := 0
		scheduler.Commands().Defer(func() { ran++ })
		scheduler.Once(0)
		assert.Equal(t, 0, ran)
		assert.Equal(t, 1, scheduler.Commands().Pending())

		scheduler.Flush()
		assert.Equal(t, 1, ran)
		assert.Equal(t, 0, scheduler.Commands().Pending())
	})
}

func TestSchedulerStats(t *testing.T) {
	storage := newMovementStorage()
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&ClockSystem{})

	stats := scheduler.GetStats()
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)

	for i := range 5 {
		scheduler.Once(float64(i) / 60)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(10), stats.TotalExecutions)
	assert.Equal(t, "MovementSystem", stats.Systems[0].Name)
	assert.Equal(t, "ClockSystem", stats.Systems[1].Name)
	for _, s := range stats.Systems {
		assert.Equal(t, int64(5), s.ExecutionCount)
		assert.LessOrEqual(t, s.MinDuration, s.AvgDuration)
		assert.LessOrEqual(t, s.AvgDuration, s.MaxDuration)
	}
}
