package ecs_test

import (
	"testing"

	"github.com/plus3/backdrop/ecs"
)

func newBenchStorage(n int) (*ecs.Storage, *ecs.Arena[Position], []ecs.EntityId) {
	storage := ecs.NewStorage()
	positions := ecs.NewArena[Position](storage, n)
	velocities := ecs.NewArena[Velocity](storage, n)
	ids := make([]ecs.EntityId, 0, n)
	for i := range n {
		ids = append(ids, positions.Spawn(Position{X: float32(i), Y: float32(i)}))
		velocities.Spawn(Velocity{DX: 0.5, DY: 0.5})
	}
	storage.Seal()
	return storage, positions, ids
}

func BenchmarkQueryIter(b *testing.B) {
	storage, _, _ := newBenchStorage(10000)
	query := ecs.NewQuery[Position](storage)

	b.ResetTimer()
	for b.Loop() {
		for _, p := range query.Iter() {
			p.X += 1
		}
	}
}

func BenchmarkArenaGet(b *testing.B) {
	_, positions, ids := newBenchStorage(10000)

	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		_ = positions.Get(ids[i%len(ids)])
	}
}

func BenchmarkSchedulerOnce(b *testing.B) {
	storage, _, _ := newBenchStorage(10000)
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&MovementSystem{})

	b.ResetTimer()
	elapsed := 0.0
	for b.Loop() {
		elapsed += 1.0 / 60
		scheduler.Once(elapsed)
	}
}
