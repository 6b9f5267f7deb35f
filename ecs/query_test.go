package ecs_test

import (
	"testing"

	"github.com/plus3/backdrop/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQueryBindsArena(t *testing.T) {
	storage := ecs.NewStorage()
	healths := ecs.NewArena[Health](storage, 2)
	healths.Spawn(Health{Current: 10, Max: 10})
	healths.Spawn(Health{Current: 3, Max: 10})

	query := ecs.NewQuery[Health](storage)
	assert.Equal(t, 2, query.Len())
	assert.Same(t, healths.At(1), query.At(1))

	for _, h := range query.Iter() {
		h.Current = h.Max
	}
	assert.Equal(t, 10, healths.At(1).Current)
}

func TestQueryUnregisteredPanics(t *testing.T) {
	storage := ecs.NewStorage()
	assert.PanicsWithValue(t, "component type ecs_test.Health not registered", func() {
		ecs.NewQuery[Health](storage)
	})
}

func TestQueryUnboundIter(t *testing.T) {
	var query ecs.Query[Health]
	assert.Zero(t, query.Len())
	assert.Panics(t, func() {
		for range query.Iter() {
		}
	})
}

type unboundFieldSystem struct {
	Healths ecs.Query[Health]
}

func (s *unboundFieldSystem) Execute(*ecs.UpdateFrame) {}

func TestRegisterPanicsForUnknownQuery(t *testing.T) {
	scheduler := ecs.NewScheduler(ecs.NewStorage())
	assert.Panics(t, func() {
		scheduler.Register(&unboundFieldSystem{})
	})
}
