package ecs_test

import (
	"testing"

	"github.com/plus3/backdrop/ecs"
	"github.com/stretchr/testify/assert"
)

func TestSingleton(t *testing.T) {
	storage := ecs.NewStorage()

	clock := ecs.NewSingleton(storage, WorldClock{Elapsed: 2})
	assert.True(t, clock.Exists())
	assert.Equal(t, 2.0, clock.Get().Elapsed)

	// A second accessor shares the stored value and ignores its initializer.
	again := ecs.NewSingleton(storage, WorldClock{Elapsed: 99})
	again.Get().Elapsed = 5
	assert.Equal(t, 5.0, clock.Get().Elapsed)

	var late ecs.Singleton[Score]
	late.Init(storage)
	assert.False(t, late.Exists())

	ecs.NewSingleton[Score](storage)
	assert.True(t, late.Exists())
	assert.Equal(t, Score(0), *late.Get())
}

func TestSingletonOnSealedStorage(t *testing.T) {
	storage := ecs.NewStorage()
	ecs.NewSingleton(storage, WorldClock{})
	storage.Seal()

	assert.NotPanics(t, func() { ecs.NewSingleton[WorldClock](storage) })
	assert.Panics(t, func() { ecs.NewSingleton[Score](storage) })
}
