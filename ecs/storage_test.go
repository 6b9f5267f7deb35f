package ecs_test

import (
	"fmt"
	"testing"

	"github.com/plus3/backdrop/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test EntityId encoding/decoding
func TestEntityIdEncoding(t *testing.T) {
	arenaId := uint32(12345)
	index := uint32(67890)

	entityId := ecs.NewEntityId(arenaId, index)

	assert.Equal(t, arenaId, entityId.ArenaId())
	assert.Equal(t, index, entityId.Index())
}

func TestEntityIdEdgeCases(t *testing.T) {
	tests := []struct {
		arenaId uint32
		index   uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("arena=%d,index=%d", tt.arenaId, tt.index), func(t *testing.T) {
			entityId := ecs.NewEntityId(tt.arenaId, tt.index)
			assert.Equal(t, tt.arenaId, entityId.ArenaId())
			assert.Equal(t, tt.index, entityId.Index())
		})
	}
}

func TestSpawnIntoArena(t *testing.T) {
	storage := ecs.NewStorage()
	positions := ecs.NewArena[Position](storage, 4)

	first := positions.Spawn(Position{X: 1, Y: 2})
	second := ecs.Spawn(storage, Position{X: 3, Y: 4})

	assert.Equal(t, first.ArenaId(), second.ArenaId())
	assert.Equal(t, uint32(0), first.Index())
	assert.Equal(t, uint32(1), second.Index())
	assert.Equal(t, 2, positions.Len())

	got := positions.Get(second)
	require.NotNil(t, got)
	assert.Equal(t, Position{X: 3, Y: 4}, *got)
	assert.True(t, storage.Contains(second))
}

func TestArenaGetRejectsForeignIds(t *testing.T) {
	storage := ecs.NewStorage()
	positions := ecs.NewArena[Position](storage, 1)
	velocities := ecs.NewArena[Velocity](storage, 1)

	velocityId := velocities.Spawn(Velocity{DX: 1})

	assert.Nil(t, positions.Get(velocityId))
	assert.Nil(t, velocities.Get(ecs.NewEntityId(velocityId.ArenaId(), 7)))
	assert.False(t, storage.Contains(ecs.NewEntityId(99, 0)))
}

func TestArenaOf(t *testing.T) {
	storage := ecs.NewStorage()
	assert.Nil(t, ecs.ArenaOf[Position](storage))

	arena := ecs.NewArena[Position](storage, 0)
	assert.Same(t, arena, ecs.ArenaOf[Position](storage))
}

func TestDuplicateArenaPanics(t *testing.T) {
	storage := ecs.NewStorage()
	ecs.NewArena[Position](storage, 0)

	assert.Panics(t, func() {
		ecs.NewArena[Position](storage, 0)
	})
}

func TestSpawnUnregisteredPanics(t *testing.T) {
	storage := ecs.NewStorage()
	assert.Panics(t, func() {
		ecs.Spawn(storage, Health{Current: 1, Max: 1})
	})
}

func TestSealFreezesPopulation(t *testing.T) {
	storage := ecs.NewStorage()
	positions := ecs.NewArena[Position](storage, 2)
	positions.Spawn(Position{})

	storage.Seal()
	storage.Seal()

	assert.True(t, storage.Sealed())
	assert.Panics(t, func() { positions.Spawn(Position{}) })
	assert.Panics(t, func() { ecs.NewArena[Velocity](storage, 0) })
	assert.Equal(t, 1, positions.Len())
}

func TestArenaPointersStableAfterSeal(t *testing.T) {
	storage := ecs.NewStorage()
	positions := ecs.NewArena[Position](storage, 3)
	for i := range 3 {
		positions.Spawn(Position{X: float32(i)})
	}
	storage.Seal()

	ptr := positions.At(1)
	for _, p := range positions.All() {
		p.Y += 10
	}

	assert.Same(t, ptr, positions.At(1))
	assert.Equal(t, float32(10), ptr.Y)
	assert.Equal(t, float32(1), positions.Items()[1].X)
}

func TestArenaIterationStops(t *testing.T) {
	storage := ecs.NewStorage()
	scores := ecs.NewArena[Score](storage, 5)
	for i := range 5 {
		scores.Spawn(Score(i))
	}

	visited := 0
	for i := range scores.All() {
		visited++
		if i == 2 {
			break
		}
	}
	assert.Equal(t, 3, visited)
}

func TestStorageStats(t *testing.T) {
	storage := ecs.NewStorage()

	stats := storage.CollectStats()
	assert.Equal(t, 0, stats.ArenaCount)
	assert.Equal(t, 0, stats.TotalEntityCount)
	assert.Equal(t, 0, stats.SingletonCount)

	positions := ecs.NewArena[Position](storage, 8)
	names := ecs.NewArena[Name](storage, 2)
	positions.Spawn(Position{})
	positions.Spawn(Position{})
	names.Spawn(Name("orb"))

	ecs.NewSingleton(storage, WorldClock{Elapsed: 1})

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArenaCount)
	assert.Equal(t, 3, stats.TotalEntityCount)
	assert.Equal(t, 3, storage.EntityCount())
	assert.Equal(t, 1, stats.SingletonCount)

	require.Len(t, stats.ArenaBreakdown, 2)
	assert.Equal(t, "ecs_test.Position", stats.ArenaBreakdown[0].ComponentType)
	assert.Equal(t, 2, stats.ArenaBreakdown[0].EntityCount)
	assert.Equal(t, 8, stats.ArenaBreakdown[0].Capacity)
	assert.Equal(t, "ecs_test.Name", stats.ArenaBreakdown[1].ComponentType)
	assert.Equal(t, []string{"ecs_test.WorldClock"}, stats.SingletonTypes)
}
