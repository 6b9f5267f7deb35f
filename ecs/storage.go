package ecs

import (
	"reflect"
	"sort"

	"github.com/kamstrup/intmap"
)

// Storage owns one Arena per component type plus a set of singletons.
// It is populated up front and then sealed: the entity population of a
// sealed storage never changes.
type Storage struct {
	arenas     *intmap.Map[uint32, iArena]
	byType     map[reflect.Type]uint32
	singletons map[reflect.Type]any
	nextId     uint32
	sealed     bool
}

// NewStorage creates an empty, unsealed storage
func NewStorage() *Storage {
	return &Storage{
		arenas:     intmap.New[uint32, iArena](8),
		byType:     make(map[reflect.Type]uint32),
		singletons: make(map[reflect.Type]any),
		nextId:     1,
	}
}

// NewArena registers an arena for T with room for capacity components.
// Panics if the storage is sealed or T already has an arena.
func NewArena[T any](storage *Storage, capacity int) *Arena[T] {
	if storage.sealed {
		panic("cannot register arena on a sealed storage")
	}
	typ := reflect.TypeFor[T]()
	if _, exists := storage.byType[typ]; exists {
		panic("arena for " + typ.String() + " already registered")
	}

	id := storage.nextId
	storage.nextId++

	arena := newArena[T](id, capacity)
	storage.arenas.Put(id, arena)
	storage.byType[typ] = id
	return arena
}

// ArenaOf returns the arena registered for T, or nil.
func ArenaOf[T any](storage *Storage) *Arena[T] {
	id, ok := storage.byType[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	arena, _ := storage.arenas.Get(id)
	return arena.(*Arena[T])
}

// Spawn appends a component to the arena registered for T
func Spawn[T any](storage *Storage, component T) EntityId {
	arena := ArenaOf[T](storage)
	if arena == nil {
		panic("component type " + reflect.TypeFor[T]().String() + " not registered")
	}
	return arena.Spawn(component)
}

// Contains reports whether id refers to a live slot
func (s *Storage) Contains(id EntityId) bool {
	arena, ok := s.arenas.Get(id.ArenaId())
	if !ok {
		return false
	}
	return int(id.Index()) < arena.Len()
}

// Seal freezes the population of every arena. Further spawns panic.
func (s *Storage) Seal() {
	if s.sealed {
		return
	}
	for _, arena := range s.arenas.All() {
		arena.seal()
	}
	s.sealed = true
}

// Sealed reports whether Seal has been called
func (s *Storage) Sealed() bool {
	return s.sealed
}

// EntityCount returns the total number of entities across all arenas
func (s *Storage) EntityCount() int {
	total := 0
	for _, arena := range s.arenas.All() {
		total += arena.Len()
	}
	return total
}

// StorageStats is a point-in-time summary of a storage.
type StorageStats struct {
	ArenaCount       int
	TotalEntityCount int
	SingletonCount   int
	ArenaBreakdown   []ArenaStats
	SingletonTypes   []string
}

// ArenaStats describes one arena.
type ArenaStats struct {
	ID            uint32
	ComponentType string
	EntityCount   int
	Capacity      int
}

// CollectStats walks the storage and returns a summary sorted by arena ID
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		ArenaCount:     s.arenas.Len(),
		SingletonCount: len(s.singletons),
	}

	for id, arena := range s.arenas.All() {
		stats.ArenaBreakdown = append(stats.ArenaBreakdown, ArenaStats{
			ID:            id,
			ComponentType: arena.componentType().String(),
			EntityCount:   arena.Len(),
			Capacity:      arena.Cap(),
		})
		stats.TotalEntityCount += arena.Len()
	}
	sort.Slice(stats.ArenaBreakdown, func(i, j int) bool {
		return stats.ArenaBreakdown[i].ID < stats.ArenaBreakdown[j].ID
	})

	for typ := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
