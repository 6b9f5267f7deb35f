package ecs

import "reflect"

// Singleton provides access to a single component instance that does not
// live in any arena. Use this for per-scene state such as the clock, the
// camera or the latest pointer sample.
type Singleton[T any] struct {
	storage *Storage
	ptr     *T
}

// NewSingleton creates a new Singleton accessor for the given storage.
// If initializer is provided and the singleton doesn't exist in storage,
// it will be created with the initializer value. Otherwise, a zero value is used.
// This guarantees the singleton exists in storage after the call.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	typ := reflect.TypeFor[T]()

	entry, ok := storage.singletons[typ]
	if !ok {
		if storage.sealed {
			panic("cannot add singleton " + typ.String() + " to a sealed storage")
		}
		value := new(T)
		if len(initializer) > 0 {
			*value = initializer[0]
		}
		storage.singletons[typ] = value
		entry = value
	}

	return &Singleton[T]{
		storage: storage,
		ptr:     entry.(*T),
	}
}

// Init initializes the Singleton with a storage reference.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.ptr, _ = ReadSingleton[T](storage)
}

// Get returns a pointer to the singleton component.
// Returns nil if the singleton has not been added to storage.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil && s.storage != nil {
		s.ptr, _ = ReadSingleton[T](s.storage)
	}
	return s.ptr
}

// Exists returns true if the singleton component has been added to storage
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

// ReadSingleton looks up the singleton of type T in storage
func ReadSingleton[T any](storage *Storage) (*T, bool) {
	entry, ok := storage.singletons[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return entry.(*T), true
}
