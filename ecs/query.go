package ecs

import (
	"iter"
	"reflect"
)

// Query gives a system access to the arena holding components of type T.
// Declare it as a value field on a system; the Scheduler binds it on Register.
type Query[T any] struct {
	arena *Arena[T]
}

// NewQuery creates a Query bound to the arena for T in storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the Query to storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.arena = ArenaOf[T](storage)
	if q.arena == nil {
		panic("component type " + reflect.TypeFor[T]().String() + " not registered")
	}
}

// Len returns the number of entities matched by the query.
func (q *Query[T]) Len() int {
	if q.arena == nil {
		return 0
	}
	return q.arena.Len()
}

// At returns the component at slot i.
func (q *Query[T]) At(i int) *T {
	return q.arena.At(i)
}

// Iter returns an iterator over slot indices and component pointers.
// Panics if the Query was never bound.
func (q *Query[T]) Iter() iter.Seq2[int, *T] {
	if q.arena == nil {
		panic("Query.Iter() called before Query.Init()")
	}
	return q.arena.All()
}
