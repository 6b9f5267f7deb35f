package ecs

import (
	"iter"
	"reflect"
)

// iArena is the type-erased view of an Arena that Storage keeps in its tables.
type iArena interface {
	arenaId() uint32
	componentType() reflect.Type
	Len() int
	Cap() int
	seal()
}

// Arena stores every component of a single type in one flat slice.
// Slots are appended during construction and never removed; once the owning
// Storage is sealed the backing array is fixed, so pointers returned by At
// and Get stay valid for the lifetime of the storage.
type Arena[T any] struct {
	id     uint32
	typ    reflect.Type
	items  []T
	sealed bool
}

func newArena[T any](id uint32, capacity int) *Arena[T] {
	return &Arena[T]{
		id:    id,
		typ:   reflect.TypeFor[T](),
		items: make([]T, 0, capacity),
	}
}

func (a *Arena[T]) arenaId() uint32             { return a.id }
func (a *Arena[T]) componentType() reflect.Type { return a.typ }
func (a *Arena[T]) seal()                       { a.sealed = true }

// Spawn appends a component and returns its entity ID.
// Panics once the owning storage has been sealed.
func (a *Arena[T]) Spawn(item T) EntityId {
	if a.sealed {
		panic("cannot spawn " + a.typ.String() + " into a sealed arena")
	}
	a.items = append(a.items, item)
	return NewEntityId(a.id, uint32(len(a.items)-1))
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// Cap returns the capacity of the backing array.
func (a *Arena[T]) Cap() int {
	return cap(a.items)
}

// At returns a pointer to the component at slot i.
func (a *Arena[T]) At(i int) *T {
	return &a.items[i]
}

// Get returns the component for the given entity ID, or nil if the ID
// belongs to another arena or is out of range.
func (a *Arena[T]) Get(id EntityId) *T {
	if id.ArenaId() != a.id {
		return nil
	}
	idx := int(id.Index())
	if idx >= len(a.items) {
		return nil
	}
	return &a.items[idx]
}

// Items exposes the backing slice. Callers may mutate elements but must not
// append to or reslice it.
func (a *Arena[T]) Items() []T {
	return a.items
}

// All iterates over slot indices and component pointers in slot order.
func (a *Arena[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range a.items {
			if !yield(i, &a.items[i]) {
				return
			}
		}
	}
}
