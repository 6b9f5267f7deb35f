package ecs_test

import (
	"fmt"

	"github.com/plus3/backdrop/ecs"
)

// ExampleQuery iterates an arena outside of a system. Components are
// yielded by pointer, so writes go straight to storage.
func ExampleQuery() {
	storage := ecs.NewStorage()
	scores := ecs.NewArena[Score](storage, 3)
	scores.Spawn(10)
	scores.Spawn(20)
	scores.Spawn(30)
	storage.Seal()

	query := ecs.NewQuery[Score](storage)
	for _, score := range query.Iter() {
		*score *= 2
	}

	total := 0
	for i := range query.Len() {
		total += int(*query.At(i))
	}
	fmt.Printf("Total: %d\n", total)

	// Output:
	// Total: 120
}
