package ecs_test

type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current, Max int
}

type Name string

type Score int

type WorldClock struct {
	Elapsed float64
}
