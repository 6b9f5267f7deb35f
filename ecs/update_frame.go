package ecs

type UpdateFrame struct {
	Elapsed   float64
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(elapsed, dt float64, storage *Storage, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		Elapsed:   elapsed,
		DeltaTime: dt,
		Commands:  commands,
		Storage:   storage,
	}
}
