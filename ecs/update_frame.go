package ecs

// UpdateFrame is everything a system sees during one scheduler pass.
type UpdateFrame[C any] struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
	Ctx       C
}

func newUpdateFrame[C any](dt float64, storage *Storage, commands *Commands, ctx C) *UpdateFrame[C] {
	return &UpdateFrame[C]{
		DeltaTime: dt,
		Commands:  commands,
		Storage:   storage,
		Ctx:       ctx,
	}
}
