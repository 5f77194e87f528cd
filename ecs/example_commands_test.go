package ecs_test

import (
	"fmt"

	"github.com/plus3/juicy/ecs"
)

func ExampleCommands() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Name](registry)

	storage := ecs.NewStorage(registry)
	storage.Spawn(Name{Value: "goblin"}, Health{Current: 0, Max: 5})
	storage.Spawn(Name{Value: "knight"}, Health{Current: 9, Max: 9})

	scheduler := ecs.NewScheduler[struct{}](storage)
	scheduler.Register(ecs.SystemFunc[struct{}](func(frame *ecs.UpdateFrame[struct{}]) {
		ecs.NewView2[Name, Health](frame.Storage).Each(func(id ecs.EntityId, name *Name, h *Health) {
			if h.Current > 0 {
				return
			}
			frame.Commands.Delete(id)
			frame.Commands.Spawn(Name{Value: name.Value + " corpse"})
		})
	}))

	scheduler.Once(0, struct{}{})

	ecs.NewView1[Name](storage).Each(func(_ ecs.EntityId, name *Name) {
		fmt.Println(name.Value)
	})

	// Output:
	// knight
	// goblin corpse
}
