package ecs_test

import (
	"fmt"

	"github.com/plus3/juicy/ecs"
)

func ExampleStorage() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)

	storage := ecs.NewStorage(registry)

	player := storage.Spawn(Position{X: 100, Y: 600}, Velocity{})
	fmt.Println("alive:", storage.IsAlive(player))

	ecs.Get[Velocity](storage, player).DX = 2.5
	fmt.Printf("velocity: %+v\n", *ecs.Get[Velocity](storage, player))

	storage.Delete(player)
	fmt.Println("alive after delete:", storage.IsAlive(player))

	// Output:
	// alive: true
	// velocity: {DX:2.5 DY:0}
	// alive after delete: false
}

func ExampleInsert() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Health](registry)

	storage := ecs.NewStorage(registry)
	id := storage.Spawn(Position{X: 1, Y: 1})

	health := ecs.Insert(storage, id, Health{Current: 10, Max: 10})
	health.Current -= 3

	fmt.Println(ecs.Has[Health](storage, id), ecs.Get[Health](storage, id).Current)

	// Output:
	// true 7
}
