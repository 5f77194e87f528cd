package game

import (
	"github.com/plus3/juicy/config"
	"github.com/plus3/juicy/ecs"
	"github.com/plus3/juicy/gfx"
)

// World is the ECS storage plus the two per-frame passes that run over it.
// Update runs with the frame's Input; Draw runs with the Renderer to draw into.
type World struct {
	Storage *ecs.Storage
	Update  *ecs.Scheduler[Input]
	Draw    *ecs.Scheduler[Renderer]
	Tuning  *ecs.Singleton[Tuning]

	Player     ecs.EntityId
	Background ecs.EntityId
}

// NewWorld spawns the background and the player, both drawing from sheet.
func NewWorld(cfg *config.Config, sheet *gfx.Texture) *World {
	storage := ecs.NewStorage(NewRegistry())

	w := &World{
		Storage: storage,
		Update:  ecs.NewScheduler[Input](storage),
		Draw:    ecs.NewScheduler[Renderer](storage),
		Tuning:  ecs.NewSingleton(storage, TuningFrom(cfg.Player)),
	}
	ecs.NewSingleton(storage, sceneFrom(cfg))

	run := gfx.NewAnimation(sheet, cfg.Derived.Frames, cfg.Animation.FrameSeconds)

	w.Player = storage.Spawn(
		Position{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY},
		Velocity{},
		PlayerAnimation{
			State:             Idle,
			Running:           run,
			BreathCycleLength: cfg.Player.BreathCycleLength,
		},
		Player{},
	)
	w.Background = storage.Spawn(
		Position{},
		Background{Texture: sheet},
	)

	w.Update.Register(NewPlayerSystem(storage))

	w.Draw.Register(NewBackgroundRenderSystem(storage))
	w.Draw.Register(NewPlayerRenderSystem(storage))

	return w
}

// Step runs one update pass followed by one draw pass.
func (w *World) Step(dt float64, input Input, renderer Renderer) {
	w.Update.Once(dt, input)
	w.Draw.Once(dt, renderer)
}
