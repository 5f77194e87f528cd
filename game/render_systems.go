package game

import (
	"math"

	"github.com/plus3/juicy/ecs"
)

// BackgroundRenderSystem stretches the background crop across the window.
type BackgroundRenderSystem struct {
	Backgrounds *ecs.View2[Position, Background]
	Scene       *ecs.Singleton[Scene]
}

func NewBackgroundRenderSystem(storage *ecs.Storage) *BackgroundRenderSystem {
	return &BackgroundRenderSystem{
		Backgrounds: ecs.NewView2[Position, Background](storage),
		Scene:       ecs.NewSingleton[Scene](storage),
	}
}

func (s *BackgroundRenderSystem) Execute(frame *ecs.UpdateFrame[Renderer]) {
	scene := s.Scene.Get()
	s.Backgrounds.Each(func(_ ecs.EntityId, pos *Position, bg *Background) {
		frame.Ctx.Draw(DrawCall{
			Texture:  bg.Texture,
			Source:   scene.Crop,
			Position: Vec2{X: pos.X, Y: pos.Y},
			Scale:    Vec2{X: scene.ScaleX, Y: scene.ScaleY},
		})
	})
}

// PlayerRenderSystem advances each animated sprite's clip and draws it pivoted on
// its bottom centre, mirrored by the direction of travel and stretched by breathing.
// It never touches Position or Velocity.
type PlayerRenderSystem struct {
	Sprites *ecs.View3[Position, Velocity, PlayerAnimation]
	Tuning  *ecs.Singleton[Tuning]
}

func NewPlayerRenderSystem(storage *ecs.Storage) *PlayerRenderSystem {
	return &PlayerRenderSystem{
		Sprites: ecs.NewView3[Position, Velocity, PlayerAnimation](storage),
		Tuning:  ecs.NewSingleton[Tuning](storage),
	}
}

func (s *PlayerRenderSystem) Execute(frame *ecs.UpdateFrame[Renderer]) {
	tuning := s.Tuning.Get()

	s.Sprites.Each(func(_ ecs.EntityId, pos *Position, vel *Velocity, anim *PlayerAnimation) {
		clip := anim.Running
		clip.Advance(frame.DeltaTime)

		first := clip.Frames()[0]
		breath := 1 + ExpoInOut(math.Abs(anim.BreathCycle*2-1))*tuning.BreathAmplitude

		call := DrawCall{
			Texture:  clip.Texture(),
			Source:   clip.Source(),
			Position: Vec2{X: pos.X, Y: pos.Y},
			Origin:   Vec2{X: float64(first.Dx()) / 2, Y: float64(first.Dy())},
			Scale:    Vec2{X: tuning.SpriteScale * signum(vel.X), Y: tuning.SpriteScale * breath},
		}

		// TODO: Idle has no art of its own yet; give it a separate clip once the sheet has one.
		switch anim.State {
		case Idle:
			frame.Ctx.Draw(call)
		case Running:
			frame.Ctx.Draw(call)
		}
	})
}
