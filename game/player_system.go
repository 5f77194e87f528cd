package game

import (
	"math"

	"github.com/plus3/juicy/ecs"
)

// PlayerSystem applies one update step to every player: breathing, horizontal
// acceleration or friction, integration, then the Idle/Running transition.
type PlayerSystem struct {
	Players *ecs.View4[Position, Velocity, PlayerAnimation, Player]
	Tuning  *ecs.Singleton[Tuning]
}

func NewPlayerSystem(storage *ecs.Storage) *PlayerSystem {
	return &PlayerSystem{
		Players: ecs.NewView4[Position, Velocity, PlayerAnimation, Player](storage),
		Tuning:  ecs.NewSingleton[Tuning](storage),
	}
}

func (s *PlayerSystem) Execute(frame *ecs.UpdateFrame[Input]) {
	tuning := s.Tuning.Get()
	input := frame.Ctx

	s.Players.Each(func(_ ecs.EntityId, pos *Position, vel *Velocity, anim *PlayerAnimation, _ *Player) {
		anim.BreathCycle = math.Mod(anim.BreathCycle+tuning.BreathStep, 1.0)

		// left wins when both directions are held
		switch {
		case input.Left:
			vel.X = math.Max(vel.X-tuning.Accel, -tuning.MaxSpeed)
		case input.Right:
			vel.X = math.Min(vel.X+tuning.Accel, tuning.MaxSpeed)
		default:
			vel.X -= math.Min(math.Abs(vel.X), tuning.Friction) * signum(vel.X)
		}

		pos.X += vel.X
		pos.Y += vel.Y

		if math.Abs(vel.X) > 0 {
			anim.State = Running
		} else {
			anim.Running.Restart()
			anim.State = Idle
		}
	})
}
