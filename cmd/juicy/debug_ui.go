package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/juicy/ecs"
	"github.com/plus3/juicy/ecs/debugui"
	"github.com/plus3/juicy/game"
)

// spawnPlayerWindow adds a window showing the player's state, with sliders that
// edit the live tuning.
func spawnPlayerWindow(world *game.World) {
	storage := world.Storage

	world.Storage.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(300, 260), imgui.CondOnce)

			if !imgui.BeginV("Player", nil, 0) {
				imgui.End()
				return
			}

			pos := ecs.Get[game.Position](storage, world.Player)
			vel := ecs.Get[game.Velocity](storage, world.Player)
			anim := ecs.Get[game.PlayerAnimation](storage, world.Player)
			if pos != nil && vel != nil && anim != nil {
				imgui.Text(fmt.Sprintf("Position: (%.1f, %.1f)", pos.X, pos.Y))
				imgui.Text(fmt.Sprintf("Velocity: %.2f", vel.X))
				imgui.Text(fmt.Sprintf("State: %s", anim.State))
				imgui.Text(fmt.Sprintf("Frame: %d  Breath: %.2f", anim.Running.CurrentFrame(), anim.BreathCycle))
			}

			imgui.Separator()
			tuning := world.Tuning.Get()
			sliderFloat64("Accel", &tuning.Accel, 0, 5)
			sliderFloat64("Max Speed", &tuning.MaxSpeed, 0, 20)
			sliderFloat64("Friction", &tuning.Friction, 0, 5)
			sliderFloat64("Breath Step", &tuning.BreathStep, 0, 0.1)
			sliderFloat64("Breath Amplitude", &tuning.BreathAmplitude, 0, 1)

			imgui.End()
		},
	})
}

func sliderFloat64(label string, v *float64, lo, hi float32) {
	f := float32(*v)
	if imgui.SliderFloat(label, &f, lo, hi) {
		*v = float64(f)
	}
}
