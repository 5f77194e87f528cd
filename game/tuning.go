package game

import (
	"image"

	"github.com/plus3/juicy/config"
)

// Tuning holds the player parameters that can change while the game runs.
type Tuning struct {
	Accel           float64
	MaxSpeed        float64
	Friction        float64
	BreathStep      float64
	BreathAmplitude float64
	SpriteScale     float64
}

// TuningFrom copies the live-tunable parameters out of a player config.
func TuningFrom(p config.PlayerConfig) Tuning {
	return Tuning{
		Accel:           p.Accel,
		MaxSpeed:        p.MaxSpeed,
		Friction:        p.Friction,
		BreathStep:      p.BreathStep,
		BreathAmplitude: p.BreathAmplitude,
		SpriteScale:     p.SpriteScale,
	}
}

// Scene holds the fixed layout of the background.
type Scene struct {
	Crop   image.Rectangle
	ScaleX float64
	ScaleY float64
}

func sceneFrom(cfg *config.Config) Scene {
	return Scene{
		Crop:   cfg.Derived.Crop,
		ScaleX: cfg.Derived.BackScaleX,
		ScaleY: cfg.Derived.BackScaleY,
	}
}
