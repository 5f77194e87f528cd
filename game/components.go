// Package game wires the player and background entities into an ECS world and drives
// it from ebiten or from a scripted headless loop.
package game

import (
	"github.com/plus3/juicy/ecs"
	"github.com/plus3/juicy/gfx"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

// Player marks the entity driven by keyboard input.
type Player struct{}

type PlayerState int

const (
	Idle PlayerState = iota
	Running
)

func (s PlayerState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

type PlayerAnimation struct {
	State   PlayerState
	Running *gfx.Animation
	// BreathCycle is the breathing phase in [0, 1).
	BreathCycle       float64
	BreathCycleLength float64
}

// Background is a texture stretched over the whole window.
type Background struct {
	Texture *gfx.Texture
}

// NewRegistry registers every component kind the game uses.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[PlayerAnimation](registry)
	ecs.RegisterComponent[Background](registry)
	return registry
}
