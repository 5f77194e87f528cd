package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/juicy/config"
)

// Input is the snapshot of held keys taken once per update.
type Input struct {
	Left  bool
	Right bool
	Quit  bool
}

// KeySource answers level-triggered "is this key down" queries.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeys reads the real keyboard.
type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// Bindings maps logical inputs to physical keys. Any bound key triggers its input.
type Bindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Quit  []ebiten.Key
}

// BindingsFrom builds bindings from a loaded config.
func BindingsFrom(cfg *config.Config) Bindings {
	b := Bindings{
		Left:  cfg.Derived.LeftKeys,
		Right: cfg.Derived.RightKeys,
	}
	if cfg.Window.QuitOnEscape {
		b.Quit = []ebiten.Key{ebiten.KeyEscape}
	}
	return b
}

// Poll samples keys into an Input.
func (b Bindings) Poll(keys KeySource) Input {
	return Input{
		Left:  anyPressed(keys, b.Left),
		Right: anyPressed(keys, b.Right),
		Quit:  anyPressed(keys, b.Quit),
	}
}

func anyPressed(keys KeySource, bound []ebiten.Key) bool {
	for _, k := range bound {
		if keys.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
