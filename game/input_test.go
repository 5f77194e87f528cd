package game_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/juicy/config"
	"github.com/plus3/juicy/game"
	"github.com/stretchr/testify/assert"
)

func TestBindingsPoll(t *testing.T) {
	bindings := game.BindingsFrom(config.Default())

	tests := []struct {
		name string
		keys fakeKeys
		want game.Input
	}{
		{"nothing held", fakeKeys{}, game.Input{}},
		{"arrow left", fakeKeys{ebiten.KeyArrowLeft: true}, game.Input{Left: true}},
		{"alternate left", fakeKeys{ebiten.KeyA: true}, game.Input{Left: true}},
		{"arrow right", fakeKeys{ebiten.KeyArrowRight: true}, game.Input{Right: true}},
		{"alternate right", fakeKeys{ebiten.KeyD: true}, game.Input{Right: true}},
		{"both", fakeKeys{ebiten.KeyA: true, ebiten.KeyD: true}, game.Input{Left: true, Right: true}},
		{"escape", fakeKeys{ebiten.KeyEscape: true}, game.Input{Quit: true}},
		{"unbound", fakeKeys{ebiten.KeySpace: true}, game.Input{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bindings.Poll(tt.keys))
		})
	}
}

func TestBindingsWithoutQuitOnEscape(t *testing.T) {
	cfg := config.Default()
	cfg.Window.QuitOnEscape = false

	input := game.BindingsFrom(cfg).Poll(fakeKeys{ebiten.KeyEscape: true})
	assert.False(t, input.Quit)
}
