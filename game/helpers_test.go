package game_test

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/juicy/config"
	"github.com/plus3/juicy/ecs"
	"github.com/plus3/juicy/game"
	"github.com/plus3/juicy/gfx"
)

const dt = 1.0 / 60.0

var (
	none  = game.Input{}
	left  = game.Input{Left: true}
	right = game.Input{Right: true}
)

func testSheet() *gfx.Texture {
	return &gfx.Texture{Path: "sheet.png", Bounds: image.Rect(0, 0, 320, 320)}
}

func newTestWorld(t *testing.T) *game.World {
	t.Helper()
	return game.NewWorld(config.Default(), testSheet())
}

type playerParts struct {
	pos  *game.Position
	vel  *game.Velocity
	anim *game.PlayerAnimation
}

func player(w *game.World) playerParts {
	return playerParts{
		pos:  ecs.Get[game.Position](w.Storage, w.Player),
		vel:  ecs.Get[game.Velocity](w.Storage, w.Player),
		anim: ecs.Get[game.PlayerAnimation](w.Storage, w.Player),
	}
}

func update(w *game.World, input game.Input, frames int) {
	for range frames {
		w.Update.Once(dt, input)
	}
}

type fakeKeys map[ebiten.Key]bool

func (k fakeKeys) IsKeyPressed(key ebiten.Key) bool {
	return k[key]
}
