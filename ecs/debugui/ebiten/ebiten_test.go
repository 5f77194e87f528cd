package ebiten_test

import (
	debugui_ebiten "github.com/plus3/juicy/ecs/debugui/ebiten"
	"github.com/plus3/juicy/game"
)

// The embedded backend's frame methods are all the game needs from an overlay.
var _ game.Overlay = (*debugui_ebiten.ImguiBackend)(nil)
