package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/juicy/ecs"
	"github.com/plus3/juicy/ecs/debugui"
	debugui_ebiten "github.com/plus3/juicy/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and integrates the ECS with ImGui rendering.
type Game struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler[struct{}]
	overlay   *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.overlay.BeginFrame()

	// Execute all ECS systems (including ImguiSystem)
	g.scheduler.Once(1.0/60.0, struct{}{})

	// End ImGui frame after systems complete
	g.overlay.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create Ebiten window and ImGui backend
	overlay := debugui_ebiten.NewImguiBackend("ECS ImGui Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	// Set up ECS component registry
	registry := ecs.NewComponentRegistry()
	debugui.RegisterDebugUIComponents(registry)

	// Create ECS storage
	storage := ecs.NewStorage(registry)

	// Spawn entities with ImGui render functions
	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from ECS!")
			imgui.End()
		},
	})

	// Create scheduler and register ImguiSystem
	scheduler := ecs.NewScheduler[struct{}](storage)
	scheduler.Register(debugui.NewImguiSystem[struct{}](storage))
	debugui.SpawnDebugUI(storage, debugui.NamedStats{Name: "Main", Source: scheduler})
	scheduler.Register(debugui.NewPanelSystem[struct{}](storage))

	// Create game instance
	game := &Game{
		storage:   storage,
		scheduler: scheduler,
		overlay:   overlay,
	}

	// Run the game
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
