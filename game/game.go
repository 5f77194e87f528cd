package game

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/juicy/config"
	"github.com/plus3/juicy/ecs"
)

// Overlay is drawn on top of the game each frame. BeginFrame and EndFrame bracket
// the update pass so overlay widgets can be built by update systems.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// Game drives a World from ebiten's update/draw callbacks.
type Game struct {
	world    *World
	keys     KeySource
	bindings Bindings
	clear    color.RGBA
	width    int
	height   int
	dt       float64

	renderer *EbitenRenderer
	timer    *ecs.FrameTimer
	overlay  Overlay
	reloads  <-chan *config.Config
}

type Option func(*Game)

// WithOverlay draws o over every frame.
func WithOverlay(o Overlay) Option {
	return func(g *Game) { g.overlay = o }
}

// WithReloads applies player tuning and key bindings from configs received on ch.
func WithReloads(ch <-chan *config.Config) Option {
	return func(g *Game) { g.reloads = ch }
}

// WithKeySource replaces the keyboard.
func WithKeySource(keys KeySource) Option {
	return func(g *Game) { g.keys = keys }
}

func NewGame(cfg *config.Config, world *World, opts ...Option) *Game {
	dt := 1.0 / float64(cfg.Window.TPS)
	g := &Game{
		world:    world,
		keys:     EbitenKeys{},
		bindings: BindingsFrom(cfg),
		clear:    cfg.Derived.ClearColor,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		dt:       dt,
		renderer: &EbitenRenderer{},
		timer:    ecs.NewFrameTimer(dt),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Update() error {
	g.applyReloads()

	input := g.bindings.Poll(g.keys)
	if input.Quit {
		return ebiten.Termination
	}

	if g.overlay != nil {
		g.overlay.BeginFrame()
	}
	g.world.Update.Once(g.dt, input)
	if g.overlay != nil {
		g.overlay.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clear)

	g.renderer.Screen = screen
	g.world.Draw.Once(g.timer.Tick(), g.renderer)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(g.width, g.height)
	}
	return g.width, g.height
}

func (g *Game) applyReloads() {
	if g.reloads == nil {
		return
	}
	select {
	case cfg, ok := <-g.reloads:
		if !ok {
			g.reloads = nil
			return
		}
		g.world.Tuning.Set(TuningFrom(cfg.Player))
		quit := g.bindings.Quit
		g.bindings = BindingsFrom(cfg)
		g.bindings.Quit = quit
		slog.Info("config reloaded", "max_speed", cfg.Player.MaxSpeed, "accel", cfg.Player.Accel)
	default:
	}
}
