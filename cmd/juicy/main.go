package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"github.com/plus3/juicy/config"
	"github.com/plus3/juicy/ecs/debugui"
	debugui_ebiten "github.com/plus3/juicy/ecs/debugui/ebiten"
	"github.com/plus3/juicy/game"
	"github.com/plus3/juicy/gfx"
)

type options struct {
	configPath string
	headless   bool
	frames     int
	script     string
	tracePath  string
	debug      bool
	profile    string
	logLevel   string
	logFormat  string
	watch      bool
	dumpConfig string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to config.yaml (empty = use defaults)")
	flag.BoolVar(&opts.headless, "headless", false, "Run without a window and print a report")
	flag.IntVar(&opts.frames, "frames", 0, "Frames to simulate in headless mode (0 = length of -script)")
	flag.StringVar(&opts.script, "script", "", "Headless input script, e.g. right:30,none:20,left:10")
	flag.StringVar(&opts.tracePath, "trace", "", "Write a per-frame CSV trace of the player in headless mode")
	flag.BoolVar(&opts.debug, "debug", false, "Show the ImGui debug overlay")
	flag.StringVar(&opts.profile, "profile", "", "Profile the run: cpu or mem")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&opts.logFormat, "log-format", "text", "Log format: text or json")
	flag.BoolVar(&opts.watch, "watch", false, "Reload player tuning and keys when the config file changes")
	flag.StringVar(&opts.dumpConfig, "dump-config", "", "Write the effective config as YAML to this path and exit")
	flag.Parse()

	if err := setupLogger(opts.logLevel, opts.logFormat); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		slog.Error("juicy failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level, format string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("parsing -log-level: %w", err)
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		return fmt.Errorf("unknown -log-format %q", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	if opts.dumpConfig != "" {
		if err := cfg.WriteYAML(opts.dumpConfig); err != nil {
			return err
		}
		slog.Info("config written", "path", opts.dumpConfig)
		return nil
	}

	switch opts.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown -profile %q", opts.profile)
	}

	if opts.headless {
		return runHeadless(cfg, opts)
	}
	return runWindowed(cfg, opts)
}

func runHeadless(cfg *config.Config, opts options) error {
	script, err := game.ParseScript(opts.script)
	if err != nil {
		return err
	}

	frames := opts.frames
	if frames == 0 {
		frames = script.Frames()
	}
	if frames <= 0 {
		return errors.New("headless mode needs -frames or a -script")
	}

	sheet, err := gfx.NewLibrary(gfx.LoadTextureHeadless).Load(cfg.Assets.Spritesheet)
	if err != nil {
		return err
	}
	world := game.NewWorld(cfg, sheet)

	headlessOpts := game.HeadlessOptions{
		Frames: frames,
		Script: script,
		DT:     1 / float64(cfg.Window.TPS),
	}

	if opts.tracePath != "" {
		f, err := os.Create(opts.tracePath)
		if err != nil {
			return fmt.Errorf("creating trace file: %w", err)
		}
		defer f.Close()
		headlessOpts.Trace = game.NewTraceWriter(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := game.RunHeadless(ctx, world, headlessOpts)
	if err != nil {
		return err
	}

	report := &Report{
		ConfigPath: opts.configPath,
		Script:     opts.script,
		TPS:        cfg.Window.TPS,
		Summary:    summary,
	}
	return report.Generate(os.Stdout)
}

func runWindowed(cfg *config.Config, opts options) error {
	var gameOpts []game.Option

	// The ImGui backend owns the window when the overlay is on.
	if opts.debug {
		overlay := debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
		imgui.CurrentIO().SetIniFilename("")
		gameOpts = append(gameOpts, game.WithOverlay(overlay))
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	sheet, err := gfx.NewLibrary(nil).Load(cfg.Assets.Spritesheet)
	if err != nil {
		return err
	}
	world := game.NewWorld(cfg, sheet)

	if opts.debug {
		debugui.RegisterDebugUIComponents(world.Storage.Registry())
		world.Update.Register(debugui.NewImguiSystem[game.Input](world.Storage))
		world.Update.Register(debugui.NewPanelSystem[game.Input](world.Storage))
		debugui.SpawnDebugUI(world.Storage,
			debugui.NamedStats{Name: "Update", Source: world.Update},
			debugui.NamedStats{Name: "Draw", Source: world.Draw},
		)
		spawnPlayerWindow(world)
	}

	if opts.watch {
		if opts.configPath == "" {
			return errors.New("-watch needs -config")
		}
		watcher, err := config.NewWatcher(opts.configPath)
		if err != nil {
			return err
		}
		defer watcher.Close()
		go logWatchErrors(watcher.Errors)
		gameOpts = append(gameOpts, game.WithReloads(watcher.Reloads))
	}

	slog.Info("starting game",
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"tps", cfg.Window.TPS,
		"debug", opts.debug,
	)

	err = ebiten.RunGame(game.NewGame(cfg, world, gameOpts...))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func logWatchErrors(errs <-chan error) {
	for err := range errs {
		slog.Warn("config reload failed", "error", err)
	}
}
