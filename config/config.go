// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/juicy/gfx"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all game configuration parameters.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Assets     AssetsConfig     `yaml:"assets"`
	Player     PlayerConfig     `yaml:"player"`
	Animation  AnimationConfig  `yaml:"animation"`
	Background BackgroundConfig `yaml:"background"`
	Keys       KeysConfig       `yaml:"keys"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title        string `yaml:"title"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	QuitOnEscape bool   `yaml:"quit_on_escape"`
	TPS          int    `yaml:"tps"`         // Updates per second
	ClearColor   string `yaml:"clear_color"` // Name from golang.org/x/image/colornames
}

// AssetsConfig holds asset paths.
type AssetsConfig struct {
	Spritesheet string `yaml:"spritesheet"`
}

// PlayerConfig holds player movement and breathing parameters.
// Speeds are in pixels per update.
type PlayerConfig struct {
	SpawnX            float64 `yaml:"spawn_x"`
	SpawnY            float64 `yaml:"spawn_y"`
	Accel             float64 `yaml:"accel"`
	MaxSpeed          float64 `yaml:"max_speed"`
	Friction          float64 `yaml:"friction"`
	BreathStep        float64 `yaml:"breath_step"`         // Phase added per update, wraps at 1
	BreathAmplitude   float64 `yaml:"breath_amplitude"`    // Extra vertical scale at full breath
	BreathCycleLength float64 `yaml:"breath_cycle_length"` // Seconds; carried on the component, not used by the update rule
	SpriteScale       float64 `yaml:"sprite_scale"`
}

// AnimationConfig describes the run clip.
type AnimationConfig struct {
	FrameSeconds float64     `yaml:"frame_seconds"`
	Rows         []RowConfig `yaml:"rows"`
}

// RowConfig is a run of Count equally sized frames laid side by side.
type RowConfig struct {
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	W     int `yaml:"w"`
	H     int `yaml:"h"`
	Count int `yaml:"count"`
}

// BackgroundConfig holds the background crop, stretched to fill the window.
type BackgroundConfig struct {
	Crop RectConfig `yaml:"crop"`
}

// RectConfig is a rectangle in texture pixels.
type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// KeysConfig holds key bindings by ebiten key name.
type KeysConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	LeftKeys   []ebiten.Key
	RightKeys  []ebiten.Key
	ClearColor color.RGBA
	Frames     []image.Rectangle // Run clip source rectangles, in play order
	Crop       image.Rectangle
	BackScaleX float64 // Window width / crop width
	BackScaleY float64 // Window height / crop height
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are broken: %v", err))
	}
	return cfg
}

// Load parses the embedded defaults, then layers the file at path over them if path
// is not empty. The result is validated before it is returned.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate reports every problem found, each wrapping ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		fail("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		fail("window.tps must be positive, got %d", c.Window.TPS)
	}
	if _, err := ParseColor(c.Window.ClearColor); err != nil {
		errs = append(errs, err)
	}
	if c.Assets.Spritesheet == "" {
		fail("assets.spritesheet is empty")
	}

	p := c.Player
	for name, v := range map[string]float64{
		"accel":               p.Accel,
		"max_speed":           p.MaxSpeed,
		"friction":            p.Friction,
		"breath_step":         p.BreathStep,
		"breath_amplitude":    p.BreathAmplitude,
		"breath_cycle_length": p.BreathCycleLength,
	} {
		if v < 0 {
			fail("player.%s must not be negative, got %g", name, v)
		}
	}
	if p.SpriteScale <= 0 {
		fail("player.sprite_scale must be positive, got %g", p.SpriteScale)
	}

	if c.Animation.FrameSeconds <= 0 {
		fail("animation.frame_seconds must be positive, got %g", c.Animation.FrameSeconds)
	}
	frames := 0
	for i, row := range c.Animation.Rows {
		if row.W <= 0 || row.H <= 0 || row.Count < 0 {
			fail("animation.rows[%d] has a non-positive size or negative count", i)
		}
		frames += row.Count
	}
	if frames == 0 {
		fail("animation has no frames")
	}

	if c.Background.Crop.W <= 0 || c.Background.Crop.H <= 0 {
		fail("background.crop size must be positive")
	}

	for _, binding := range []struct {
		name string
		keys []string
	}{{"left", c.Keys.Left}, {"right", c.Keys.Right}} {
		if len(binding.keys) == 0 {
			fail("keys.%s has no keys bound", binding.name)
		}
		if _, err := ParseKeys(binding.keys); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// computeDerived must only run on a validated config.
func (c *Config) computeDerived() {
	c.Derived.LeftKeys, _ = ParseKeys(c.Keys.Left)
	c.Derived.RightKeys, _ = ParseKeys(c.Keys.Right)
	c.Derived.ClearColor, _ = ParseColor(c.Window.ClearColor)

	c.Derived.Frames = c.Derived.Frames[:0]
	for _, row := range c.Animation.Rows {
		c.Derived.Frames = append(c.Derived.Frames, gfx.Row(row.X, row.Y, row.W, row.H, row.Count)...)
	}

	crop := c.Background.Crop
	c.Derived.Crop = image.Rect(crop.X, crop.Y, crop.X+crop.W, crop.Y+crop.H)
	c.Derived.BackScaleX = float64(c.Window.Width) / float64(crop.W)
	c.Derived.BackScaleY = float64(c.Window.Height) / float64(crop.H)
}

// ParseKey resolves an ebiten key name such as "ArrowLeft" or "a", ignoring case.
func ParseKey(name string) (ebiten.Key, error) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown key %q", ErrInvalid, name)
}

// ParseKeys resolves every name in names.
func ParseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		k, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// ParseColor resolves a colour name from the SVG 1.1 palette, ignoring case.
func ParseColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: unknown colour %q", ErrInvalid, name)
	}
	return c, nil
}

// WriteYAML saves the configuration as YAML.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
