package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all game configuration values
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Movement  MovementConfig  `yaml:"movement"`
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Audio     AudioConfig     `yaml:"audio"`
	Threading ThreadingConfig `yaml:"threading"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"`
	ShowFPS      bool   `yaml:"show_fps"`
}

type WorldConfig struct {
	MapFile           string `yaml:"map_file"` // Empty uses the built-in layout
	Seed              int64  `yaml:"seed"`     // 0 seeds from the clock
	PlacementAttempts int    `yaml:"placement_attempts"`

	Generate GenerateConfig `yaml:"generate"`
}

// GenerateConfig replaces the map file with a procedurally carved maze.
type GenerateConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	LoopChance float64 `yaml:"loop_chance"`
}

// PlayerConfig positions the player. A zero start uses the map's start
// marker, or the first open cell when the map has none.
type PlayerConfig struct {
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	StartDirection float64 `yaml:"start_direction"` // degrees
	FieldOfView    float64 `yaml:"field_of_view"`   // degrees
}

type MovementConfig struct {
	MoveSpeed        float64 `yaml:"move_speed"`     // units per second
	RotationSpeed    float64 `yaml:"rotation_speed"` // radians per second
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	PickupRadius     float64 `yaml:"pickup_radius"`
}

type GraphicsConfig struct {
	Projection    string        `yaml:"projection"` // "plane" or "angle"
	WallTexture   string        `yaml:"wall_texture"`
	SkyColor      [3]int        `yaml:"sky_color"`
	FloorColor    [3]int        `yaml:"floor_color"`
	WallColor     [3]int        `yaml:"wall_color"`
	WallDarkColor [3]int        `yaml:"wall_dark_color"`
	Minimap       MinimapConfig `yaml:"minimap"`
}

type MinimapConfig struct {
	Enabled bool `yaml:"enabled"`
	Scale   int  `yaml:"scale"`
}

type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Volume        float64 `yaml:"volume"`
	SampleRate    int     `yaml:"sample_rate"`
	StepFrequency float64 `yaml:"step_frequency"` // Hz
	StepDuration  int     `yaml:"step_duration"`  // milliseconds
}

type ThreadingConfig struct {
	RenderWorkers int `yaml:"render_workers"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 480,
			WindowTitle:  "Mazecaster",
			TPS:          60,
		},
		World: WorldConfig{
			PlacementAttempts: 1000,
			Generate: GenerateConfig{
				Width:      21,
				Height:     21,
				LoopChance: 0.1,
			},
		},
		Player: PlayerConfig{
			FieldOfView: 60,
		},
		Movement: MovementConfig{
			MoveSpeed:        3.0,
			RotationSpeed:    2.5,
			MouseSensitivity: 0.003,
			PickupRadius:     0.5,
		},
		Graphics: GraphicsConfig{
			Projection:    "plane",
			SkyColor:      [3]int{56, 56, 56},
			FloorColor:    [3]int{112, 112, 112},
			WallColor:     [3]int{180, 180, 180},
			WallDarkColor: [3]int{120, 120, 120},
			Minimap: MinimapConfig{
				Enabled: true,
				Scale:   4,
			},
		},
		Audio: AudioConfig{
			Enabled:       true,
			Volume:        0.5,
			SampleRate:    44100,
			StepFrequency: 90,
			StepDuration:  120,
		},
		Threading: ThreadingConfig{
			RenderWorkers: 1,
		},
	}
}

// LoadConfig loads the configuration from a YAML file. Keys missing from
// the file keep their Default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// LoadOrDefault loads filename when it exists and returns Default otherwise.
func LoadOrDefault(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return LoadConfig(filename)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Display.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.Display.TPS)
	case c.Player.FieldOfView <= 0 || c.Player.FieldOfView >= 180:
		return fmt.Errorf("%w: field_of_view must be in (0, 180), got %v", ErrInvalidConfig, c.Player.FieldOfView)
	case c.Movement.MoveSpeed < 0 || c.Movement.RotationSpeed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidConfig)
	case c.Movement.PickupRadius <= 0:
		return fmt.Errorf("%w: pickup_radius must be positive, got %v", ErrInvalidConfig, c.Movement.PickupRadius)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume must be in [0, 1], got %v", ErrInvalidConfig, c.Audio.Volume)
	case c.Graphics.Projection != "plane" && c.Graphics.Projection != "angle":
		return fmt.Errorf("%w: unknown projection %q", ErrInvalidConfig, c.Graphics.Projection)
	case c.World.Generate.Enabled && (c.World.Generate.Width < 5 || c.World.Generate.Height < 5):
		return fmt.Errorf("%w: generated maze must be at least 5x5, got %dx%d",
			ErrInvalidConfig, c.World.Generate.Width, c.World.Generate.Height)
	case c.World.Generate.LoopChance < 0 || c.World.Generate.LoopChance > 1:
		return fmt.Errorf("%w: loop_chance must be in [0, 1], got %v", ErrInvalidConfig, c.World.Generate.LoopChance)
	case c.Threading.RenderWorkers < 0:
		return fmt.Errorf("%w: render_workers must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTPS() int {
	return c.Display.TPS
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

func (c *Config) GetRotSpeed() float64 {
	return c.Movement.RotationSpeed
}

// GetFOV returns the field of view in radians.
func (c *Config) GetFOV() float64 {
	return c.Player.FieldOfView * math.Pi / 180
}

// GetStartDirection returns the configured facing in radians.
func (c *Config) GetStartDirection() float64 {
	return c.Player.StartDirection * math.Pi / 180
}

// HasStartPosition reports whether an explicit start overrides the map marker.
func (c *Config) HasStartPosition() bool {
	return c.Player.StartX > 0 || c.Player.StartY > 0
}

func (c *Config) GetMinimapScale() int {
	if c.Graphics.Minimap.Scale <= 0 {
		return 4
	}
	return c.Graphics.Minimap.Scale
}
