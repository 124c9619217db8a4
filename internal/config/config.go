// Package config centralizes all tunable game parameters.
//
// A Config is built once at startup (defaults, optionally overlaid by a YAML file)
// and passed by value to every component that needs it. Nothing mutates it afterwards.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// VelocityFrameRate is the rate velocities are expressed against:
// a speed of 12 means 12 units per 1/60 s.
const VelocityFrameRate = 60

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Viewport - logical coordinate space of the rink. Rendering scales it to the terminal.
const (
	DefaultWidth        = 1000.0
	DefaultHeight       = 600.0
	DefaultHeaderHeight = 80.0 // Band above the rink reserved for the score
)

// Players and puck
const (
	DefaultPlayerSpeed     = 4 * 3.0
	DefaultBoostMultiplier = 2.2
	DefaultPlayerMass      = 5.0
	DefaultPuckMass        = 1.0
	DefaultPlayerRadius    = 25.0
	DefaultPuckRadius      = 15.0
	DefaultPuckFriction    = 0.99 // Multiplier applied to puck velocity every tick
	DefaultPlayerLerp      = 0.2  // Fraction of the gap to target velocity closed per tick
)

// Rink
const (
	DefaultLineWidth    = 4.0
	DefaultGoalWidth    = 150.0
	DefaultCornerRadius = 100.0
)

// Timing
const (
	DefaultTickRate   = 240 // Logic ticks per second (upper bound)
	DefaultRenderRate = 60  // Terminal frames per second (upper bound)
	DefaultSubsteps   = 5
	DefaultMaxDeltaMS = 50.0
)

// Config is the fixed parameter set of a match.
type Config struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	HeaderHeight float64 `yaml:"header_height"`

	PlayerSpeed     float64 `yaml:"player_speed"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
	PlayerMass      float64 `yaml:"player_mass"`
	PuckMass        float64 `yaml:"puck_mass"`
	PlayerRadius    float64 `yaml:"player_radius"`
	PuckRadius      float64 `yaml:"puck_radius"`
	PuckFriction    float64 `yaml:"puck_friction"`
	PlayerLerp      float64 `yaml:"player_lerp"`

	LineWidth    float64 `yaml:"line_width"`
	GoalWidth    float64 `yaml:"goal_width"`
	CornerRadius float64 `yaml:"corner_radius"`

	TickRate   float64 `yaml:"tick_rate"`
	RenderRate float64 `yaml:"render_rate"`
	Substeps   int     `yaml:"substeps"`
	MaxDeltaMS float64 `yaml:"max_delta_ms"`
}

// Default returns the standard tuning: a 1000x600 viewport at 240 ticks per second.
func Default() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		HeaderHeight: DefaultHeaderHeight,

		PlayerSpeed:     DefaultPlayerSpeed,
		BoostMultiplier: DefaultBoostMultiplier,
		PlayerMass:      DefaultPlayerMass,
		PuckMass:        DefaultPuckMass,
		PlayerRadius:    DefaultPlayerRadius,
		PuckRadius:      DefaultPuckRadius,
		PuckFriction:    DefaultPuckFriction,
		PlayerLerp:      DefaultPlayerLerp,

		LineWidth:    DefaultLineWidth,
		GoalWidth:    DefaultGoalWidth,
		CornerRadius: DefaultCornerRadius,

		TickRate:   DefaultTickRate,
		RenderRate: DefaultRenderRate,
		Substeps:   DefaultSubsteps,
		MaxDeltaMS: DefaultMaxDeltaMS,
	}
}

// Load reads a YAML file over the defaults and validates the result.
// Fields missing from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the parameter set for values the simulation cannot run with.
func (c Config) Validate() error {
	for _, f := range c.floatFields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalid, f.name, f.value)
		}
	}

	positive := []namedValue{
		{"width", c.Width},
		{"height", c.Height},
		{"player_speed", c.PlayerSpeed},
		{"boost_multiplier", c.BoostMultiplier},
		{"player_mass", c.PlayerMass},
		{"puck_mass", c.PuckMass},
		{"player_radius", c.PlayerRadius},
		{"puck_radius", c.PuckRadius},
		{"line_width", c.LineWidth},
		{"goal_width", c.GoalWidth},
		{"corner_radius", c.CornerRadius},
		{"tick_rate", c.TickRate},
		{"render_rate", c.RenderRate},
		{"max_delta_ms", c.MaxDeltaMS},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalid, p.name, p.value)
		}
	}

	if c.HeaderHeight < 0 {
		return fmt.Errorf("%w: header_height must not be negative, got %g", ErrInvalid, c.HeaderHeight)
	}
	if c.PlayerLerp <= 0 || c.PlayerLerp > 1 {
		return fmt.Errorf("%w: player_lerp must be in (0, 1], got %g", ErrInvalid, c.PlayerLerp)
	}
	if c.PuckFriction <= 0 || c.PuckFriction > 1 {
		return fmt.Errorf("%w: puck_friction must be in (0, 1], got %g", ErrInvalid, c.PuckFriction)
	}
	if c.Substeps < 1 {
		return fmt.Errorf("%w: substeps must be at least 1, got %d", ErrInvalid, c.Substeps)
	}

	if c.PlayerRadius >= c.CornerRadius || c.PuckRadius >= c.CornerRadius {
		return fmt.Errorf("%w: body radii must be smaller than corner_radius %g", ErrInvalid, c.CornerRadius)
	}

	rinkWidth := c.Width - c.LineWidth
	rinkHeight := c.Height - c.LineWidth - c.HeaderHeight
	if rinkWidth < 2*c.CornerRadius || rinkHeight < 2*c.CornerRadius {
		return fmt.Errorf("%w: rink %gx%g too small for corner_radius %g", ErrInvalid, rinkWidth, rinkHeight, c.CornerRadius)
	}
	// The goal mouth must sit on the straight part of the end walls.
	if c.GoalWidth > rinkHeight-2*c.CornerRadius {
		return fmt.Errorf("%w: goal_width %g does not fit between the corners (max %g)",
			ErrInvalid, c.GoalWidth, rinkHeight-2*c.CornerRadius)
	}
	if 2*c.PuckRadius >= c.GoalWidth {
		return fmt.Errorf("%w: puck does not fit through a goal of width %g", ErrInvalid, c.GoalWidth)
	}

	return nil
}

type namedValue struct {
	name  string
	value float64
}

// floatFields lists every float parameter by its YAML name.
func (c Config) floatFields() []namedValue {
	return []namedValue{
		{"width", c.Width},
		{"height", c.Height},
		{"header_height", c.HeaderHeight},
		{"player_speed", c.PlayerSpeed},
		{"boost_multiplier", c.BoostMultiplier},
		{"player_mass", c.PlayerMass},
		{"puck_mass", c.PuckMass},
		{"player_radius", c.PlayerRadius},
		{"puck_radius", c.PuckRadius},
		{"puck_friction", c.PuckFriction},
		{"player_lerp", c.PlayerLerp},
		{"line_width", c.LineWidth},
		{"goal_width", c.GoalWidth},
		{"corner_radius", c.CornerRadius},
		{"tick_rate", c.TickRate},
		{"render_rate", c.RenderRate},
		{"max_delta_ms", c.MaxDeltaMS},
	}
}

// TickInterval is the minimum time between two logic ticks.
func (c Config) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.TickRate)
}

// RenderInterval is the minimum time between two rendered frames.
func (c Config) RenderInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.RenderRate)
}

// MaxDelta is the upper bound applied to the elapsed time of a single tick.
func (c Config) MaxDelta() time.Duration {
	return time.Duration(c.MaxDeltaMS * float64(time.Millisecond))
}
