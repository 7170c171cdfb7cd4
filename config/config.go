// Package config loads game settings: built-in defaults, then an optional YAML file,
// then BOUNCE_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/physics"
)

// Prevent loading runaway files
const maxConfigSize = 1024 * 1024

// Config is the complete game configuration
type Config struct {
	Arena         ArenaConfig   `yaml:"arena"`
	Ball          BallConfig    `yaml:"ball"`
	Collision     string        `yaml:"collision"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	Audio         AudioConfig   `yaml:"audio"`
}

// ArenaConfig is the world-space playfield size
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig is the initial ball state
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Color  string  `yaml:"color"`
}

// AudioConfig controls sound effects
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0-1.0
}

// DefaultConfig returns the classic 800x800 arena with a radius 20 ball
func DefaultConfig() *Config {
	return &Config{
		Arena: ArenaConfig{Width: 800, Height: 800},
		Ball: BallConfig{
			Radius: 20,
			X:      400,
			Y:      400,
			VX:     2,
			VY:     3,
			Color:  "#00b34d",
		},
		Collision:     physics.ModeDiscrete.String(),
		FrameInterval: 16 * time.Millisecond,
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file %s too large (%d bytes)", path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays BOUNCE_* environment variables; malformed values are ignored
func (c *Config) ApplyEnv() {
	if radius := os.Getenv("BOUNCE_RADIUS"); radius != "" {
		if val, err := strconv.ParseFloat(radius, 64); err == nil {
			c.Ball.Radius = val
		}
	}

	if mode := os.Getenv("BOUNCE_COLLISION"); mode != "" {
		if _, err := physics.ParseMode(mode); err == nil {
			c.Collision = mode
		}
	}

	if enabled := os.Getenv("BOUNCE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("BOUNCE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.Volume = float64(val) / 100.0
			if c.Audio.Volume < 0 {
				c.Audio.Volume = 0
			}
			if c.Audio.Volume > 1 {
				c.Audio.Volume = 1
			}
		}
	}

	if interval := os.Getenv("BOUNCE_FRAME_INTERVAL"); interval != "" {
		if val, err := time.ParseDuration(interval); err == nil && val > 0 {
			c.FrameInterval = val
		}
	}
}

// Validate rejects configurations the session would refuse, before any screen is opened
func (c *Config) Validate() error {
	if _, err := c.SessionConfig(); err != nil {
		return err
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame_interval must be positive, got %v", c.FrameInterval)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	}
	if c.BallColor() == tcell.ColorDefault {
		return fmt.Errorf("ball.color %q is not a known color", c.Ball.Color)
	}
	return nil
}

// SessionConfig converts to the engine's validated session parameters
func (c *Config) SessionConfig() (engine.SessionConfig, error) {
	var errs []error

	pos, err := core.NewPoint(c.Ball.X, c.Ball.Y)
	if err != nil {
		errs = append(errs, fmt.Errorf("ball position: %w", err))
	}
	vel, err := core.NewVelocity(c.Ball.VX, c.Ball.VY)
	if err != nil {
		errs = append(errs, fmt.Errorf("ball velocity: %w", err))
	}
	radius, err := core.NewRadius(c.Ball.Radius)
	if err != nil {
		errs = append(errs, fmt.Errorf("ball: %w", err))
	}
	bounds, err := core.NewBounds(c.Arena.Width, c.Arena.Height)
	if err != nil {
		errs = append(errs, fmt.Errorf("arena: %w", err))
	}
	mode, err := physics.ParseMode(c.Collision)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return engine.SessionConfig{}, errors.Join(errs...)
	}

	return engine.SessionConfig{
		Position: pos,
		Velocity: vel,
		Radius:   float64(radius),
		Bounds:   bounds,
		Mode:     mode,
	}, nil
}

// BallColor resolves the configured color name or #rrggbb value
func (c *Config) BallColor() tcell.Color {
	return tcell.GetColor(c.Ball.Color)
}

// BallRGB returns the ball color as 0-1 float components for GPU and image renderers
func (c *Config) BallRGB() (r, g, b float64) {
	ri, gi, bi := c.BallColor().RGB()
	if ri < 0 {
		return 0, 0.7, 0.3
	}
	return float64(ri) / 255, float64(gi) / 255, float64(bi) / 255
}

// Resolve loads path, applies environment overrides and validates the result
func Resolve(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
