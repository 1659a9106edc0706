package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/sim"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 0.99
	DefaultX        = 0.0
	DefaultY        = 10.0
	DefaultVX       = 0.5
	DefaultVY       = 4.0
	DefaultLevels   = 5
)

type Config struct {
	Dt            float64         `yaml:"dt"`
	Duration      float64         `yaml:"duration"`
	Steps         int             `yaml:"steps,omitempty"`
	Levels        int             `yaml:"levels"`
	ValidateState bool            `yaml:"validate_state"`
	Init          InitStateConfig `yaml:"init_state"`
}

type InitStateConfig struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	VX float64 `yaml:"vx"`
	VY float64 `yaml:"vy"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:            DefaultDt,
		Duration:      DefaultDuration,
		Levels:        DefaultLevels,
		ValidateState: true,
		Init: InitStateConfig{
			X:  DefaultX,
			Y:  DefaultY,
			VX: DefaultVX,
			VY: DefaultVY,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the keys present in the yaml file at path onto cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the values a user can get wrong. The integrator itself
// assumes dt > 0 and does not check.
func (c *Config) Validate() error {
	if !(c.Dt > 0) {
		return fmt.Errorf("%w, got %v", dynamo.ErrInvalidTimestep, c.Dt)
	}
	if !(c.Duration >= 0) {
		return fmt.Errorf("%w, got %v", dynamo.ErrInvalidDuration, c.Duration)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w, got %d", dynamo.ErrInvalidSteps, c.Steps)
	}
	if c.Levels < 1 {
		return fmt.Errorf("levels must be at least 1, got %d", c.Levels)
	}
	return nil
}

// StepCount returns Steps when set, otherwise the count that covers
// Duration at Dt.
func (c *Config) StepCount() (int, error) {
	if c.Steps > 0 {
		return c.Steps, nil
	}
	return sim.StepsFor(c.Duration, c.Dt)
}

func (c *Config) InitState() dynamo.State {
	return dynamo.State{
		Pos: dynamo.Position{X: c.Init.X, Y: c.Init.Y},
		Vel: dynamo.Velocity{X: c.Init.VX, Y: c.Init.VY},
	}
}

// SimConfig resolves the step count and returns the simulator settings.
func (c *Config) SimConfig() (dynamo.Config, error) {
	n, err := c.StepCount()
	if err != nil {
		return dynamo.Config{}, err
	}
	return dynamo.Config{
		Dt:            c.Dt,
		Steps:         n,
		ValidateState: c.ValidateState,
	}, nil
}
