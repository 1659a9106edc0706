package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides mirrors the fields that can be set from the environment.
// Pointers distinguish unset variables from explicit zeros.
type envOverrides struct {
	Dt       *float64 `env:"TRAJSIM_DT"`
	Duration *float64 `env:"TRAJSIM_DURATION"`
	Steps    *int     `env:"TRAJSIM_STEPS"`
	Levels   *int     `env:"TRAJSIM_LEVELS"`
	X0       *float64 `env:"TRAJSIM_X0"`
	Y0       *float64 `env:"TRAJSIM_Y0"`
	VX0      *float64 `env:"TRAJSIM_VX0"`
	VY0      *float64 `env:"TRAJSIM_VY0"`
}

// ApplyEnv overlays TRAJSIM_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	setFloat(&cfg.Dt, o.Dt)
	setFloat(&cfg.Duration, o.Duration)
	setFloat(&cfg.Init.X, o.X0)
	setFloat(&cfg.Init.Y, o.Y0)
	setFloat(&cfg.Init.VX, o.VX0)
	setFloat(&cfg.Init.VY, o.VY0)
	if o.Steps != nil {
		cfg.Steps = *o.Steps
	}
	if o.Levels != nil {
		cfg.Levels = *o.Levels
	}
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
