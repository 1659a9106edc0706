package config

import "sort"

var Presets = map[string]map[string]*Config{
	"projectile": {
		"default": {
			Dt: 0.01, Duration: 0.99, Levels: 5, ValidateState: true,
			Init: InitStateConfig{X: 0, Y: 10, VX: 0.5, VY: 4},
		},
		"coarse": {
			Dt: 0.1, Duration: 0.99, Levels: 5, ValidateState: true,
			Init: InitStateConfig{X: 0, Y: 10, VX: 0.5, VY: 4},
		},
		"fine": {
			Dt: 0.001, Duration: 0.99, Levels: 4, ValidateState: true,
			Init: InitStateConfig{X: 0, Y: 10, VX: 0.5, VY: 4},
		},
		"lob": {
			Dt: 0.01, Duration: 4.0, Levels: 5, ValidateState: true,
			Init: InitStateConfig{X: 0, Y: 0, VX: 5, VY: 19.6},
		},
		"flat": {
			Dt: 0.01, Duration: 1.43, Levels: 5, ValidateState: true,
			Init: InitStateConfig{X: 0, Y: 10, VX: 8, VY: 0},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
