package config

import (
	"sort"

	"github.com/san-kum/lorenzsim/internal/dynamo"
)

var Presets = map[string]*Config{
	"classic": {
		Sigma: 10, Rho: 28, Beta: dynamo.DefaultBeta, Dt: 0.01, Steps: 5000, FPS: 60,
		Initial: InitialConfig{X: 10, Y: 1, Z: 10, Range: DefaultRange},
	},
	"random": {
		Sigma: 10, Rho: 28, Beta: dynamo.DefaultBeta, Dt: 0.01, Steps: 5000, FPS: 60,
		Initial: InitialConfig{Random: true, Range: DefaultRange},
	},
	"coarse": {
		Sigma: 10, Rho: 28, Beta: dynamo.DefaultBeta, Dt: 0.02, Steps: 2500, FPS: 30,
		Initial: InitialConfig{X: 10, Y: 1, Z: 10, Range: DefaultRange},
	},
	"fine": {
		Sigma: 10, Rho: 28, Beta: dynamo.DefaultBeta, Dt: 0.001, Steps: 50000, FPS: 60,
		Initial: InitialConfig{X: 10, Y: 1, Z: 10, Range: DefaultRange},
	},
	"wings": {
		Sigma: 10, Rho: 28, Beta: dynamo.DefaultBeta, Dt: 0.01, Steps: 5000, FPS: 60,
		Initial: InitialConfig{X: 8.5, Y: 8.5, Z: 27, Range: DefaultRange},
	},
	"periodic": {
		Sigma: 10, Rho: 99.96, Beta: dynamo.DefaultBeta, Dt: 0.005, Steps: 10000, FPS: 60,
		Initial: InitialConfig{X: 10, Y: 1, Z: 10, Range: DefaultRange},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
