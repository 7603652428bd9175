package config

import "sort"

// Presets tweak the defaults; keys are preset names.
var Presets = map[string]func(*Config){
	"reference": func(c *Config) {},
	"dense": func(c *Config) {
		c.Scene.GridSize, c.Scene.Spacing = 16, 1.5
		c.Flourish.Step = 0.1
		c.Camera.Position = [3]float64{14, 9, 14}
	},
	"sparse": func(c *Config) {
		c.Scene.GridSize, c.Scene.Spacing = 5, 3
	},
	"calm": func(c *Config) {
		c.Scene.WaveAmplitude = 0.2
		c.Flourish.Duration = 2.4
	},
	"storm": func(c *Config) {
		c.Scene.WaveAmplitude = 1.2
		c.Flourish.Duration, c.Flourish.Step = 0.6, 0.05
	},
	"monolith": func(c *Config) {
		c.Scene.GridSize = 1
		c.Camera.Position = [3]float64{3, 2, 3}
	},
	"dusk": func(c *Config) {
		c.Scene.BaseColor = "#ff5566"
		c.Renderer.ClearColor = "#1e1a24"
		c.Lights.Ambient.Intensity = 0.35
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
