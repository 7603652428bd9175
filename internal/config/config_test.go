package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/boxwave/internal/scene"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scene.GridSize != 10 {
		t.Errorf("expected grid size 10, got %d", cfg.Scene.GridSize)
	}
	if cfg.Scene.Spacing != 2 {
		t.Errorf("expected spacing 2, got %f", cfg.Scene.Spacing)
	}
	if cfg.Camera.Position != [3]float64{10, 6, 10} {
		t.Errorf("unexpected camera position %v", cfg.Camera.Position)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.FlourishDuration(); got != 1200*time.Millisecond {
		t.Errorf("expected 1.2s, got %v", got)
	}
	if got := cfg.FlourishStep(); got != 200*time.Millisecond {
		t.Errorf("expected 200ms, got %v", got)
	}
	if got := cfg.FlourishInterval(); got != time.Second/60 {
		t.Errorf("expected 1/60s, got %v", got)
	}
}

func TestColors(t *testing.T) {
	cfg := DefaultConfig()

	base, err := cfg.BaseColor()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base.Hex() != "#00ffff" {
		t.Errorf("expected #00ffff, got %s", base.Hex())
	}
	if _, err := cfg.ClearColor(); err != nil {
		t.Errorf("clear color: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero grid", func(c *Config) { c.Scene.GridSize = 0 }},
		{"zero spacing", func(c *Config) { c.Scene.Spacing = 0 }},
		{"negative amplitude", func(c *Config) { c.Scene.WaveAmplitude = -1 }},
		{"negative duration", func(c *Config) { c.Flourish.Duration = -0.1 }},
		{"negative step", func(c *Config) { c.Flourish.Step = -0.1 }},
		{"zero flourish fps", func(c *Config) { c.Flourish.FPS = 0 }},
		{"wide fov", func(c *Config) { c.Camera.FOV = 180 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }},
		{"zero width", func(c *Config) { c.Renderer.Width = 0 }},
		{"zero fps", func(c *Config) { c.Renderer.FPS = 0 }},
		{"bad base color", func(c *Config) { c.Scene.BaseColor = "cyan" }},
		{"bad clear color", func(c *Config) { c.Renderer.ClearColor = "#12" }},
		{"nan spacing", func(c *Config) { c.Scene.Spacing = math.NaN() }},
		{"inf spacing", func(c *Config) { c.Scene.Spacing = math.Inf(1) }},
		{"nan amplitude", func(c *Config) { c.Scene.WaveAmplitude = math.NaN() }},
		{"inf amplitude", func(c *Config) { c.Scene.WaveAmplitude = math.Inf(1) }},
		{"nan duration", func(c *Config) { c.Flourish.Duration = math.NaN() }},
		{"inf duration", func(c *Config) { c.Flourish.Duration = math.Inf(1) }},
		{"nan step", func(c *Config) { c.Flourish.Step = math.NaN() }},
		{"nan fov", func(c *Config) { c.Camera.FOV = math.NaN() }},
		{"nan near", func(c *Config) { c.Camera.Near = math.NaN() }},
		{"inf far", func(c *Config) { c.Camera.Far = math.Inf(1) }},
		{"nan camera position", func(c *Config) { c.Camera.Position[1] = math.NaN() }},
		{"nan directional intensity", func(c *Config) { c.Lights.Directional.Intensity = math.NaN() }},
		{"negative ambient intensity", func(c *Config) { c.Lights.Ambient.Intensity = -0.1 }},
		{"inf ambient intensity", func(c *Config) { c.Lights.Ambient.Intensity = math.Inf(1) }},
		{"inf light position", func(c *Config) { c.Lights.Directional.Position[0] = math.Inf(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, scene.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadRejectsNonFinite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxwave.yaml")
	doc := "scene: {spacing: .nan, wave_amplitude: .inf}\nflourish: {duration: .nan}\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !math.IsNaN(cfg.Scene.Spacing) {
		t.Fatalf("expected NaN spacing after load, got %v", cfg.Scene.Spacing)
	}
	if err := cfg.Validate(); !errors.Is(err, scene.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxwave.yaml")

	cfg := GetPreset("dusk")
	cfg.Renderer.Axes = true
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *loaded, *cfg)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("dense")
	if cfg == nil {
		t.Fatal("dense preset not found")
	}
	if cfg.Scene.GridSize != 16 {
		t.Errorf("expected grid size 16, got %d", cfg.Scene.GridSize)
	}

	ref := GetPreset("reference")
	if *ref != *DefaultConfig() {
		t.Error("reference preset should equal the defaults")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d names, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("not sorted: %v", names)
		}
	}
	found := false
	for _, n := range names {
		if n == "reference" {
			found = true
		}
	}
	if !found {
		t.Error("reference preset missing")
	}
}

func TestSceneLights(t *testing.T) {
	dir, amb, err := DefaultConfig().SceneLights()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir.Intensity != 0.8 || dir.Position != (scene.Vec3{X: 10, Y: 30, Z: -10}) {
		t.Errorf("unexpected directional light %+v", dir)
	}
	if amb.Intensity != 0.2 || amb.Color.Hex() != "#ffffff" {
		t.Errorf("unexpected ambient light %+v", amb)
	}
}

func TestLoadOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("scene:\n  wave_amplitude: 0.9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOver(path, GetPreset("dense"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scene.GridSize != 16 {
		t.Errorf("preset grid size should survive, got %d", cfg.Scene.GridSize)
	}
	if cfg.Scene.WaveAmplitude != 0.9 {
		t.Errorf("expected amplitude 0.9, got %f", cfg.Scene.WaveAmplitude)
	}
}
