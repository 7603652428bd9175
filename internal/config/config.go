package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/boxwave/internal/scene"
	"gopkg.in/yaml.v3"
)

const (
	DefaultGridSize      = 10
	DefaultSpacing       = 2.0
	DefaultWaveAmplitude = 0.5
	DefaultBaseColor     = "#00ffff"
	DefaultLightColor    = "#f5f5f5"
	DefaultDuration      = 1.2
	DefaultStep          = 0.2
	DefaultFOV           = 45.0
	DefaultNear          = 0.1
	DefaultFar           = 100.0
	DefaultClearColor    = "#f7f6f5"
	DefaultWidth         = 1280
	DefaultHeight        = 720
	DefaultFPS           = 60
)

type Config struct {
	Scene    SceneConfig    `yaml:"scene"`
	Flourish FlourishConfig `yaml:"flourish"`
	Camera   CameraConfig   `yaml:"camera"`
	Lights   LightsConfig   `yaml:"lights"`
	Renderer RendererConfig `yaml:"renderer"`
}

type SceneConfig struct {
	GridSize      int     `yaml:"grid_size"`
	Spacing       float64 `yaml:"spacing"`
	WaveAmplitude float64 `yaml:"wave_amplitude"`
	BaseColor     string  `yaml:"base_color"`
	LightColor    string  `yaml:"light_color"`
}

// FlourishConfig times are in seconds.
type FlourishConfig struct {
	Duration float64 `yaml:"duration"`
	Step     float64 `yaml:"step"`
	FPS      int     `yaml:"fps"`
}

type CameraConfig struct {
	FOV      float64    `yaml:"fov"`
	Near     float64    `yaml:"near"`
	Far      float64    `yaml:"far"`
	Position [3]float64 `yaml:"position,flow"`
	Target   [3]float64 `yaml:"target,flow"`
}

type LightConfig struct {
	Color     string     `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
	Position  [3]float64 `yaml:"position,flow,omitempty"`
}

type LightsConfig struct {
	Directional LightConfig `yaml:"directional"`
	Ambient     LightConfig `yaml:"ambient"`
}

type RendererConfig struct {
	ClearColor string `yaml:"clear_color"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	FPS        int    `yaml:"fps"`
	Axes       bool   `yaml:"axes"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene: SceneConfig{
			GridSize:      DefaultGridSize,
			Spacing:       DefaultSpacing,
			WaveAmplitude: DefaultWaveAmplitude,
			BaseColor:     DefaultBaseColor,
			LightColor:    DefaultLightColor,
		},
		Flourish: FlourishConfig{
			Duration: DefaultDuration,
			Step:     DefaultStep,
			FPS:      DefaultFPS,
		},
		Camera: CameraConfig{
			FOV:      DefaultFOV,
			Near:     DefaultNear,
			Far:      DefaultFar,
			Position: [3]float64{10, 6, 10},
		},
		Lights: LightsConfig{
			Directional: LightConfig{Color: "#ffffff", Intensity: 0.8, Position: [3]float64{10, 30, -10}},
			Ambient:     LightConfig{Color: "#ffffff", Intensity: 0.2},
		},
		Renderer: RendererConfig{
			ClearColor: DefaultClearColor,
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			FPS:        DefaultFPS,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base; keys missing from the file keep
// base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first out-of-range field.
func (c *Config) Validate() error {
	bad := func(field string, v any) error {
		return fmt.Errorf("%w: %s = %v", scene.ErrInvalidConfig, field, v)
	}
	switch {
	case c.Scene.GridSize < 1:
		return bad("scene.grid_size", c.Scene.GridSize)
	case !positive(c.Scene.Spacing):
		return bad("scene.spacing", c.Scene.Spacing)
	case !nonNegative(c.Scene.WaveAmplitude):
		return bad("scene.wave_amplitude", c.Scene.WaveAmplitude)
	case !nonNegative(c.Flourish.Duration):
		return bad("flourish.duration", c.Flourish.Duration)
	case !nonNegative(c.Flourish.Step):
		return bad("flourish.step", c.Flourish.Step)
	case c.Flourish.FPS < 1:
		return bad("flourish.fps", c.Flourish.FPS)
	case !positive(c.Camera.FOV) || !(c.Camera.FOV < 180):
		return bad("camera.fov", c.Camera.FOV)
	case !positive(c.Camera.Near) || !positive(c.Camera.Far) || !(c.Camera.Far > c.Camera.Near):
		return bad("camera.near/far", fmt.Sprintf("%g/%g", c.Camera.Near, c.Camera.Far))
	case !finite3(c.Camera.Position) || !finite3(c.Camera.Target):
		return bad("camera.position/target", fmt.Sprintf("%v/%v", c.Camera.Position, c.Camera.Target))
	case !nonNegative(c.Lights.Directional.Intensity):
		return bad("lights.directional.intensity", c.Lights.Directional.Intensity)
	case !finite3(c.Lights.Directional.Position):
		return bad("lights.directional.position", c.Lights.Directional.Position)
	case !nonNegative(c.Lights.Ambient.Intensity):
		return bad("lights.ambient.intensity", c.Lights.Ambient.Intensity)
	case c.Renderer.Width < 1 || c.Renderer.Height < 1:
		return bad("renderer.size", fmt.Sprintf("%dx%d", c.Renderer.Width, c.Renderer.Height))
	case c.Renderer.FPS < 1:
		return bad("renderer.fps", c.Renderer.FPS)
	}
	colors := map[string]string{
		"scene.base_color":         c.Scene.BaseColor,
		"scene.light_color":        c.Scene.LightColor,
		"renderer.clear_color":     c.Renderer.ClearColor,
		"lights.directional.color": c.Lights.Directional.Color,
		"lights.ambient.color":     c.Lights.Ambient.Color,
	}
	for field, hex := range colors {
		if _, err := colorful.Hex(hex); err != nil {
			return bad(field, hex)
		}
	}
	return nil
}

func (c *Config) BaseColor() (colorful.Color, error)  { return colorful.Hex(c.Scene.BaseColor) }
func (c *Config) LightColor() (colorful.Color, error) { return colorful.Hex(c.Scene.LightColor) }
func (c *Config) ClearColor() (colorful.Color, error) { return colorful.Hex(c.Renderer.ClearColor) }

func (c *Config) FlourishDuration() time.Duration { return seconds(c.Flourish.Duration) }
func (c *Config) FlourishStep() time.Duration     { return seconds(c.Flourish.Step) }

// FlourishInterval is the period of the flourish's own update ticker.
func (c *Config) FlourishInterval() time.Duration {
	if c.Flourish.FPS < 1 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.Flourish.FPS)
}

// The range helpers are written so NaN fails every one of them.
func positive(x float64) bool    { return x > 0 && !math.IsInf(x, 1) }
func nonNegative(x float64) bool { return x >= 0 && !math.IsInf(x, 1) }

func finite3(v [3]float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// SceneLights converts the configured lights.
func (c *Config) SceneLights() (directional, ambient scene.Light, err error) {
	conv := func(l LightConfig) (scene.Light, error) {
		col, err := colorful.Hex(l.Color)
		if err != nil {
			return scene.Light{}, err
		}
		return scene.Light{
			Color:     col,
			Intensity: l.Intensity,
			Position:  scene.Vec3{X: l.Position[0], Y: l.Position[1], Z: l.Position[2]},
		}, nil
	}
	if directional, err = conv(c.Lights.Directional); err != nil {
		return
	}
	ambient, err = conv(c.Lights.Ambient)
	return
}
