package config

import (
	"fmt"
	"math"
	"os"
	"slices"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/physics"
	"github.com/san-kum/lorenz/internal/viz"
	"gopkg.in/yaml.v3"
)

const (
	ModeAnimate = "animate"
	ModeExplore = "explore"
)

const (
	DefaultDt                = 0.01
	DefaultMaxLength         = 10000
	DefaultScale             = 10.0
	DefaultHueShift          = 240.0
	DefaultTailDecay         = 4.0
	DefaultPenSize           = 1.0
	DefaultFPS               = 60
	DefaultWidth             = 800
	DefaultHeight            = 600
	DefaultInitialMaxSegment = 5.5
	DefaultViewSpeed         = 0.1
	DefaultPitchIncrement    = 0.01
	DefaultSeedX             = 0.1
)

type Config struct {
	Mode       string          `yaml:"mode"`
	Integrator string          `yaml:"integrator"`
	Sigma      float64         `yaml:"sigma"`
	Rho        float64         `yaml:"rho"`
	Beta       float64         `yaml:"beta"`
	Dt         float64         `yaml:"dt"`
	MaxLength  int             `yaml:"max_length"`
	InitState  InitStateConfig `yaml:"init_state"`
	Render     RenderConfig    `yaml:"render"`
	View       ViewConfig      `yaml:"view"`
	Ranges     RangeConfig     `yaml:"ranges"`
	LogLevel   string          `yaml:"log_level"`
}

type InitStateConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type RenderConfig struct {
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	Scale             float64 `yaml:"scale"`
	TermScale         float64 `yaml:"term_scale"`
	HueShift          float64 `yaml:"hue_shift"`
	TailDecay         float64 `yaml:"tail_decay"`
	PenSize           float64 `yaml:"pen_size"`
	FPS               int     `yaml:"fps"`
	InitialMaxSegment float64 `yaml:"initial_max_segment"`
	Theme             string  `yaml:"theme"`
}

type ViewConfig struct {
	Angles    AnglesConfig `yaml:"angles"`
	Increment AnglesConfig `yaml:"increment"`
	Speed     float64      `yaml:"speed"`
}

type AnglesConfig struct {
	Yaw   float64 `yaml:"yaw"`
	Pitch float64 `yaml:"pitch"`
	Roll  float64 `yaml:"roll"`
}

// Range bounds a runtime-adjustable parameter.
type Range struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

type RangeConfig struct {
	Sigma Range `yaml:"sigma"`
	Rho   Range `yaml:"rho"`
	Beta  Range `yaml:"beta"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:       ModeAnimate,
		Integrator: "euler",
		Sigma:      physics.DefaultSigma,
		Rho:        physics.DefaultRho,
		Beta:       physics.DefaultBeta,
		Dt:         DefaultDt,
		MaxLength:  DefaultMaxLength,
		InitState:  InitStateConfig{X: DefaultSeedX},
		Render: RenderConfig{
			Width:             DefaultWidth,
			Height:            DefaultHeight,
			Scale:             DefaultScale,
			TermScale:         1.5,
			HueShift:          DefaultHueShift,
			TailDecay:         DefaultTailDecay,
			PenSize:           DefaultPenSize,
			FPS:               DefaultFPS,
			InitialMaxSegment: DefaultInitialMaxSegment,
			Theme:             "night",
		},
		View: ViewConfig{
			Increment: AnglesConfig{Pitch: DefaultPitchIncrement},
			Speed:     DefaultViewSpeed,
		},
		Ranges: RangeConfig{
			Sigma: Range{Min: 0.5, Max: 60, Step: 0.5},
			Rho:   Range{Min: 0.5, Max: 60, Step: 0.5},
			Beta:  Range{Min: 0.1, Max: 10, Step: 0.1},
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a YAML file over cfg. Keys missing from the file keep
// their current values.
func LoadInto(cfg *Config, path string) error {
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

func (c *Config) Seed() dynamo.State3 {
	return dynamo.State3{X: c.InitState.X, Y: c.InitState.Y, Z: c.InitState.Z}
}

// Validate checks every field that the pipeline cannot tolerate. A tail
// decay of 1 or less is rejected because the brightness curve stops fading.
func (c *Config) Validate() error {
	if c.Mode != ModeAnimate && c.Mode != ModeExplore {
		return fmt.Errorf("mode %q: %w", c.Mode, dynamo.ErrUnknownMode)
	}
	if _, err := integrators.Lookup(c.Integrator); err != nil {
		return err
	}
	if c.MaxLength < 1 {
		return fmt.Errorf("max_length %d: %w", c.MaxLength, dynamo.ErrInvalidCapacity)
	}
	if !c.Seed().IsValid() {
		return bounds("init_state", math.NaN())
	}

	checks := []struct {
		name string
		v    float64
		ok   bool
	}{
		{"sigma", c.Sigma, finite(c.Sigma)},
		{"rho", c.Rho, finite(c.Rho)},
		{"beta", c.Beta, finite(c.Beta)},
		{"dt", c.Dt, c.Dt > 0 && finite(c.Dt)},
		{"render.width", float64(c.Render.Width), c.Render.Width > 0},
		{"render.height", float64(c.Render.Height), c.Render.Height > 0},
		{"render.scale", c.Render.Scale, c.Render.Scale > 0 && finite(c.Render.Scale)},
		{"render.term_scale", c.Render.TermScale, c.Render.TermScale > 0 && finite(c.Render.TermScale)},
		{"render.hue_shift", c.Render.HueShift, c.Render.HueShift >= 0 && c.Render.HueShift < 360},
		{"render.tail_decay", c.Render.TailDecay, c.Render.TailDecay > 1 && finite(c.Render.TailDecay)},
		{"render.pen_size", c.Render.PenSize, c.Render.PenSize > 0 && finite(c.Render.PenSize)},
		{"render.fps", float64(c.Render.FPS), c.Render.FPS > 0},
		{"render.initial_max_segment", c.Render.InitialMaxSegment, c.Render.InitialMaxSegment >= 0 && finite(c.Render.InitialMaxSegment)},
		{"view.speed", c.View.Speed, c.View.Speed >= 0 && finite(c.View.Speed)},
		{"view.angles.yaw", c.View.Angles.Yaw, finite(c.View.Angles.Yaw)},
		{"view.angles.pitch", c.View.Angles.Pitch, finite(c.View.Angles.Pitch)},
		{"view.angles.roll", c.View.Angles.Roll, finite(c.View.Angles.Roll)},
		{"view.increment.yaw", c.View.Increment.Yaw, finite(c.View.Increment.Yaw)},
		{"view.increment.pitch", c.View.Increment.Pitch, finite(c.View.Increment.Pitch)},
		{"view.increment.roll", c.View.Increment.Roll, finite(c.View.Increment.Roll)},
	}
	for _, ck := range checks {
		if !ck.ok {
			return bounds(ck.name, ck.v)
		}
	}

	if !slices.Contains(viz.ThemeNames(), c.Render.Theme) {
		return fmt.Errorf("theme %q: %w", c.Render.Theme, dynamo.ErrUnknownTheme)
	}

	for name, r := range map[string]Range{"sigma": c.Ranges.Sigma, "rho": c.Ranges.Rho, "beta": c.Ranges.Beta} {
		if !(r.Step > 0) || r.Min > r.Max {
			return bounds("ranges."+name, r.Step)
		}
	}
	return nil
}

// Range returns the adjustment range for a Lorenz coefficient.
func (c *Config) Range(name string) (Range, bool) {
	switch name {
	case "sigma":
		return c.Ranges.Sigma, true
	case "rho":
		return c.Ranges.Rho, true
	case "beta":
		return c.Ranges.Beta, true
	}
	return Range{}, false
}

func bounds(name string, v float64) error {
	return &dynamo.ParamError{Name: name, Value: v, Wrapped: dynamo.ErrParameterBounds}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
