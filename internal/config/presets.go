package config

import "sort"

// Preset adjusts the defaults for one kind of session.
type Preset struct {
	Description string
	Apply       func(*Config)
}

var Presets = map[string]Preset{
	"classic": {
		Description: "animated tail with the classic coefficients",
		Apply:       func(*Config) {},
	},
	"tuning": {
		Description: "static attractor with manual rotation and coefficient sliders",
		Apply: func(c *Config) {
			c.Mode = ModeExplore
			c.Render.HueShift = 260
		},
	},
	"periodic": {
		Description: "rho=99.96, a periodic orbit",
		Apply: func(c *Config) {
			c.Rho = 99.96
			c.Render.Scale = 4
		},
	},
	"steady": {
		Description: "rho=14, spirals into a fixed point",
		Apply: func(c *Config) {
			c.Rho = 14
			c.Render.Scale = 20
		},
	},
	"spin": {
		Description: "faster rotation on every axis with a short tail",
		Apply: func(c *Config) {
			c.MaxLength = 2000
			c.View.Increment = AnglesConfig{Yaw: 0.005, Pitch: 0.02, Roll: 0.003}
			c.Render.TailDecay = 2
		},
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	p.Apply(cfg)
	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
