package config

import (
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. LORENZ_RHO or
// LORENZ_RENDER_HUE_SHIFT.
const EnvPrefix = "LORENZ"

// NewViper returns a viper instance reading LORENZ_* environment variables.
// Nested keys use underscores in the environment: render.fps is
// LORENZ_RENDER_FPS.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

type setter func(c *Config, v *viper.Viper, key string)

func setString(f func(*Config) *string) setter {
	return func(c *Config, v *viper.Viper, key string) { *f(c) = v.GetString(key) }
}

func setFloat(f func(*Config) *float64) setter {
	return func(c *Config, v *viper.Viper, key string) { *f(c) = v.GetFloat64(key) }
}

func setInt(f func(*Config) *int) setter {
	return func(c *Config, v *viper.Viper, key string) { *f(c) = v.GetInt(key) }
}

// Keys maps every overridable key to the field it writes.
var Keys = map[string]setter{
	"mode":                       setString(func(c *Config) *string { return &c.Mode }),
	"integrator":                 setString(func(c *Config) *string { return &c.Integrator }),
	"log_level":                  setString(func(c *Config) *string { return &c.LogLevel }),
	"sigma":                      setFloat(func(c *Config) *float64 { return &c.Sigma }),
	"rho":                        setFloat(func(c *Config) *float64 { return &c.Rho }),
	"beta":                       setFloat(func(c *Config) *float64 { return &c.Beta }),
	"dt":                         setFloat(func(c *Config) *float64 { return &c.Dt }),
	"max_length":                 setInt(func(c *Config) *int { return &c.MaxLength }),
	"init_state.x":               setFloat(func(c *Config) *float64 { return &c.InitState.X }),
	"init_state.y":               setFloat(func(c *Config) *float64 { return &c.InitState.Y }),
	"init_state.z":               setFloat(func(c *Config) *float64 { return &c.InitState.Z }),
	"render.width":               setInt(func(c *Config) *int { return &c.Render.Width }),
	"render.height":              setInt(func(c *Config) *int { return &c.Render.Height }),
	"render.scale":               setFloat(func(c *Config) *float64 { return &c.Render.Scale }),
	"render.term_scale":          setFloat(func(c *Config) *float64 { return &c.Render.TermScale }),
	"render.hue_shift":           setFloat(func(c *Config) *float64 { return &c.Render.HueShift }),
	"render.tail_decay":          setFloat(func(c *Config) *float64 { return &c.Render.TailDecay }),
	"render.pen_size":            setFloat(func(c *Config) *float64 { return &c.Render.PenSize }),
	"render.fps":                 setInt(func(c *Config) *int { return &c.Render.FPS }),
	"render.initial_max_segment": setFloat(func(c *Config) *float64 { return &c.Render.InitialMaxSegment }),
	"render.theme":               setString(func(c *Config) *string { return &c.Render.Theme }),
	"view.speed":                 setFloat(func(c *Config) *float64 { return &c.View.Speed }),
	"view.increment.yaw":         setFloat(func(c *Config) *float64 { return &c.View.Increment.Yaw }),
	"view.increment.pitch":       setFloat(func(c *Config) *float64 { return &c.View.Increment.Pitch }),
	"view.increment.roll":        setFloat(func(c *Config) *float64 { return &c.View.Increment.Roll }),
}

// Overlay copies every key set in v onto cfg and returns the keys applied.
// Flags bound with BindPFlag only count when they were changed on the
// command line, so explicit flags win over the environment, which wins over
// the file or preset already in cfg.
func Overlay(cfg *Config, v *viper.Viper) []string {
	applied := make([]string, 0)
	for key, set := range Keys {
		if !v.IsSet(key) {
			continue
		}
		set(cfg, v, key)
		applied = append(applied, key)
	}
	sort.Strings(applied)
	return applied
}
