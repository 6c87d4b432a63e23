package sim

import (
	"github.com/rs/zerolog"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/viz"
)

// Options configures a Simulator. FromConfig fills it from a Config.
type Options struct {
	Sigma, Rho, Beta float64
	Dt               float64
	Capacity         int
	Seed             dynamo.State3
	Integrator       string
	Mode             string

	HueShift   float64
	TailDecay  float64
	InitialMax float64

	Angles    viz.ViewAngles
	Increment viz.ViewAngles
	Speed     float64

	Ranges map[string]config.Range
	Logger *zerolog.Logger
}

func FromConfig(cfg *config.Config) Options {
	return Options{
		Sigma:      cfg.Sigma,
		Rho:        cfg.Rho,
		Beta:       cfg.Beta,
		Dt:         cfg.Dt,
		Capacity:   cfg.MaxLength,
		Seed:       cfg.Seed(),
		Integrator: cfg.Integrator,
		Mode:       cfg.Mode,
		HueShift:   cfg.Render.HueShift,
		TailDecay:  cfg.Render.TailDecay,
		InitialMax: cfg.Render.InitialMaxSegment,
		Angles:     viz.ViewAngles{Yaw: cfg.View.Angles.Yaw, Pitch: cfg.View.Angles.Pitch, Roll: cfg.View.Angles.Roll},
		Increment:  viz.ViewAngles{Yaw: cfg.View.Increment.Yaw, Pitch: cfg.View.Increment.Pitch, Roll: cfg.View.Increment.Roll},
		Speed:      cfg.View.Speed,
		Ranges: map[string]config.Range{
			"sigma": cfg.Ranges.Sigma,
			"rho":   cfg.Ranges.Rho,
			"beta":  cfg.Ranges.Beta,
		},
	}
}

// Event is an input to Simulator.Apply.
type Event interface{ event() }

type Axis int

const (
	Yaw Axis = iota
	Pitch
	Roll
)

func (a Axis) String() string {
	switch a {
	case Yaw:
		return "yaw"
	case Pitch:
		return "pitch"
	case Roll:
		return "roll"
	}
	return "unknown"
}

type Quit struct{}

// Turn rotates the view by Dir times the view speed around Axis.
type Turn struct {
	Axis Axis
	Dir  int
}

// SetParams replaces all three coefficients.
type SetParams struct {
	Sigma, Rho, Beta float64
}

// Nudge moves one coefficient by Steps increments of its range step,
// clamped to the range.
type Nudge struct {
	Param string
	Steps int
}

type TogglePause struct{}

type Reset struct{}

func (Quit) event()        {}
func (Turn) event()        {}
func (SetParams) event()   {}
func (Nudge) event()       {}
func (TogglePause) event() {}
func (Reset) event()       {}

// Stats is a read-only view of the simulator for HUDs and logs.
type Stats struct {
	Mode       string
	Integrator string
	Sigma      float64
	Rho        float64
	Beta       float64
	Head       int
	Valid      int
	Capacity   int
	MaxSegment float64
	Latest     dynamo.State3
	Angles     viz.ViewAngles
	Frames     uint64
	Paused     bool
}
