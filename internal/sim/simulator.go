package sim

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/physics"
	"github.com/san-kum/lorenz/internal/trail"
	"github.com/san-kum/lorenz/internal/viz"
)

// Simulator owns the trajectory, the view angles and the color state. It is
// not safe for concurrent use; a renderer drives it from its own loop.
type Simulator struct {
	field     *physics.Lorenz
	integ     dynamo.Integrator
	integName string
	dt        float64
	seed      dynamo.State3
	mode      string
	buf       *trail.Buffer
	cm        *viz.ColorMapper

	angles    viz.ViewAngles
	initial   viz.ViewAngles
	increment viz.ViewAngles
	speed     float64

	ranges map[string]config.Range
	paused bool
	frames uint64
	log    zerolog.Logger
}

func New(opts Options) (*Simulator, error) {
	if opts.Mode != config.ModeAnimate && opts.Mode != config.ModeExplore {
		return nil, fmt.Errorf("mode %q: %w", opts.Mode, dynamo.ErrUnknownMode)
	}
	integ, err := integrators.Lookup(opts.Integrator)
	if err != nil {
		return nil, err
	}
	if !(opts.Dt > 0) || math.IsInf(opts.Dt, 0) {
		return nil, &dynamo.ParamError{Name: "dt", Value: opts.Dt, Wrapped: dynamo.ErrParameterBounds}
	}
	if !opts.Seed.IsValid() {
		return nil, fmt.Errorf("seed %v: %w", opts.Seed, dynamo.ErrParameterBounds)
	}

	field := physics.NewLorenz()
	if err := setAll(field, opts.Sigma, opts.Rho, opts.Beta); err != nil {
		return nil, err
	}

	buf, err := trail.New(opts.Capacity, opts.Seed)
	if err != nil {
		return nil, err
	}

	cm := viz.NewColorMapper(opts.HueShift, opts.TailDecay, opts.InitialMax)
	cm.Flat = opts.Mode == config.ModeExplore

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	s := &Simulator{
		field:     field,
		integ:     integ,
		integName: opts.Integrator,
		dt:        opts.Dt,
		seed:      opts.Seed,
		mode:      opts.Mode,
		buf:       buf,
		cm:        cm,
		angles:    opts.Angles.Wrap(),
		initial:   opts.Angles.Wrap(),
		increment: opts.Increment,
		speed:     opts.Speed,
		ranges:    opts.Ranges,
		log:       log,
	}
	s.Recompute()
	return s, nil
}

func setAll(l *physics.Lorenz, sigma, rho, beta float64) error {
	for _, p := range []struct {
		name string
		v    float64
	}{{"sigma", sigma}, {"rho", rho}, {"beta", beta}} {
		if err := l.SetParam(p.name, p.v); err != nil {
			return err
		}
	}
	return nil
}

// Recompute discards the trajectory and restarts it from the seed. In explore
// mode the whole buffer is generated at once.
func (s *Simulator) Recompute() {
	if s.mode == config.ModeExplore {
		s.buf.Fill(integrators.Generate(s.integ, s.field, s.seed, s.dt, s.buf.Cap()))
		return
	}
	s.buf.Reset(s.seed)
}

// Frame advances one frame and returns its segments in index order.
func (s *Simulator) Frame() []viz.Segment {
	running := s.mode == config.ModeAnimate && !s.paused
	if running {
		s.buf.Push(s.integ.Step(s.field, s.buf.Latest(), s.dt))
	}

	proj := viz.Transform(s.buf.Snapshot(), s.angles)
	segs := viz.Assemble(proj, s.buf.Head(), s.cm)

	if running {
		s.angles = s.angles.Add(s.increment)
	}
	s.frames++
	return segs
}

// Apply handles one input event. It returns false when the event asks the
// renderer to stop.
func (s *Simulator) Apply(e Event) bool {
	switch ev := e.(type) {
	case Quit:
		s.log.Debug().Uint64("frames", s.frames).Msg("quit requested")
		return false
	case Turn:
		s.turn(ev.Axis, float64(ev.Dir)*s.speed)
	case SetParams:
		s.setParams(ev.Sigma, ev.Rho, ev.Beta)
	case Nudge:
		s.nudge(ev.Param, ev.Steps)
	case TogglePause:
		s.paused = !s.paused
		s.log.Debug().Bool("paused", s.paused).Msg("pause toggled")
	case Reset:
		s.angles = s.initial
		s.Recompute()
		s.log.Info().Msg("trajectory reset")
	}
	return true
}

func (s *Simulator) turn(axis Axis, delta float64) {
	var d viz.ViewAngles
	switch axis {
	case Yaw:
		d.Yaw = delta
	case Pitch:
		d.Pitch = delta
	case Roll:
		d.Roll = delta
	default:
		return
	}
	s.angles = s.angles.Add(d)
}

func (s *Simulator) setParams(sigma, rho, beta float64) {
	prev := *s.field
	if err := setAll(s.field, sigma, rho, beta); err != nil {
		*s.field = prev
		s.log.Warn().Err(err).Msg("parameters rejected")
		return
	}
	s.Recompute()
	s.log.Info().
		Float64("sigma", s.field.Sigma).
		Float64("rho", s.field.Rho).
		Float64("beta", s.field.Beta).
		Msg("parameters changed")
}

func (s *Simulator) nudge(name string, steps int) {
	r, ok := s.ranges[name]
	if !ok {
		s.log.Warn().Str("param", name).Msg("no range for parameter")
		return
	}
	params := s.field.GetParams()
	v, ok := params[name]
	if !ok {
		s.log.Warn().Err(dynamo.ErrUnknownParam).Str("param", name).Msg("nudge ignored")
		return
	}
	params[name] = clamp(v+float64(steps)*r.Step, r.Min, r.Max)
	s.setParams(params["sigma"], params["rho"], params["beta"])
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func (s *Simulator) Mode() string           { return s.mode }
func (s *Simulator) Paused() bool           { return s.paused }
func (s *Simulator) Angles() viz.ViewAngles { return s.angles }
func (s *Simulator) Buffer() *trail.Buffer  { return s.buf }
func (s *Simulator) Params() (float64, float64, float64) {
	return s.field.Sigma, s.field.Rho, s.field.Beta
}

// Range returns the adjustment range of a coefficient, if one is configured.
func (s *Simulator) Range(name string) (config.Range, bool) {
	r, ok := s.ranges[name]
	return r, ok
}

func (s *Simulator) Stats() Stats {
	return Stats{
		Mode:       s.mode,
		Integrator: s.integName,
		Sigma:      s.field.Sigma,
		Rho:        s.field.Rho,
		Beta:       s.field.Beta,
		Head:       s.buf.Head(),
		Valid:      s.buf.Len(),
		Capacity:   s.buf.Cap(),
		MaxSegment: s.cm.MaxLen(),
		Latest:     s.buf.Latest(),
		Angles:     s.angles,
		Frames:     s.frames,
		Paused:     s.paused,
	}
}
