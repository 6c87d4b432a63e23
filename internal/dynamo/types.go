package dynamo

import (
	"fmt"
	"math"
)

// State3 is a point in the three dimensional phase space.
type State3 struct {
	X, Y, Z float64
}

func (s State3) Add(o State3) State3    { return State3{s.X + o.X, s.Y + o.Y, s.Z + o.Z} }
func (s State3) Sub(o State3) State3    { return State3{s.X - o.X, s.Y - o.Y, s.Z - o.Z} }
func (s State3) Scale(f float64) State3 { return State3{s.X * f, s.Y * f, s.Z * f} }
func (s State3) Norm() float64          { return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z) }
func (s State3) IsValid() bool          { return finite(s.X) && finite(s.Y) && finite(s.Z) }
func (s State3) String() string         { return fmt.Sprintf("(%.4f, %.4f, %.4f)", s.X, s.Y, s.Z) }

// Point2 is a point in the projected view plane.
type Point2 struct {
	X, Y float64
}

func (p Point2) Dist(o Point2) float64 { return math.Hypot(p.X-o.X, p.Y-o.Y) }
func (p Point2) IsValid() bool         { return finite(p.X) && finite(p.Y) }
func (p Point2) String() string        { return fmt.Sprintf("(%.4f, %.4f)", p.X, p.Y) }

// Slot is a trajectory entry. Valid is false for slots that were never written.
type Slot struct {
	State State3
	Valid bool
}

// Set returns a valid slot holding s.
func Set(s State3) Slot { return Slot{State: s, Valid: true} }

// Field is an autonomous vector field.
type Field interface {
	Derive(x State3) State3
}

type Integrator interface {
	Step(f Field, x State3, dt float64) State3
}

// Configurable is implemented by fields with named runtime parameters.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
