package viz

import (
	"math"

	"github.com/san-kum/lorenz/internal/dynamo"
)

const twoPi = 2 * math.Pi

// ViewAngles are Tait-Bryan angles in radians, applied intrinsically: yaw
// about z, then pitch about the rotated y, then roll about the twice rotated x.
type ViewAngles struct {
	Yaw, Pitch, Roll float64
}

// Wrap maps every angle into [0, 2π).
func (a ViewAngles) Wrap() ViewAngles {
	return ViewAngles{wrapAngle(a.Yaw), wrapAngle(a.Pitch), wrapAngle(a.Roll)}
}

// Add returns the wrapped sum of a and d.
func (a ViewAngles) Add(d ViewAngles) ViewAngles {
	return ViewAngles{a.Yaw + d.Yaw, a.Pitch + d.Pitch, a.Roll + d.Roll}.Wrap()
}

func wrapAngle(x float64) float64 {
	x = math.Mod(x, twoPi)
	if x < 0 {
		x += twoPi
	}
	if x >= twoPi {
		x = 0
	}
	return x
}

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float64

var Identity = Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}

func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}
}

func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{{1, 0, 0}, {0, c, -s}, {0, s, c}}
}

// Mul returns the matrix product m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// Apply multiplies the row vector p by m, i.e. p·m.
func (m Mat3) Apply(p dynamo.State3) dynamo.State3 {
	return dynamo.State3{
		X: p.X*m[0][0] + p.Y*m[1][0] + p.Z*m[2][0],
		Y: p.X*m[0][1] + p.Y*m[1][1] + p.Z*m[2][1],
		Z: p.X*m[0][2] + p.Y*m[1][2] + p.Z*m[2][2],
	}
}

// Rotation builds Rz(yaw)·Ry(pitch)·Rx(roll). The matrix is always derived
// from the angles so repeated frames never accumulate rounding drift.
func Rotation(a ViewAngles) Mat3 {
	return RotZ(a.Yaw).Mul(RotY(a.Pitch)).Mul(RotX(a.Roll))
}

// Projected is a view-plane point. Valid is false for unwritten slots and for
// points whose rotation produced a non-finite coordinate.
type Projected struct {
	P     dynamo.Point2
	Valid bool
}

// Transform rotates every slot into the view frame and drops z.
func Transform(slots []dynamo.Slot, a ViewAngles) []Projected {
	return TransformWith(slots, Rotation(a))
}

// TransformWith projects slots through an explicit rotation matrix.
func TransformWith(slots []dynamo.Slot, m Mat3) []Projected {
	out := make([]Projected, len(slots))
	for i, s := range slots {
		if !s.Valid {
			continue
		}
		r := m.Apply(s.State)
		p := dynamo.Point2{X: r.X, Y: r.Y}
		out[i] = Projected{P: p, Valid: p.IsValid()}
	}
	return out
}
