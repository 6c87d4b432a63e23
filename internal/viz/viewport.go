package viz

import "github.com/san-kum/lorenz/internal/dynamo"

// Viewport maps view-plane coordinates to screen pixels centered on the
// middle of a Width x Height surface.
type Viewport struct {
	Width, Height int
	Scale         float64
}

// DrawCommand is a line in screen coordinates.
type DrawCommand struct {
	X1, Y1, X2, Y2 float64
	Shade          Shade
}

func (v Viewport) Point(p dynamo.Point2) (float64, float64) {
	return float64(v.Width)/2 + v.Scale*p.X, float64(v.Height)/2 + v.Scale*p.Y
}

func (v Viewport) ToScreen(s Segment) DrawCommand {
	x1, y1 := v.Point(s.A)
	x2, y2 := v.Point(s.B)
	return DrawCommand{X1: x1, Y1: y1, X2: x2, Y2: y2, Shade: s.Shade}
}

// DrawList maps a whole frame, keeping segment order.
func (v Viewport) DrawList(segs []Segment) []DrawCommand {
	cmds := make([]DrawCommand, len(segs))
	for i, s := range segs {
		cmds[i] = v.ToScreen(s)
	}
	return cmds
}
