package viz

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/lorenz/internal/dynamo"
)

// ColorMapper turns a projected segment into a color. Hue follows the segment
// length relative to the longest segment seen so far; value follows its age.
//
// The running maximum only ever grows. It lives as long as the mapper.
//
// A flat mapper ignores age and draws every segment at full value and half
// saturation, for trajectories that are redrawn whole each frame.
type ColorMapper struct {
	HueShift  float64
	TailDecay float64
	Flat      bool
	maxLen    float64
}

func NewColorMapper(hueShift, tailDecay, initialMax float64) *ColorMapper {
	return &ColorMapper{HueShift: hueShift, TailDecay: tailDecay, maxLen: math.Max(initialMax, 0)}
}

// MaxLen is the longest segment observed, or the initial value if none was longer.
func (c *ColorMapper) MaxLen() float64 { return c.maxLen }

// Observe records a segment length and returns its hue in [0, 360).
func (c *ColorMapper) Observe(length float64) float64 {
	if length > c.maxLen {
		c.maxLen = length
	}
	ratio := 0.0
	if c.maxLen > 0 {
		ratio = length / c.maxLen
	}
	h := math.Mod(360*ratio+c.HueShift, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// Value maps an age in (0, 1] to a brightness percentage. It approaches 100
// as age approaches 1.
func (c *ColorMapper) Value(age float64) float64 {
	if c.Flat {
		return 100
	}
	return TailValue(age, c.TailDecay)
}

// Saturation is 1, or 0.5 for a flat mapper.
func (c *ColorMapper) Saturation() float64 {
	if c.Flat {
		return 0.5
	}
	return 1
}

// TailValue is 100*exp(1 - 1/age^decay), clamped to [0, 100].
func TailValue(age, decay float64) float64 {
	v := 100 * math.Exp(1-1/math.Pow(age, decay))
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

// SegmentColor colors the segment a-b at the given age. It reports false when
// the segment must be skipped: an age outside (0, 1] or non-finite endpoints.
// Skipped segments never touch the running maximum.
func (c *ColorMapper) SegmentColor(a, b dynamo.Point2, age float64) (Shade, bool) {
	if !(age > 0 && age <= 1) {
		return Shade{}, false
	}
	if !a.IsValid() || !b.IsValid() {
		return Shade{}, false
	}
	length := a.Dist(b)
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return Shade{}, false
	}
	hue := c.Observe(length)
	value := c.Value(age)
	return Shade{Hue: hue, Value: value, Color: colorful.Hsv(hue, c.Saturation(), value/100)}, true
}

// Shade keeps the HSV inputs next to the converted color.
type Shade struct {
	Hue   float64
	Value float64
	Color colorful.Color
}

// RGBA converts to an opaque 8-bit color.
func (s Shade) RGBA() color.RGBA {
	r, g, b := s.Color.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex returns the color as #rrggbb.
func (s Shade) Hex() string {
	return s.Color.Clamped().Hex()
}
