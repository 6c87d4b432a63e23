// Package export writes rendered frames as SVG images.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/lorenz/internal/viz"
)

// FrameToSVG draws one frame's commands as lines, in order, over a filled
// background.
func FrameToSVG(cmds []viz.DrawCommand, width, height int, penSize float64, background string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g stroke-width="%g" stroke-linecap="round">
`, width, height, width, height, background, penSize))

	for _, c := range cmds {
		sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"/>
`, c.X1, c.Y1, c.X2, c.Y2, c.Shade.Hex()))
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG, one dot per lit sub-pixel
// in the color of its cell.
func CanvasToSVG(canvas *viz.Canvas, scale float64, background string) string {
	if canvas == nil {
		return ""
	}

	pw, ph := canvas.PixelSize()
	width := float64(pw) * scale
	height := float64(ph) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	r := scale * 0.4
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !canvas.Lit(x, y) {
				continue
			}
			ink := canvas.Ink[y/4][x/2]
			if ink == "" {
				ink = "#ffffff"
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, r, ink))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
