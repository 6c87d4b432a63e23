package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/sim"
	"github.com/san-kum/lorenz/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer streams frames to a writer without taking over the terminal
// and without reading keys.
type LiveRenderer struct {
	out        io.Writer
	sim        *sim.Simulator
	canvas     *viz.Canvas
	scale      float64
	interval   time.Duration
	background lipgloss.Color
	Color      bool
}

func NewLiveRenderer(w io.Writer, s *sim.Simulator, cfg *config.Config, cols, rows int) *LiveRenderer {
	return &LiveRenderer{
		out:        w,
		sim:        s,
		canvas:     viz.NewCanvas(cols, rows),
		scale:      cfg.Render.TermScale,
		interval:   time.Second / time.Duration(cfg.Render.FPS),
		background: viz.GetTheme(cfg.Render.Theme).Background,
		Color:      true,
	}
}

// Render advances one frame and returns it as text.
func (r *LiveRenderer) Render() string {
	segs := r.sim.Frame()
	pw, ph := r.canvas.PixelSize()
	vp := viz.Viewport{Width: pw, Height: ph, Scale: r.scale}
	r.canvas.Clear()
	r.canvas.Plot(vp.DrawList(segs))

	st := r.sim.Stats()
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  lorenz  frame %d  sigma=%.3f rho=%.3f beta=%.3f\n", st.Frames, st.Sigma, st.Rho, st.Beta))
	if r.Color {
		b.WriteString(r.canvas.Render(r.background))
	} else {
		b.WriteString(r.canvas.String())
	}
	b.WriteString(fmt.Sprintf("  x=%.2f y=%.2f z=%.2f  segs %d\n", st.Latest.X, st.Latest.Y, st.Latest.Z, len(segs)))
	return b.String()
}

// Run writes frames at the configured rate until frames have been written
// (forever when frames <= 0) or ctx is done.
func (r *LiveRenderer) Run(ctx context.Context, frames int) error {
	fmt.Fprint(r.out, hideCursor)
	defer fmt.Fprint(r.out, showCursor)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for n := 0; frames <= 0 || n < frames; n++ {
		if _, err := io.WriteString(r.out, r.Render()); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}
