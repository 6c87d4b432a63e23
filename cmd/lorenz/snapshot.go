package main

import (
	"fmt"
	"os"

	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/export"
	"github.com/san-kum/lorenz/internal/viz"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(o *options) *cobra.Command {
	var (
		frames  int
		out     string
		braille bool
		cols    int
		rows    int
	)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render frames without a window and write the last one as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, log, err := o.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			n := frames
			if n <= 0 {
				n = 1
				if cfg.Mode == config.ModeAnimate {
					n = cfg.MaxLength
				}
			}
			var segs []viz.Segment
			for i := 0; i < n; i++ {
				segs = s.Frame()
			}

			theme := viz.GetTheme(cfg.Render.Theme)
			var svg string
			if braille {
				canvas := viz.NewCanvas(cols, rows)
				pw, ph := canvas.PixelSize()
				vp := viz.Viewport{Width: pw, Height: ph, Scale: cfg.Render.TermScale}
				canvas.Plot(vp.DrawList(segs))
				svg = export.CanvasToSVG(canvas, 4, string(theme.Background))
			} else {
				vp := viz.Viewport{Width: cfg.Render.Width, Height: cfg.Render.Height, Scale: cfg.Render.Scale}
				svg = export.FrameToSVG(vp.DrawList(segs), vp.Width, vp.Height, cfg.Render.PenSize, string(theme.Background))
			}

			if out == "-" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), svg)
				return err
			}
			if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
				return err
			}
			log.Info().Str("path", out).Int("frames", n).Int("segments", len(segs)).Msg("snapshot written")
			return nil
		},
	}
	snapshotCmd.Flags().IntVar(&frames, "frames", 0, "frames to run (default: a full tail in animate mode, 1 in explore mode)")
	snapshotCmd.Flags().StringVarP(&out, "out", "o", "lorenz.svg", "output path, - for stdout")
	snapshotCmd.Flags().BoolVar(&braille, "braille", false, "render through the terminal canvas")
	snapshotCmd.Flags().IntVar(&cols, "cols", 100, "canvas columns with --braille")
	snapshotCmd.Flags().IntVar(&rows, "rows", 40, "canvas rows with --braille")
	return snapshotCmd
}
