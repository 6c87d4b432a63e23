package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/gui"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/logging"
	"github.com/san-kum/lorenz/internal/physics"
	"github.com/san-kum/lorenz/internal/sim"
	"github.com/san-kum/lorenz/internal/tui"
	"github.com/san-kum/lorenz/internal/viz"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// options holds the persistent flags shared by every command.
type options struct {
	configFile string
	preset     string
	logFile    string
	plain      bool
	noColor    bool
	frames     int
	cols, rows int
	v          *viper.Viper
}

// flagKeys binds command line flags to configuration keys.
var flagKeys = map[string]string{
	"mode":       "mode",
	"integrator": "integrator",
	"log-level":  "log_level",
	"sigma":      "sigma",
	"rho":        "rho",
	"beta":       "beta",
	"dt":         "dt",
	"max-length": "max_length",
	"scale":      "render.scale",
	"hue-shift":  "render.hue_shift",
	"tail-decay": "render.tail_decay",
	"pen-size":   "render.pen_size",
	"fps":        "render.fps",
	"theme":      "render.theme",
}

// main runs the lorenz CLI. Without a subcommand it opens the window.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{v: config.NewViper()}

	rootCmd := &cobra.Command{
		Use:          "lorenz",
		Short:        "real-time lorenz attractor tail renderer",
		SilenceUsage: true,
		RunE:         o.runGUI,
	}

	d := config.DefaultConfig()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&o.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&o.preset, "preset", "", "start from a preset (see 'lorenz presets')")
	pf.String("log-level", d.LogLevel, "trace, debug, info, warn or error")
	pf.String("mode", d.Mode, "animate or explore")
	pf.String("integrator", d.Integrator, fmt.Sprintf("integrator %v", integrators.Names()))
	pf.Float64("sigma", physics.DefaultSigma, "sigma coefficient")
	pf.Float64("rho", physics.DefaultRho, "rho coefficient")
	pf.Float64("beta", physics.DefaultBeta, "beta coefficient")
	pf.Float64("dt", d.Dt, "timestep")
	pf.Int("max-length", d.MaxLength, "number of points in the tail")
	pf.Float64("scale", d.Render.Scale, "pixels per unit")
	pf.Float64("hue-shift", d.Render.HueShift, "hue offset in degrees")
	pf.Float64("tail-decay", d.Render.TailDecay, "brightness falloff exponent (> 1)")
	pf.Float64("pen-size", d.Render.PenSize, "line width in pixels")
	pf.Int("fps", d.Render.FPS, "target frame rate")
	pf.String("theme", d.Render.Theme, fmt.Sprintf("color theme %v", viz.ThemeNames()))
	bindFlags(o.v, pf)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the attractor in a window",
		Args:  cobra.NoArgs,
		RunE:  o.runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "draw the attractor in the terminal",
		Args:  cobra.NoArgs,
		RunE:  o.runTUI,
	}
	tuiCmd.Flags().StringVar(&o.logFile, "log-file", "", "write logs to this file while the terminal is in use")
	tuiCmd.Flags().BoolVar(&o.plain, "plain", false, "stream frames to stdout without keyboard control")
	tuiCmd.Flags().BoolVar(&o.noColor, "no-color", false, "write uncolored braille with --plain")
	tuiCmd.Flags().IntVar(&o.frames, "frames", 0, "stop after this many frames with --plain (0 runs until interrupted)")
	tuiCmd.Flags().IntVar(&o.cols, "cols", 80, "canvas columns with --plain")
	tuiCmd.Flags().IntVar(&o.rows, "rows", 30, "canvas rows with --plain")

	rootCmd.AddCommand(guiCmd, tuiCmd, newTraceCmd(o), newSnapshotCmd(o), newPresetsCmd(), newConfigCmd(o))
	return rootCmd
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

// resolve builds the configuration from defaults, preset, file,
// environment and flags, in increasing precedence.
func (o *options) resolve() (*config.Config, []string, error) {
	cfg := config.DefaultConfig()
	if o.preset != "" {
		cfg = config.GetPreset(o.preset)
		if cfg == nil {
			return nil, nil, fmt.Errorf("unknown preset %q (available: %v)", o.preset, config.ListPresets())
		}
	}
	if o.configFile != "" {
		if err := config.LoadInto(cfg, o.configFile); err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	applied := config.Overlay(cfg, o.v)
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, applied, nil
}

// setup resolves the configuration and builds the simulator with a logger
// writing to w.
func (o *options) setup(w io.Writer) (*config.Config, *sim.Simulator, zerolog.Logger, error) {
	cfg, applied, err := o.resolve()
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}
	log := logging.New(w, cfg.LogLevel)
	return o.build(cfg, applied, log)
}

func (o *options) build(cfg *config.Config, applied []string, log zerolog.Logger) (*config.Config, *sim.Simulator, zerolog.Logger, error) {
	log.Info().
		Str("config", o.configFile).
		Str("preset", o.preset).
		Strs("overrides", applied).
		Str("mode", cfg.Mode).
		Str("integrator", cfg.Integrator).
		Float64("sigma", cfg.Sigma).
		Float64("rho", cfg.Rho).
		Float64("beta", cfg.Beta).
		Int("max_length", cfg.MaxLength).
		Msg("configuration loaded")

	opts := sim.FromConfig(cfg)
	opts.Logger = &log
	s, err := sim.New(opts)
	if err != nil {
		return nil, nil, log, err
	}
	return cfg, s, log, nil
}

func (o *options) runGUI(cmd *cobra.Command, args []string) error {
	cfg, s, log, err := o.setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return gui.Run(s, cfg, log)
}

func (o *options) runTUI(cmd *cobra.Command, args []string) error {
	cfg, applied, err := o.resolve()
	if err != nil {
		return err
	}

	log := zerolog.Nop()
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log = logging.NewPlain(f, cfg.LogLevel)
	}

	cfg, s, log, err := o.build(cfg, applied, log)
	if err != nil {
		return err
	}
	if o.plain {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		r := tui.NewLiveRenderer(cmd.OutOrStdout(), s, cfg, o.cols, o.rows)
		r.Color = !o.noColor
		return r.Run(ctx, o.frames)
	}
	return tui.Run(s, cfg, log)
}
