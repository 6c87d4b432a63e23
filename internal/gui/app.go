package gui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/export"
	"github.com/san-kum/lorenz/internal/logging"
	"github.com/san-kum/lorenz/internal/sim"
	"github.com/san-kum/lorenz/internal/viz"
)

// keyNames maps raylib key codes to the names sim.Controls understands.
// shifted is the name sent while shift is held; empty means shift is ignored.
var keyNames = []struct {
	code    int32
	name    string
	shifted string
}{
	{rl.KeyEscape, "esc", ""},
	{rl.KeyQ, "q", ""},
	{rl.KeyE, "e", ""},
	{rl.KeyW, "w", ""},
	{rl.KeyS, "s", ""},
	{rl.KeyA, "a", ""},
	{rl.KeyD, "d", ""},
	{rl.KeyTab, "tab", "shift+tab"},
	{rl.KeyUp, "up", "shift+up"},
	{rl.KeyDown, "down", "shift+down"},
	{rl.KeyRight, "right", "shift+right"},
	{rl.KeyLeft, "left", "shift+left"},
	{rl.KeyLeftBracket, "[", "{"},
	{rl.KeyRightBracket, "]", "}"},
	{rl.KeySpace, "space", ""},
	{rl.KeyP, "p", ""},
	{rl.KeyR, "r", ""},
}

// keyName returns the control name for a raylib key, or "" if it is unbound.
func keyName(code int32, shift bool) string {
	for _, k := range keyNames {
		if k.code != code {
			continue
		}
		if shift && k.shifted != "" {
			return k.shifted
		}
		return k.name
	}
	return ""
}

type App struct {
	Sim      *sim.Simulator
	View     viz.Viewport
	Theme    viz.Theme
	PenSize  float32
	Controls sim.Controls
	OutDir   string

	log      zerolog.Logger
	frameLog zerolog.Logger
	cmds     []viz.DrawCommand
	bg       rl.Color
	text     rl.Color
	muted    rl.Color
	accent   rl.Color
}

func initWindow(cfg *config.Config) {
	rl.InitWindow(int32(cfg.Render.Width), int32(cfg.Render.Height), "lorenz")
	rl.SetTargetFPS(int32(cfg.Render.FPS))
	rl.SetExitKey(0)
}

func NewApp(s *sim.Simulator, cfg *config.Config, log zerolog.Logger) *App {
	theme := viz.GetTheme(cfg.Render.Theme)
	return &App{
		Sim:      s,
		View:     viz.Viewport{Width: cfg.Render.Width, Height: cfg.Render.Height, Scale: cfg.Render.Scale},
		Theme:    theme,
		PenSize:  float32(cfg.Render.PenSize),
		OutDir:   ".",
		log:      log,
		frameLog: logging.Sampled(log, 1, 5*time.Second, 600),
		bg:       viz.RGBA(theme.Background),
		text:     viz.RGBA(theme.Text),
		muted:    viz.RGBA(theme.Muted),
		accent:   viz.RGBA(theme.Accent),
	}
}

// Run opens the window and blocks until it is closed or a quit key is
// pressed.
func Run(s *sim.Simulator, cfg *config.Config, log zerolog.Logger) error {
	initWindow(cfg)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("raylib window could not be created")
	}
	app := NewApp(s, cfg, log)
	log.Info().Int("width", cfg.Render.Width).Int("height", cfg.Render.Height).Int("fps", cfg.Render.FPS).Msg("window open")
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update feeds this frame's key presses to the simulator and advances it.
// It returns false once a quit event was applied.
func (a *App) Update() bool {
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	for _, k := range keyNames {
		if !rl.IsKeyPressed(k.code) {
			continue
		}
		ev, ok := a.Controls.Key(keyName(k.code, shift), a.Sim.Mode())
		if !ok {
			continue
		}
		if !a.Sim.Apply(ev) {
			return false
		}
	}
	if rl.IsKeyPressed(rl.KeyX) {
		a.saveSnapshot()
	}

	a.View.Width = int(rl.GetScreenWidth())
	a.View.Height = int(rl.GetScreenHeight())
	a.cmds = a.View.DrawList(a.Sim.Frame())

	st := a.Sim.Stats()
	a.frameLog.Trace().
		Uint64("frame", st.Frames).
		Int("segments", len(a.cmds)).
		Float64("max_segment", st.MaxSegment).
		Msg("frame")
	return true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.bg)

	for _, c := range a.cmds {
		rl.DrawLineEx(
			rl.NewVector2(float32(c.X1), float32(c.Y1)),
			rl.NewVector2(float32(c.X2), float32(c.Y2)),
			a.PenSize,
			c.Shade.RGBA(),
		)
	}
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	st := a.Sim.Stats()
	a.drawText("lorenz", 20, 16, 20, a.text)
	a.drawText(fmt.Sprintf(":: %s", st.Mode), 96, 20, 14, a.muted)

	y := int32(48)
	sel := a.Controls.Param()
	for _, p := range sim.Params {
		v := map[string]float64{"sigma": st.Sigma, "rho": st.Rho, "beta": st.Beta}[p]
		col, marker := a.muted, " "
		if p == sel {
			col, marker = a.accent, ">"
		}
		a.drawText(fmt.Sprintf("%s %-5s %7.3f", marker, p, v), 20, y, 14, col)
		y += 18
	}

	if st.Paused {
		a.drawText("PAUSED", int32(a.View.Width)-90, 16, 16, a.accent)
	}

	h := int32(a.View.Height)
	a.drawText(fmt.Sprintf("%d FPS  %d/%d pts  max %.2f", rl.GetFPS(), st.Valid, st.Capacity, st.MaxSegment), 20, h-40, 12, a.muted)
	a.drawText("WASDQE ROTATE  TAB SELECT  ARROWS ADJUST  SPACE PAUSE  R RESET  X SVG  ESC QUIT", 20, h-22, 12, a.muted)
}

func (a *App) drawText(text string, x, y, size int32, color rl.Color) {
	rl.DrawText(text, x, y, size, color)
}

func (a *App) saveSnapshot() {
	path := filepath.Join(a.OutDir, fmt.Sprintf("lorenz-%06d.svg", a.Sim.Stats().Frames))
	svg := export.FrameToSVG(a.cmds, a.View.Width, a.View.Height, float64(a.PenSize), string(a.Theme.Background))
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		a.log.Error().Err(err).Str("path", path).Msg("snapshot failed")
		return
	}
	a.log.Info().Str("path", path).Int("segments", len(a.cmds)).Msg("snapshot written")
}
