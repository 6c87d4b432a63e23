package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/sim"
	"github.com/san-kum/lorenz/internal/viz"
)

const (
	historyLen = 60
	hudLines   = 8
	minCols    = 20
	minRows    = 8
)

type tickMsg time.Time

type styles struct {
	text, dim, accent, paused lipgloss.Style
}

func newStyles(t viz.Theme) styles {
	return styles{
		text:   lipgloss.NewStyle().Foreground(t.Text),
		dim:    lipgloss.NewStyle().Foreground(t.Muted),
		accent: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		paused: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
}

// Model draws the simulator into a Braille canvas sized to the terminal.
type Model struct {
	sim      *sim.Simulator
	controls sim.Controls
	theme    viz.Theme
	st       styles
	canvas   *viz.Canvas
	scale    float64
	interval time.Duration
	history  []float64
	segments int
	width    int
	height   int
	log      zerolog.Logger
}

func NewModel(s *sim.Simulator, cfg *config.Config, log zerolog.Logger) Model {
	theme := viz.GetTheme(cfg.Render.Theme)
	m := Model{
		sim:      s,
		theme:    theme,
		st:       newStyles(theme),
		scale:    cfg.Render.TermScale,
		interval: time.Second / time.Duration(cfg.Render.FPS),
		history:  make([]float64, 0, historyLen),
		log:      log,
	}
	return m.resize(80, 24)
}

func (m Model) resize(w, h int) Model {
	m.width, m.height = w, h
	cols := w - 4
	if cols < minCols {
		cols = minCols
	}
	rows := h - hudLines
	if rows < minRows {
		rows = minRows
	}
	m.canvas = viz.NewCanvas(cols, rows)
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		ev, ok := m.controls.Key(msg.String(), m.sim.Mode())
		if !ok {
			return m, nil
		}
		if !m.sim.Apply(ev) {
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.log.Debug().Int("width", msg.Width).Int("height", msg.Height).Msg("terminal resized")
		return m.resize(msg.Width, msg.Height), nil
	case tickMsg:
		m.frame()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) frame() {
	segs := m.sim.Frame()
	m.segments = len(segs)

	pw, ph := m.canvas.PixelSize()
	vp := viz.Viewport{Width: pw, Height: ph, Scale: m.scale}
	m.canvas.Clear()
	m.canvas.Plot(vp.DrawList(segs))

	z := m.sim.Stats().Latest.Z
	if len(m.history) == historyLen {
		m.history = append(m.history[:0], m.history[1:]...)
	}
	m.history = append(m.history, z)
}

func (m Model) View() string {
	st := m.sim.Stats()
	var b strings.Builder

	status := m.st.accent.Render("●") + " " + m.st.text.Render(st.Mode)
	if st.Paused {
		status = m.st.paused.Render("○ paused")
	}
	b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		m.st.accent.Render("l o r e n z"), status,
		m.st.dim.Render(fmt.Sprintf("frame %d", st.Frames))))

	b.WriteString(m.canvas.Render(m.theme.Background))

	var params []string
	sel := m.controls.Param()
	values := map[string]float64{"sigma": st.Sigma, "rho": st.Rho, "beta": st.Beta}
	for _, p := range sim.Params {
		s := fmt.Sprintf("%s=%.3f", p, values[p])
		if p == sel {
			params = append(params, m.st.accent.Render("▸"+s))
		} else {
			params = append(params, m.st.dim.Render(" "+s))
		}
	}
	b.WriteString("  " + strings.Join(params, "  ") + "\n")

	b.WriteString(m.st.dim.Render(fmt.Sprintf("  x=%.2f y=%.2f z=%.2f  pts %d/%d  segs %d  max %.2f",
		st.Latest.X, st.Latest.Y, st.Latest.Z, st.Valid, st.Capacity, m.segments, st.MaxSegment)) + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", m.st.dim.Render("z"), m.st.text.Render(sparkline(m.history, 40))))

	quit := "q/esc quit"
	if st.Mode == config.ModeExplore {
		quit = "esc quit"
	}
	b.WriteString(m.st.dim.Render("  wasdqe rotate  tab select  [ ] adjust  space pause  r reset  "+quit) + "\n")
	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		idx := int((data[i*step] - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

// Run takes over the terminal until a quit key is pressed.
func Run(s *sim.Simulator, cfg *config.Config, log zerolog.Logger) error {
	p := tea.NewProgram(NewModel(s, cfg, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
