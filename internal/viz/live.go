package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/boxwave/internal/clock"
	"github.com/san-kum/boxwave/internal/control"
	"github.com/san-kum/boxwave/internal/engine"
	"github.com/san-kum/boxwave/internal/loop"
)

const (
	width           = 80
	height          = 24
	panelWidth      = 34
	historyCapacity = 240
	orbitStep       = 0.08
	gifPath         = "boxwave.gif"
	hexDigits       = "0123456789abcdefABCDEF"
	maxHex          = len("#rrggbb")
)

type TickMsg time.Time

// Model is the terminal frontend: one render loop tick per TickMsg, keys
// routed through the shared controller.
type Model struct {
	ctx    context.Context
	eng    *engine.Engine
	loop   *loop.Loop
	ctrl   *control.Controller
	screen *Screen
	clk    clock.Clock
	epoch  time.Time
	fps    int

	theme     Theme
	st        styles
	swatch    string
	heights   []float64
	frame     int
	showHelp  bool
	recorder  *Recorder
	recording bool
	status    string
	// hex holds the color being typed after '#'; empty when not editing.
	hex string
}

func NewModel(ctx context.Context, eng *engine.Engine) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := eng.Config()
	cam := CameraFromConfig(cfg)
	screen := NewScreen(cam, width-panelWidth-4, height-2)
	screen.SetAxes(cfg.Renderer.Axes)

	ctrl := eng.Controller(screen)
	ctrl.Resize(width, height)

	bg, err := cfg.ClearColor()
	if err != nil {
		bg = colorful.Color{R: 1, G: 1, B: 1}
	}
	theme := ThemeStudio
	return Model{
		ctx:      ctx,
		eng:      eng,
		loop:     eng.Loop(cam, screen),
		ctrl:     ctrl,
		screen:   screen,
		clk:      eng.Clock(),
		epoch:    eng.Clock().Now(),
		fps:      cfg.Renderer.FPS,
		theme:    theme,
		st:       newStyles(theme),
		heights:  make([]float64, 0, historyCapacity),
		recorder: NewRecorder(bg, cfg.Renderer.FPS),
	}
}

func (m Model) Init() tea.Cmd { return tick(m.fps) }

func tick(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and advances the render loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ctrl.Resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if m.ctx.Err() != nil {
			return m, tea.Quit
		}
		m.step()
		return m, tick(m.fps)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.hex != "" {
		return m.editHex(msg)
	}
	key := msg.String()
	switch key {
	case "#":
		m.hex = "#"
	case "q", "ctrl+c", "esc":
		if m.showHelp && key == "esc" {
			m.showHelp = false
			return m, nil
		}
		return m, tea.Quit
	case control.KeyRotate:
		m.ctrl.HandleKey(m.ctx, key)
	case "enter", "r":
		m.ctrl.PressRotate(m.ctx)
	case "c":
		m.swatch = m.ctrl.CycleSwatch(1).Name
	case "C":
		m.swatch = m.ctrl.CycleSwatch(-1).Name
	case "a":
		m.screen.SetAxes(!m.screen.Axes())
	case "left", "h":
		m.screen.Camera.Orbit(-orbitStep, 0)
	case "right", "l":
		m.screen.Camera.Orbit(orbitStep, 0)
	case "up", "k":
		m.screen.Camera.Orbit(0, -orbitStep)
	case "down", "j":
		m.screen.Camera.Orbit(0, orbitStep)
	case "+", "=":
		m.screen.Camera.Dolly(1 / 1.1)
	case "-", "_":
		m.screen.Camera.Dolly(1.1)
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.st = newStyles(m.theme)
	case "g":
		m = m.toggleRecording()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// editHex collects "#rrggbb" and applies it on enter.
func (m Model) editHex(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.hex = ""
	case tea.KeyBackspace:
		if len(m.hex) > 1 {
			m.hex = m.hex[:len(m.hex)-1]
		}
	case tea.KeyEnter:
		if err := m.ctrl.PickHex(m.hex); err != nil {
			m.status = "bad color " + m.hex
		} else {
			m.swatch, m.status = "", ""
		}
		m.hex = ""
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if len(m.hex) < maxHex && strings.ContainsRune(hexDigits, r) {
				m.hex += string(r)
			}
		}
	}
	return m, nil
}

// step runs one render loop tick and samples the panel's wave history.
func (m *Model) step() {
	elapsed := m.clk.Now().Sub(m.epoch).Seconds()
	m.loop.Tick(elapsed)
	m.frame++

	if f := m.screen.Last(); len(f.Cells) > 0 {
		m.heights = append(m.heights, f.Cells[0].Position.Y)
		if len(m.heights) > historyCapacity {
			m.heights = m.heights[1:]
		}
	}
	if m.recording {
		m.recorder.Capture(m.screen.Canvas)
	}
}

func (m Model) toggleRecording() Model {
	m.recording = !m.recording
	if m.recording {
		m.status = "recording"
		return m
	}
	if err := m.recorder.Save(gifPath); err != nil {
		m.status = "gif: " + err.Error()
	} else {
		m.status = "saved " + gifPath
	}
	return m
}

// View renders the canvas and the side panel.
func (m Model) View() string {
	canvasView := m.st.canvas.Render(strings.TrimSuffix(m.screen.Canvas.String(), "\n"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.panel())
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, m.help(), mainView)
	}
	return mainView
}

func (m Model) panel() string {
	fl := m.eng.Flourish()
	grid := m.eng.Grid()
	base := m.ctrl.BaseColor()
	light, _ := m.eng.Config().LightColor()

	var s strings.Builder
	s.WriteString(GradientText("BOXWAVE", base, light) + "\n\n")

	if fl.Busy() {
		s.WriteString(m.st.busy.Render(AnimatedSpinner(m.frame)+" ROTATING") + "\n")
	} else {
		s.WriteString(m.st.idle.Render("● IDLE") + "\n")
	}
	p := fl.Progress()
	s.WriteString(ProgressBar(p, 22) + m.st.value.Render(fmt.Sprintf(" %3.0f%%", p*100)) + "\n\n")

	row := func(label, value string) {
		s.WriteString(m.st.label.Render(label) + m.st.value.Render(value) + "\n")
	}
	name := m.swatch
	if name == "" {
		name = "custom"
	}
	if m.hex != "" {
		row("color", m.hex+"_")
	} else {
		row("color", Swatch(base)+" "+base.Hex()+" "+name)
	}
	row("grid", fmt.Sprintf("%d×%d  %d boxes", grid.Size(), grid.Size(), grid.Len()))
	row("cycles", fmt.Sprintf("%d", fl.Cycles()))
	row("time", fmt.Sprintf("%.1fs", m.clk.Now().Sub(m.epoch).Seconds()))
	row("frames", fmt.Sprintf("%d", m.loop.Frames()))
	row("camera", fmt.Sprintf("r=%.1f", m.screen.Camera.Radius()))
	axes := "off"
	if m.screen.Axes() {
		axes = "on"
	}
	row("axes", axes)
	if m.status != "" {
		row("status", m.status)
	}

	s.WriteString("\n" + m.st.label.Render("wave") + "\n")
	s.WriteString(m.st.spark.Render(Sparkline(m.heights, panelWidth-2)) + "\n\n")

	hints := [][2]string{
		{"space", "rotate"}, {"c/C", "color"}, {"#", "hex color"}, {"←↑↓→", "orbit"},
		{"+/-", "zoom"}, {"a", "axes"}, {"t", "theme"}, {"?", "help"}, {"q", "quit"},
		{"g", "gif"},
	}
	for i, h := range hints {
		s.WriteString(m.st.key.Render(h[0]) + " " + m.st.hint.Render(h[1]))
		if i%2 == 1 {
			s.WriteString("\n")
		} else {
			s.WriteString("  ")
		}
	}
	return m.st.panel.Render(strings.TrimRight(s.String(), "\n "))
}

func (m Model) help() string {
	lines := []string{
		"space / enter  rotate the grid",
		"c / C          next / previous color",
		"#rrggbb enter  set any color",
		"arrows / hjkl  orbit the camera",
		"+ / -          zoom in / out",
		"a              toggle axes",
		"t              cycle themes",
		"g              start / stop GIF recording",
		"q              quit",
	}
	return m.st.overlay.Render(m.st.title.Render("KEYS") + "\n\n" + strings.Join(lines, "\n"))
}

// Run starts the terminal frontend and blocks until it exits or ctx ends.
func Run(ctx context.Context, eng *engine.Engine) error {
	return runProgram(ctx, NewModel(ctx, eng))
}

func runProgram(ctx context.Context, model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if ctx.Err() != nil {
		return nil
	}
	return err
}
