package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/boxwave/internal/engine"
)

var presetInfo = map[string]string{
	"reference": "10×10, the classic wave",
	"dense":     "16×16 tight grid, fast wipe",
	"sparse":    "5×5 wide spacing",
	"calm":      "low swell, slow turns",
	"storm":     "high swell, quick turns",
	"monolith":  "a single box",
	"dusk":      "coral on a dark stage",
}

const (
	stateMenu = iota
	stateScene
)

// Factory builds an engine for a named preset.
type Factory func(preset string) (*engine.Engine, error)

// picker lists presets and hands over to a live Model once one is chosen.
type picker struct {
	ctx           context.Context
	factory       Factory
	state, cursor int
	presets       []string
	err           error
	width, height int
	live          Model
}

func newPicker(ctx context.Context, presets []string, factory Factory) picker {
	return picker{ctx: ctx, factory: factory, presets: presets}
}

func (m picker) Init() tea.Cmd { return nil }

func (m picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateScene {
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.menuKey(msg)
	}
	return m, nil
}

func (m picker) menuKey(msg tea.KeyMsg) (picker, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.presets) == 0 {
			return m, nil
		}
		return m.start(m.presets[m.cursor])
	}
	return m, nil
}

func (m picker) start(name string) (picker, tea.Cmd) {
	eng, err := m.factory(name)
	if err != nil {
		m.err = fmt.Errorf("preset %s: %w", name, err)
		return m, nil
	}
	m.live = NewModel(m.ctx, eng)
	if m.width > 0 && m.height > 0 {
		next, _ := m.live.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.live = next.(Model)
	}
	m.state = stateScene
	return m, m.live.Init()
}

func (m picker) View() string {
	if m.state == stateScene {
		return m.live.View()
	}
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	bright := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))

	var b strings.Builder
	b.WriteString("\n\n    " + accent.Render("BOXWAVE") + "\n    " + sub.Render("pick a scene") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, name := range m.presets {
		info := presetInfo[name]
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", accent.Render("▸"), bright.Render(fmt.Sprintf("%-12s", name)), desc.Render(info)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", dim.Render(fmt.Sprintf("  %-12s", name)), dim.Render(info)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + accent.Render("j/k") + dim.Render(" navigate  ") + accent.Render("enter") + dim.Render(" select  ") + accent.Render("q") + dim.Render(" quit") + "\n")
	return b.String()
}

// RunPicker shows the preset menu, then the chosen scene.
func RunPicker(ctx context.Context, presets []string, factory Factory) error {
	return runProgram(ctx, newPicker(ctx, presets, factory))
}
