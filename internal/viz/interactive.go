package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/polarlab/internal/config"
	"github.com/san-kum/polarlab/internal/curves"
	"github.com/san-kum/polarlab/internal/polar"
)

const (
	stateMenu = iota
	stateConfig
	stateTrace
)

// Explorer is the top-level TUI: pick an equation, tune its parameters,
// then watch it traced.
type Explorer struct {
	state, cursor int
	registry      *polar.Registry
	names         []string
	cfg           *config.Config

	eq          polar.Equation
	defs        []polar.ParamDef
	params      polar.Params
	paramCursor int
	editing     bool
	editBuf     string

	trace TraceModel
}

func NewExplorer(registry *polar.Registry, cfg *config.Config) *Explorer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	SetTheme(cfg.Theme)
	return &Explorer{
		state:    stateMenu,
		registry: registry,
		names:    registry.Names(),
		cfg:      cfg,
	}
}

func (e Explorer) Init() tea.Cmd { return nil }

func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return e.handleKey(msg)
	default:
		if e.state == stateTrace {
			newTrace, cmd := e.trace.Update(msg)
			e.trace = newTrace.(TraceModel)
			return e, cmd
		}
	}
	return e, nil
}

func (e Explorer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch e.state {
	case stateMenu:
		return e.menuKey(msg)
	case stateConfig:
		return e.configKey(msg)
	case stateTrace:
		if msg.String() == "esc" {
			e.state = stateConfig
			return e, nil
		}
		newTrace, cmd := e.trace.Update(msg)
		e.trace = newTrace.(TraceModel)
		return e, cmd
	}
	return e, nil
}

func (e Explorer) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return e, tea.Quit
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < len(e.names)-1 {
			e.cursor++
		}
	case "enter", " ":
		eq, err := e.registry.Lookup(e.names[e.cursor])
		if err != nil {
			// Unreachable: the menu only offers registered names.
			return e, nil
		}
		e.eq = eq
		e.defs = eq.ParamDefs()
		e.params = polar.Defaults(e.defs)
		for name, v := range e.cfg.Params {
			e.params[name] = v
		}
		e.params = polar.Clamp(e.defs, e.params)
		e.paramCursor = 0
		e.state = stateConfig
	}
	return e, nil
}

func (e Explorer) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if e.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(e.editBuf, "%f", &val); err == nil {
				def := e.defs[e.paramCursor]
				e.params[def.Name] = val
				e.params = polar.Clamp(e.defs, e.params)
			}
			e.editing, e.editBuf = false, ""
		case "esc":
			e.editing, e.editBuf = false, ""
		case "backspace":
			if len(e.editBuf) > 0 {
				e.editBuf = e.editBuf[:len(e.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					e.editBuf += string(c)
				}
			}
		}
		return e, nil
	}
	switch msg.String() {
	case "q", "esc":
		e.state = stateMenu
	case "up", "k":
		if e.paramCursor > 0 {
			e.paramCursor--
		}
	case "down", "j":
		if e.paramCursor < len(e.defs)-1 {
			e.paramCursor++
		}
	case "enter":
		e.editing = true
		e.editBuf = fmt.Sprintf("%.2f", e.params[e.defs[e.paramCursor].Name])
	case "left", "h":
		e.nudge(-1)
	case "right", "l":
		e.nudge(1)
	case "s", " ":
		e.trace = NewTraceModel(e.eq, e.params, e.cfg.Samples, e.cfg.Frames, e.cfg.FPS, e.cfg.Loop)
		e.state = stateTrace
		return e, e.trace.Init()
	}
	return e, nil
}

func (e *Explorer) nudge(dir float64) {
	def := e.defs[e.paramCursor]
	v := e.params[def.Name] + dir*def.Step
	if v < def.Min {
		v = def.Min
	}
	if v > def.Max {
		v = def.Max
	}
	e.params[def.Name] = v
}

func (e Explorer) View() string {
	switch e.state {
	case stateMenu:
		return e.viewMenu()
	case stateConfig:
		return e.viewConfig()
	case stateTrace:
		return e.trace.View()
	}
	return ""
}

func (e Explorer) viewMenu() string {
	theme := CurrentTheme
	h := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	sub := lipgloss.NewStyle().Foreground(theme.Muted)
	sel := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	blurb := lipgloss.NewStyle().Foreground(theme.Accent)

	var b strings.Builder
	b.WriteString("\n\n    " + h.Render("POLARLAB") + "\n    " +
		sub.Render("polar equation explorer") + "\n    " +
		sub.Render("─────────────────────────") + "\n\n")
	for i, n := range e.names {
		desc := curves.Blurbs[n]
		if i == e.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				sel.Render("▸"), name.Render(fmt.Sprintf("%-14s", n)), blurb.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n",
				sub.Render(fmt.Sprintf("%-14s", n)), sub.Render(desc)))
		}
	}
	b.WriteString("\n    " + sel.Render("j/k") + sub.Render(" navigate  ") +
		sel.Render("enter") + sub.Render(" select  ") +
		sel.Render("q") + sub.Render(" quit") + "\n")
	return b.String()
}

func (e Explorer) viewConfig() string {
	theme := CurrentTheme
	h := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	sub := lipgloss.NewStyle().Foreground(theme.Muted)
	sel := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	val := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var b strings.Builder
	b.WriteString("\n\n    " + h.Render(strings.ToUpper(e.eq.Name())) + "\n    " +
		sub.Render(e.eq.Formula()) + "\n    " +
		sub.Render("─────────────────────────") + "\n\n")
	for i, def := range e.defs {
		valStr := fmt.Sprintf("%8.2f", e.params[def.Name])
		if e.editing && i == e.paramCursor {
			valStr = fmt.Sprintf("%8s", e.editBuf+"_")
		}
		rangeStr := fmt.Sprintf("[%g … %g]", def.Min, def.Max)
		if i == e.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s  %s\n",
				sel.Render("▸"), name.Render(fmt.Sprintf("%-4s", def.Name)),
				val.Render(valStr), sub.Render(rangeStr)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s  %s\n",
				sub.Render(fmt.Sprintf("%-4s", def.Name)),
				sub.Render(valStr), sub.Render(rangeStr)))
		}
	}
	b.WriteString("\n    " + sel.Render("j/k") + sub.Render(" select  ") +
		sel.Render("h/l") + sub.Render(" adjust  ") +
		sel.Render("enter") + sub.Render(" type  ") +
		sel.Render("s") + sub.Render(" trace  ") +
		sel.Render("esc") + sub.Render(" back") + "\n")
	return b.String()
}

// RunExplorer starts the full-screen interactive session.
func RunExplorer(registry *polar.Registry, cfg *config.Config) error {
	_, err := tea.NewProgram(NewExplorer(registry, cfg), tea.WithAltScreen()).Run()
	return err
}
