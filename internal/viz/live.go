package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/polarlab/internal/analysis"
	"github.com/san-kum/polarlab/internal/polar"
)

const (
	width  = 80
	height = 24
)

type TickMsg time.Time

// TraceModel animates a polar curve being traced point by point. All
// state lives on the single bubbletea event loop; the timer is a
// cooperative tea.Tick callback, not a separate goroutine of ours.
type TraceModel struct {
	eq      polar.Equation
	defs    []polar.ParamDef
	params  polar.Params
	initial polar.Params

	samples int
	fps     int
	series  polar.Series
	extent  float64

	anim     Animation
	canvas   *Canvas
	selected int
	showHelp bool
}

// NewTraceModel evaluates the full curve up front and starts playback.
// Out-of-range parameters are clamped, matching the slider bounds the
// config screen enforces.
func NewTraceModel(eq polar.Equation, params polar.Params, samples, frames, fps int, loop bool) TraceModel {
	if samples < 2 {
		samples = polar.DefaultSamples
	}
	if fps < 1 {
		fps = 30
	}
	m := TraceModel{
		eq:      eq,
		defs:    eq.ParamDefs(),
		params:  polar.Clamp(eq.ParamDefs(), params),
		samples: samples,
		fps:     fps,
		anim:    NewAnimation(frames, loop),
		canvas:  NewCanvas(width, height),
	}
	m.initial = m.params.Clone()
	m.recompute()
	return m
}

// recompute replaces the series wholesale. Evaluation is cheap and
// stateless, so every parameter change pays for a full resample.
func (m *TraceModel) recompute() {
	d := m.eq.DefaultDomain(m.params)
	if m.samples > 1 {
		d.Samples = m.samples
	}
	series, err := polar.Evaluate(m.eq, m.params, d)
	if err != nil {
		// Unreachable from the UI: domains come from the catalog.
		return
	}
	m.series = series
	ext := analysis.Extent(series)
	if ext < 1e-9 {
		ext = 1
	}
	m.extent = ext
}

func (m TraceModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m TraceModel) Init() tea.Cmd { return m.tick() }

// Update handles input events and advances the animation.
func (m TraceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.anim.Playing = !m.anim.Playing
		case "r":
			m.reset()
		case "[":
			m.anim.Scrub(-1)
		case "]":
			m.anim.Scrub(1)
		case "l":
			m.anim.Loop = !m.anim.Loop
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1)
		case "down", "j":
			m.adjustParam(-1)
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		m.anim.Advance()
		return m, m.tick()
	}
	return m, nil
}

func (m *TraceModel) cycleParam() {
	if len(m.defs) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.defs)
}

// adjustParam nudges the selected parameter by its declared step,
// pinned to its declared range, then resamples the curve.
func (m *TraceModel) adjustParam(dir float64) {
	if len(m.defs) == 0 {
		return
	}
	def := m.defs[m.selected]
	v := m.params[def.Name] + dir*def.Step
	if v < def.Min {
		v = def.Min
	}
	if v > def.Max {
		v = def.Max
	}
	m.params[def.Name] = v
	m.recompute()
}

// reset restores the initial parameters and rewinds the trace.
func (m *TraceModel) reset() {
	m.params = m.initial.Clone()
	m.anim.Reset()
	m.recompute()
}

// sampleIndex maps the animation frame onto the series.
func (m *TraceModel) sampleIndex() int {
	if len(m.series) == 0 {
		return 0
	}
	if m.anim.Total <= 1 {
		return len(m.series) - 1
	}
	return m.anim.Frame * (len(m.series) - 1) / (m.anim.Total - 1)
}

// draw renders the grid, the traced prefix, the rotating angle ray and
// the tip marker onto the braille canvas.
func (m *TraceModel) draw() {
	m.canvas.Clear()
	if len(m.series) == 0 {
		return
	}
	cw, ch := m.canvas.Width*2, m.canvas.Height*4
	cx, cy := cw/2, ch/2
	half := cw
	if ch < half {
		half = ch
	}
	scale := 0.45 * float64(half) / m.extent

	gridR := int(m.extent * scale)
	m.canvas.DrawRing(cx, cy, gridR)
	m.canvas.DrawRing(cx, cy, gridR/2)
	m.canvas.DrawDashedLine(cx-gridR, cy, cx+gridR, cy)
	m.canvas.DrawDashedLine(cx, cy-gridR, cx, cy+gridR)

	project := func(s polar.Sample) (int, int) {
		return cx + int(s.X*scale), cy - int(s.Y*scale)
	}

	idx := m.sampleIndex()
	prevX, prevY := project(m.series[0])
	for i := 1; i <= idx; i++ {
		x, y := project(m.series[i])
		m.canvas.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}

	// Angle ray sweeps with θ regardless of the sign of r; the dashed
	// opposite ray marks θ+π where a negative radius lands.
	cur := m.series[idx]
	rayX := int(float64(gridR) * math.Cos(cur.Theta))
	rayY := int(float64(gridR) * math.Sin(cur.Theta))
	m.canvas.DrawLine(cx, cy, cx+rayX, cy-rayY)
	m.canvas.DrawDashedLine(cx, cy, cx-rayX, cy+rayY)

	tipX, tipY := project(cur)
	m.canvas.DrawMarker(tipX, tipY, 1)
}

// View renders the canvas beside the stats panel.
func (m TraceModel) View() string {
	m.draw()

	theme := CurrentTheme
	headerStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Muted).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	activeStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	graphStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Padding(1, 0)
	helpStyle := lipgloss.NewStyle().Foreground(theme.Muted).MarginTop(2)
	canvasStyle := lipgloss.NewStyle().Padding(1, 2)
	statsStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Muted).
		Padding(1, 2).Width(45)

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.eq.Name())) + "\n")
	s.WriteString(valueStyle.Render(m.eq.Formula()) + "\n\n")

	status := "TRACING"
	switch {
	case m.anim.Done():
		status = "DONE"
	case !m.anim.Playing:
		status = "PAUSED"
	}
	if m.anim.Loop {
		status += " ∞"
	}
	s.WriteString(status + "\n\n")

	idx := m.sampleIndex()
	if idx < len(m.series) {
		cur := m.series[idx]
		sign := "+"
		if cur.R < 0 {
			sign = "-"
		}
		s.WriteString(labelStyle.Render("Angle") +
			valueStyle.Render(fmt.Sprintf("%.2f rad = %.1f°", cur.Theta, cur.Theta*180/math.Pi)) + "\n")
		s.WriteString(labelStyle.Render("Radius") +
			valueStyle.Render(fmt.Sprintf("%s%.2f", sign, math.Abs(cur.R))) + "\n")
	}
	s.WriteString(labelStyle.Render("Frame") +
		valueStyle.Render(fmt.Sprintf("%d/%d ", m.anim.Frame+1, m.anim.Total)) +
		ProgressBar(m.anim.Progress(), 16) + "\n")

	if idx > 1 {
		radii := m.series[:idx+1].Radii()
		chart := asciigraph.Plot(radii,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("r(θ)"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	for i, def := range m.defs {
		val := m.params[def.Name]
		line := fmt.Sprintf("%-4s %s %.2f", def.Name, ParamBar(val, def.Min, def.Max, 10), val)
		if i == m.selected {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\n" + Separator(21) + "\nSP:Pause R:Reset Q:Quit\nTab:Param ↑↓:Tune L:Loop\n[ ]:Scrub T:Theme ?:Help"))

	canvasView := canvasStyle.Render(m.canvas.String())
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume trace       ║
║  R        - Reset trace              ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter       ║
║  Down/J   - Decrease parameter       ║
║  [        - Step one frame back      ║
║  ]        - Step one frame forward   ║
║  L        - Toggle looping           ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Render draws the full curve once and returns the canvas text, used by
// the one-shot render command.
func (m TraceModel) Render() string {
	m.anim.Frame = m.anim.Total - 1
	m.draw()
	return m.canvas.String()
}

// Canvas exposes the drawing surface for SVG export.
func (m TraceModel) Canvas() *Canvas {
	m.draw()
	return m.canvas
}
