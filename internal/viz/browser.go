package viz

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/deformsim/internal/analysis"
	"github.com/san-kum/deformsim/internal/continuum"
)

const (
	browserWidth  = 60
	browserHeight = 24
)

// Browser steps through field snapshots one instant at a time.
type Browser struct {
	fields      continuum.VelocityFields
	index       int
	streamlines bool
	width       int
	height      int
	speeds      []float64
}

func NewBrowser(fields continuum.VelocityFields) Browser {
	return Browser{
		fields:      fields,
		streamlines: true,
		width:       browserWidth,
		height:      browserHeight,
		speeds:      SpeedHistory(fields),
	}
}

// Index is the snapshot currently shown.
func (m Browser) Index() int { return m.index }

func (m Browser) Streamlines() bool { return m.streamlines }

func (m Browser) Init() tea.Cmd { return nil }

func (m Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l", " ":
			if m.index < len(m.fields)-1 {
				m.index++
			}
		case "left", "h":
			if m.index > 0 {
				m.index--
			}
		case "home", "g":
			m.index = 0
		case "end", "G":
			if len(m.fields) > 0 {
				m.index = len(m.fields) - 1
			}
		case "s":
			m.streamlines = !m.streamlines
		}
	case tea.WindowSizeMsg:
		// leave room for the stats panel
		m.width = max(20, msg.Width-50)
		m.height = max(8, msg.Height-8)
	}
	return m, nil
}

func (m Browser) View() string {
	if len(m.fields) == 0 {
		return "no snapshots\n"
	}
	g := m.fields[m.index]
	t := g.Time()

	var curves []analysis.Curve
	exponent := "undefined"
	if p, err := analysis.Exponent(t); err == nil {
		exponent = fmt.Sprintf("%.4f", p)
		if m.streamlines {
			extent := float64(g.Side / 2)
			curves, _ = analysis.Streamlines(t, extent, analysis.StreamlineCount, analysis.StreamlineSamples)
		}
	}

	canvasView := canvasStyle.Render(FieldCanvas(g, curves, m.width, m.height).Render(Paint))

	stats := headerStyle.Render(fmt.Sprintf("snapshot %d/%d", m.index+1, len(m.fields))) + "\n" +
		labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%.4f", t)) + "\n" +
		labelStyle.Render("grid") + valueStyle.Render(fmt.Sprintf("%dx%d", g.Side, g.Side)) + "\n" +
		labelStyle.Render("max speed") + valueStyle.Render(fmt.Sprintf("%.4f", g.MaxSpeed())) + "\n" +
		labelStyle.Render("exponent") + valueStyle.Render(exponent) + "\n" +
		labelStyle.Render("streamlines") + valueStyle.Render(onOff(m.streamlines))
	if len(m.speeds) > 1 {
		stats += "\n" + graphStyle.Render(SeriesChart(m.speeds, "max speed", 30, 4))
	}

	help := helpStyle.Render("←/→ step  g/G first/last  s streamlines  q quit")
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(stats)) + "\n" + help + "\n"
}

// RunBrowser opens the snapshot browser on the alternate screen.
func RunBrowser(fields continuum.VelocityFields) error {
	p := tea.NewProgram(NewBrowser(fields), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
