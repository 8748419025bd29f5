package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	startStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	endStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	arrowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	guideStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444466")).Padding(0, 2)
)

// Paint colors one canvas cell by its layer.
func Paint(layer Layer, cell string) string {
	switch layer {
	case LayerStart:
		return startStyle.Render(cell)
	case LayerEnd:
		return endStyle.Render(cell)
	case LayerPath:
		return pathStyle.Render(cell)
	case LayerArrow:
		return arrowStyle.Render(cell)
	case LayerGuide:
		return guideStyle.Render(cell)
	}
	return cell
}

// Row is one labelled value in a summary panel.
type Row struct {
	Label, Value string
}

// Summary renders a titled panel of labelled values.
func Summary(title string, rows []Row) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	for i, r := range rows {
		b.WriteString(labelStyle.Render(r.Label))
		b.WriteString(valueStyle.Render(r.Value))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return panelStyle.Render(b.String())
}
