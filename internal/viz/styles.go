package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 2)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(16)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688")).
			Italic(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))
)

// Stat is one labelled row of a Panel.
type Stat struct {
	Label string
	Value string
}

func Statf(label, format string, args ...any) Stat {
	return Stat{Label: label, Value: fmt.Sprintf(format, args...)}
}

// Panel renders stats as aligned label/value rows inside a rounded border.
func Panel(title string, stats []Stat) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(title))
	for _, s := range stats {
		sb.WriteString("\n")
		sb.WriteString(LabelStyle.Render(s.Label))
		sb.WriteString(ValueStyle.Render(s.Value))
	}
	return PanelStyle.Render(sb.String())
}
