package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var summaryStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#818cf8")).
	Padding(0, 1)

var summaryTitle = lipgloss.NewStyle().Bold(true)

// Summary boxes a titled list of lines, e.g. the artifacts a run produced.
func Summary(title string, lines []string) string {
	var sb strings.Builder
	sb.WriteString(summaryTitle.Render(title))
	for _, l := range lines {
		sb.WriteString("\n")
		sb.WriteString(l)
	}
	return summaryStyle.Render(sb.String()) + "\n"
}
