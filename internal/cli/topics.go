package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aretw0/demoreel/pkg/domain"
)

// PrintTopics lists every video target and whether demoreel can synthesize it.
func PrintTopics(w io.Writer) {
	synthesized := map[string]domain.Topic{}
	for _, t := range domain.Topics {
		synthesized[t.Video] = t
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TOPIC", "DASHBOARD", "VIDEO")
	for _, video := range domain.VideoTargets {
		if t, ok := synthesized[video]; ok {
			tbl.Row(string(t.ID), t.Headline, video)
		} else {
			tbl.Row("-", "recorded manually", video)
		}
	}
	fmt.Fprintln(w, tbl.Render())
}
