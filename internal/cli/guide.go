package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/demoreel/internal/presentation/tui"
	"github.com/aretw0/demoreel/pkg/guide"
)

// WriteGuide writes the guide on its own, without generating frames.
func WriteGuide(path string, stdout io.Writer) error {
	n, err := guide.Write(path)
	if err != nil {
		return err
	}
	tui.NewConsole(stdout).Done("📝", fmt.Sprintf("Wrote %s (%d bytes)", path, n))
	return nil
}

// PrintGuide shows the guide. On a terminal it is rendered with glamour; otherwise the raw markdown is copied.
func PrintGuide(stdout io.Writer, width int) error {
	if !tui.IsTerminal(stdout) {
		_, err := io.WriteString(stdout, guide.Text)
		return err
	}
	render, err := tui.NewRenderer(width)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := render(guide.Text)
	if err != nil {
		return fmt.Errorf("failed to render guide: %w", err)
	}
	_, err = io.WriteString(stdout, out)
	return err
}
