package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Console prints the human-readable progress lines of a run.
// Color is only used when the destination is a terminal, so redirected output stays plain.
type Console struct {
	out *termenv.Output
}

// NewConsole wraps w for progress output.
func NewConsole(w io.Writer) *Console {
	if IsTerminal(w) {
		return &Console{out: termenv.NewOutput(w)}
	}
	return &Console{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Step prints an emoji-prefixed status line.
func (c *Console) Step(emoji, msg string) {
	fmt.Fprintf(c.out, "%s %s\n", emoji, c.out.String(msg).Foreground(c.out.Color("#a78bfa")))
}

// Done prints a status line in the success color.
func (c *Console) Done(emoji, msg string) {
	fmt.Fprintf(c.out, "%s %s\n", emoji, c.out.String(msg).Foreground(c.out.Color("#4ade80")).Bold())
}

// Heading prints a blank line followed by a bold emoji-prefixed heading.
func (c *Console) Heading(emoji, msg string) {
	fmt.Fprintf(c.out, "\n%s %s\n", emoji, c.out.String(msg).Bold())
}

// Numbered prints items as a 1-based list.
func (c *Console) Numbered(items ...string) {
	for i, item := range items {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, item)
	}
}

// Print writes s verbatim.
func (c *Console) Print(s string) {
	fmt.Fprint(c.out, s)
}
