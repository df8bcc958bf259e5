package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"     _                                  _ ", "#818cf8"},
	{"  __| | ___ _ __ ___   ___  _ __ ___  ___| |", "#a78bfa"},
	{" / _` |/ _ \\ '_ ` _ \\ / _ \\| '__/ _ \\/ _ \\ |", "#c084fc"},
	{"| (_| |  __/ | | | | | (_) | | |  __/  __/ |", "#e879f9"},
	{" \\__,_|\\___|_| |_| |_|\\___/|_|  \\___|\\___|_|", "#f472b6"},
}

// PrintBanner outputs the demoreel ASCII art banner to w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	if !IsTerminal(w) {
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}

	fmt.Fprintln(out)
	for _, l := range bannerLines {
		fmt.Fprintln(out, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(out)
}
