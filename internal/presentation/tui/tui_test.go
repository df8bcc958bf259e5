package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/demoreel/internal/presentation/tui"
	"github.com/aretw0/demoreel/pkg/guide"
)

func TestConsole_PlainWhenRedirected(t *testing.T) {
	var buf bytes.Buffer
	c := tui.NewConsole(&buf)

	c.Step("🎬", "Creating demo video frames...")
	c.Done("✅", "Demo frames created!")
	c.Heading("🚀", "Quick Start:")
	c.Numbered("first", "second")

	want := "🎬 Creating demo video frames...\n" +
		"✅ Demo frames created!\n" +
		"\n🚀 Quick Start:\n" +
		"1. first\n" +
		"2. second\n"
	assert.Equal(t, want, buf.String())
	assert.False(t, tui.IsTerminal(&buf))
}

func TestSummary(t *testing.T) {
	out := tui.Summary("Artifacts", []string{"frames: out/bess", "preview: out/bess-preview.png"})
	assert.Contains(t, out, "Artifacts")
	assert.Contains(t, out, "frames: out/bess")
	assert.Contains(t, out, "preview: out/bess-preview.png")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRenderer_RendersGuide(t *testing.T) {
	render, err := tui.NewRenderer(100)
	require.NoError(t, err)

	out, err := render(guide.Text)
	require.NoError(t, err)
	assert.Contains(t, out, "Video Creation Instructions")
	assert.Contains(t, out, "vision-nav-demo.mp4")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|_|")
	assert.NotContains(t, buf.String(), "\x1b[", "no escape codes outside a terminal")
}
