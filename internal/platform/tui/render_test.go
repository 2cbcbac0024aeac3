package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

func TestRenderScreen(t *testing.T) {
	screen := core.NewScreen(12, 3)
	screen.DrawText(0, 0, "hello")
	screen.DrawTextColored(0, 1, "123", core.ColorBrightBlue)
	screen.SetColored(11, 2, '*', core.Color(200)) // unknown colors render plain

	out := NewPalette(nil).RenderScreen(screen)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "hello"))
	assert.Contains(t, lines[1], "123")
	assert.Contains(t, lines[2], "*")
}

func TestRenderEmptyScreen(t *testing.T) {
	assert.Equal(t, "", NewPalette(nil).RenderScreen(core.NewScreen(0, 0)))
}
