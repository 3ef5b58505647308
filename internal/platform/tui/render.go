package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyph colours by cell role.
var (
	plainStyle = lipgloss.NewStyle()
	cellStyles = map[core.Color]lipgloss.Style{
		core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := cellStyles[c]; ok {
		return st
	}
	return plainStyle
}

// RenderScreen turns the screen buffer into the full frame written to the
// terminal. Consecutive cells of one colour share a single styled span.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	for y := range lines {
		lines[y] = renderLine(s.Line(y))
	}
	return strings.Join(lines, "\n")
}

func renderLine(cells []core.Cell) string {
	var out, span strings.Builder
	for i, c := range cells {
		span.WriteRune(c.Rune)
		if i+1 == len(cells) || cells[i+1].Color != c.Color {
			out.WriteString(styleFor(c.Color).Render(span.String()))
			span.Reset()
		}
	}
	return out.String()
}
