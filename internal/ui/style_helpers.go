package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bgStyle paints every cell of a line, spaces included, with one background.
// Lipgloss resets between styled segments would otherwise leave gaps; see
// https://github.com/charmbracelet/lipgloss/discussions/78
type bgStyle struct {
	bg    lipgloss.Color
	space string
}

func newBgStyle(color string) bgStyle {
	bg := lipgloss.Color(color)
	return bgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// render styles text word by word and rejoins it with painted spaces.
func (b bgStyle) render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	styled := style.Background(b.bg)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = styled.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

func (b bgStyle) spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(b.space, n)
}

func (b bgStyle) join(parts []string, sep string) string {
	return strings.Join(parts, b.render(sep, lipgloss.NewStyle()))
}
