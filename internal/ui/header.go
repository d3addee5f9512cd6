package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/showroom/internal/state"
)

const brandName = "SUPER TUCÁN"

// renderHeader renders the brand, the section tabs and the locale badge.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	tx := m.tx()

	target := m.targetSection()
	tabs := make([]string, 0, len(state.Sections()))
	for i, s := range state.Sections() {
		label := tx.Sections[s]
		if compact {
			label = fmt.Sprintf("%d", i+1)
		}
		switch {
		case s == target:
			tabs = append(tabs, styles.SectionStyle(s).Render(label))
		case s == m.navSnap.ActiveSection:
			tabs = append(tabs, bg.render(label, styles.Text.Underline(true)))
		default:
			tabs = append(tabs, bg.render(label, styles.MutedText))
		}
	}

	left := bg.render(brandName, styles.Logo) + bg.spaces(2) + bg.join(tabs, " ")

	lang := m.locale.SelectedLanguage
	badge := lang.Flag + " " + strings.ToUpper(lang.Code)
	if c := m.locale.SelectedCountry; c != nil {
		badge = c.Flag + " " + badge
	}
	right := bg.render(badge, styles.MutedText)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	line := left
	if gap > 0 {
		line += bg.spaces(gap) + right
	}
	return styles.Header.Width(m.width).Render(line)
}

// renderCommandBar lists the main bindings and the last notice.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bar := m.renderBindings(styles, m.keys.ShortHelp())
	if m.notice != "" {
		bar += "  " + styles.WarningText.Render(m.notice)
	}
	return styles.Footer.Width(m.width).Render(bar)
}

func (m Model) renderBindings(styles Styles, bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.AccentText.Render(h.Key)+" "+styles.MutedText.Render(h.Desc))
	}
	return strings.Join(parts, styles.FaintText.Render("  "))
}
