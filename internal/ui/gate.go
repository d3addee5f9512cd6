package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/showroom/internal/locale"
	"github.com/five82/showroom/internal/state"
)

type gateField int

const (
	gateCountry gateField = iota
	gateLanguage
)

// gateState is the cursor state of the country/language selection screen.
type gateState struct {
	countries   []locale.Country
	languages   []locale.Language
	countryIdx  int
	languageIdx int
	focus       gateField

	// Set once the user moves a cursor; from then on store updates, such as
	// a finished detection, no longer move it.
	countryTouched  bool
	languageTouched bool
}

func newGateState() gateState {
	return gateState{
		countries: locale.Countries(),
		languages: locale.Languages(),
	}
}

// prefill moves untouched cursors onto the stored selection.
func (g *gateState) prefill(st state.CountryState) {
	if !g.countryTouched && st.SelectedCountry != nil {
		for i, c := range g.countries {
			if c.Code == st.SelectedCountry.Code {
				g.countryIdx = i
				break
			}
		}
	}
	if !g.languageTouched {
		for i, l := range g.languages {
			if l.Code == st.SelectedLanguage.Code {
				g.languageIdx = i
				break
			}
		}
	}
}

func (g *gateState) move(delta int) {
	switch g.focus {
	case gateCountry:
		g.countryIdx = clampIndex(g.countryIdx+delta, len(g.countries))
		g.countryTouched = true
	case gateLanguage:
		g.languageIdx = clampIndex(g.languageIdx+delta, len(g.languages))
		g.languageTouched = true
	}
}

func (g gateState) selectedCountry() locale.Country {
	return g.countries[g.countryIdx]
}

func (g gateState) selectedLanguage() locale.Language {
	return g.languages[g.languageIdx]
}

func (m Model) handleGateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchGateList):
		if m.gate.focus == gateCountry {
			m.gate.focus = gateLanguage
		} else {
			m.gate.focus = gateCountry
		}

	case key.Matches(msg, m.keys.Up):
		m.gate.move(-1)

	case key.Matches(msg, m.keys.Down):
		m.gate.move(1)

	case key.Matches(msg, m.keys.Redetect):
		if m.locale.IsDetecting {
			return m, nil
		}
		m.gate.countryTouched = false
		return m, detectCmd(m.ctx, m.country)

	case key.Matches(msg, m.keys.Confirm):
		m.confirmGate()
	}
	return m, nil
}

// confirmGate stores the highlighted country and language and confirms
// them for today.
func (m *Model) confirmGate() {
	m.country.SetCountry(m.gate.selectedCountry())
	m.country.SetLanguage(m.gate.selectedLanguage())
	m.country.SetHasConfirmedSelection(true)
	m.notice = ""
	m.syncCountry()
	m.refreshBrand()
}

func (m Model) renderGate() string {
	styles := m.theme.Styles()
	tx := copyFor(m.gate.selectedLanguage().Code)

	var b strings.Builder
	b.WriteString(styles.Logo.Render(tx.Welcome))
	b.WriteString("\n\n")

	countries := make([]string, 0, len(m.gate.countries))
	for i, c := range m.gate.countries {
		countries = append(countries, m.gateRow(styles, i == m.gate.countryIdx, c.Flag+" "+c.Name))
	}
	languages := make([]string, 0, len(m.gate.languages))
	for i, l := range m.gate.languages {
		languages = append(languages, m.gateRow(styles, i == m.gate.languageIdx, l.Flag+" "+l.Name))
	}

	countryPanel := m.gatePanel(styles, m.gate.focus == gateCountry, tx.Country, visibleWindow(countries, m.gate.countryIdx, gateListHeight))
	languagePanel := m.gatePanel(styles, m.gate.focus == gateLanguage, tx.Language, languages)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, countryPanel, " ", languagePanel))
	b.WriteString("\n\n")

	switch {
	case m.locale.IsDetecting:
		b.WriteString(styles.WarningText.Render(m.spinner.View() + " " + tx.Detecting))
	case m.notice != "":
		b.WriteString(styles.MutedText.Render(m.notice))
	}
	b.WriteString("\n\n")

	selected := m.gate.selectedCountry()
	b.WriteString(lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Brand)).
		Foreground(lipgloss.Color(m.theme.Background)).
		Bold(true).
		Padding(0, 2).
		Render(fmt.Sprintf("%s  %s", tx.Continue, selected.Flag)))
	b.WriteString("\n\n")
	b.WriteString(m.renderBindings(styles, m.keys.GateHelp()))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m Model) gateRow(styles Styles, selected bool, label string) string {
	if selected {
		return styles.Selected.Render(padRight("› "+label, gateColumnWidth))
	}
	return styles.Text.Render(padRight("  "+label, gateColumnWidth))
}

func (m Model) gatePanel(styles Styles, focused bool, title string, rows []string) string {
	panel := styles.Panel
	titleStyle := styles.MutedText.Bold(true)
	if focused {
		panel = styles.FocusPanel
		titleStyle = styles.AccentText.Bold(true)
	}
	return panel.Render(titleStyle.Render(title) + "\n" + strings.Join(rows, "\n"))
}

// nextLanguage returns the language after code, wrapping around.
func nextLanguage(code string) locale.Language {
	langs := locale.Languages()
	for i, l := range langs {
		if l.Code == code {
			return langs[(i+1)%len(langs)]
		}
	}
	return locale.DefaultLanguage()
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// visibleWindow returns at most size rows around the cursor.
func visibleWindow(rows []string, cursor, size int) []string {
	if size <= 0 || len(rows) <= size {
		return rows
	}
	start := cursor - size/2
	start = max(0, min(start, len(rows)-size))
	return rows[start : start+size]
}
