package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/showroom/internal/catalog"
	"github.com/five82/showroom/internal/locale"
	"github.com/five82/showroom/internal/state"
)

type heroState struct {
	modelIdx int
	colorIdx int
	angle    catalog.Angle
}

type modelsState struct {
	cursor   int
	colorIdx int
}

type dealersState struct {
	search    textinput.Model
	searching bool
	cursor    int
}

func (m Model) tx() texts {
	return copyFor(m.locale.SelectedLanguage.Code)
}

// heroModel returns the model shown in the hero, starting from the first
// featured model.
func (m Model) heroModel() catalog.Model {
	lineup := heroLineup()
	return lineup[clampIndex(m.hero.modelIdx, len(lineup))]
}

func heroLineup() []catalog.Model {
	featured := catalog.Featured()
	out := append([]catalog.Model{}, featured...)
	for _, mdl := range catalog.Lineup() {
		if !containsModel(featured, mdl.ID) {
			out = append(out, mdl)
		}
	}
	return out
}

func containsModel(models []catalog.Model, id string) bool {
	for _, mdl := range models {
		if mdl.ID == id {
			return true
		}
	}
	return false
}

func (m *Model) handleHeroKey(msg tea.KeyMsg) {
	n := len(heroLineup())
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.hero = heroState{modelIdx: (m.hero.modelIdx - 1 + n) % n}
	case key.Matches(msg, m.keys.Next):
		m.hero = heroState{modelIdx: (m.hero.modelIdx + 1) % n}
	case key.Matches(msg, m.keys.NextColor):
		m.hero.colorIdx = (m.hero.colorIdx + 1) % max(len(m.heroModel().Colors), 1)
	case key.Matches(msg, m.keys.ToggleAngle):
		m.hero.angle = m.hero.angle.Next()
	}
}

func (m *Model) handleModelsKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.nav.SetSelectedCategory(catalog.PrevCategory(m.navSnap.SelectedCategory))
		m.navSnap = m.nav.Snapshot()
		m.models = modelsState{}
	case key.Matches(msg, m.keys.Next):
		m.nav.SetSelectedCategory(catalog.NextCategory(m.navSnap.SelectedCategory))
		m.navSnap = m.nav.Snapshot()
		m.models = modelsState{}
	case key.Matches(msg, m.keys.Up):
		m.models = modelsState{cursor: clampIndex(m.models.cursor-1, len(catalog.ModelsIn(m.navSnap.SelectedCategory)))}
	case key.Matches(msg, m.keys.Down):
		m.models = modelsState{cursor: clampIndex(m.models.cursor+1, len(catalog.ModelsIn(m.navSnap.SelectedCategory)))}
	case key.Matches(msg, m.keys.NextColor):
		items := catalog.ModelsIn(m.navSnap.SelectedCategory)
		if len(items) > 0 {
			colors := items[clampIndex(m.models.cursor, len(items))].Colors
			m.models.colorIdx = (m.models.colorIdx + 1) % max(len(colors), 1)
		}
	}
}

func (m Model) handleDealersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	found := catalog.SearchDealers(m.dealers.search.Value())
	switch {
	case key.Matches(msg, m.keys.Search):
		m.dealers.searching = true
		return m, m.dealers.search.Focus()
	case key.Matches(msg, m.keys.Up):
		m.dealers.cursor = clampIndex(m.dealers.cursor-1, len(found))
	case key.Matches(msg, m.keys.Down):
		m.dealers.cursor = clampIndex(m.dealers.cursor+1, len(found))
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.dealers.searching = false
		m.dealers.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.dealers.search, cmd = m.dealers.search.Update(msg)
	m.dealers.cursor = 0
	return m, cmd
}

func (m *Model) handlePartsKey(msg tea.KeyMsg) {
	if key.Matches(msg, m.keys.Next) || key.Matches(msg, m.keys.Prev) {
		m.parts = catalog.NextPartCategory(m.parts)
	}
}

func (m Model) renderTransition() string {
	styles := m.theme.Styles()
	target := m.navSnap.PendingSection
	label := m.tx().Sections[target]
	line := m.spinner.View() + " " + styles.MutedText.Render(m.tx().Loading) + " " +
		styles.SectionStyle(target).Render(label)
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, line)
}

func (m Model) renderHero() string {
	styles := m.theme.Styles()
	tx := m.tx()
	mdl := m.heroModel()

	var b strings.Builder
	b.WriteString(styles.Logo.Render(mdl.Name))
	if mdl.Featured {
		b.WriteString("  " + styles.WarningText.Render("★"))
	}
	b.WriteString("\n\n")

	if len(mdl.Colors) > 0 {
		color := mdl.Colors[clampIndex(m.hero.colorIdx, len(mdl.Colors))]
		b.WriteString(styles.MutedText.Render(tx.Colors+": ") + renderSwatches(mdl.Colors, color.Value))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(tx.View+": ") + styles.Text.Render(m.hero.angle.String()))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(catalog.ImagePath(mdl, color.Value, m.hero.angle)))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.AccentText.Bold(true).Render(tx.Explore))
	b.WriteString("\n")
	for _, cat := range catalog.Categories() {
		count := len(catalog.ModelsIn(cat.ID))
		b.WriteString(fmt.Sprintf("%s %s %s\n", cat.Icon,
			styles.Text.Render(padRight(cat.Name, 12)),
			styles.MutedText.Render(fmt.Sprintf("(%d)", count))))
	}
	b.WriteString("\n")
	b.WriteString(m.renderContactLine(styles))

	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, b.String())
}

func (m Model) renderModels() string {
	styles := m.theme.Styles()
	tx := m.tx()
	selected := m.navSnap.SelectedCategory

	tabs := make([]string, 0, len(catalog.Categories()))
	for _, cat := range catalog.Categories() {
		label := cat.Icon + " " + cat.Name
		if cat.ID == selected {
			tabs = append(tabs, styles.SectionStyle(state.SectionModels).Render(label))
		} else {
			tabs = append(tabs, styles.MutedText.Padding(0, 1).Render(label))
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")
	if cat, ok := catalog.CategoryByID(selected); ok {
		b.WriteString(styles.FaintText.Render(cat.Description))
	}
	b.WriteString("\n\n")

	items := catalog.ModelsIn(selected)
	if len(items) == 0 {
		b.WriteString(styles.WarningText.Render(tx.NoModels))
		return b.String()
	}

	cursor := clampIndex(m.models.cursor, len(items))
	for i, mdl := range items {
		row := padRight(mdl.Name, 14) + renderSwatches(mdl.Colors, "")
		if i == cursor {
			b.WriteString(styles.Selected.Render("› " + padRight(mdl.Name, 14)))
			b.WriteString(renderSwatches(mdl.Colors, ""))
		} else {
			b.WriteString(styles.Text.Render("  " + row))
		}
		b.WriteString("\n")
	}

	mdl := items[cursor]
	if len(mdl.Colors) > 0 {
		color := mdl.Colors[clampIndex(m.models.colorIdx, len(mdl.Colors))]
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(tx.Colors+": ") + renderSwatches(mdl.Colors, color.Value))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(catalog.ImagePath(mdl, color.Value, catalog.AngleMain)))
		b.WriteString("\n")
	}
	return b.String()
}

// refreshBrand rebuilds the brand page for the current language and theme.
func (m *Model) refreshBrand() {
	if !m.ready {
		return
	}
	styles := m.theme.Styles()
	tx := m.tx()
	width := max(m.width-4, 20)
	para := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(styles.Logo.Render(tx.BrandTitle))
	b.WriteString("\n\n")
	b.WriteString(para.Render(styles.Text.Render(tx.BrandTagline)))
	b.WriteString("\n\n")

	stats := make([]string, 0, len(brandStats))
	for i, v := range brandStats {
		stats = append(stats, lipgloss.NewStyle().Width(22).Render(
			styles.Logo.Render(v)+"\n"+styles.MutedText.Render(tx.Stats[i])))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats...))
	b.WriteString("\n\n")

	b.WriteString(styles.AccentText.Bold(true).Render(tx.History))
	b.WriteString("\n")
	b.WriteString(para.Render(styles.Text.Render(tx.HistoryBody)))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Bold(true).Render(tx.Mission))
	b.WriteString("\n")
	b.WriteString(para.Render(styles.Text.Render(tx.MissionBody)))
	b.WriteString("\n")

	m.brandViewport.SetContent(lipgloss.NewStyle().Padding(1, 2).Render(b.String()))
}

func (m Model) renderDealers() string {
	styles := m.theme.Styles()
	tx := m.tx()

	var b strings.Builder
	b.WriteString(styles.Logo.Render(tx.FindDealer))
	b.WriteString("\n")
	if m.dealers.searching {
		b.WriteString(m.dealers.search.View())
	} else {
		term := m.dealers.search.Value()
		b.WriteString(styles.MutedText.Render(tx.Search+": ") + styles.Text.Render(ternary(term == "", "-", term)))
	}
	b.WriteString("\n\n")

	found := catalog.SearchDealers(m.dealers.search.Value())
	if len(found) == 0 {
		b.WriteString(styles.WarningText.Render(tx.NoDealers))
		b.WriteString("\n")
	}
	cursor := clampIndex(m.dealers.cursor, len(found))
	for i, d := range found {
		name := d.Name
		if d.Featured {
			name += " ★"
		}
		if i == cursor {
			b.WriteString(styles.Selected.Render("› " + padRight(name, 28)))
		} else {
			b.WriteString(styles.Text.Render("  " + padRight(name, 28)))
		}
		b.WriteString(" " + styles.MutedText.Render(truncate(d.Address, 40)))
		b.WriteString("\n")
	}

	if len(found) > 0 {
		d := found[cursor]
		b.WriteString("\n")
		b.WriteString(styles.Panel.Render(strings.Join([]string{
			styles.AccentText.Bold(true).Render(d.Name),
			styles.Text.Render(d.Address),
			styles.Text.Render("☎ " + d.Phone + "  ✉ " + d.Email),
			styles.MutedText.Render(d.Hours),
			styles.FaintText.Render(strings.Join(d.Services, " · ")),
		}, "\n")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderContactLine(styles))
	return b.String()
}

func (m Model) renderParts() string {
	styles := m.theme.Styles()
	tx := m.tx()

	tabs := []string{m.partsTab(styles, catalog.AllPartsID, tx.AllParts)}
	for _, c := range catalog.PartCategories() {
		tabs = append(tabs, m.partsTab(styles, c.ID, c.Icon+" "+c.Name))
	}

	var b strings.Builder
	b.WriteString(styles.Logo.Render(tx.Spares))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	items := catalog.PartsIn(m.parts)
	if len(items) == 0 {
		b.WriteString(styles.WarningText.Render(tx.NoParts))
		b.WriteString("\n")
	}
	for _, p := range items {
		stock := styles.SuccessText.Render(tx.InStock)
		if !p.InStock {
			stock = styles.DangerText.Render(tx.SoldOut)
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			styles.Text.Render(padRight(p.Name, 32)),
			styles.MutedText.Render(padRight(p.Fits, 26)),
			styles.AccentText.Render(padRight(formatPrice(p.Price), 10)),
			stock))
	}

	b.WriteString("\n")
	b.WriteString(m.renderContactLine(styles))
	return b.String()
}

func (m Model) partsTab(styles Styles, id, label string) string {
	if id == m.parts {
		return styles.SectionStyle(state.SectionParts).Render(label)
	}
	return styles.MutedText.Padding(0, 1).Render(label)
}

// contactCountry is the selected country, or the home market before any
// selection.
func (m Model) contactCountry() locale.Country {
	if m.locale.SelectedCountry != nil {
		return *m.locale.SelectedCountry
	}
	return m.country.HomeCountry()
}

func (m Model) renderContactLine(styles Styles) string {
	c := m.contactCountry()
	tx := m.tx()
	return styles.MutedText.Render(fmt.Sprintf("%s %s: %s · %s %s", c.Flag, tx.CallUs, c.Phone, tx.PricesIn, c.Currency))
}

// renderSwatches draws one dot per color; the selected value is bracketed.
func renderSwatches(colors []catalog.Color, selected string) string {
	parts := make([]string, 0, len(colors))
	for _, c := range colors {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex)).Render("●")
		if c.Value == selected {
			dot = "[" + dot + " " + c.Name + "]"
		}
		parts = append(parts, dot)
	}
	return strings.Join(parts, " ")
}
