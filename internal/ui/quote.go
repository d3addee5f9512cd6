package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/showroom/internal/catalog"
	"github.com/five82/showroom/internal/state"
)

type quoteStep int

const (
	quoteCategory quoteStep = iota
	quoteModel
	quoteColor
	quoteContact
)

const quoteStepCount = int(quoteContact) + 1

// quoteState walks a visitor through category, model and color before
// showing where to request the quote. Choices are kept when stepping back.
type quoteState struct {
	open   bool
	step   quoteStep
	cursor int

	category string
	model    string
	color    string
}

// start opens the wizard with the cursor on categoryID and modelID
// preferred on the next step.
func (q *quoteState) start(categoryID, modelID string) {
	*q = quoteState{open: true, category: categoryID, model: modelID}
	q.cursor = q.indexOf(q.choice())
}

func (q *quoteState) close() {
	*q = quoteState{}
}

// options returns the ids selectable on the current step.
func (q quoteState) options() []string {
	var ids []string
	switch q.step {
	case quoteCategory:
		for _, c := range catalog.Categories() {
			ids = append(ids, c.ID)
		}
	case quoteModel:
		for _, mdl := range catalog.ModelsIn(q.category) {
			ids = append(ids, mdl.ID)
		}
	case quoteColor:
		if mdl, ok := catalog.ModelByID(q.model); ok {
			for _, c := range mdl.Colors {
				ids = append(ids, c.Value)
			}
		}
	}
	return ids
}

func (q quoteState) choice() string {
	switch q.step {
	case quoteCategory:
		return q.category
	case quoteModel:
		return q.model
	case quoteColor:
		return q.color
	}
	return ""
}

func (q quoteState) indexOf(id string) int {
	for i, opt := range q.options() {
		if opt == id {
			return i
		}
	}
	return 0
}

func (q *quoteState) move(delta int) {
	q.cursor = clampIndex(q.cursor+delta, len(q.options()))
}

// advance stores the highlighted option and moves to the next step. It
// reports false when nothing can be chosen, such as a category without
// models, or on the last step.
func (q *quoteState) advance() bool {
	opts := q.options()
	if q.step == quoteContact || len(opts) == 0 {
		return false
	}
	picked := opts[clampIndex(q.cursor, len(opts))]
	switch q.step {
	case quoteCategory:
		if picked != q.category {
			q.model, q.color = "", ""
		}
		q.category = picked
	case quoteModel:
		if picked != q.model {
			q.color = ""
		}
		q.model = picked
	case quoteColor:
		q.color = picked
	}
	q.step++
	q.cursor = q.indexOf(q.choice())
	return true
}

// back returns to the previous step. It reports false on the first step.
func (q *quoteState) back() bool {
	if q.step == quoteCategory {
		return false
	}
	q.step--
	q.cursor = q.indexOf(q.choice())
	return true
}

// selection resolves the chosen model and color. ok is false until the
// color step is done.
func (q quoteState) selection() (catalog.Model, catalog.Color, bool) {
	mdl, ok := catalog.ModelByID(q.model)
	if !ok {
		return catalog.Model{}, catalog.Color{}, false
	}
	for _, c := range mdl.Colors {
		if c.Value == q.color {
			return mdl, c, true
		}
	}
	return mdl, catalog.Color{}, false
}

// categoryOf returns the category listing modelID, or the default category.
func categoryOf(modelID string) string {
	for _, c := range catalog.Categories() {
		for _, id := range c.ModelIDs {
			if id == modelID {
				return c.ID
			}
		}
	}
	return catalog.DefaultCategoryID
}

// openQuote starts the wizard from what the visitor is looking at.
func (m *Model) openQuote() {
	if m.navSnap.ActiveSection == state.SectionModels {
		items := catalog.ModelsIn(m.navSnap.SelectedCategory)
		modelID := ""
		if len(items) > 0 {
			modelID = items[clampIndex(m.models.cursor, len(items))].ID
		}
		m.quote.start(m.navSnap.SelectedCategory, modelID)
		return
	}
	mdl := m.heroModel()
	m.quote.start(categoryOf(mdl.ID), mdl.ID)
}

func (m Model) handleQuoteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape):
		m.quote.close()
	case key.Matches(msg, m.keys.Up):
		m.quote.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.quote.move(1)
	case key.Matches(msg, m.keys.Prev):
		if !m.quote.back() {
			m.quote.close()
		}
	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Confirm):
		if m.quote.step == quoteContact {
			m.finishQuote()
			return m, nil
		}
		m.quote.advance()
	}
	return m, nil
}

func (m *Model) finishQuote() {
	mdl, color, ok := m.quote.selection()
	m.quote.close()
	if !ok {
		return
	}
	c := m.contactCountry()
	m.notice = fmt.Sprintf("%s: %s %s · %s %s", m.tx().QuoteReady, mdl.Name, color.Name, c.Flag, c.Phone)
	m.logger.Info("quote requested", "model", mdl.ID, "color", color.Value, "country", c.Code)
}

func (m Model) renderQuote() string {
	styles := m.theme.Styles()
	tx := m.tx()
	q := m.quote

	var b strings.Builder
	b.WriteString(styles.Logo.Render(tx.QuoteTitle))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf(tx.QuoteStepOf, int(q.step)+1, quoteStepCount) + " · " + tx.QuoteSteps[q.step]))
	b.WriteString("\n")
	b.WriteString(renderProgress(styles, int(q.step)+1, quoteStepCount))
	b.WriteString("\n\n")

	switch q.step {
	case quoteCategory:
		for i, cat := range catalog.Categories() {
			count := len(catalog.ModelsIn(cat.ID))
			label := fmt.Sprintf("%s %s (%d)", cat.Icon, cat.Name, count)
			b.WriteString(m.quoteRow(styles, i == q.cursor, label))
			b.WriteString("\n")
		}
	case quoteModel:
		items := catalog.ModelsIn(q.category)
		if len(items) == 0 {
			b.WriteString(styles.WarningText.Render(tx.NoModels))
			b.WriteString("\n")
		}
		for i, mdl := range items {
			b.WriteString(m.quoteRow(styles, i == q.cursor, mdl.Name))
			b.WriteString("\n")
		}
	case quoteColor:
		if mdl, ok := catalog.ModelByID(q.model); ok {
			for i, c := range mdl.Colors {
				dot := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex)).Render("●")
				b.WriteString(m.quoteRow(styles, i == q.cursor, dot+" "+c.Name))
				b.WriteString("\n")
			}
		}
	case quoteContact:
		b.WriteString(styles.AccentText.Bold(true).Render(tx.QuoteSelection))
		b.WriteString("\n")
		if mdl, color, ok := q.selection(); ok {
			b.WriteString(styles.Text.Render(mdl.Name) + "  " + renderSwatches([]catalog.Color{color}, color.Value))
			b.WriteString("\n")
			b.WriteString(styles.FaintText.Render(catalog.ImagePath(mdl, color.Value, catalog.AngleMain)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(tx.QuoteContact))
		b.WriteString("\n")
		b.WriteString(m.renderContactLine(styles))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderBindings(styles, m.keys.QuoteHelp()))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Brand)).
		Padding(1, 2)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal.Render(b.String()))
}

func (m Model) quoteRow(styles Styles, selected bool, label string) string {
	if selected {
		return styles.Selected.Render(padRight("› "+label, gateColumnWidth))
	}
	return styles.Text.Render(padRight("  "+label, gateColumnWidth))
}

// renderProgress draws one block per step, filled up to done.
func renderProgress(styles Styles, done, total int) string {
	return styles.AccentText.Render(strings.Repeat("■ ", done)) +
		styles.FaintText.Render(strings.Repeat("□ ", total-done))
}
