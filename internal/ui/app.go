package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/showroom/internal/catalog"
	"github.com/five82/showroom/internal/logging"
	"github.com/five82/showroom/internal/prefs"
	"github.com/five82/showroom/internal/state"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Navigation *state.NavigationStore
	Country    *state.CountryStore
	ThemeName  string
	PrefsPath  string
	Logger     *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	nav       *state.NavigationStore
	country   *state.CountryStore
	prefsPath string
	logger    *slog.Logger
	keys      keyMap

	theme  Theme
	width  int
	height int
	ready  bool

	// Store copies, refreshed on every change notification.
	navSnap  state.NavigationSnapshot
	locale   state.CountryState
	showGate bool

	gate    gateState
	hero    heroState
	models  modelsState
	dealers dealersState
	parts   string // selected part category
	quote   quoteState

	brandViewport viewport.Model
	spinner       spinner.Model
	showHelp      bool
	notice        string
}

// New creates a new Bubble Tea model. Nil stores are replaced with fresh,
// unpersisted ones.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	nav := opts.Navigation
	if nav == nil {
		nav = state.NewNavigationStore(state.NavigationOptions{})
	}
	country := opts.Country
	if country == nil {
		country = state.NewCountryStore(state.CountryOptions{Logger: opts.Logger})
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	search := textinput.New()
	search.Prompt = "/ "
	search.CharLimit = 40

	m := Model{
		ctx:       ctx,
		nav:       nav,
		country:   country,
		prefsPath: prefsPath,
		logger:    logging.OrDiscard(opts.Logger),
		keys:      DefaultKeyMap(),
		theme:     GetTheme(opts.ThemeName),
		navSnap:   nav.Snapshot(),
		gate:      newGateState(),
		dealers:   dealersState{search: search},
		parts:     catalog.AllPartsID,
		spinner:   sp,
	}
	m.syncCountry()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForChange(m.ctx, m.nav.Changed(), navChangedMsg{}),
		waitForChange(m.ctx, m.country.Changed(), countryChangedMsg{}),
		m.waitForNextDay(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// A confirmation expires with the day, without any store mutation.
	if m.country.ShouldShowGate() != m.showGate {
		m.syncCountry()
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.brandViewport = viewport.New(msg.Width, m.contentHeight())
		}
		m.ready = true
		m.brandViewport.Width = msg.Width
		m.brandViewport.Height = m.contentHeight()
		m.refreshBrand()
		return m, nil

	case navChangedMsg:
		m.navSnap = m.nav.Snapshot()
		return m, waitForChange(m.ctx, m.nav.Changed(), navChangedMsg{})

	case countryChangedMsg:
		m.syncCountry()
		return m, waitForChange(m.ctx, m.country.Changed(), countryChangedMsg{})

	case dayChangedMsg:
		m.syncCountry()
		return m, m.waitForNextDay()

	case detectDoneMsg:
		m.noteDetection(state.DetectResult(msg))
		m.syncCountry()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.dealers.searching {
		var cmd tea.Cmd
		m.dealers.search, cmd = m.dealers.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showGate {
		return m.renderGate()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.quote.open {
		return m.renderQuote()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showGate {
		return m.handleGateKey(msg)
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.quote.open {
		return m.handleQuoteKey(msg)
	}

	if m.dealers.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Quote):
		m.openQuote()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.logger.Warn("save theme preference failed", "theme", m.theme.Name, "error", err)
		}
		m.refreshBrand()
		return m, nil

	case key.Matches(msg, m.keys.ChangeCountry):
		m.country.SetHasConfirmedSelection(false)
		m.gate = newGateState()
		m.syncCountry()
		return m, nil

	case key.Matches(msg, m.keys.CycleLanguage):
		m.country.SetLanguage(nextLanguage(m.locale.SelectedLanguage.Code))
		m.syncCountry()
		return m, nil

	case key.Matches(msg, m.keys.NextSection):
		m.goToSection(stepSection(m.targetSection(), 1))
		return m, nil

	case key.Matches(msg, m.keys.PrevSection):
		m.goToSection(stepSection(m.targetSection(), -1))
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.goToSection(state.SectionHero)
		return m, nil
	}

	for section, binding := range m.sectionBindings() {
		if key.Matches(msg, binding) {
			m.goToSection(section)
			return m, nil
		}
	}

	// Content stays on the settled section until the transition ends.
	switch m.navSnap.ActiveSection {
	case state.SectionHero:
		m.handleHeroKey(msg)
	case state.SectionModels:
		m.handleModelsKey(msg)
	case state.SectionBrand:
		var cmd tea.Cmd
		m.brandViewport, cmd = m.brandViewport.Update(msg)
		return m, cmd
	case state.SectionDealers:
		return m.handleDealersKey(msg)
	case state.SectionParts:
		m.handlePartsKey(msg)
	}
	return m, nil
}

func (m Model) sectionBindings() map[state.Section]key.Binding {
	return map[state.Section]key.Binding{
		state.SectionHero:    m.keys.GoHero,
		state.SectionModels:  m.keys.GoModels,
		state.SectionBrand:   m.keys.GoBrand,
		state.SectionDealers: m.keys.GoDealers,
		state.SectionParts:   m.keys.GoParts,
	}
}

// targetSection is where the user is headed: the pending section during a
// transition, the active one otherwise.
func (m Model) targetSection() state.Section {
	if m.navSnap.IsTransitioning && m.navSnap.PendingSection != "" {
		return m.navSnap.PendingSection
	}
	return m.navSnap.ActiveSection
}

func (m *Model) goToSection(section state.Section) {
	if !m.navSnap.IsTransitioning && section == m.navSnap.ActiveSection {
		return
	}
	m.nav.SetActiveSection(section)
	m.navSnap = m.nav.Snapshot()
}

func stepSection(current state.Section, delta int) state.Section {
	all := state.Sections()
	for i, s := range all {
		if s == current {
			return all[((i+delta)%len(all)+len(all))%len(all)]
		}
	}
	return state.SectionHero
}

// syncCountry refreshes the country copy and the gate decision.
func (m *Model) syncCountry() {
	m.locale = m.country.State()
	reopened := !m.showGate
	m.showGate = m.country.ShouldShowGate()
	if m.showGate {
		if reopened {
			m.gate = newGateState()
		}
		m.gate.prefill(m.locale)
	}
}

func (m *Model) noteDetection(res state.DetectResult) {
	switch res.Outcome {
	case state.OutcomeDetected:
		m.notice = fmt.Sprintf("%s %s %s", copyFor(m.locale.SelectedLanguage.Code).DetectedAs, res.Country.Flag, res.Country.Name)
	case state.OutcomeFellBack:
		m.notice = fmt.Sprintf("%s %s", res.Country.Flag, res.Country.Name)
	default:
		m.notice = ""
	}
}

// contentHeight is the space left below the header and command bar.
func (m Model) contentHeight() int {
	return max(m.height-2, 1)
}

func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

func (m Model) renderContent() string {
	if m.navSnap.IsTransitioning {
		return m.renderTransition()
	}
	switch m.navSnap.ActiveSection {
	case state.SectionModels:
		return m.renderModels()
	case state.SectionBrand:
		return m.brandViewport.View()
	case state.SectionDealers:
		return m.renderDealers()
	case state.SectionParts:
		return m.renderParts()
	default:
		return m.renderHero()
	}
}

// Messages

type navChangedMsg struct{}

type countryChangedMsg struct{}

type detectDoneMsg state.DetectResult

type dayChangedMsg struct{}

// Commands

// waitForChange blocks until the store signals a change, then delivers msg.
// The command ends quietly when the context is cancelled.
func waitForChange(ctx context.Context, changed <-chan struct{}, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-changed:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

// waitForNextDay fires just after the next local midnight of the store's
// clock.
func (m Model) waitForNextDay() tea.Cmd {
	return tea.Tick(untilNextDay(m.country.Now()), func(time.Time) tea.Msg {
		return dayChangedMsg{}
	})
}

func untilNextDay(now time.Time) time.Duration {
	y, mo, d := now.Date()
	midnight := time.Date(y, mo, d+1, 0, 0, 0, 0, now.Location())
	return midnight.Sub(now) + time.Second
}

func detectCmd(ctx context.Context, store *state.CountryStore) tea.Cmd {
	return func() tea.Msg {
		return detectDoneMsg(store.DetectCountry(ctx))
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	if err != nil && opts.Context != nil && opts.Context.Err() != nil {
		// Interrupted by SIGINT/SIGTERM.
		return nil
	}
	return err
}
