package ui

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/showroom/internal/locale"
	"github.com/five82/showroom/internal/prefs"
	"github.com/five82/showroom/internal/state"
)

// manualTimers holds navigation callbacks until the test fires them.
type manualTimers struct {
	mu      sync.Mutex
	pending []func()
}

type manualTimer struct{}

func (manualTimer) Stop() bool { return true }

func (t *manualTimers) after(_ time.Duration, f func()) state.Timer {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = append(t.pending, f)
	return manualTimer{}
}

func (t *manualTimers) fire() {
	t.mu.Lock()
	pending := t.pending
	t.pending = nil
	t.mu.Unlock()
	for _, f := range pending {
		f()
	}
}

// testClock is a settable time source for the country store.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// blockingLocator answers with code once release is closed.
type blockingLocator struct {
	code    string
	entered chan struct{}
	release chan struct{}
}

func (l *blockingLocator) LookupCountry(ctx context.Context) (string, error) {
	close(l.entered)
	select {
	case <-l.release:
		return l.code, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

type harness struct {
	model   Model
	nav     *state.NavigationStore
	country *state.CountryStore
	timers  *manualTimers
}

func newHarness(t *testing.T, snap prefs.CountrySnapshot) *harness {
	t.Helper()
	return newHarnessWith(t, state.CountryOptions{Snapshot: snap})
}

func newHarnessWith(t *testing.T, opts state.CountryOptions) *harness {
	t.Helper()
	timers := &manualTimers{}
	nav := state.NewNavigationStore(state.NavigationOptions{AfterFunc: timers.after})
	country := state.NewCountryStore(opts)
	m := New(Options{
		Navigation: nav,
		Country:    country,
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
	})
	h := &harness{model: m, nav: nav, country: country, timers: timers}
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

func confirmedSnapshot(t *testing.T) prefs.CountrySnapshot {
	t.Helper()
	c, _ := locale.CountryByCode("panama")
	return prefs.CountrySnapshot{
		Country:     &c,
		Language:    locale.DefaultLanguage(),
		Confirmed:   true,
		ConfirmedOn: time.Now().Format(state.DateLayout),
	}
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func (h *harness) press(keys ...string) {
	for _, k := range keys {
		switch k {
		case "enter":
			h.send(tea.KeyMsg{Type: tea.KeyEnter})
		case "down":
			h.send(tea.KeyMsg{Type: tea.KeyDown})
		case "tab":
			h.send(tea.KeyMsg{Type: tea.KeyTab})
		case "esc":
			h.send(tea.KeyMsg{Type: tea.KeyEsc})
		default:
			h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		}
	}
}

func TestGateShownOnFirstRun(t *testing.T) {
	h := newHarness(t, prefs.DefaultCountrySnapshot())

	if !h.model.showGate {
		t.Fatal("gate should show before any confirmation")
	}
	view := h.model.View()
	if !strings.Contains(view, "BIENVENIDO A SUPER TUCÁN") {
		t.Fatalf("gate view missing welcome:\n%s", view)
	}
}

func TestGatePrefillsDetectedCountryUntilTouched(t *testing.T) {
	h := newHarness(t, prefs.DefaultCountrySnapshot())

	mexico, _ := locale.CountryByCode("mexico")
	h.country.SetCountry(mexico)
	h.send(countryChangedMsg{})
	if got := h.model.gate.selectedCountry().Code; got != "mexico" {
		t.Fatalf("gate country = %q, want mexico", got)
	}

	h.press("down")
	moved := h.model.gate.selectedCountry().Code

	peru, _ := locale.CountryByCode("peru")
	h.country.SetCountry(peru)
	h.send(countryChangedMsg{})
	if got := h.model.gate.selectedCountry().Code; got != moved {
		t.Fatalf("gate country = %q after user moved the cursor, want %q", got, moved)
	}
}

func TestGateConfirmStoresSelection(t *testing.T) {
	h := newHarness(t, prefs.DefaultCountrySnapshot())

	h.press("down", "tab", "down", "enter")

	if h.model.showGate {
		t.Fatal("gate should close after confirming")
	}
	st := h.country.State()
	if st.SelectedCountry == nil || st.SelectedCountry.Code != "panama" {
		t.Fatalf("selected country = %+v, want panama", st.SelectedCountry)
	}
	if st.SelectedLanguage.Code != "en" {
		t.Fatalf("selected language = %q, want en", st.SelectedLanguage.Code)
	}
	if !st.HasConfirmedSelection || st.LastConfirmationDate == "" {
		t.Fatalf("selection not confirmed: %+v", st)
	}
	if h.country.ShouldShowGate() {
		t.Fatal("store still wants the gate")
	}
}

func TestGateShowsDetectingSpinner(t *testing.T) {
	h := newHarness(t, prefs.DefaultCountrySnapshot())
	h.model.locale.IsDetecting = true

	if view := h.model.View(); !strings.Contains(view, "Detectando tu país") {
		t.Fatalf("gate view missing detection notice:\n%s", view)
	}
}

func TestSectionSwitchWaitsForTransition(t *testing.T) {
	h := newHarness(t, confirmedSnapshot(t))

	h.press("2")

	if !h.model.navSnap.IsTransitioning {
		t.Fatal("transition flag should be raised immediately")
	}
	if h.model.navSnap.ActiveSection != state.SectionHero {
		t.Fatalf("active section = %s before the delay, want hero", h.model.navSnap.ActiveSection)
	}
	if view := h.model.View(); !strings.Contains(view, "Cargando") {
		t.Fatalf("transition overlay missing:\n%s", view)
	}

	h.timers.fire()
	h.send(navChangedMsg{})

	if h.model.navSnap.ActiveSection != state.SectionModels || h.model.navSnap.IsTransitioning {
		t.Fatalf("nav = %+v, want settled on models", h.model.navSnap)
	}
	if view := h.model.View(); !strings.Contains(view, "MOTOCICLETA") {
		t.Fatalf("models view missing category tabs:\n%s", view)
	}
}

func TestRapidSectionSwitchLastWins(t *testing.T) {
	h := newHarness(t, confirmedSnapshot(t))

	h.press("4", "5")
	h.timers.fire()
	h.send(navChangedMsg{})

	if got := h.model.navSnap.ActiveSection; got != state.SectionParts {
		t.Fatalf("active section = %s, want parts", got)
	}
}

func TestModelsCategoryCycling(t *testing.T) {
	h := newHarness(t, confirmedSnapshot(t))
	h.press("2")
	h.timers.fire()
	h.send(navChangedMsg{})

	h.press("]")
	if got := h.nav.Snapshot().SelectedCategory; got != "passola" {
		t.Fatalf("category = %q, want passola", got)
	}

	h.press("]")
	if got := h.nav.Snapshot().SelectedCategory; got != "atv" {
		t.Fatalf("category = %q, want atv", got)
	}
	if view := h.model.View(); !strings.Contains(view, "PRÓXIMAMENTE") {
		t.Fatalf("empty category should say coming soon:\n%s", view)
	}
}

func TestCycleLanguageTranslatesHeader(t *testing.T) {
	h := newHarness(t, confirmedSnapshot(t))

	h.press("L")

	if got := h.country.State().SelectedLanguage.Code; got != "en" {
		t.Fatalf("language = %q, want en", got)
	}
	if view := h.model.View(); !strings.Contains(view, "MODELS") {
		t.Fatalf("header not translated:\n%s", view)
	}
}

func TestChangeCountryReopensGate(t *testing.T) {
	h := newHarness(t, confirmedSnapshot(t))
	if h.model.showGate {
		t.Fatal("gate should be hidden for a selection confirmed today")
	}

	h.press("C")

	if !h.model.showGate {
		t.Fatal("gate should reopen")
	}
	if got := h.model.gate.selectedCountry().Code; got != "panama" {
		t.Fatalf("gate should pre-select the stored country, got %q", got)
	}
}

func TestCycleThemePersists(t *testing.T) {
	h := newHarness(t, confirmedSnapshot(t))

	h.press("T")

	if h.model.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", h.model.theme.Name)
	}
	saved, _ := prefs.Load(h.model.prefsPath)
	if saved.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", saved.Theme)
	}
}

func TestDealerSearchFilters(t *testing.T) {
	h := newHarness(t, confirmedSnapshot(t))
	h.press("4")
	h.timers.fire()
	h.send(navChangedMsg{})

	h.press("/", "s", "u", "r", "enter")

	view := h.model.View()
	if !strings.Contains(view, "Moto Sur") {
		t.Fatalf("search result missing:\n%s", view)
	}
	if strings.Contains(view, "Dealer Este") {
		t.Fatalf("non-matching dealer shown:\n%s", view)
	}
	if !strings.Contains(view, "+507") || !strings.Contains(view, "PAB") {
		t.Fatalf("contact line should use the selected country:\n%s", view)
	}
}

func TestSearchSwallowsQuitKey(t *testing.T) {
	h := newHarness(t, confirmedSnapshot(t))
	h.press("4")
	h.timers.fire()
	h.send(navChangedMsg{})

	h.press("/", "q")

	if !h.model.dealers.searching {
		t.Fatal("search box should keep focus")
	}
	if h.model.dealers.search.Value() != "q" {
		t.Fatalf("search value = %q, want q", h.model.dealers.search.Value())
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	h := newHarness(t, confirmedSnapshot(t))

	h.press("?")
	if view := h.model.View(); !strings.Contains(view, "Keyboard Shortcuts") {
		t.Fatalf("help overlay missing:\n%s", view)
	}
	h.press("x")
	if h.model.showHelp {
		t.Fatal("any key should close help")
	}
}

func TestStepSection(t *testing.T) {
	if got := stepSection(state.SectionParts, 1); got != state.SectionHero {
		t.Fatalf("stepSection(parts, 1) = %s, want hero", got)
	}
	if got := stepSection(state.SectionHero, -1); got != state.SectionParts {
		t.Fatalf("stepSection(hero, -1) = %s, want parts", got)
	}
}

func TestGateReturnsAfterMidnight(t *testing.T) {
	start := time.Date(2026, 10, 16, 23, 59, 0, 0, time.Local)
	clock := &testClock{now: start}
	panama, _ := locale.CountryByCode("panama")
	h := newHarnessWith(t, state.CountryOptions{
		Now: clock.Now,
		Snapshot: prefs.CountrySnapshot{
			Country:     &panama,
			Language:    locale.DefaultLanguage(),
			Confirmed:   true,
			ConfirmedOn: start.Format(state.DateLayout),
		},
	})
	if h.model.showGate {
		t.Fatal("gate should stay closed on the day of confirmation")
	}

	clock.set(start.Add(2 * time.Minute))
	h.send(spinner.TickMsg{})

	if !h.model.showGate {
		t.Fatal("gate should reopen once the confirmation day has passed")
	}
	if view := h.model.View(); !strings.Contains(view, "BIENVENIDO A SUPER TUCÁN") {
		t.Fatalf("view should render the gate after midnight:\n%s", view)
	}
	if got := h.model.gate.selectedCountry().Code; got != "panama" {
		t.Fatalf("reopened gate country = %q, want stored panama", got)
	}
}

func TestDayChangedMessageRearms(t *testing.T) {
	start := time.Date(2026, 10, 16, 12, 0, 0, 0, time.Local)
	clock := &testClock{now: start}
	h := newHarnessWith(t, state.CountryOptions{Now: clock.Now})
	h.press("enter")
	if h.model.showGate {
		t.Fatal("gate should close after confirming")
	}

	clock.set(start.Add(24 * time.Hour))
	if cmd := h.send(dayChangedMsg{}); cmd == nil {
		t.Fatal("day change should schedule the next check")
	}
	if !h.model.showGate {
		t.Fatal("gate should show on the next day")
	}
}

func TestUntilNextDay(t *testing.T) {
	now := time.Date(2026, 10, 16, 23, 0, 0, 0, time.UTC)
	if got, want := untilNextDay(now), time.Hour+time.Second; got != want {
		t.Fatalf("untilNextDay = %v, want %v", got, want)
	}
}

func TestLateDetectionKeepsConfirmedChoice(t *testing.T) {
	locator := &blockingLocator{code: "DO", entered: make(chan struct{}), release: make(chan struct{})}
	h := newHarnessWith(t, state.CountryOptions{Locator: locator})

	cmd := h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if cmd == nil {
		t.Fatal("redetect should return a command")
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	<-locator.entered

	h.press("down", "down", "down", "enter")
	if st := h.country.State(); st.SelectedCountry == nil || st.SelectedCountry.Code != "mexico" {
		t.Fatalf("confirmed country = %+v, want mexico", st.SelectedCountry)
	}

	close(locator.release)
	msg := <-done
	h.send(msg)

	st := h.country.State()
	if st.SelectedCountry == nil || st.SelectedCountry.Code != "mexico" || !st.HasConfirmedSelection {
		t.Fatalf("after late detection: country=%+v confirmed=%v, want mexico confirmed", st.SelectedCountry, st.HasConfirmedSelection)
	}
	if res := state.DetectResult(msg.(detectDoneMsg)); res.Outcome != state.OutcomeSkipped {
		t.Fatalf("late detection outcome = %v, want skipped", res.Outcome)
	}
	if h.model.showGate {
		t.Fatal("gate should stay closed after a late detection")
	}
}
