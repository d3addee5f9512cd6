package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Sections
	NextSection key.Binding
	PrevSection key.Binding
	GoHero      key.Binding
	GoModels    key.Binding
	GoBrand     key.Binding
	GoDealers   key.Binding
	GoParts     key.Binding

	// Locale
	ChangeCountry  key.Binding
	CycleLanguage  key.Binding
	Redetect       key.Binding
	SwitchGateList key.Binding

	// Browsing
	Up          key.Binding
	Down        key.Binding
	Prev        key.Binding
	Next        key.Binding
	NextColor   key.Binding
	ToggleAngle key.Binding
	Search      key.Binding
	Confirm     key.Binding
	Quote       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to home"),
		),

		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous section"),
		),
		GoHero: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Home"),
		),
		GoModels: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Models"),
		),
		GoBrand: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Brand"),
		),
		GoDealers: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Dealers"),
		),
		GoParts: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "Parts"),
		),

		ChangeCountry: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Change country"),
		),
		CycleLanguage: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Cycle language"),
		),
		Redetect: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Detect country again"),
		),
		SwitchGateList: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "Country/language"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("←/[", "Previous model/category"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("→/]", "Next model/category"),
		),
		NextColor: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Next color"),
		),
		ToggleAngle: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Toggle angle"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search dealers"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Quote: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Request a quote"),
		),
	}
}

// ShortHelp returns key bindings for the command bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Prev, k.Next, k.Quote, k.CycleLanguage, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, one group per column.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection, k.GoHero, k.GoModels, k.GoBrand, k.GoDealers, k.GoParts, k.Escape},
		{k.Up, k.Down, k.Prev, k.Next, k.NextColor, k.ToggleAngle, k.Search, k.Quote},
		{k.ChangeCountry, k.CycleLanguage, k.CycleTheme, k.Help, k.Quit},
	}
}

// GateHelp returns the bindings active on the selection gate.
func (k keyMap) GateHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SwitchGateList, k.Redetect, k.Confirm, k.Quit}
}

// QuoteHelp returns the bindings active in the quote wizard.
func (k keyMap) QuoteHelp() []key.Binding {
	return []key.Binding{
		k.Up,
		k.Down,
		key.NewBinding(key.WithKeys("left", "["), key.WithHelp("←", "Back")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Next")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Close")),
	}
}
