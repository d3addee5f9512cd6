// Package ui is the Bubble Tea front end of the showroom.
//
// The root Model renders one of two screens. While the country store says
// the gate must show, it renders the selection screen: a country list, a
// language list and a continue button, with the detected country
// pre-selected as long as the user has not moved the cursor. Otherwise it
// renders the header (brand, section tabs, locale badge), a command bar and
// the active section.
//
// The Model never polls. It subscribes to the Changed channels of the
// navigation and country stores through waitForChange commands and copies
// the store state when they fire. Section switches go through
// NavigationStore.SetActiveSection, so the transition overlay shows for the
// store's delay and the content only swaps once the store settles.
//
// Files:
//
//   - app.go: Model, Update/View, store subscriptions, Run
//   - gate.go: country/language selection screen
//   - sections.go: hero, models, brand, dealers and parts content
//   - header.go: header and command bar
//   - help.go, keys.go: help overlay and key bindings
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//   - copy.go: interface text in Spanish, English and Portuguese
package ui
