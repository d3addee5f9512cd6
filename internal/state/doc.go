// Package state holds the two stores the showroom UI and CLI share.
//
// NavigationStore tracks the active section, the selected catalog category
// and whether a section transition is running. A section request raises the
// transition flag at once and swaps the section after a short delay; a newer
// request cancels the pending one through a generation token, so a timer
// that already fired for an abandoned target never applies.
//
// CountryStore owns the visitor's market and language, the daily gate
// confirmation and the best-effort IP geolocation. Every change to the
// persisted fields is written through a Persister; the detection flag is
// transient and never stored.
//
// Both stores are plain values constructed by the caller. Readers take
// copies with Snapshot/State and wait on Changed for updates:
//
//	nav := state.NewNavigationStore(state.NavigationOptions{})
//	nav.SetActiveSection(state.SectionModels)
//	<-nav.Changed()
//	snap := nav.Snapshot() // IsTransitioning == true
//
// Changed channels coalesce: several mutations between two reads produce a
// single wake-up, after which readers take a fresh copy.
package state
