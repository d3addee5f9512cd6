// Package app is the composition root of the showroom.
//
// Open reads the config, opens the rotating log, restores the persisted
// country snapshot and builds the navigation and country stores around a
// geoip client. Run adds the TUI on top: when the selection gate has to be
// shown it first starts a background detection so the gate can pre-select
// the visitor's market, then hands both stores to the UI.
//
// The CLI subcommands reuse Open so they see exactly the state the TUI
// would.
package app
