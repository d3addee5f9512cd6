// Package config loads the showroom runtime configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/showroom/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// A file that parses but describes an unusable setup (non-HTTP lookup
// endpoint, negative durations, unknown home market) is rejected by
// Validate with an "invalid config" error.
//
// # Default Values
//
//   - Config file: ~/.config/showroom/config.toml
//   - Lookup endpoint: https://ipapi.co/json/
//   - Transition delay: 200ms
//   - Lookup timeout: 10s
//   - Home market: dominican_republic
//   - Country snapshot: ~/.config/showroom/country.toml
//   - Display prefs: ~/.config/showroom/prefs.toml
//   - Log file: ~/.local/state/showroom/showroom.log
//
// # TOML Format
//
//	geo_endpoint = "https://ipapi.co/json/"
//	transition_delay = "200ms"
//	lookup_timeout = "10s"
//	home_country = "dominican_republic"
//	country_file = "~/.config/showroom/country.toml"
//	prefs_file = "~/.config/showroom/prefs.toml"
//	log_file = "~/.local/state/showroom/showroom.log"
//
// Durations use Go duration syntax. A lookup_timeout of "0s" disables the
// client-side timeout and leaves the request to the transport defaults.
package config
