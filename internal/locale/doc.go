// Package locale holds the fixed market and language tables for the showroom.
//
// Countries are identified by an internal code ("dominican_republic",
// "panama", ...) rather than by ISO code; CountryForISO is the only bridge
// between the two and doubles as the allow-list of supported markets used by
// country detection. The "other" entry is the catch-all for visitors from
// markets outside that list.
//
// MatchLanguage negotiates a POSIX locale string (typically $LANG) against
// the offered languages using golang.org/x/text/language.
package locale
