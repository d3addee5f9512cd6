package prefs

import (
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/showroom/internal/locale"
)

const defaultCountryPath = "~/.config/showroom/country.toml"

// CountrySnapshot is the persisted part of the country/language preference.
// The detection flag is deliberately absent.
type CountrySnapshot struct {
	Country     *locale.Country `toml:"country,omitempty"`
	Language    locale.Language `toml:"language"`
	Confirmed   bool            `toml:"confirmed"`
	ConfirmedOn string          `toml:"confirmed_on,omitempty"`
}

// DefaultCountrySnapshot is the state of a visitor who has never chosen.
func DefaultCountrySnapshot() CountrySnapshot {
	return CountrySnapshot{Language: locale.DefaultLanguage()}
}

// DefaultCountryPath returns the default snapshot file path.
func DefaultCountryPath() string {
	return defaultCountryPath
}

// CountryFile reads and writes the country snapshot at Path.
type CountryFile struct {
	Path string
}

// Load returns the stored snapshot and whether one existed. Unreadable,
// malformed or invalid snapshots yield the default snapshot together with
// the reason, so callers can log it and carry on.
func (f CountryFile) Load() (CountrySnapshot, bool, error) {
	bytes, err := readFile(f.Path, defaultCountryPath)
	if err != nil {
		return DefaultCountrySnapshot(), false, err
	}
	if bytes == nil {
		return DefaultCountrySnapshot(), false, nil
	}

	var snap CountrySnapshot
	if err := toml.Unmarshal(bytes, &snap); err != nil {
		return DefaultCountrySnapshot(), false, fmt.Errorf("parse country snapshot: %w", err)
	}
	return normalize(snap), true, nil
}

// Save writes the snapshot, creating directories as needed.
func (f CountryFile) Save(snap CountrySnapshot) error {
	return writeTOML(f.Path, defaultCountryPath, snap)
}

// normalize repairs snapshots written by hand or by older builds: unknown
// records are dropped, and the date is only kept alongside a confirmation.
func normalize(snap CountrySnapshot) CountrySnapshot {
	if snap.Country != nil {
		if snap.Country.Validate() != nil {
			if known, ok := locale.CountryByCode(snap.Country.Code); ok {
				snap.Country = &known
			} else {
				snap.Country = nil
			}
		}
	}
	if snap.Language.Validate() != nil {
		if known, ok := locale.LanguageByCode(snap.Language.Code); ok {
			snap.Language = known
		} else {
			snap.Language = locale.DefaultLanguage()
		}
	}
	snap.ConfirmedOn = strings.TrimSpace(snap.ConfirmedOn)
	if !snap.Confirmed {
		snap.ConfirmedOn = ""
	}
	return snap
}
