package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/showroom/internal/geoip"
	"github.com/five82/showroom/internal/locale"
	"github.com/five82/showroom/internal/prefs"
)

// Config captures the showroom runtime settings.
type Config struct {
	GeoEndpoint     string
	TransitionDelay time.Duration
	LookupTimeout   time.Duration
	HomeCountry     string
	CountryFile     string
	PrefsFile       string
	LogFile         string
}

const (
	defaultConfigPath      = "~/.config/showroom/config.toml"
	defaultLogFile         = "~/.local/state/showroom/showroom.log"
	defaultTransitionDelay = 200 * time.Millisecond
	defaultLookupTimeout   = 10 * time.Second
)

// DefaultPath returns the config file consulted when no path is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		GeoEndpoint:     geoip.DefaultEndpoint,
		TransitionDelay: defaultTransitionDelay,
		LookupTimeout:   defaultLookupTimeout,
		HomeCountry:     locale.HomeCountryCode,
		CountryFile:     mustExpand(prefs.DefaultCountryPath()),
		PrefsFile:       mustExpand(prefs.DefaultPath()),
		LogFile:         mustExpand(defaultLogFile),
	}
}

// Load locates and parses the showroom config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		GeoEndpoint     string `toml:"geo_endpoint"`
		TransitionDelay string `toml:"transition_delay"`
		LookupTimeout   string `toml:"lookup_timeout"`
		HomeCountry     string `toml:"home_country"`
		CountryFile     string `toml:"country_file"`
		PrefsFile       string `toml:"prefs_file"`
		LogFile         string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.GeoEndpoint); v != "" {
		cfg.GeoEndpoint = v
	}
	if v := strings.TrimSpace(raw.HomeCountry); v != "" {
		cfg.HomeCountry = v
	}
	if cfg.TransitionDelay, err = parseDuration("transition_delay", raw.TransitionDelay, cfg.TransitionDelay); err != nil {
		return Config{}, err
	}
	if cfg.LookupTimeout, err = parseDuration("lookup_timeout", raw.LookupTimeout, cfg.LookupTimeout); err != nil {
		return Config{}, err
	}
	if v := strings.TrimSpace(raw.CountryFile); v != "" {
		cfg.CountryFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.PrefsFile); v != "" {
		cfg.PrefsFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate reports settings that cannot work at runtime.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.GeoEndpoint, validation.Required, validation.By(httpURL)),
		validation.Field(&c.TransitionDelay, validation.Min(time.Duration(0))),
		validation.Field(&c.LookupTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.HomeCountry, validation.Required, validation.In(countryCodes()...)),
	)
}

func httpURL(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return validation.NewError("config.geo_endpoint_invalid", "must be an http(s) URL")
	}
	return nil
}

func countryCodes() []any {
	codes := locale.CountryCodes()
	out := make([]any, 0, len(codes))
	for _, c := range codes {
		out = append(out, c)
	}
	return out
}

func parseDuration(key, raw string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", key, err)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return prefs.ExpandPath(defaultConfigPath)
	}
	return prefs.ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := prefs.ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}
