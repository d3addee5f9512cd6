package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/five82/showroom/internal/config"
	"github.com/five82/showroom/internal/geoip"
	"github.com/five82/showroom/internal/locale"
	"github.com/five82/showroom/internal/logging"
	"github.com/five82/showroom/internal/prefs"
	"github.com/five82/showroom/internal/state"
	"github.com/five82/showroom/internal/ui"
)

// Options configure the showroom application.
type Options struct {
	ConfigPath string
	Debug      bool
	// Locale overrides the system locale used to pick the first-run
	// language. Empty reads LC_ALL, LC_MESSAGES and LANG.
	Locale string
	// Section is the section shown once the selection screen is passed.
	// Empty starts on the hero.
	Section string
}

// Env holds everything built from the config. The TUI and the CLI
// subcommands share it.
type Env struct {
	Config     config.Config
	Logger     *logging.Logger
	Prefs      prefs.Prefs
	Snapshots  prefs.CountryFile
	Geo        *geoip.Client
	Country    *state.CountryStore
	Navigation *state.NavigationStore
}

// Open loads config, preferences and the persisted country snapshot and
// builds both stores.
func Open(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var initial state.Section
	if strings.TrimSpace(opts.Section) != "" {
		if initial, err = state.ParseSection(opts.Section); err != nil {
			return nil, err
		}
	}

	logger, err := logging.New(logging.Options{Path: cfg.LogFile, Debug: opts.Debug})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	userPrefs, _ := prefs.Load(cfg.PrefsFile)

	snapshots := prefs.CountryFile{Path: cfg.CountryFile}
	snap, found, err := snapshots.Load()
	if err != nil {
		logger.Warn("country snapshot unreadable, using defaults", "path", cfg.CountryFile, "error", err)
	}
	if !found {
		snap.Language = locale.MatchLanguage(systemLocale(opts.Locale))
	}

	geo, err := geoip.NewClient(cfg.GeoEndpoint, cfg.LookupTimeout)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("init geoip client: %w", err)
	}

	country := state.NewCountryStore(state.CountryOptions{
		Snapshot:    snap,
		Persister:   snapshots,
		Locator:     geo,
		HomeCountry: cfg.HomeCountry,
		Logger:      logger.Logger,
	})
	nav := state.NewNavigationStore(state.NavigationOptions{
		Delay:          cfg.TransitionDelay,
		InitialSection: initial,
	})

	if logging.Enabled(logger.Logger, slog.LevelDebug) {
		logger.Debug("showroom environment ready",
			"config", opts.ConfigPath,
			"geo_endpoint", geo.Endpoint(),
			"snapshot_found", found,
			"section", nav.Snapshot().ActiveSection,
			"gate", country.ShouldShowGate())
	}

	return &Env{
		Config:     cfg,
		Logger:     logger,
		Prefs:      userPrefs,
		Snapshots:  snapshots,
		Geo:        geo,
		Country:    country,
		Navigation: nav,
	}, nil
}

// Close stops pending transitions and flushes the log.
func (e *Env) Close() error {
	if e == nil {
		return nil
	}
	if e.Navigation != nil {
		e.Navigation.Close()
	}
	return e.Logger.Close()
}

// Run boots the showroom TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	env, err := Open(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.Close() }()

	if env.Country.ShouldShowGate() {
		StartDetection(ctx, env.Country, env.Logger.Logger)
	}

	return ui.Run(ui.Options{
		Context:    ctx,
		Navigation: env.Navigation,
		Country:    env.Country,
		ThemeName:  env.Prefs.Theme,
		PrefsPath:  env.Config.PrefsFile,
		Logger:     env.Logger.Logger,
	})
}

func systemLocale(override string) string {
	if v := strings.TrimSpace(override); v != "" {
		return v
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}
