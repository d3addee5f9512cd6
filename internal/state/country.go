package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/five82/showroom/internal/locale"
	"github.com/five82/showroom/internal/logging"
	"github.com/five82/showroom/internal/prefs"
)

// DateLayout formats confirmation dates. It is independent of the user's
// locale so a stored date always compares equal to today's on the same day.
const DateLayout = "2006-01-02"

var (
	// ErrDetectionUnavailable covers every way detection can fail: transport
	// errors, bad payloads and unsupported markets.
	ErrDetectionUnavailable = errors.New("country detection unavailable")
	// ErrUnsupportedCountry reports a lookup that named a market outside the
	// allow-list.
	ErrUnsupportedCountry = fmt.Errorf("%w: unsupported country", ErrDetectionUnavailable)
	// ErrDetectionInFlight is returned when DetectCountry is called while a
	// previous call is still running.
	ErrDetectionInFlight = errors.New("country detection already in progress")
	// ErrSelectionChanged is returned when the user chose or confirmed a
	// country while the lookup was running; their choice is kept.
	ErrSelectionChanged = errors.New("country selected while detection was running")
)

// Locator resolves the caller's ISO 3166-1 alpha-2 country code.
type Locator interface {
	LookupCountry(ctx context.Context) (string, error)
}

// Persister stores the country snapshot. prefs.CountryFile implements it.
type Persister interface {
	Save(snap prefs.CountrySnapshot) error
}

// Outcome classifies a DetectCountry call.
type Outcome int

const (
	// OutcomeDetected means the lookup named a supported market.
	OutcomeDetected Outcome = iota
	// OutcomeFellBack means a fallback market was selected; see Reason.
	OutcomeFellBack
	// OutcomeSkipped means nothing was selected: another detection was
	// already running, or the user picked a country meanwhile.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDetected:
		return "detected"
	case OutcomeFellBack:
		return "fell back"
	case OutcomeSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// DetectResult describes what DetectCountry did.
type DetectResult struct {
	Outcome Outcome
	// Country is the market that was selected. Zero for OutcomeSkipped.
	Country locale.Country
	// ISOCode is the raw code returned by the lookup, if any.
	ISOCode string
	// Reason explains a fallback or skip. Nil for OutcomeDetected.
	Reason error
}

// CountryState is a point-in-time copy of the country preference.
type CountryState struct {
	SelectedCountry       *locale.Country
	SelectedLanguage      locale.Language
	HasConfirmedSelection bool
	LastConfirmationDate  string
	IsDetecting           bool
}

// CountryOptions configure NewCountryStore.
type CountryOptions struct {
	Snapshot    prefs.CountrySnapshot
	Persister   Persister // nil disables persistence
	Locator     Locator   // nil makes every detection fall back
	Now         func() time.Time
	HomeCountry string // empty uses locale.HomeCountryCode
	Logger      *slog.Logger
}

// CountryStore owns the country/language choice and the gate decision. Safe
// for concurrent use.
type CountryStore struct {
	mu        sync.Mutex
	state     CountryState
	persister Persister
	locator   Locator
	now       func() time.Time
	home      locale.Country
	logger    *slog.Logger
	changed   signal

	// selection counts user choices of country and confirmations. A
	// detection only applies its result if it is unchanged.
	selection uint64
}

// NewCountryStore builds a store from a persisted snapshot.
func NewCountryStore(opts CountryOptions) *CountryStore {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	home, ok := locale.CountryByCode(opts.HomeCountry)
	if !ok {
		home, _ = locale.CountryByCode(locale.HomeCountryCode)
	}

	snap := opts.Snapshot
	if snap.Language.Code == "" {
		snap.Language = locale.DefaultLanguage()
	}
	st := CountryState{
		SelectedLanguage:      snap.Language,
		HasConfirmedSelection: snap.Confirmed,
	}
	if snap.Country != nil {
		c := *snap.Country
		st.SelectedCountry = &c
	}
	if snap.Confirmed {
		st.LastConfirmationDate = snap.ConfirmedOn
	}

	return &CountryStore{
		state:     st,
		persister: opts.Persister,
		locator:   opts.Locator,
		now:       now,
		home:      home,
		logger:    logging.OrDiscard(opts.Logger),
		changed:   newSignal(),
	}
}

// SetCountry selects a country and persists the choice.
func (s *CountryStore) SetCountry(country locale.Country) {
	s.mutate(func(st *CountryState) {
		s.selection++
		c := country
		st.SelectedCountry = &c
	})
}

// SetLanguage selects a language and persists the choice.
func (s *CountryStore) SetLanguage(language locale.Language) {
	s.mutate(func(st *CountryState) {
		st.SelectedLanguage = language
	})
}

// SetHasConfirmedSelection records the gate confirmation. Confirming stamps
// today's date; revoking clears it.
func (s *CountryStore) SetHasConfirmedSelection(confirmed bool) {
	today := s.today()
	s.mutate(func(st *CountryState) {
		st.HasConfirmedSelection = confirmed
		if confirmed {
			s.selection++
			st.LastConfirmationDate = today
		} else {
			st.LastConfirmationDate = ""
		}
	})
}

// ShouldShowGate reports whether the selection gate must block the app: the
// user never confirmed, or confirmed on a day other than today.
func (s *CountryStore) ShouldShowGate() bool {
	today := s.today()
	s.mu.Lock()
	defer s.mu.Unlock()
	return shouldShowGate(s.state, today)
}

func shouldShowGate(st CountryState, today string) bool {
	if !st.HasConfirmedSelection {
		return true
	}
	return st.LastConfirmationDate != today
}

// State returns a copy of the current state.
func (s *CountryStore) State() CountryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyState()
}

// PersistedSnapshot returns the persisted subset of the state.
func (s *CountryStore) PersistedSnapshot() prefs.CountrySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// HomeCountry returns the market used when detection fails.
func (s *CountryStore) HomeCountry() locale.Country {
	return s.home
}

// Changed delivers a value after one or more mutations, including changes
// of the detection flag.
func (s *CountryStore) Changed() <-chan struct{} {
	return s.changed
}

// DetectCountry resolves the visitor's market through the locator and
// selects it. Failures never surface as errors: the store falls back to the
// "other" entry for unsupported markets and to the home market otherwise,
// and the result says which happened. A call while another detection is
// running does nothing and returns OutcomeSkipped, as does a lookup that
// finishes after the user selected or confirmed a country.
func (s *CountryStore) DetectCountry(ctx context.Context) DetectResult {
	s.mu.Lock()
	if s.state.IsDetecting {
		s.mu.Unlock()
		return DetectResult{Outcome: OutcomeSkipped, Reason: ErrDetectionInFlight}
	}
	s.state.IsDetecting = true
	started := s.selection
	s.mu.Unlock()
	s.changed.notify()

	defer s.setDetecting(false)

	result := s.resolve(ctx)
	applied := s.apply(func(st *CountryState) bool {
		if s.selection != started {
			return false
		}
		c := result.Country
		st.SelectedCountry = &c
		return true
	})
	if !applied {
		s.logger.Debug("country detection discarded",
			"iso", result.ISOCode,
			"country", result.Country.Code,
			"reason", ErrSelectionChanged)
		return DetectResult{Outcome: OutcomeSkipped, ISOCode: result.ISOCode, Reason: ErrSelectionChanged}
	}

	if result.Outcome == OutcomeDetected {
		s.logger.Info("country detected", "iso", result.ISOCode, "country", result.Country.Code)
	} else {
		s.logger.Debug("country detection fell back",
			"iso", result.ISOCode,
			"country", result.Country.Code,
			"reason", result.Reason)
	}
	return result
}

func (s *CountryStore) resolve(ctx context.Context) DetectResult {
	if s.locator == nil {
		return s.fallBackHome("", fmt.Errorf("%w: no locator configured", ErrDetectionUnavailable))
	}

	code, err := s.locator.LookupCountry(ctx)
	if err != nil {
		return s.fallBackHome(code, fmt.Errorf("%w: %w", ErrDetectionUnavailable, err))
	}

	if c, ok := locale.CountryForISO(code); ok {
		return DetectResult{Outcome: OutcomeDetected, Country: c, ISOCode: code}
	}

	reason := fmt.Errorf("%w %q", ErrUnsupportedCountry, code)
	if other, ok := locale.CountryByCode(locale.OtherCountryCode); ok {
		return DetectResult{Outcome: OutcomeFellBack, Country: other, ISOCode: code, Reason: reason}
	}
	return s.fallBackHome(code, reason)
}

func (s *CountryStore) fallBackHome(code string, reason error) DetectResult {
	return DetectResult{Outcome: OutcomeFellBack, Country: s.home, ISOCode: code, Reason: reason}
}

func (s *CountryStore) setDetecting(flag bool) {
	s.mu.Lock()
	s.state.IsDetecting = flag
	s.mu.Unlock()
	s.changed.notify()
}

// mutate applies fn and persists the result. Persisting happens under the
// lock so snapshots reach the file in mutation order.
func (s *CountryStore) mutate(fn func(*CountryState)) {
	s.apply(func(st *CountryState) bool {
		fn(st)
		return true
	})
}

// apply runs fn under the lock and persists the state when fn reports a
// change.
func (s *CountryStore) apply(fn func(*CountryState) bool) bool {
	s.mu.Lock()
	if !fn(&s.state) {
		s.mu.Unlock()
		return false
	}
	snap := s.snapshotLocked()
	if s.persister != nil {
		if err := s.persister.Save(snap); err != nil {
			s.logger.Warn("persist country snapshot failed", "error", err)
		}
	}
	s.mu.Unlock()

	s.changed.notify()
	return true
}

func (s *CountryStore) snapshotLocked() prefs.CountrySnapshot {
	snap := prefs.CountrySnapshot{
		Language:    s.state.SelectedLanguage,
		Confirmed:   s.state.HasConfirmedSelection,
		ConfirmedOn: s.state.LastConfirmationDate,
	}
	if s.state.SelectedCountry != nil {
		c := *s.state.SelectedCountry
		snap.Country = &c
	}
	return snap
}

func (s *CountryStore) copyState() CountryState {
	st := s.state
	if s.state.SelectedCountry != nil {
		c := *s.state.SelectedCountry
		st.SelectedCountry = &c
	}
	return st
}

// Now returns the store's current time.
func (s *CountryStore) Now() time.Time {
	return s.now()
}

func (s *CountryStore) today() string {
	return s.now().Format(DateLayout)
}
