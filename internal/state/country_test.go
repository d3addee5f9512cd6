package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/showroom/internal/locale"
	"github.com/five82/showroom/internal/prefs"
)

type recordingPersister struct {
	mu    sync.Mutex
	saved []prefs.CountrySnapshot
	err   error
}

func (p *recordingPersister) Save(snap prefs.CountrySnapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saved = append(p.saved, snap)
	return p.err
}

func (p *recordingPersister) last(t *testing.T) prefs.CountrySnapshot {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.saved, "nothing persisted")
	return p.saved[len(p.saved)-1]
}

type locatorFunc func(ctx context.Context) (string, error)

func (f locatorFunc) LookupCountry(ctx context.Context) (string, error) {
	return f(ctx)
}

func staticLocator(code string, err error) Locator {
	return locatorFunc(func(context.Context) (string, error) { return code, err })
}

// clock is a settable time source.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func day(s string) time.Time {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		panic(err)
	}
	return t.Add(15 * time.Hour)
}

func mustCountry(t *testing.T, code string) locale.Country {
	t.Helper()
	c, ok := locale.CountryByCode(code)
	require.True(t, ok, "country %s", code)
	return c
}

func newTestCountryStore(t *testing.T, opts CountryOptions) (*CountryStore, *recordingPersister, *clock) {
	t.Helper()
	p := &recordingPersister{}
	clk := &clock{now: day("2024-03-15")}
	if opts.Persister == nil {
		opts.Persister = p
	}
	if opts.Now == nil {
		opts.Now = clk.Now
	}
	return NewCountryStore(opts), p, clk
}

func TestCountryStore_Defaults(t *testing.T) {
	s, _, _ := newTestCountryStore(t, CountryOptions{})

	st := s.State()
	assert.Nil(t, st.SelectedCountry)
	assert.Equal(t, "es", st.SelectedLanguage.Code)
	assert.False(t, st.HasConfirmedSelection)
	assert.Empty(t, st.LastConfirmationDate)
	assert.False(t, st.IsDetecting)
	assert.Equal(t, locale.HomeCountryCode, s.HomeCountry().Code)
	assert.True(t, s.ShouldShowGate())
}

func TestShouldShowGate(t *testing.T) {
	tests := []struct {
		name string
		st   CountryState
		want bool
	}{
		{name: "never confirmed", st: CountryState{}, want: true},
		{name: "confirmed today", st: CountryState{HasConfirmedSelection: true, LastConfirmationDate: "2024-03-15"}, want: false},
		{name: "confirmed yesterday", st: CountryState{HasConfirmedSelection: true, LastConfirmationDate: "2024-03-14"}, want: true},
		{name: "confirmed without date", st: CountryState{HasConfirmedSelection: true}, want: true},
		{name: "date without confirmation", st: CountryState{LastConfirmationDate: "2024-03-15"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldShowGate(tt.st, "2024-03-15"))
		})
	}
}

func TestCountryStore_ConfirmStampsToday(t *testing.T) {
	s, p, clk := newTestCountryStore(t, CountryOptions{})

	s.SetHasConfirmedSelection(true)

	st := s.State()
	assert.True(t, st.HasConfirmedSelection)
	assert.Equal(t, "2024-03-15", st.LastConfirmationDate)
	assert.False(t, s.ShouldShowGate())
	assert.Equal(t, "2024-03-15", p.last(t).ConfirmedOn)

	clk.set(day("2024-03-16"))
	assert.True(t, s.ShouldShowGate(), "confirmation expires at the day boundary")

	s.SetHasConfirmedSelection(false)
	st = s.State()
	assert.False(t, st.HasConfirmedSelection)
	assert.Empty(t, st.LastConfirmationDate)
	assert.Empty(t, p.last(t).ConfirmedOn)
}

func TestCountryStore_RestoresSnapshot(t *testing.T) {
	panama := mustCountry(t, "panama")
	en, _ := locale.LanguageByCode("en")

	s, _, _ := newTestCountryStore(t, CountryOptions{Snapshot: prefs.CountrySnapshot{
		Country:     &panama,
		Language:    en,
		Confirmed:   true,
		ConfirmedOn: "2024-03-15",
	}})

	st := s.State()
	require.NotNil(t, st.SelectedCountry)
	assert.Equal(t, "panama", st.SelectedCountry.Code)
	assert.Equal(t, "en", st.SelectedLanguage.Code)
	assert.False(t, s.ShouldShowGate())
}

func TestCountryStore_PastConfirmationShowsGate(t *testing.T) {
	s, _, _ := newTestCountryStore(t, CountryOptions{Snapshot: prefs.CountrySnapshot{
		Confirmed:   true,
		ConfirmedOn: "2024-01-01",
	}})

	assert.True(t, s.ShouldShowGate())
}

func TestCountryStore_SettersPersist(t *testing.T) {
	s, p, _ := newTestCountryStore(t, CountryOptions{})

	s.SetCountry(mustCountry(t, "mexico"))
	snap := p.last(t)
	require.NotNil(t, snap.Country)
	assert.Equal(t, "mexico", snap.Country.Code)

	pt, _ := locale.LanguageByCode("pt")
	s.SetLanguage(pt)
	snap = p.last(t)
	assert.Equal(t, "pt", snap.Language.Code)
	assert.Equal(t, "mexico", snap.Country.Code)

	assert.Equal(t, snap, s.PersistedSnapshot())
}

func TestCountryStore_SetterIgnoresPersistFailure(t *testing.T) {
	p := &recordingPersister{err: errors.New("disk full")}
	s, _, _ := newTestCountryStore(t, CountryOptions{Persister: p})

	s.SetCountry(mustCountry(t, "peru"))

	st := s.State()
	require.NotNil(t, st.SelectedCountry)
	assert.Equal(t, "peru", st.SelectedCountry.Code)
}

func TestCountryStore_StateIsACopy(t *testing.T) {
	s, _, _ := newTestCountryStore(t, CountryOptions{})
	s.SetCountry(mustCountry(t, "bolivia"))

	st := s.State()
	st.SelectedCountry.Name = "mutated"

	assert.Equal(t, "Bolivia", s.State().SelectedCountry.Name)
}

func TestCountryStore_DetectCountry(t *testing.T) {
	tests := []struct {
		name        string
		locator     Locator
		wantOutcome Outcome
		wantCountry string
		wantErr     error
	}{
		{
			name:        "supported market",
			locator:     staticLocator("DO", nil),
			wantOutcome: OutcomeDetected,
			wantCountry: "dominican_republic",
		},
		{
			name:        "lowercase code",
			locator:     staticLocator("co", nil),
			wantOutcome: OutcomeDetected,
			wantCountry: "colombia",
		},
		{
			name:        "unsupported market",
			locator:     staticLocator("ZZ", nil),
			wantOutcome: OutcomeFellBack,
			wantCountry: "other",
			wantErr:     ErrUnsupportedCountry,
		},
		{
			name:        "network failure",
			locator:     staticLocator("", errors.New("dial tcp: connection refused")),
			wantOutcome: OutcomeFellBack,
			wantCountry: locale.HomeCountryCode,
			wantErr:     ErrDetectionUnavailable,
		},
		{
			name:        "no locator",
			wantOutcome: OutcomeFellBack,
			wantCountry: locale.HomeCountryCode,
			wantErr:     ErrDetectionUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p, _ := newTestCountryStore(t, CountryOptions{Locator: tt.locator})

			res := s.DetectCountry(context.Background())

			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, tt.wantCountry, res.Country.Code)
			if tt.wantErr == nil {
				assert.NoError(t, res.Reason)
			} else {
				assert.ErrorIs(t, res.Reason, tt.wantErr)
			}

			st := s.State()
			require.NotNil(t, st.SelectedCountry)
			assert.Equal(t, tt.wantCountry, st.SelectedCountry.Code)
			assert.False(t, st.IsDetecting)
			assert.False(t, st.HasConfirmedSelection, "detection never confirms")
			assert.Equal(t, tt.wantCountry, p.last(t).Country.Code)
		})
	}
}

func TestCountryStore_UnsupportedIsAlsoUnavailable(t *testing.T) {
	assert.ErrorIs(t, ErrUnsupportedCountry, ErrDetectionUnavailable)
}

func TestCountryStore_ConfiguredHomeCountry(t *testing.T) {
	s, _, _ := newTestCountryStore(t, CountryOptions{
		HomeCountry: "ecuador",
		Locator:     staticLocator("", errors.New("timeout")),
	})

	res := s.DetectCountry(context.Background())
	assert.Equal(t, "ecuador", res.Country.Code)
}

func TestCountryStore_DetectInFlightIsSkipped(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	locator := locatorFunc(func(ctx context.Context) (string, error) {
		close(entered)
		<-release
		return "GT", nil
	})
	s, p, _ := newTestCountryStore(t, CountryOptions{Locator: locator})

	done := make(chan DetectResult, 1)
	go func() { done <- s.DetectCountry(context.Background()) }()
	<-entered

	assert.True(t, s.State().IsDetecting)
	p.mu.Lock()
	assert.Empty(t, p.saved, "detecting flag must not trigger persistence")
	p.mu.Unlock()

	second := s.DetectCountry(context.Background())
	assert.Equal(t, OutcomeSkipped, second.Outcome)
	assert.ErrorIs(t, second.Reason, ErrDetectionInFlight)
	assert.Empty(t, second.Country.Code)

	close(release)
	first := <-done
	assert.Equal(t, OutcomeDetected, first.Outcome)
	assert.Equal(t, "guatemala", first.Country.Code)
	assert.False(t, s.State().IsDetecting)
}

func TestCountryStore_DetectKeepsChoiceMadeDuringLookup(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	locator := locatorFunc(func(ctx context.Context) (string, error) {
		close(entered)
		<-release
		return "DO", nil
	})
	s, p, _ := newTestCountryStore(t, CountryOptions{Locator: locator})

	done := make(chan DetectResult, 1)
	go func() { done <- s.DetectCountry(context.Background()) }()
	<-entered

	s.SetCountry(mustCountry(t, "mexico"))
	s.SetHasConfirmedSelection(true)

	close(release)
	res := <-done
	assert.Equal(t, OutcomeSkipped, res.Outcome)
	assert.ErrorIs(t, res.Reason, ErrSelectionChanged)
	assert.Equal(t, "DO", res.ISOCode)
	assert.Empty(t, res.Country.Code)

	st := s.State()
	require.NotNil(t, st.SelectedCountry)
	assert.Equal(t, "mexico", st.SelectedCountry.Code)
	assert.True(t, st.HasConfirmedSelection)
	assert.False(t, st.IsDetecting)

	last := p.last(t)
	require.NotNil(t, last.Country)
	assert.Equal(t, "mexico", last.Country.Code)
	assert.True(t, last.Confirmed)
}

func TestCountryStore_DetectIgnoresLanguageChange(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	locator := locatorFunc(func(ctx context.Context) (string, error) {
		close(entered)
		<-release
		return "CO", nil
	})
	s, _, _ := newTestCountryStore(t, CountryOptions{Locator: locator})

	done := make(chan DetectResult, 1)
	go func() { done <- s.DetectCountry(context.Background()) }()
	<-entered

	en, _ := locale.LanguageByCode("en")
	s.SetLanguage(en)

	close(release)
	res := <-done
	assert.Equal(t, OutcomeDetected, res.Outcome)
	require.NotNil(t, s.State().SelectedCountry)
	assert.Equal(t, "colombia", s.State().SelectedCountry.Code)
}

func TestCountryStore_DetectHonoursContext(t *testing.T) {
	locator := locatorFunc(func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	s, _, _ := newTestCountryStore(t, CountryOptions{Locator: locator})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := s.DetectCountry(ctx)
	assert.Equal(t, OutcomeFellBack, res.Outcome)
	assert.ErrorIs(t, res.Reason, context.Canceled)
	assert.Equal(t, locale.HomeCountryCode, res.Country.Code)
}

func TestCountryStore_ChangedFiresForDetection(t *testing.T) {
	s, _, _ := newTestCountryStore(t, CountryOptions{Locator: staticLocator("HN", nil)})

	s.DetectCountry(context.Background())

	select {
	case <-s.Changed():
	case <-time.After(time.Second):
		t.Fatal("expected a change notification")
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "detected", OutcomeDetected.String())
	assert.Equal(t, "fell back", OutcomeFellBack.String())
	assert.Equal(t, "skipped", OutcomeSkipped.String())
	assert.Equal(t, "Outcome(9)", Outcome(9).String())
}
