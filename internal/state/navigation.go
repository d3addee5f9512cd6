package state

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/five82/showroom/internal/catalog"
)

// Section is a top-level page of the showroom.
type Section string

const (
	SectionHero    Section = "hero"
	SectionModels  Section = "models"
	SectionBrand   Section = "brand"
	SectionDealers Section = "dealers"
	SectionParts   Section = "parts"
)

// DefaultTransitionDelay is the window between a section request and the
// content swap.
const DefaultTransitionDelay = 200 * time.Millisecond

var sections = []Section{SectionHero, SectionModels, SectionBrand, SectionDealers, SectionParts}

// Sections returns every section in menu order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// ParseSection maps a section name onto a Section.
func ParseSection(name string) (Section, error) {
	want := Section(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range sections {
		if s == want {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", name)
}

// Timer is the part of *time.Timer the navigation store needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it once wrapped.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// NavigationSnapshot is a point-in-time copy of the navigation state.
type NavigationSnapshot struct {
	ActiveSection    Section
	IsTransitioning  bool
	SelectedCategory string
	// PendingSection is the target of the running transition, empty when idle.
	PendingSection Section
}

// NavigationOptions configure NewNavigationStore.
type NavigationOptions struct {
	Delay           time.Duration // zero uses DefaultTransitionDelay
	DefaultCategory string        // empty uses catalog.DefaultCategoryID
	AfterFunc       AfterFunc     // nil uses time.AfterFunc
	InitialSection  Section       // empty uses SectionHero
}

// NavigationStore tracks which section is shown and whether a transition is
// running. Safe for concurrent use.
type NavigationStore struct {
	mu         sync.Mutex
	snap       NavigationSnapshot
	delay      time.Duration
	afterFunc  AfterFunc
	timer      Timer
	generation uint64
	changed    signal
}

// NewNavigationStore returns a store showing opts.InitialSection, or the hero
// section when none is given.
func NewNavigationStore(opts NavigationOptions) *NavigationStore {
	delay := opts.Delay
	if delay <= 0 {
		delay = DefaultTransitionDelay
	}
	category := strings.TrimSpace(opts.DefaultCategory)
	if category == "" {
		category = catalog.DefaultCategoryID
	}
	after := opts.AfterFunc
	if after == nil {
		after = realAfterFunc
	}
	initial := opts.InitialSection
	if initial == "" {
		initial = SectionHero
	}
	return &NavigationStore{
		snap: NavigationSnapshot{
			ActiveSection:    initial,
			SelectedCategory: category,
		},
		delay:     delay,
		afterFunc: after,
		changed:   newSignal(),
	}
}

// Delay returns the configured transition window.
func (s *NavigationStore) Delay() time.Duration {
	return s.delay
}

// SetActiveSection starts a transition to section. The transition flag is
// raised immediately; the section changes once the delay elapses. A call
// during a running transition cancels it and restarts the window with the new
// target.
func (s *NavigationStore) SetActiveSection(section Section) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	if s.timer != nil {
		s.timer.Stop()
	}
	s.snap.IsTransitioning = true
	s.snap.PendingSection = section
	s.timer = s.afterFunc(s.delay, func() { s.settle(gen) })
	s.mu.Unlock()

	s.changed.notify()
}

// settle applies the transition started under gen, unless a newer request
// superseded it.
func (s *NavigationStore) settle(gen uint64) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	s.snap.ActiveSection = s.snap.PendingSection
	s.snap.PendingSection = ""
	s.snap.IsTransitioning = false
	s.timer = nil
	s.mu.Unlock()

	s.changed.notify()
}

// SetIsTransitioning stores the flag as is.
func (s *NavigationStore) SetIsTransitioning(flag bool) {
	s.mu.Lock()
	s.snap.IsTransitioning = flag
	s.mu.Unlock()

	s.changed.notify()
}

// SetSelectedCategory stores the catalog category for the models section.
// Unknown ids are accepted; they simply match no models.
func (s *NavigationStore) SetSelectedCategory(categoryID string) {
	s.mu.Lock()
	s.snap.SelectedCategory = categoryID
	s.mu.Unlock()

	s.changed.notify()
}

// Snapshot returns a copy of the current state.
func (s *NavigationStore) Snapshot() NavigationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Changed delivers a value after one or more mutations.
func (s *NavigationStore) Changed() <-chan struct{} {
	return s.changed
}

// Close abandons a pending transition, leaving the current section in place.
func (s *NavigationStore) Close() {
	s.mu.Lock()
	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.snap.IsTransitioning = false
	s.snap.PendingSection = ""
	s.mu.Unlock()

	s.changed.notify()
}
