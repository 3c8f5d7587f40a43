// Package filterstate holds the filter selection of one listing view and keeps
// the navigable address in step with it.
//
// The address is read once, when the Manager is created. After that the
// Manager only writes: every settled change is pushed to the Navigator.
package filterstate

import (
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hpungsan/folio/internal/facet"
)

// DefaultDelay is the quiet period before a typed query settles.
const DefaultDelay = 300 * time.Millisecond

// Navigator receives the address of every settled criteria change.
type Navigator interface {
	Navigate(path string, values url.Values)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string, values url.Values)

func (f NavigatorFunc) Navigate(path string, values url.Values) { f(path, values) }

// Option configures a Manager.
type Option func(*Manager)

// WithDelay overrides the query debounce delay. Non-positive values are ignored.
func WithDelay(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.delay = d
		}
	}
}

// Manager owns the criteria of a single listing view.
type Manager struct {
	path     string
	facets   []facet.Facet
	nav      Navigator
	delay    time.Duration
	debounce *Debouncer

	mu       sync.Mutex
	raw      string
	criteria facet.Criteria
	subs     []func(facet.Criteria)
	closed   bool
}

// New creates a Manager for the listing at path, seeded from the address
// values present at mount. Keys for facets outside facets are ignored.
func New(path string, facets []facet.Facet, initial url.Values, nav Navigator, opts ...Option) *Manager {
	m := &Manager{
		path:   path,
		facets: facets,
		nav:    nav,
		delay:  DefaultDelay,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.debounce = NewDebouncer(m.delay)
	m.criteria = facet.CriteriaFromValues(initial, facets)
	m.raw = m.criteria.Query
	return m
}

// Path returns the canonical unfiltered address of the listing.
func (m *Manager) Path() string { return m.path }

// Facets returns the facets the listing supports.
func (m *Manager) Facets() []facet.Facet { return m.facets }

// Criteria returns the settled criteria.
func (m *Manager) Criteria() facet.Criteria {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.criteria
}

// Query returns the raw search text as typed, which may not have settled yet.
func (m *Manager) Query() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.raw
}

// IsLoading reports whether a typed query is waiting to settle.
func (m *Manager) IsLoading() bool {
	return m.debounce.Pending()
}

// Subscribe registers fn to be called with the criteria after every settled
// change. Callbacks run on the goroutine that caused the change.
func (m *Manager) Subscribe(fn func(facet.Criteria)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// SetQuery records raw immediately and settles it after the debounce delay.
func (m *Manager) SetQuery(raw string) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.raw = raw
	m.mu.Unlock()

	m.debounce.Trigger(m.settleQuery)
}

// settleQuery applies the trimmed raw text. Whitespace edits that leave the
// query unchanged do not navigate.
func (m *Manager) settleQuery() {
	m.mu.Lock()
	q := strings.TrimSpace(m.raw)
	if m.closed || m.criteria.Query == q {
		m.mu.Unlock()
		return
	}
	m.criteria.Query = q
	m.mu.Unlock()

	m.publish()
}

// SetFacet toggles value for f. Selecting the current value clears it.
func (m *Manager) SetFacet(f facet.Facet, value string) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.criteria = m.criteria.Toggle(f, value)
	m.mu.Unlock()

	m.publish()
}

// ResetAll drops any pending query and clears every criterion.
func (m *Manager) ResetAll() {
	m.debounce.Cancel()

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.raw = ""
	m.criteria = facet.Criteria{}
	m.mu.Unlock()

	m.publish()
}

// Close cancels any pending settle. Later calls to setters are ignored.
func (m *Manager) Close() {
	m.debounce.Cancel()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

func (m *Manager) publish() {
	m.mu.Lock()
	c := m.criteria
	subs := append([]func(facet.Criteria){}, m.subs...)
	m.mu.Unlock()

	if m.nav != nil {
		m.nav.Navigate(m.path, c.Values())
	}
	for _, fn := range subs {
		fn(c)
	}
}
