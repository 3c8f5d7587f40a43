// Package tui is the terminal counterpart of a listing page: a search box,
// facet rows and the filtered results, driven by a filterstate.Manager.
package tui

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hpungsan/folio/internal/content"
	"github.com/hpungsan/folio/internal/errors"
	"github.com/hpungsan/folio/internal/facet"
	"github.com/hpungsan/folio/internal/filterstate"
	"github.com/hpungsan/folio/internal/notify"
	"github.com/hpungsan/folio/internal/ops"
)

const (
	loadingPoll = 50 * time.Millisecond
	maxRows     = 20
)

// Messages delivered from the manager and toast queue goroutines.
type (
	addressMsg  struct{ address string }
	criteriaMsg struct{ criteria facet.Criteria }
	toastsMsg   struct{ toasts []notify.Toast }
	loadingMsg  struct{}
)

// Options configures a Model.
type Options struct {
	Initial   url.Values    // address query read once at start
	Delay     time.Duration // search debounce, default filterstate.DefaultDelay
	ExitDelay time.Duration // toast exit delay, default notify.ExitDelay
}

// Model is the bubbletea model of the browser.
type Model struct {
	lib     *content.Library
	listing string

	mgr       *filterstate.Manager
	toasts    *notify.Queue
	events    chan tea.Msg
	done      chan struct{}
	closeOnce *sync.Once

	input   textinput.Model
	out     *ops.ListOutput
	address string
	shown   []notify.Toast

	focus  int // 0 is the search box, i > 0 is facet row i-1
	cursor map[int]int
	width  int
}

// New creates a browser for the named listing.
func New(lib *content.Library, listing string, opts Options) (Model, error) {
	facets, ok := content.FacetsOf(listing)
	if !ok {
		return Model{}, errors.NewUnknownListing(listing, content.ListingNames)
	}

	m := Model{
		lib:       lib,
		listing:   listing,
		events:    make(chan tea.Msg, 64),
		done:      make(chan struct{}),
		closeOnce: &sync.Once{},
		cursor:    make(map[int]int),
	}

	nav := filterstate.NavigatorFunc(func(path string, values url.Values) {
		addr := path
		if q := values.Encode(); q != "" {
			addr += "?" + q
		}
		m.send(addressMsg{address: addr})
	})
	var mgrOpts []filterstate.Option
	if opts.Delay > 0 {
		mgrOpts = append(mgrOpts, filterstate.WithDelay(opts.Delay))
	}
	m.mgr = filterstate.New(content.PathOf(listing), facets, opts.Initial, nav, mgrOpts...)
	m.mgr.Subscribe(func(c facet.Criteria) { m.send(criteriaMsg{criteria: c}) })

	queueOpts := []notify.Option{notify.OnChange(func(t []notify.Toast) { m.send(toastsMsg{toasts: t}) })}
	if opts.ExitDelay > 0 {
		queueOpts = append(queueOpts, notify.WithExitDelay(opts.ExitDelay))
	}
	m.toasts = notify.NewQueue(queueOpts...)

	m.input = textinput.New()
	m.input.Placeholder = "Search"
	m.input.Prompt = "› "
	m.input.CharLimit = 100
	m.input.SetValue(m.mgr.Query())
	m.input.Focus()

	m.address = m.mgr.Criteria().Href(m.mgr.Path())
	if err := m.refresh(); err != nil {
		m.Close()
		return Model{}, err
	}
	return m, nil
}

// send forwards msg to the program unless the model is closed.
func (m Model) send(msg tea.Msg) {
	select {
	case m.events <- msg:
	case <-m.done:
	}
}

// listen waits for the next manager or toast event.
func (m Model) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.events:
			return msg
		case <-m.done:
			return nil
		}
	}
}

func pollLoading() tea.Cmd {
	return tea.Tick(loadingPoll, func(time.Time) tea.Msg { return loadingMsg{} })
}

// Close stops pending timers. It is safe to call more than once.
func (m Model) Close() {
	m.closeOnce.Do(func() {
		m.mgr.Close()
		m.toasts.Close()
		close(m.done)
	})
}

// refresh re-runs the listing with the manager's current criteria.
func (m *Model) refresh() error {
	out, err := ops.List(m.lib, ops.ListInput{Listing: m.listing, Criteria: m.mgr.Criteria()})
	if err != nil {
		return err
	}
	m.out = out
	for row := range m.out.Facets {
		if n := len(m.out.Facets[row].Values); m.cursor[row] >= n {
			m.cursor[row] = max(n-1, 0)
		}
	}
	return nil
}

// Init starts the event listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listen())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case addressMsg:
		m.address = msg.address
		return m, m.listen()

	case criteriaMsg:
		_ = m.refresh()
		return m, m.listen()

	case toastsMsg:
		m.shown = msg.toasts
		return m, m.listen()

	case loadingMsg:
		if m.mgr.IsLoading() {
			return m, pollLoading()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nFacets := len(m.out.Facets)

	switch msg.String() {
	case "ctrl+c", "esc":
		m.Close()
		return m, tea.Quit

	case "tab":
		m.setFocus((m.focus + 1) % (nFacets + 1))
		return m, nil

	case "shift+tab":
		m.setFocus((m.focus + nFacets) % (nFacets + 1))
		return m, nil

	case "ctrl+r":
		m.mgr.ResetAll()
		m.input.SetValue("")
		_ = m.refresh()
		m.toasts.Push(notify.Toast{Title: "Filters reset", Description: fmt.Sprintf("Showing all %d items", m.out.Total)})
		return m, nil
	}

	if m.focus > 0 {
		row := m.focus - 1
		values := m.out.Facets[row].Values
		switch msg.String() {
		case "left", "h":
			if m.cursor[row] > 0 {
				m.cursor[row]--
			}
		case "right", "l":
			if m.cursor[row] < len(values)-1 {
				m.cursor[row]++
			}
		case "enter", " ":
			if len(values) > 0 {
				m.mgr.SetFacet(m.out.Facets[row].Facet, values[m.cursor[row]].Value)
				_ = m.refresh()
			}
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.mgr.SetQuery(m.input.Value())
		return m, tea.Batch(cmd, pollLoading())
	}
	return m, cmd
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	if focus == 0 {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// View renders the browser.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("folio · "+m.listing) + "  " + addressStyle.Render(m.address) + "\n\n")

	b.WriteString(m.input.View())
	if m.mgr.IsLoading() {
		b.WriteString(" " + mutedStyle.Render("…"))
	}
	b.WriteString("\n\n")

	for row, s := range m.out.Facets {
		if len(s.Values) == 0 {
			continue
		}
		name := facetNameStyle
		if m.focus == row+1 {
			name = facetFocusedNameStyle
		}
		parts := []string{name.Render(s.Facet.Key())}
		for i, v := range s.Values {
			style := valueStyle
			switch {
			case v.Value == s.Selected:
				style = valueSelectedStyle
			case m.focus == row+1 && i == m.cursor[row]:
				style = valueCursorStyle
			}
			parts = append(parts, style.Render(fmt.Sprintf("%s %d", v.Value, v.Count)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("%d of %d", m.out.Count, m.out.Total)) + "\n")
	lines := rows(m.out.Items)
	if len(lines) == 0 {
		b.WriteString(mutedStyle.Render("Nothing matches these filters.") + "\n")
	}
	for i, line := range lines {
		if i == maxRows {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  … %d more", len(lines)-maxRows)) + "\n")
			break
		}
		b.WriteString("  " + line + "\n")
	}

	for _, t := range m.shown {
		if !t.Open {
			continue
		}
		style := toastStyle
		if t.Variant == notify.VariantDestructive {
			style = toastDestructiveStyle
		}
		text := t.Title
		if t.Description != "" {
			text += "\n" + mutedStyle.Render(t.Description)
		}
		b.WriteString(style.Render(text) + "\n")
	}

	b.WriteString(helpStyle.Render("tab facets · ←/→ choose · enter toggle · ctrl+r reset · esc quit"))
	return b.String()
}

// Criteria returns the applied criteria.
func (m Model) Criteria() facet.Criteria { return m.mgr.Criteria() }

// Address returns the last address written by the manager.
func (m Model) Address() string { return m.address }

// Run starts the browser on the terminal.
func Run(lib *content.Library, listing string, opts Options) error {
	m, err := New(lib, listing, opts)
	if err != nil {
		return err
	}
	defer m.Close()

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
