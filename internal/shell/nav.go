// Package shell holds the page-level view state: which navigation entry is
// active for the current scroll position, whether the page has scrolled past
// the top, and whether the mobile menu is open.
package shell

import (
	"slices"
	"sync"
)

const (
	// ScrollOffset is added to the scroll position before matching sections,
	// so a section counts as active slightly before its top reaches the viewport.
	ScrollOffset = 100
	// ScrolledThreshold is how far the page must scroll before the nav bar
	// switches to its scrolled style.
	ScrolledThreshold = 10
)

// NavItem is one entry of the navigation bar. ID doubles as the section anchor.
type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// NavItems returns the navigation entries in page order.
func NavItems() []NavItem {
	return []NavItem{
		{ID: "home", Label: "Home"},
		{ID: "projects", Label: "Projects"},
		{ID: "accolades", Label: "Accolades"},
		{ID: "affiliations", Label: "Affiliations"},
		{ID: "recommendations", Label: "Recommendations"},
		{ID: "contact", Label: "Contact"},
	}
}

// Section is a page section's vertical extent.
type Section struct {
	ID        string `json:"id"`
	OffsetTop int    `json:"offset_top"`
	Height    int    `json:"height"`
}

// Contains reports whether y falls within [OffsetTop, OffsetTop+Height).
func (s Section) Contains(y int) bool {
	return y >= s.OffsetTop && y < s.OffsetTop+s.Height
}

// ActiveSection returns the section containing scrollY+ScrollOffset. Every
// section is checked in order and the last match wins, so with overlapping
// bounds the later section is chosen. ok is false when nothing matches.
func ActiveSection(sections []Section, scrollY int) (id string, ok bool) {
	pos := scrollY + ScrollOffset
	for _, s := range sections {
		if s.Contains(pos) {
			id, ok = s.ID, true
		}
	}
	return id, ok
}

// Scrolled reports whether the page is past ScrolledThreshold.
func Scrolled(scrollY int) bool {
	return scrollY > ScrolledThreshold
}

// State is a snapshot of the tracker.
type State struct {
	Active   string `json:"active"`
	Scrolled bool   `json:"scrolled"`
	ScrollY  int    `json:"scroll_y"`
}

// Tracker follows scroll events and remembers the active section. It starts
// on the first navigation entry. When no section matches a scroll position
// the previous active section is kept.
//
// Listeners are registered with Subscribe and removed with the returned
// function; Close drops them all. A Tracker is safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	sections  []Section
	state     State
	listeners map[int]func(State)
	nextID    int
	closed    bool
}

// NewTracker creates a tracker with "home" active.
func NewTracker(sections ...Section) *Tracker {
	return &Tracker{
		sections:  slices.Clone(sections),
		state:     State{Active: NavItems()[0].ID},
		listeners: make(map[int]func(State)),
	}
}

// Register replaces the section layout, for example after a resize.
func (t *Tracker) Register(sections ...Section) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sections = slices.Clone(sections)
}

// Update handles one scroll event and returns the resulting state. Listeners
// are notified only when the state changed.
func (t *Tracker) Update(scrollY int) State {
	t.mu.Lock()
	if t.closed {
		st := t.state
		t.mu.Unlock()
		return st
	}

	prev := t.state
	next := State{Active: prev.Active, Scrolled: Scrolled(scrollY), ScrollY: scrollY}
	if id, ok := ActiveSection(t.sections, scrollY); ok {
		next.Active = id
	}
	t.state = next

	var listeners []func(State)
	if next.Active != prev.Active || next.Scrolled != prev.Scrolled {
		for _, fn := range t.listeners {
			listeners = append(listeners, fn)
		}
	}
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return next
}

// SetActive marks id active directly, as a click on a nav entry does.
func (t *Tracker) SetActive(id string) {
	t.mu.Lock()
	t.state.Active = id
	t.mu.Unlock()
}

// State returns the current state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Active returns the active section ID.
func (t *Tracker) Active() string {
	return t.State().Active
}

// Subscribe adds a change listener.
func (t *Tracker) Subscribe(fn func(State)) (unsubscribe func()) {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.listeners, id)
		t.mu.Unlock()
	}
}

// Close removes every listener and ignores later scroll events.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	clear(t.listeners)
}
