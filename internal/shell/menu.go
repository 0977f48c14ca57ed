package shell

// Menu is the open/closed state of the collapsible mobile navigation.
type Menu struct {
	open    bool
	tracker *Tracker
}

// NewMenu creates a closed menu. Navigating through it marks the target
// active on tracker, which may be nil.
func NewMenu(tracker *Tracker) *Menu {
	return &Menu{tracker: tracker}
}

// Open reports whether the menu is expanded.
func (m *Menu) Open() bool { return m.open }

// Toggle flips the menu and returns the new state.
func (m *Menu) Toggle() bool {
	m.open = !m.open
	return m.open
}

// ScrollTo navigates to a section: the menu closes and the section becomes
// active. It returns the anchor to scroll to.
func (m *Menu) ScrollTo(id string) string {
	m.open = false
	if m.tracker != nil {
		m.tracker.SetActive(id)
	}
	return "#" + id
}
