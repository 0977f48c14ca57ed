package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func layout() []Section {
	return []Section{
		{ID: "home", OffsetTop: 0, Height: 800},
		{ID: "projects", OffsetTop: 800, Height: 1200},
		{ID: "accolades", OffsetTop: 2000, Height: 900},
		{ID: "affiliations", OffsetTop: 2900, Height: 700},
		{ID: "recommendations", OffsetTop: 3600, Height: 600},
		{ID: "contact", OffsetTop: 4200, Height: 1000},
	}
}

func TestActiveSection(t *testing.T) {
	tests := []struct {
		scrollY int
		want    string
		ok      bool
	}{
		{0, "home", true},
		{699, "home", true},
		{700, "projects", true}, // 700 + offset lands on the projects top edge
		{1899, "projects", true},
		{1900, "accolades", true},
		{4100, "contact", true},
		{5100, "", false},
		{-500, "", false},
	}

	for _, tt := range tests {
		id, ok := ActiveSection(layout(), tt.scrollY)
		assert.Equal(t, tt.ok, ok, "scrollY=%d", tt.scrollY)
		assert.Equal(t, tt.want, id, "scrollY=%d", tt.scrollY)
	}
}

func TestActiveSection_OverlapLastWins(t *testing.T) {
	sections := []Section{
		{ID: "projects", OffsetTop: 0, Height: 1000},
		{ID: "accolades", OffsetTop: 500, Height: 1000},
	}

	id, ok := ActiveSection(sections, 600)
	assert.True(t, ok)
	assert.Equal(t, "accolades", id)

	// Declaration order decides, not position.
	id, _ = ActiveSection([]Section{sections[1], sections[0]}, 600)
	assert.Equal(t, "projects", id)
}

func TestScrolled(t *testing.T) {
	assert.False(t, Scrolled(0))
	assert.False(t, Scrolled(10))
	assert.True(t, Scrolled(11))
}

func TestTracker_Update(t *testing.T) {
	tr := NewTracker(layout()...)
	assert.Equal(t, "home", tr.Active())

	st := tr.Update(2100)
	assert.Equal(t, "accolades", st.Active)
	assert.True(t, st.Scrolled)
	assert.Equal(t, 2100, st.ScrollY)

	// Past the last section the previous choice stays.
	st = tr.Update(9000)
	assert.Equal(t, "accolades", st.Active)
}

func TestTracker_SubscribeNotifiesOnChange(t *testing.T) {
	tr := NewTracker(layout()...)
	var got []string
	unsubscribe := tr.Subscribe(func(s State) { got = append(got, s.Active) })

	tr.Update(0)    // home, not scrolled: no change
	tr.Update(5)    // same
	tr.Update(900)  // projects
	tr.Update(950)  // same
	tr.Update(2000) // accolades
	unsubscribe()
	tr.Update(4500)

	assert.Equal(t, []string{"projects", "accolades"}, got)
}

func TestTracker_Register(t *testing.T) {
	tr := NewTracker()
	tr.Update(300)
	assert.Equal(t, "home", tr.Active())

	tr.Register(Section{ID: "contact", OffsetTop: 0, Height: 1000})
	assert.Equal(t, "contact", tr.Update(300).Active)
}

func TestTracker_Close(t *testing.T) {
	tr := NewTracker(layout()...)
	calls := 0
	tr.Subscribe(func(State) { calls++ })

	tr.Close()
	st := tr.Update(3000)

	assert.Equal(t, "home", st.Active)
	assert.Equal(t, 0, calls)
}

func TestMenu(t *testing.T) {
	tr := NewTracker(layout()...)
	m := NewMenu(tr)

	assert.False(t, m.Open())
	assert.True(t, m.Toggle())
	assert.True(t, m.Open())

	anchor := m.ScrollTo("contact")
	assert.Equal(t, "#contact", anchor)
	assert.False(t, m.Open())
	assert.Equal(t, "contact", tr.Active())

	assert.True(t, m.Toggle())
	assert.False(t, m.Toggle())

	assert.Equal(t, "#home", NewMenu(nil).ScrollTo("home"))
}

func TestNavItems(t *testing.T) {
	items := NavItems()
	assert.Len(t, items, 6)
	assert.Equal(t, "home", items[0].ID)
	assert.Equal(t, "Recommendations", items[4].Label)
}
