package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestNew_InvalidPerPage(t *testing.T) {
	for _, perPage := range []int{0, -1} {
		p, err := New(seq(3), perPage)
		assert.ErrorIs(t, err, ErrInvalidPerPage)
		assert.Nil(t, p)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, perPage, want int
	}{
		{0, 4, 0},
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{16, 4, 4},
		{17, 4, 5},
		{6, 3, 2},
		{7, 1, 7},
	}

	for _, tt := range tests {
		p, err := New(seq(tt.n), tt.perPage)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.TotalPages(), "n=%d perPage=%d", tt.n, tt.perPage)
	}
}

func TestPages_CoverEveryItemOnceInOrder(t *testing.T) {
	for n := 1; n <= 20; n++ {
		for perPage := 1; perPage <= 6; perPage++ {
			p, err := New(seq(n), perPage)
			require.NoError(t, err)

			var seen []int
			for page := 0; page < p.TotalPages(); page++ {
				items := p.Page(page)
				assert.NotEmpty(t, items)
				assert.LessOrEqual(t, len(items), perPage)
				seen = append(seen, items...)
			}
			assert.Equal(t, seq(n), seen, "n=%d perPage=%d", n, perPage)
		}
	}
}

func TestNext_Cycles(t *testing.T) {
	p, err := New(seq(10), 3)
	require.NoError(t, err)
	p.GoTo(2)

	for i := 0; i < p.TotalPages(); i++ {
		p.Next()
	}
	assert.Equal(t, 2, p.Current())
}

func TestPrev_Cycles(t *testing.T) {
	p, err := New(seq(10), 3)
	require.NoError(t, err)
	p.GoTo(1)

	for i := 0; i < p.TotalPages(); i++ {
		p.Prev()
	}
	assert.Equal(t, 1, p.Current())
}

func TestNextPrev_Wrap(t *testing.T) {
	p, err := New(seq(16), 4)
	require.NoError(t, err)

	p.Prev()
	assert.Equal(t, 3, p.Current())
	assert.Equal(t, []int{12, 13, 14, 15}, p.Items())

	p.Next()
	assert.Equal(t, 0, p.Current())
	assert.Equal(t, []int{0, 1, 2, 3}, p.Items())
}

func TestGoTo_InRange(t *testing.T) {
	p, err := New(seq(11), 2)
	require.NoError(t, err)

	for page := 0; page < p.TotalPages(); page++ {
		p.GoTo(page)
		assert.Equal(t, page, p.Current())
	}
}

func TestGoTo_Clamps(t *testing.T) {
	p, err := New(seq(9), 4)
	require.NoError(t, err)

	p.GoTo(-5)
	assert.Equal(t, 0, p.Current())

	p.GoTo(3)
	assert.Equal(t, 2, p.Current())
	assert.Equal(t, []int{8}, p.Items())

	p.GoTo(100)
	assert.Equal(t, 2, p.Current())
}

func TestEmpty(t *testing.T) {
	p, err := New([]string{}, 3)
	require.NoError(t, err)

	assert.Equal(t, 0, p.TotalPages())
	assert.Nil(t, p.Items())

	// None of these may panic on zero pages.
	p.Next()
	p.Prev()
	p.GoTo(4)
	assert.Equal(t, 0, p.Current())
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())

	snap := p.Snapshot()
	assert.Equal(t, 0, snap.TotalPages)
	assert.NotNil(t, snap.Items)
	assert.Empty(t, snap.Items)
}

func TestHasPrevHasNext(t *testing.T) {
	p, err := New(seq(8), 4)
	require.NoError(t, err)

	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext())

	p.Next()
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestPage_DoesNotAliasBeyondWindow(t *testing.T) {
	items := seq(6)
	p, err := New(items, 2)
	require.NoError(t, err)

	page := p.Page(0)
	page = append(page, 99)
	assert.Equal(t, 2, items[2], "appending to a page must not overwrite the next page")
	assert.Len(t, page, 3)
}

func TestSnapshot(t *testing.T) {
	p, err := New([]string{"a", "b", "c", "d", "e"}, 2)
	require.NoError(t, err)
	p.GoTo(1)

	snap := p.Snapshot()
	assert.Equal(t, 1, snap.Page)
	assert.Equal(t, 3, snap.TotalPages)
	assert.Equal(t, 2, snap.PerPage)
	assert.Equal(t, 5, snap.Total)
	assert.Equal(t, []string{"c", "d"}, snap.Items)
	assert.True(t, snap.HasPrev)
	assert.True(t, snap.HasNext)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(3, 0))
	assert.Equal(t, 0, Clamp(-1, 3))
	assert.Equal(t, 2, Clamp(2, 3))
	assert.Equal(t, 2, Clamp(7, 3))
}
