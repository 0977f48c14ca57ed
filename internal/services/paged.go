package services

import "lumakin.dev/internal/pagination"

// pagedList serves fixed-size pages of a read-only list. Each call builds its
// own pager, so concurrent requests never share a position.
type pagedList[T any] struct {
	items   []T
	perPage int
}

func newPagedList[T any](items []T, perPage int) (pagedList[T], error) {
	if perPage <= 0 {
		return pagedList[T]{}, pagination.ErrInvalidPerPage
	}
	return pagedList[T]{items: items, perPage: perPage}, nil
}

// Page returns page n, clamped to the valid range.
func (l pagedList[T]) Page(n int) pagination.Snapshot[T] {
	p, _ := pagination.New(l.items, l.perPage)
	p.GoTo(n)
	return p.Snapshot()
}

// TotalPages returns the number of pages.
func (l pagedList[T]) TotalPages() int {
	return (len(l.items) + l.perPage - 1) / l.perPage
}

// PerPage returns the page size.
func (l pagedList[T]) PerPage() int {
	return l.perPage
}

// GetAll returns every item.
func (l pagedList[T]) GetAll() []T {
	return l.items
}
