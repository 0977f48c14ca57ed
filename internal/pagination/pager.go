// Package pagination slices an ordered list into fixed-size pages.
package pagination

import "errors"

// ErrInvalidPerPage is returned when a pager is asked for pages of fewer than one item.
var ErrInvalidPerPage = errors.New("pagination: items per page must be positive")

// Pager is a window over items that moves one page at a time. Next and Prev
// wrap around; GoTo clamps to the valid range.
//
// A Pager is not safe for concurrent use.
type Pager[T any] struct {
	items   []T
	perPage int
	current int
}

// New creates a pager positioned on the first page.
func New[T any](items []T, perPage int) (*Pager[T], error) {
	if perPage <= 0 {
		return nil, ErrInvalidPerPage
	}
	return &Pager[T]{items: items, perPage: perPage}, nil
}

// PerPage returns the page size.
func (p *Pager[T]) PerPage() int {
	return p.perPage
}

// Len returns the number of items across all pages.
func (p *Pager[T]) Len() int {
	return len(p.items)
}

// TotalPages returns ceil(len/perPage); zero for an empty list.
func (p *Pager[T]) TotalPages() int {
	return (len(p.items) + p.perPage - 1) / p.perPage
}

// Current returns the zero-based index of the current page.
func (p *Pager[T]) Current() int {
	return p.current
}

// Items returns the current page's items in their original order.
func (p *Pager[T]) Items() []T {
	return p.Page(p.current)
}

// Page returns the items on page n, or nil when n is out of range.
func (p *Pager[T]) Page(n int) []T {
	if n < 0 || n >= p.TotalPages() {
		return nil
	}
	start := n * p.perPage
	end := min(start+p.perPage, len(p.items))
	return p.items[start:end:end]
}

// Next advances one page, wrapping from the last page to the first.
func (p *Pager[T]) Next() {
	total := p.TotalPages()
	if total == 0 {
		return
	}
	p.current = (p.current + 1) % total
}

// Prev moves back one page, wrapping from the first page to the last.
func (p *Pager[T]) Prev() {
	total := p.TotalPages()
	if total == 0 {
		return
	}
	p.current = (p.current - 1 + total) % total
}

// GoTo jumps to page n. Values outside [0, TotalPages) are clamped.
func (p *Pager[T]) GoTo(n int) {
	p.current = Clamp(n, p.TotalPages())
}

// HasPrev reports whether a non-wrapping step back is possible.
func (p *Pager[T]) HasPrev() bool {
	return p.current > 0
}

// HasNext reports whether a non-wrapping step forward is possible.
func (p *Pager[T]) HasNext() bool {
	return p.current < p.TotalPages()-1
}

// Clamp limits a page index to [0, total). It returns 0 when total is 0.
func Clamp(n, total int) int {
	if total <= 0 || n < 0 {
		return 0
	}
	if n >= total {
		return total - 1
	}
	return n
}

// Snapshot is a read-only view of a pager's position, suitable for rendering
// and JSON encoding.
type Snapshot[T any] struct {
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
	PerPage    int  `json:"per_page"`
	Total      int  `json:"total"`
	Items      []T  `json:"items"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// Snapshot captures the pager's current state.
func (p *Pager[T]) Snapshot() Snapshot[T] {
	items := p.Items()
	if items == nil {
		items = []T{}
	}
	return Snapshot[T]{
		Page:       p.current,
		TotalPages: p.TotalPages(),
		PerPage:    p.perPage,
		Total:      len(p.items),
		Items:      items,
		HasPrev:    p.HasPrev(),
		HasNext:    p.HasNext(),
	}
}
